package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/scopelog/backend/structured"
	"github.com/ardnew/scopelog/log"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// streams returns the output writers of the kong.Context stored in ctx,
// or the process streams when there is none.
func streams(ctx context.Context) (stdout, stderr io.Writer) {
	stdout, stderr = os.Stdout, os.Stderr

	if ktx := kongContextFrom(ctx); ktx != nil {
		if ktx.Stdout != nil {
			stdout = ktx.Stdout
		}

		if ktx.Stderr != nil {
			stderr = ktx.Stderr
		}
	}

	return stdout, stderr
}

// BackendConfig holds the settings shared by the structured backends.
type BackendConfig struct {
	// Level is the minimum level written by the slog, zap, logrus, and charm
	// backends. The console backends gate only debug messages.
	Level log.Level
	// Structured configures the slog backend.
	Structured []structured.Option
}

type backendConfigKey struct{}

// WithBackendConfig returns a new context.Context containing cfg.
func WithBackendConfig(ctx context.Context, cfg BackendConfig) context.Context {
	return context.WithValue(ctx, backendConfigKey{}, cfg)
}

// backendConfigFrom retrieves the BackendConfig stored in ctx, or one with
// [structured.DefaultLevel] if none was stored.
func backendConfigFrom(ctx context.Context) BackendConfig {
	cfg, ok := ctx.Value(backendConfigKey{}).(BackendConfig)
	if !ok {
		cfg.Level = structured.DefaultLevel
	}

	return cfg
}
