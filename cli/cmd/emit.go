package cmd

import (
	"context"
	"log/slog"
	"maps"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/ardnew/scopelog/log"
)

// Emit logs one message through the selected backend.
type Emit struct {
	Level   string `default:"info"    help:"Message level (${levels})."   short:"l"`
	Backend string `default:"console" help:"Log backend (${backends})."   short:"b"`

	Scope     map[string]string `help:"Scope entry as key=value (repeatable)."                          mapsep:"none" short:"s"`
	ScopeFile []string          `help:"YAML file(s) of scope entries, merged before --scope."                                  type:"existingfile"`
	Meta      map[string]string `help:"Metadata entry as key=value (repeatable)."                       mapsep:"none" short:"m"`
	RunID     bool              `help:"Add a random runId entry to the scope."                                                                     name:"run-id"`

	Template string   `help:"Console template (console and pterm backends)."`
	Param    []string `help:"Expression producing one template parameter (repeatable)." sep:"none"`

	EnvFile []string `help:"Load environment variables from dotenv file(s) first." type:"existingfile"`

	Message []string `arg:"" help:"Message to log." name:"message"`
}

// Run executes the emit command.
func (e *Emit) Run(ctx context.Context) error {
	stdout, stderr := streams(ctx)
	trace := log.FromContext(ctx).Scope(log.Scope{"command": "emit"})

	if len(e.EnvFile) > 0 {
		if err := godotenv.Load(e.EnvFile...); err != nil {
			return ErrEnvFile.Wrap(err)
		}

		_ = trace.Debug("environment loaded", log.Meta{"files": e.EnvFile})
	}

	level, err := ParseLevel(e.Level)
	if err != nil {
		return err
	}

	backend, err := ParseBackend(e.Backend)
	if err != nil {
		return err
	}

	scope, err := e.scope()
	if err != nil {
		return err
	}

	params, err := compileParams(e.Param)
	if err != nil {
		return err
	}

	var console []log.ConsoleOption
	if e.Template != "" {
		console = append(console, log.WithTemplate(e.Template))
	}

	if params != nil {
		console = append(console, log.WithFormatParameters(params))
	}

	factory, err := backend.Factory(backendConfigFrom(ctx), stdout, stderr, console...)
	if err != nil {
		return err
	}

	var meta []log.Meta
	if len(e.Meta) > 0 {
		meta = append(meta, log.Meta(typed(e.Meta)))
	}

	_ = trace.Debug("emitting", log.Meta{
		"backend": string(backend),
		"level":   string(level),
	})

	logger := log.New(factory, scope)

	if err := logger.Log(level, strings.Join(e.Message, " "), meta...); err != nil {
		return ErrEmit.Wrap(err).With(slog.String("backend", string(backend)))
	}

	return nil
}

// scope merges the scope files, the --scope entries, and the run ID, in
// that order.
func (e *Emit) scope() (log.Scope, error) {
	scope := log.Scope{}

	for _, path := range e.ScopeFile {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, ErrScopeFile.Wrap(err).With(slog.String("path", path))
		}

		var entries map[string]any
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, ErrScopeFile.Wrap(err).With(slog.String("path", path))
		}

		maps.Copy(scope, entries)
	}

	maps.Copy(scope, typed(e.Scope))

	if e.RunID {
		scope["runId"] = uuid.NewString()
	}

	return scope, nil
}

// typed converts flag values to booleans or numbers where they read as
// such, keeping all others as strings.
func typed(m map[string]string) map[string]any {
	out := make(map[string]any, len(m))

	for k, v := range m {
		out[k] = typedValue(v)
	}

	return out
}

func typedValue(s string) any {
	switch {
	case strings.EqualFold(s, "true"):
		return true
	case strings.EqualFold(s, "false"):
		return false
	case s == "" || !strings.ContainsAny(s[:1], "+-.0123456789"):
		return s
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}

	return s
}
