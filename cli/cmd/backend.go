package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	charm "github.com/charmbracelet/log"
	"github.com/sahilm/fuzzy"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ardnew/scopelog/backend/charmlog"
	"github.com/ardnew/scopelog/backend/logruslog"
	"github.com/ardnew/scopelog/backend/ptermlog"
	"github.com/ardnew/scopelog/backend/structured"
	"github.com/ardnew/scopelog/backend/zaplog"
	"github.com/ardnew/scopelog/log"
)

// Backend names a log backend selectable from the command line.
type Backend string

const (
	BackendConsole Backend = "console"
	BackendPterm   Backend = "pterm"
	BackendSlog    Backend = "slog"
	BackendZap     Backend = "zap"
	BackendLogrus  Backend = "logrus"
	BackendCharm   Backend = "charm"
)

// Backends returns the names of all backends.
func Backends() []string {
	return []string{
		string(BackendConsole),
		string(BackendPterm),
		string(BackendSlog),
		string(BackendZap),
		string(BackendLogrus),
		string(BackendCharm),
	}
}

// ParseBackend parses a backend name. Unknown names return [ErrBackend]
// with the closest known name, if any.
func ParseBackend(s string) (Backend, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if slices.Contains(Backends(), name) {
		return Backend(name), nil
	}

	return "", ErrBackend.
		Wrap(unknown(s, Backends())).
		With(slog.String("backend", s))
}

// ParseLevel parses a level symbol. Unknown symbols return [ErrLevel]
// wrapping [log.ErrUnknownLevel] with the closest known symbol, if any.
func ParseLevel(s string) (log.Level, error) {
	level, err := log.ParseLevel(s)
	if err == nil {
		return level, nil
	}

	var symbols []string
	for l := range log.Levels() {
		symbols = append(symbols, l.String())
	}

	if best, ok := suggest(s, symbols); ok {
		err = fmt.Errorf("%w (did you mean %q?)", err, best)
	}

	return "", ErrLevel.Wrap(err).With(slog.String("level", s))
}

// unknown reports name as unknown, suggesting the closest candidate or
// listing all of them.
func unknown(name string, candidates []string) error {
	if best, ok := suggest(name, candidates); ok {
		return fmt.Errorf("unknown name %q (did you mean %q?)", name, best)
	}

	return fmt.Errorf(
		"unknown name %q (expected one of: %s)",
		name, strings.Join(candidates, ", "),
	)
}

// suggest returns the best fuzzy match of input among candidates.
func suggest(input string, candidates []string) (string, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", false
	}

	matches := fuzzy.Find(input, candidates)
	if len(matches) == 0 {
		return "", false
	}

	return matches[0].Str, true
}

// Factory builds the [log.Factory] of backend b.
//
// The console backends write error and warning messages to stderr and the
// rest to stdout, formatted with the given console options. The structured
// backends write every message to stderr.
func (b Backend) Factory(
	cfg BackendConfig,
	stdout, stderr io.Writer,
	console ...log.ConsoleOption,
) (log.Factory, error) {
	switch b {
	case BackendConsole:
		return log.ConsoleFactory(append(
			[]log.ConsoleOption{log.WithConsole(log.NewConsole(stdout, stderr))},
			console...,
		)...), nil

	case BackendPterm:
		return ptermlog.Factory(append(
			[]log.ConsoleOption{log.WithConsole(ptermlog.NewConsole(stdout, stderr))},
			console...,
		)...), nil

	case BackendSlog:
		return structured.Factory(structured.New(stderr,
			append(
				[]structured.Option{structured.WithLevel(cfg.Level)},
				cfg.Structured...,
			)...,
		)), nil

	case BackendZap:
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(stderr),
			zaplog.Level(cfg.Level),
		)

		return zaplog.Factory(zap.New(core)), nil

	case BackendLogrus:
		l := logrus.New()
		l.SetOutput(stderr)
		l.SetFormatter(&logrus.JSONFormatter{})
		l.SetLevel(logruslog.Level(cfg.Level))

		return logruslog.Factory(l), nil

	case BackendCharm:
		return charmlog.Factory(charm.NewWithOptions(stderr, charm.Options{
			Level:           charmlog.Level(cfg.Level),
			ReportTimestamp: true,
		})), nil

	default:
		return nil, ErrBackend.Wrap(unknown(string(b), Backends()))
	}
}
