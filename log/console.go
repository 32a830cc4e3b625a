package log

import (
	"io"
	"os"
	"sync"

	"github.com/ardnew/scopelog/format"
)

// DefaultTemplate is the console template used when none is configured.
const DefaultTemplate = "%s: %s (%O)"

// FormatParameters extracts the values substituted into a console template.
type FormatParameters func(level Level, msg string, scope Scope) []any

// DefaultFormatParameters returns the upper-cased level, the message, and the
// scope, matching [DefaultTemplate].
func DefaultFormatParameters(level Level, msg string, scope Scope) []any {
	return []any{level.Upper(), msg, scope}
}

// ConsoleConfig groups the two formatting settings of [ConsoleFactory].
// Zero fields keep their defaults.
type ConsoleConfig struct {
	Format           string
	FormatParameters FormatParameters
}

// Console is a set of output channels, one per kind of message.
//
// The format string and arguments are in the template syntax of package
// [github.com/ardnew/scopelog/format].
type Console interface {
	Error(format string, args ...any) error
	Warn(format string, args ...any) error
	Info(format string, args ...any) error
	Log(format string, args ...any) error
}

// ConsoleFactory returns a [Factory] that writes formatted lines to a
// [Console], which is [StdConsole] unless configured with [WithConsole].
//
// Messages are routed by level: error to the error channel, warning to the
// warning channel, info to the info channel, and debug to the generic log
// channel. Debug messages are dropped unless [DebugEnabled] reports true, or
// [WithDebug] pinned the switch on. Per-call metadata is not written; only the
// configured format parameters are.
func ConsoleFactory(opts ...ConsoleOption) Factory {
	cfg := makeConsoleConfig(opts...)

	return func(scope Scope) Func {
		return func(level Level, msg string, _ Meta) error {
			if level == LevelDebug && !cfg.debug() {
				return nil
			}

			args := cfg.params(level, msg, scope)

			switch level {
			case LevelError:
				return cfg.console.Error(cfg.template, args...)
			case LevelWarning:
				return cfg.console.Warn(cfg.template, args...)
			case LevelInfo:
				return cfg.console.Info(cfg.template, args...)
			default:
				return cfg.console.Log(cfg.template, args...)
			}
		}
	}
}

// StdConsole returns a [Console] writing the error and warning channels to
// [os.Stderr] and the info and log channels to [os.Stdout].
func StdConsole() Console { return NewConsole(os.Stdout, os.Stderr) }

// NewConsole returns a [Console] writing the error and warning channels to
// stderr and the info and log channels to stdout, one line per message.
// A nil writer discards its channels.
func NewConsole(stdout, stderr io.Writer) Console {
	if stdout == nil {
		stdout = io.Discard
	}

	if stderr == nil {
		stderr = io.Discard
	}

	return &stdConsole{
		mu:     &sync.Mutex{},
		stdout: stdout,
		stderr: stderr,
	}
}

type stdConsole struct {
	mu     *sync.Mutex
	stdout io.Writer
	stderr io.Writer
}

func (c *stdConsole) Error(f string, args ...any) error {
	return c.write(c.stderr, f, args)
}

func (c *stdConsole) Warn(f string, args ...any) error {
	return c.write(c.stderr, f, args)
}

func (c *stdConsole) Info(f string, args ...any) error {
	return c.write(c.stdout, f, args)
}

func (c *stdConsole) Log(f string, args ...any) error {
	return c.write(c.stdout, f, args)
}

func (c *stdConsole) write(w io.Writer, f string, args []any) error {
	line := format.Sprintf(f, args...) + "\n"

	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := io.WriteString(w, line)

	return err
}
