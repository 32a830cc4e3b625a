// Package ptermlog provides a [log.Console] printing through
// [github.com/pterm/pterm] prefix printers.
//
//	logger := log.New(ptermlog.Factory(), nil)
//
// The error and warning channels use pterm's Error and Warning printers, the
// info channel its Info printer, and the log channel a copy of its Debug
// printer that prints regardless of pterm's debug switch. Debug gating stays
// with [log.ConsoleFactory].
package ptermlog

import (
	"io"
	"os"

	"github.com/pterm/pterm"

	"github.com/ardnew/scopelog/format"
	"github.com/ardnew/scopelog/log"
)

// Template is the console template used by [Factory]. The printer prefix
// names the level, so the template leaves it out.
const Template = "%s (%O)"

// FormatParameters returns the message and the scope, matching [Template].
func FormatParameters(_ log.Level, msg string, scope log.Scope) []any {
	return []any{msg, scope}
}

// Factory returns a [log.ConsoleFactory] printing through [Console] with
// [Template]. Options are applied after those defaults.
func Factory(opts ...log.ConsoleOption) log.Factory {
	return log.ConsoleFactory(append([]log.ConsoleOption{
		log.WithConsole(Console()),
		log.WithTemplate(Template),
		log.WithFormatParameters(FormatParameters),
	}, opts...)...)
}

// Console returns a pterm [log.Console] writing the error and warning
// channels to [os.Stderr] and the info and log channels to [os.Stdout].
func Console() log.Console { return NewConsole(os.Stdout, os.Stderr) }

// NewConsole returns a pterm [log.Console] writing the error and warning
// channels to stderr and the info and log channels to stdout.
// A nil writer discards its channels.
func NewConsole(stdout, stderr io.Writer) log.Console {
	if stdout == nil {
		stdout = io.Discard
	}

	if stderr == nil {
		stderr = io.Discard
	}

	debug := pterm.Debug
	debug.Debugger = false

	return console{
		err:    pterm.Error,
		warn:   pterm.Warning,
		info:   pterm.Info,
		log:    debug,
		stdout: stdout,
		stderr: stderr,
	}
}

type console struct {
	err, warn, info, log pterm.PrefixPrinter
	stdout, stderr       io.Writer
}

func (c console) Error(f string, args ...any) error {
	return printLine(c.err, c.stderr, f, args)
}

func (c console) Warn(f string, args ...any) error {
	return printLine(c.warn, c.stderr, f, args)
}

func (c console) Info(f string, args ...any) error {
	return printLine(c.info, c.stdout, f, args)
}

func (c console) Log(f string, args ...any) error {
	return printLine(c.log, c.stdout, f, args)
}

// printLine writes one formatted line and reports the first write failure,
// which pterm itself discards.
func printLine(p pterm.PrefixPrinter, w io.Writer, f string, args []any) error {
	ew := &errWriter{w: w}
	p.WithWriter(ew).Println(format.Sprintf(f, args...))

	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}

	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}

	return n, err
}
