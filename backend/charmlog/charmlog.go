// Package charmlog adapts [github.com/charmbracelet/log] as a scopelog
// backend.
//
//	l := charm.NewWithOptions(os.Stderr, charm.Options{ReportTimestamp: true})
//	logger := log.New(charmlog.Factory(l), log.Scope{"service": "api"})
//
// Each bound scope becomes a child logger created with With, carrying the
// scope entries as key/value pairs in key order.
package charmlog

import (
	"io"
	"maps"
	"slices"

	charm "github.com/charmbracelet/log"

	"github.com/ardnew/scopelog/log"
)

// Factory returns a [log.Factory] logging through l.
// A nil logger discards everything.
func Factory(l *charm.Logger) log.Factory {
	if l == nil {
		l = charm.New(io.Discard)
	}

	return func(scope log.Scope) log.Func {
		child := l
		if len(scope) > 0 {
			child = l.With(KeyVals(scope)...)
		}

		return func(level log.Level, msg string, meta log.Meta) error {
			child.Log(Level(level), msg, KeyVals(meta)...)

			return nil
		}
	}
}

// Level returns the charm level of a facade level.
// Unknown levels are treated as [charm.InfoLevel].
func Level(level log.Level) charm.Level {
	switch level {
	case log.LevelError:
		return charm.ErrorLevel
	case log.LevelWarning:
		return charm.WarnLevel
	case log.LevelDebug:
		return charm.DebugLevel
	default:
		return charm.InfoLevel
	}
}

// KeyVals flattens a map into alternating keys and values sorted by key.
func KeyVals[M ~map[string]any](m M) []any {
	kv := make([]any, 0, 2*len(m))

	for _, k := range slices.Sorted(maps.Keys(m)) {
		kv = append(kv, k, m[k])
	}

	return kv
}
