// Package logruslog adapts [github.com/sirupsen/logrus] as a scopelog backend.
//
//	logger := log.New(logruslog.Factory(logrus.StandardLogger()), nil)
//
// Each bound scope becomes an entry created with WithFields, and per-call
// metadata is added to a copy of that entry.
package logruslog

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/ardnew/scopelog/log"
)

// Factory returns a [log.Factory] logging through l.
// A nil logger discards everything.
//
// Hook and formatter failures are reported by logrus to its own error output
// and are not returned.
func Factory(l logrus.FieldLogger) log.Factory {
	if l == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		l = discard
	}

	return func(scope log.Scope) log.Func {
		entry := l.WithFields(logrus.Fields(scope))

		return func(level log.Level, msg string, meta log.Meta) error {
			e := entry
			if len(meta) > 0 {
				e = e.WithFields(logrus.Fields(meta))
			}

			e.Log(Level(level), msg)

			return nil
		}
	}
}

// Level returns the logrus level of a facade level.
// Unknown levels are treated as [logrus.InfoLevel].
func Level(level log.Level) logrus.Level {
	switch level {
	case log.LevelError:
		return logrus.ErrorLevel
	case log.LevelWarning:
		return logrus.WarnLevel
	case log.LevelDebug:
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}
