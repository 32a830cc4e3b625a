// Package zaplog adapts [go.uber.org/zap] as a scopelog backend.
//
//	z, _ := zap.NewProduction(zap.AddCaller())
//	logger := log.New(zaplog.Factory(z), log.Scope{"service": "api"})
//
// Each bound scope becomes a child logger created with [zap.Logger.With].
// Reported callers point at the code calling the facade's leveled methods.
package zaplog

import (
	"maps"
	"slices"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ardnew/scopelog/log"
)

// callerSkip steps over the facade frames between the caller and
// [zap.Logger.Check]: the bound function, log.Logger.Log, and the leveled
// method.
const callerSkip = 3

// Factory returns a [log.Factory] logging through l.
// A nil logger discards everything.
//
// Write failures are reported by zap to the logger's error output and are
// not returned.
func Factory(l *zap.Logger) log.Factory {
	if l == nil {
		l = zap.NewNop()
	}

	l = l.WithOptions(zap.AddCallerSkip(callerSkip))

	return func(scope log.Scope) log.Func {
		child := l
		if len(scope) > 0 {
			child = l.With(Fields(scope)...)
		}

		return func(level log.Level, msg string, meta log.Meta) error {
			if ce := child.Check(Level(level), msg); ce != nil {
				ce.Write(Fields(meta)...)
			}

			return nil
		}
	}
}

// Level returns the zap level of a facade level.
// Unknown levels are treated as [zapcore.InfoLevel].
func Level(level log.Level) zapcore.Level {
	switch level {
	case log.LevelError:
		return zapcore.ErrorLevel
	case log.LevelWarning:
		return zapcore.WarnLevel
	case log.LevelDebug:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

// Fields converts a map to zap fields sorted by key.
func Fields[M ~map[string]any](m M) []zap.Field {
	fields := make([]zap.Field, 0, len(m))

	for _, k := range slices.Sorted(maps.Keys(m)) {
		fields = append(fields, zap.Any(k, m[k]))
	}

	return fields
}
