package structured

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"reflect"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/ardnew/scopelog/log"
)

// New creates a [slog.Logger] that writes to w.
// The default configuration is [DefaultFormat], [DefaultLevel],
// [DefaultTimeLayout], [DefaultPretty], and caller info disabled.
//
// Optional configuration can be applied using functional options like
// [WithFormat], [WithLevel], [WithTimeLayout], and [WithCaller].
func New(w io.Writer, opts ...Option) *slog.Logger {
	return slog.New(makeConfig(w, opts...).handler())
}

// Factory returns a [log.Factory] logging through l.
//
// Each bound scope becomes a child handler carrying the scope entries as
// attributes, in key order. Per-call metadata is added to the record, and the
// handler's error is returned to the caller. A nil logger discards everything.
func Factory(l *slog.Logger) log.Factory {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}

	return func(scope log.Scope) log.Func {
		h := l.Handler()
		if len(scope) > 0 {
			h = h.WithAttrs(attrs(scope))
		}

		return func(level log.Level, msg string, meta log.Meta) error {
			ctx := context.Background()
			lvl := SlogLevel(level)

			if !h.Enabled(ctx, lvl) {
				return nil
			}

			r := slog.NewRecord(time.Now(), lvl, msg, callerPC())
			r.AddAttrs(attrs(meta)...)

			return h.Handle(ctx, r)
		}
	}
}

// facadePrefix prefixes the function names of the facade package, including
// its closures such as those built by [log.Tee].
var facadePrefix = reflect.TypeFor[log.Logger]().PkgPath() + "."

// callerPC returns the program counter of the first frame outside the facade
// package, skipping the bound log function that calls it. It returns 0 when
// no such frame is found within the stack depth searched.
func callerPC() uintptr {
	var pcs [16]uintptr
	// 0=runtime.Callers, 1=callerPC, 2=the bound log function
	n := runtime.Callers(3, pcs[:])

	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, facadePrefix) {
			// Frames report the call instruction; records expect the return
			// address that runtime.Callers produced.
			return frame.PC + 1
		}

		if !more {
			return 0
		}
	}
}

// attrs converts a map to attributes sorted by key.
func attrs[M ~map[string]any](m M) []slog.Attr {
	out := make([]slog.Attr, 0, len(m))

	for _, k := range slices.Sorted(maps.Keys(m)) {
		out = append(out, slog.Any(k, m[k]))
	}

	return out
}
