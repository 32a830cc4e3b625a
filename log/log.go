package log

import "maps"

// Scope is ambient context attached to a [Logger] and inherited by every
// Logger derived from it. All keys are optional.
type Scope map[string]any

// Meta is structured data attached to a single log call.
type Meta map[string]any

// Func receives one log message. It is the terminal point of the facade:
// a Func decides whether and where the message is written.
//
// Meta is nil when the caller attached none. Any error is returned unchanged
// to the caller of the logging method.
type Func func(level Level, msg string, meta Meta) error

// Factory binds a scope and returns the [Func] that logs within it.
//
// A Factory is invoked once per [Logger], including each Logger produced by
// [Logger.Scope], so it may open a child context of an underlying structured
// logger. A Factory that cannot bind the scope should panic; the panic reaches
// the code constructing the Logger.
type Factory func(scope Scope) Func

// Logger emits leveled messages through a bound [Func].
//
// A Logger is immutable. Deriving a Logger with additional scope never
// modifies the original, so a Logger may be shared freely; concurrent use is
// as safe as its bound Func.
//
// The zero value discards all messages.
type Logger struct {
	factory Factory
	scope   Scope
	log     Func
}

// New creates a [Logger] with the given initial scope.
//
// The factory is invoked exactly once, synchronously, with a copy of scope.
// A nil scope is treated as empty. A nil factory yields a Logger that discards
// all messages.
func New(factory Factory, scope Scope) Logger {
	snapshot := merge(scope)

	l := Logger{
		factory: factory,
		scope:   snapshot,
	}

	if factory != nil {
		l.log = factory(merge(snapshot))
	}

	return l
}

// Scope returns a new [Logger] sharing this Logger's factory, whose scope is
// the current scope overlaid with additional.
//
// The merge is shallow: each key in additional replaces the key's current
// value, including nested maps, and all other keys carry over. The factory is
// invoked again with the merged scope.
func (l Logger) Scope(additional Scope) Logger {
	return New(l.factory, merge(l.scope, additional))
}

// CurrentScope returns a copy of the Logger's scope.
func (l Logger) CurrentScope() Scope { return merge(l.scope) }

// Error logs a message at [LevelError].
func (l Logger) Error(msg string, meta ...Meta) error {
	return l.Log(LevelError, msg, meta...)
}

// Warn logs a message at [LevelWarning].
func (l Logger) Warn(msg string, meta ...Meta) error {
	return l.Log(LevelWarning, msg, meta...)
}

// Info logs a message at [LevelInfo].
func (l Logger) Info(msg string, meta ...Meta) error {
	return l.Log(LevelInfo, msg, meta...)
}

// Debug logs a message at [LevelDebug].
func (l Logger) Debug(msg string, meta ...Meta) error {
	return l.Log(LevelDebug, msg, meta...)
}

// Log passes the message to the bound [Func] and returns its error.
//
// Multiple meta values are merged left to right; with none, the Func receives
// nil.
func (l Logger) Log(level Level, msg string, meta ...Meta) error {
	// Silently return for zero value loggers
	if l.log == nil {
		return nil
	}

	var m Meta

	switch len(meta) {
	case 0:
	case 1:
		m = meta[0]
	default:
		m = merge(meta...)
	}

	return l.log(level, msg, m)
}

// merge returns a new map holding the entries of each map in order, later
// maps winning on conflicting keys. The result is never nil.
func merge[M ~map[string]any](m ...M) M {
	size := 0
	for _, e := range m {
		size += len(e)
	}

	out := make(M, size)
	for _, e := range m {
		maps.Copy(out, e)
	}

	return out
}
