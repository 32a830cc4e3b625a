package log

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Level identifies the intent of a log message.
//
// Levels carry no ordering. Deciding which levels to keep is left entirely to
// the [Func] that receives them.
type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
	LevelDebug   Level = "debug"
)

// ErrUnknownLevel is returned by [ParseLevel] for strings that do not name
// a level.
var ErrUnknownLevel = errors.New("unknown log level")

// Levels returns an iterator over all defined log levels.
func Levels() iter.Seq[Level] {
	return func(yield func(Level) bool) {
		for _, level := range []Level{
			LevelError,
			LevelWarning,
			LevelInfo,
			LevelDebug,
		} {
			if !yield(level) {
				return
			}
		}
	}
}

// ParseLevel parses a string representation of a log level.
// Matching ignores case and surrounding whitespace; "warn" is accepted as an
// alias for [LevelWarning].
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LevelError, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// String returns the level symbol.
func (l Level) String() string { return string(l) }

// Upper returns the level symbol in upper case, e.g. "WARNING".
func (l Level) Upper() string { return strings.ToUpper(string(l)) }

// Valid reports whether l is one of the four defined levels.
func (l Level) Valid() bool {
	for level := range Levels() {
		if l == level {
			return true
		}
	}

	return false
}
