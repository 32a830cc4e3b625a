// Package format implements the printf-style template substitution used by the
// console backend of package [github.com/ardnew/scopelog/log].
//
// The verbs follow the console conventions common to scripting runtimes rather
// than those of package fmt:
//
//	%s  string
//	%d  number
//	%i  integer (truncated toward zero)
//	%f  floating point number
//	%j  JSON
//	%o  object, verbose inspection (depth [VerboseDepth])
//	%O  object, inspection (depth [DefaultDepth])
//	%c  consumes an argument and prints nothing
//	%%  literal percent sign
//
// A placeholder with no remaining argument, or an unrecognized verb, is copied
// to the output unchanged. Arguments left over after the template is consumed
// are appended, each preceded by a single space. Without any arguments the
// template is returned as is, so "%%" stays doubled.
//
// Nil pointers and interfaces format as null, even when their type
// implements error or fmt.Stringer.
package format

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Sprintf substitutes args into format and returns the resulting string.
func Sprintf(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}

	var sb strings.Builder

	sb.Grow(len(format))

	next := 0

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i+1 == len(format) {
			sb.WriteByte(c)

			continue
		}

		verb := format[i+1]

		switch {
		case verb == '%':
			sb.WriteByte('%')

			i++

			continue

		case !isVerb(verb):
			sb.WriteByte(c)

			continue

		case next == len(args):
			sb.WriteByte(c)
			sb.WriteByte(verb)

			i++

			continue
		}

		arg := args[next]
		next++
		i++

		switch verb {
		case 's':
			sb.WriteString(str(arg))
		case 'd':
			sb.WriteString(number(arg))
		case 'i':
			sb.WriteString(integer(arg))
		case 'f':
			sb.WriteString(float(arg))
		case 'j':
			sb.WriteString(jsonString(arg))
		case 'o':
			sb.WriteString(Inspect(arg, VerboseDepth))
		case 'O':
			sb.WriteString(Inspect(arg, DefaultDepth))
		case 'c':
			// styling directives have no terminal rendering
		}
	}

	for _, arg := range args[next:] {
		sb.WriteByte(' ')

		if s, ok := arg.(string); ok {
			sb.WriteString(s)
		} else {
			sb.WriteString(Inspect(arg, DefaultDepth))
		}
	}

	return sb.String()
}

func isVerb(c byte) bool {
	return strings.IndexByte("sdifjoOc", c) >= 0
}

func str(arg any) string {
	switch v := arg.(type) {
	case nil:
		return "null"
	case string:
		return v
	case error, fmt.Stringer:
		if isNil(reflect.ValueOf(v)) {
			return "null"
		}

		if err, ok := v.(error); ok {
			return err.Error()
		}

		return v.(fmt.Stringer).String()
	}

	rv := reflect.ValueOf(arg)

	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return formatFloat(rv.Float())
	case reflect.String:
		return rv.String()
	default:
		return Inspect(arg, 0)
	}
}

// toFloat converts arg the way a numeric coercion would: numbers as is,
// booleans as 0 or 1, nil as 0, numeric strings parsed, anything else NaN.
func toFloat(arg any) float64 {
	if arg == nil {
		return 0
	}

	rv := reflect.ValueOf(arg)

	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return 1
		}

		return 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.String:
		s := strings.TrimSpace(rv.String())
		if s == "" {
			return 0
		}

		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}

		return f
	default:
		return math.NaN()
	}
}

func number(arg any) string {
	rv := reflect.ValueOf(arg)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	}

	return formatFloat(toFloat(arg))
}

func integer(arg any) string {
	rv := reflect.ValueOf(arg)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Bool, reflect.Invalid:
		return "NaN"
	case reflect.String:
		return leadingInteger(rv.String())
	}

	f := toFloat(arg)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "NaN"
	}

	return formatFloat(math.Trunc(f))
}

// leadingInteger parses the optionally signed run of decimal digits at the
// start of s, ignoring leading whitespace and any trailing garbage.
func leadingInteger(s string) string {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}

	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == start {
		return "NaN"
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return "NaN"
	}

	return strconv.FormatInt(n, 10)
}

func float(arg any) string {
	switch reflect.ValueOf(arg).Kind() {
	case reflect.Bool, reflect.Invalid:
		return "NaN"
	}

	return formatFloat(toFloat(arg))
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0 && math.Signbit(f):
		return "-0"
	case math.Abs(f) >= 1e21:
		return strconv.FormatFloat(f, 'g', -1, 64)
	default:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}

func jsonString(arg any) string {
	buf, err := json.Marshal(arg)
	if err != nil {
		var unsupported *json.UnsupportedValueError
		if errors.As(err, &unsupported) &&
			strings.Contains(unsupported.Str, "cycle") {
			return "[Circular]"
		}

		return "undefined"
	}

	return string(buf)
}
