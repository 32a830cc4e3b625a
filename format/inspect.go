package format

import (
	"cmp"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultDepth is the nesting depth rendered by the %O verb.
	DefaultDepth = 2
	// VerboseDepth is the nesting depth rendered by the %o verb.
	VerboseDepth = 4
)

var identifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

var (
	timeType  = reflect.TypeFor[time.Time]()
	errorType = reflect.TypeFor[error]()
)

// Inspect renders v on a single line in a readable object notation.
//
// Containers nested deeper than depth are abbreviated as [Object] or [Array].
// A depth of zero renders only the top-level container's immediate members.
func Inspect(v any, depth int) string {
	var sb strings.Builder

	in := inspector{depth: depth, seen: map[uintptr]bool{}}
	in.value(&sb, reflect.ValueOf(v), 0)

	return sb.String()
}

type inspector struct {
	seen  map[uintptr]bool
	depth int
}

func (in inspector) value(sb *strings.Builder, v reflect.Value, level int) {
	if !v.IsValid() {
		sb.WriteString("null")

		return
	}

	if v.Type() == timeType && v.CanInterface() {
		sb.WriteString(v.Interface().(time.Time).Format(time.RFC3339Nano))

		return
	}

	if v.Kind() != reflect.Interface && v.Type().Implements(errorType) &&
		v.CanInterface() && !isNil(v) {
		sb.WriteString("[Error: ")
		sb.WriteString(v.Interface().(error).Error())
		sb.WriteByte(']')

		return
	}

	switch v.Kind() {
	case reflect.Bool:
		sb.WriteString(strconv.FormatBool(v.Bool()))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		sb.WriteString(strconv.FormatInt(v.Int(), 10))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		sb.WriteString(strconv.FormatUint(v.Uint(), 10))

	case reflect.Float32, reflect.Float64:
		sb.WriteString(formatFloat(v.Float()))

	case reflect.Complex64, reflect.Complex128:
		sb.WriteString(strconv.FormatComplex(v.Complex(), 'g', -1, 128))

	case reflect.String:
		sb.WriteString(quote(v.String()))

	case reflect.Interface:
		if v.IsNil() {
			sb.WriteString("null")

			return
		}

		in.value(sb, v.Elem(), level)

	case reflect.Pointer:
		if v.IsNil() {
			sb.WriteString("null")

			return
		}

		if in.enter(sb, v.Pointer()) {
			defer in.leave(v.Pointer())

			in.value(sb, v.Elem(), level)
		}

	case reflect.Map:
		in.mapping(sb, v, level)

	case reflect.Slice, reflect.Array:
		in.sequence(sb, v, level)

	case reflect.Struct:
		in.record(sb, v, level)

	case reflect.Func:
		if v.IsNil() {
			sb.WriteString("null")
		} else {
			sb.WriteString("[Function]")
		}

	default:
		fmt.Fprintf(sb, "[%s]", v.Type())
	}
}

// enter records ptr as being rendered and reports whether it was not already
// on the current path. A repeated pointer renders as [Circular].
func (in inspector) enter(sb *strings.Builder, ptr uintptr) bool {
	if in.seen[ptr] {
		sb.WriteString("[Circular]")

		return false
	}

	in.seen[ptr] = true

	return true
}

func (in inspector) leave(ptr uintptr) { delete(in.seen, ptr) }

func (in inspector) mapping(sb *strings.Builder, v reflect.Value, level int) {
	if v.Len() == 0 {
		sb.WriteString("{}")

		return
	}

	if level > in.depth {
		sb.WriteString("[Object]")

		return
	}

	if !in.enter(sb, v.Pointer()) {
		return
	}
	defer in.leave(v.Pointer())

	keys := v.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
	})

	sb.WriteString("{ ")

	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(key(fmt.Sprint(k.Interface())))
		sb.WriteString(": ")
		in.value(sb, v.MapIndex(k), level+1)
	}

	sb.WriteString(" }")
}

func (in inspector) sequence(sb *strings.Builder, v reflect.Value, level int) {
	if v.Len() == 0 {
		sb.WriteString("[]")

		return
	}

	if level > in.depth {
		sb.WriteString("[Array]")

		return
	}

	if v.Kind() == reflect.Slice {
		if !in.enter(sb, v.Pointer()) {
			return
		}
		defer in.leave(v.Pointer())
	}

	sb.WriteString("[ ")

	for i := range v.Len() {
		if i > 0 {
			sb.WriteString(", ")
		}

		in.value(sb, v.Index(i), level+1)
	}

	sb.WriteString(" ]")
}

func (in inspector) record(sb *strings.Builder, v reflect.Value, level int) {
	t := v.Type()

	name := t.Name()
	if level > in.depth {
		if name == "" {
			name = "Object"
		}

		sb.WriteString("[" + name + "]")

		return
	}

	if name != "" {
		sb.WriteString(name)
		sb.WriteByte(' ')
	}

	fields := 0

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		if fields == 0 {
			sb.WriteString("{ ")
		} else {
			sb.WriteString(", ")
		}

		fields++

		sb.WriteString(key(f.Name))
		sb.WriteString(": ")
		in.value(sb, v.Field(i), level+1)
	}

	if fields == 0 {
		sb.WriteString("{}")

		return
	}

	sb.WriteString(" }")
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Interface, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

func key(s string) string {
	if identifier.MatchString(s) {
		return s
	}

	return quote(s)
}

func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\t", `\t`)

	return "'" + r.Replace(s) + "'"
}
