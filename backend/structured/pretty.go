package structured

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/scopelog/format"
)

// palette holds the styles used by the pretty handlers. Styles are bound to
// the renderer of the output writer, so writers that are not terminals
// receive plain text.
type palette struct {
	key      lipgloss.Style
	str      lipgloss.Style
	num      lipgloss.Style
	yes      lipgloss.Style
	no       lipgloss.Style
	duration lipgloss.Style
	time     lipgloss.Style
	null     lipgloss.Style
	err      lipgloss.Style
	warn     lipgloss.Style
	info     lipgloss.Style
	debug    lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return palette{
		key:      fg("8"),
		str:      fg("6"),
		num:      fg("3"),
		yes:      fg("2"),
		no:       fg("1"),
		duration: fg("5"),
		time:     fg("4"),
		null:     fg("8"),
		err:      fg("1").Bold(true),
		warn:     fg("3").Bold(true),
		info:     fg("2"),
		debug:    fg("4"),
	}
}

func (p palette) level(level slog.Level) lipgloss.Style {
	switch {
	case level >= slog.LevelError:
		return p.err
	case level >= slog.LevelWarn:
		return p.warn
	case level >= slog.LevelInfo:
		return p.info
	default:
		return p.debug
	}
}

// prettyHandler implements a colorized slog.Handler writing either one
// key=value line or one indented JSON-like object per record.
//
// Attributes added with WithAttrs are kept, qualified by the groups open at
// the time they were added.
type prettyHandler struct {
	cfg    config
	style  palette
	mu     *sync.Mutex
	attrs  []slog.Attr
	groups []string
	json   bool
}

func newPrettyTextHandler(cfg config) *prettyHandler {
	return &prettyHandler{
		cfg:   cfg,
		style: newPalette(cfg.output),
		mu:    &sync.Mutex{},
	}
}

func newPrettyJSONHandler(cfg config) *prettyHandler {
	h := newPrettyTextHandler(cfg)
	h.json = true

	return h
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= SlogLevel(h.cfg.level)
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]field, 0, 4+len(h.attrs)+r.NumAttrs())

	if !r.Time.IsZero() {
		if ts := h.cfg.formatTime(r.Time); ts != "" {
			fields = append(fields, field{
				key: slog.TimeKey,
				val: h.style.time.Render(ts),
			})
		}
	}

	fields = append(fields, field{
		key: slog.LevelKey,
		val: h.style.level(r.Level).Render(levelName(r.Level)),
	})

	if h.cfg.caller {
		if src := r.Source(); src != nil {
			fields = append(fields, field{
				key: slog.SourceKey,
				val: h.style.str.Render(fmt.Sprintf("%s:%d", src.File, src.Line)),
			})
		}
	}

	fields = append(fields, field{
		key: slog.MessageKey,
		val: h.style.str.Render(r.Message),
	})

	for _, a := range h.attrs {
		fields = h.appendAttr(fields, "", a)
	}

	prefix := qualify(h.groups)

	r.Attrs(func(a slog.Attr) bool {
		fields = h.appendAttr(fields, prefix, a)

		return true
	})

	buf := new(bytes.Buffer)
	if h.json {
		writeJSON(buf, h.style, fields)
	} else {
		writeText(buf, h.style, fields)
	}

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.cfg.output.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	c := h.clone()
	prefix := qualify(h.groups)

	for _, a := range attrs {
		a.Key = prefix + a.Key
		c.attrs = append(c.attrs, a)
	}

	return c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := h.clone()
	c.groups = append(c.groups, name)

	return c
}

func (h *prettyHandler) clone() *prettyHandler {
	c := *h
	c.attrs = h.attrs[:len(h.attrs):len(h.attrs)]
	c.groups = h.groups[:len(h.groups):len(h.groups)]

	return &c
}

// field is one rendered key/value pair.
type field struct {
	key string
	val string
}

func qualify(groups []string) string {
	if len(groups) == 0 {
		return ""
	}

	return strings.Join(groups, ".") + "."
}

// appendAttr renders a, flattening groups into dotted keys.
func (h *prettyHandler) appendAttr(
	fields []field,
	prefix string,
	a slog.Attr,
) []field {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		if len(group) == 0 {
			return fields
		}

		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, g := range group {
			fields = h.appendAttr(fields, prefix, g)
		}

		return fields
	}

	if a.Equal(slog.Attr{}) {
		return fields
	}

	return append(fields, field{key: prefix + a.Key, val: h.value(a.Value)})
}

func (h *prettyHandler) value(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return h.style.str.Render(v.String())

	case slog.KindInt64:
		return h.style.num.Render(strconv.FormatInt(v.Int64(), 10))

	case slog.KindUint64:
		return h.style.num.Render(strconv.FormatUint(v.Uint64(), 10))

	case slog.KindFloat64:
		return h.style.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64))

	case slog.KindBool:
		if v.Bool() {
			return h.style.yes.Render("true")
		}

		return h.style.no.Render("false")

	case slog.KindDuration:
		return h.style.duration.Render(v.Duration().String())

	case slog.KindTime:
		return h.style.time.Render(v.Time().Format(time.RFC3339Nano))

	default:
		switch val := v.Any().(type) {
		case nil:
			return h.style.null.Render("null")

		case error:
			if nilPointer(val) {
				return h.style.null.Render("null")
			}

			return h.style.no.Render(val.Error())

		case fmt.Stringer:
			if nilPointer(val) {
				return h.style.null.Render("null")
			}

			return h.style.str.Render(val.String())

		default:
			return h.style.str.Render(format.Inspect(val, format.DefaultDepth))
		}
	}
}

func writeText(buf *bytes.Buffer, style palette, fields []field) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(' ')
		}

		buf.WriteString(style.key.Render(f.key))
		buf.WriteByte('=')
		buf.WriteString(f.val)
	}
}

func writeJSON(buf *bytes.Buffer, style palette, fields []field) {
	buf.WriteString("{\n")

	for i, f := range fields {
		if i > 0 {
			buf.WriteString(",\n")
		}

		buf.WriteString("  ")
		buf.WriteString(style.key.Render(f.key))
		buf.WriteString(": ")
		buf.WriteString(f.val)
	}

	buf.WriteString("\n}")
}

// nilPointer reports whether v is a typed nil, whose methods may not be
// callable.
func nilPointer(v any) bool {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
