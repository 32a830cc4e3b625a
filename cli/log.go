package cli

import (
	"context"
	"slices"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/scopelog/backend/structured"
	"github.com/ardnew/scopelog/cli/cmd"
	"github.com/ardnew/scopelog/log"
)

// logConfig configures the structured backend. It sets the threshold of the
// slog backend and the format of the command's own diagnostics.
type logConfig struct {
	Level      string `default:"info"    enum:"debug,info,warning,warn,error" help:"Set log level."`
	Format     string `default:"json"    enum:"${logFormatEnum}"              help:"Set log format."`
	TimeLayout string `default:"RFC3339"                                      help:"Set timestamp format (or none)."`
	Caller     bool   `default:"false"                                        help:"Include caller information."       negatable:""`
	Pretty     bool   `default:"true"                                         help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logFormatEnum": strings.Join(slices.Collect(structured.Formats()), ","),
	}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

// level returns the parsed level; the enum tag rejects anything else.
func (f *logConfig) level() log.Level {
	level, err := log.ParseLevel(f.Level)
	if err != nil {
		return structured.DefaultLevel
	}

	return level
}

func (f *logConfig) options() []structured.Option {
	return []structured.Option{
		structured.WithLevel(f.level()),
		structured.WithFormat(structured.ParseFormat(f.Format)),
		structured.WithTimeLayout(f.TimeLayout),
		structured.WithCaller(f.Caller),
		structured.WithPretty(f.Pretty),
	}
}

func (f *logConfig) backend() cmd.BackendConfig {
	return cmd.BackendConfig{
		Level:      f.level(),
		Structured: f.options(),
	}
}

func (f *logConfig) start(ctx context.Context) {
	_ = log.FromContext(ctx).Debug("logger initialized", log.Meta{
		"level":  string(f.level()),
		"format": f.Format,
		"time":   f.TimeLayout,
		"caller": f.Caller,
		"pretty": f.Pretty,
	})
}
