package log

// ConsoleOption applies a configuration option to the console factory.
type ConsoleOption func(consoleConfig) consoleConfig

type consoleConfig struct {
	template string
	params   FormatParameters
	console  Console
	debug    func() bool
}

// makeConsoleConfig creates a consoleConfig with defaults applied, overridden
// by any provided options.
func makeConsoleConfig(opts ...ConsoleOption) consoleConfig {
	cfg := consoleConfig{
		template: DefaultTemplate,
		params:   DefaultFormatParameters,
		debug:    DebugEnabled,
	}

	for _, opt := range opts {
		cfg = opt(cfg)
	}

	if cfg.console == nil {
		cfg.console = StdConsole()
	}

	return cfg
}

// WithTemplate sets the console template.
// An empty template restores [DefaultTemplate].
func WithTemplate(format string) ConsoleOption {
	return func(c consoleConfig) consoleConfig {
		if format == "" {
			format = DefaultTemplate
		}

		c.template = format

		return c
	}
}

// WithFormatParameters sets the function that extracts template values.
// A nil function restores [DefaultFormatParameters].
func WithFormatParameters(fn FormatParameters) ConsoleOption {
	return func(c consoleConfig) consoleConfig {
		if fn == nil {
			fn = DefaultFormatParameters
		}

		c.params = fn

		return c
	}
}

// WithConfig applies both fields of cfg. Zero fields keep their defaults.
func WithConfig(cfg ConsoleConfig) ConsoleOption {
	return func(c consoleConfig) consoleConfig {
		return WithFormatParameters(cfg.FormatParameters)(
			WithTemplate(cfg.Format)(c),
		)
	}
}

// WithConsole sets the output channels. A nil console restores
// [StdConsole].
func WithConsole(console Console) ConsoleOption {
	return func(c consoleConfig) consoleConfig {
		c.console = console

		return c
	}
}

// WithDebug pins the debug switch, ignoring the environment.
func WithDebug(enable bool) ConsoleOption {
	return func(c consoleConfig) consoleConfig {
		c.debug = func() bool { return enable }

		return c
	}
}
