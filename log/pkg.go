package log

// defaultLog writes to the standard console with an empty scope.
var defaultLog = New(ConsoleFactory(), nil)

// Default returns the process-wide [Logger] built at package initialization
// from [ConsoleFactory] with an empty scope.
func Default() Logger { return defaultLog }

// Error logs a message at [LevelError] using the default logger.
func Error(msg string, meta ...Meta) error {
	return defaultLog.Error(msg, meta...)
}

// Warn logs a message at [LevelWarning] using the default logger.
func Warn(msg string, meta ...Meta) error {
	return defaultLog.Warn(msg, meta...)
}

// Info logs a message at [LevelInfo] using the default logger.
func Info(msg string, meta ...Meta) error {
	return defaultLog.Info(msg, meta...)
}

// Debug logs a message at [LevelDebug] using the default logger.
func Debug(msg string, meta ...Meta) error {
	return defaultLog.Debug(msg, meta...)
}

// Scoped returns a new [Logger] derived from the default logger with the
// given scope.
func Scoped(scope Scope) Logger { return defaultLog.Scope(scope) }

// CurrentScope returns a copy of the default logger's scope.
func CurrentScope() Scope { return defaultLog.CurrentScope() }
