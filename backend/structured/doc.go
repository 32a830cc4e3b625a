// Package structured adapts [log/slog] as a scopelog backend.
//
// [New] builds a [slog.Logger] writing JSON or key=value text, optionally
// styled for a terminal:
//
//	l := structured.New(os.Stderr,
//		structured.WithFormat(structured.FormatText),
//		structured.WithLevel(log.LevelDebug),
//	)
//
// [Factory] turns any slog.Logger into a [log.Factory]:
//
//	logger := log.New(structured.Factory(l), log.Scope{"service": "api"})
//	logger.Info("ready", log.Meta{"port": 8080})
//	// level=INFO msg=ready service=api port=8080
//
// Facade levels map to slog levels as error→ERROR, warning→WARN, info→INFO,
// and debug→DEBUG. Rendered records name the levels by their facade symbols.
package structured
