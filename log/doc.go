// Package log provides a pluggable logging facade with scoped loggers.
//
// Library code logs through a [Logger]. The application decides where the
// messages go by choosing the [Factory] the Logger is built from, so call
// sites never depend on a particular backend.
//
// # Basic Usage
//
//	logger := log.New(log.ConsoleFactory(), nil)
//	logger.Info("Starting worker cluster...")
//	// INFO: Starting worker cluster... ({})
//
// The package-level functions use [Default], a console logger with an empty
// scope:
//
//	log.Warn("queue is backing up", log.Meta{"depth": 912})
//
// # Scopes
//
// [Logger.Scope] derives a new Logger whose scope is the current scope
// overlaid with the given entries. The original is never modified:
//
//	worker := logger.Scope(log.Scope{"workerId": "w1"})
//	job := worker.Scope(log.Scope{"taskIdentifier": "t", "jobId": 84})
//	job.Info("Starting job...")
//	// scope: {workerId: w1, taskIdentifier: t, jobId: 84}
//
// Each derived Logger invokes the factory again, which lets a backend open a
// child context of its own structured logger.
//
// # Backends
//
// A backend is a [Factory]: given a scope it returns the [Func] that receives
// (level, message, metadata). [ConsoleFactory] is the built-in backend;
// [Discard] drops everything and [Tee] fans out to several backends. Adapters
// for slog, zap, logrus, charm and pterm live under the backend directory of
// this module.
//
// # Levels
//
// There are four levels: [LevelError], [LevelWarning], [LevelInfo] and
// [LevelDebug]. The method for warnings is Warn, but the level it reports is
// "warning". Levels have no ordering; filtering is up to the backend.
//
// # Debug Output
//
// The console backend drops debug messages unless the environment variable
// named by [DebugEnv] is set. Other backends ignore that variable.
package log
