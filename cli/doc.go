// Package cli contains the command line interface for scopelog.
//
// # Usage
//
// The default command, emit, logs one message through a backend:
//
//	scopelog --scope workerId=w1 --scope jobId=84 Starting job...
//	scopelog emit -l warning -b zap --meta attempt=3 retrying
//	scopelog emit -b console --template '[%s] %s' \
//	    --param scope.workerId --param message done
//
// The levels and version commands print the level symbols and the program
// version.
//
// # Configuration
//
// Flags may also be set in a YAML file in the user configuration directory
// (~/.config/scopelog/config.yaml on Linux):
//
//	log:
//	  level: debug
//	  format: text
//	backend: zap
//
// Command-line flags override config file values.
//
// # Logging Options
//
// The log flags configure the slog backend and the command's own
// diagnostics, which are always written to stderr:
//
//   - --log-level: Set minimum log level (debug, info, warning, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize and indent output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o scopelog .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/scopelog/pprof)
package cli
