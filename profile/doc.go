// Package profile provides optional runtime profiling for the scopelog
// command.
//
// Profiling is compiled in only with the pprof build tag:
//
//	go build -tags pprof -o scopelog .
//
// Without the tag, [Profiler.Start] always returns a no-op and [Modes] is
// empty. With it, the package wraps [github.com/pkg/profile] and registers
// the [net/http/pprof] handlers.
//
//	s := profile.Profiler{Mode: "cpu", Path: "/tmp/profiles"}.Start()
//	defer s.Stop()
//
// The command exposes the same settings as flags:
//
//	scopelog --pprof-mode=heap --pprof-dir=./profiles emit "hello"
//
// Analyze the written profile with go tool pprof:
//
//	go tool pprof -http=: ./profiles/mem.pprof
package profile
