package log_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/ardnew/scopelog/log"
)

func Example_basic() {
	logger := log.New(log.ConsoleFactory(), nil)
	_ = logger.Info("Starting worker cluster...")

	// Output:
	// INFO: Starting worker cluster... ({})
}

func Example_scope() {
	logger := log.New(log.ConsoleFactory(), nil)

	worker := logger.Scope(log.Scope{"workerId": "w1"})
	job := worker.Scope(log.Scope{"taskIdentifier": "t", "jobId": 84})

	_ = job.Info("Starting job...")
	fmt.Println(worker.CurrentScope())

	// Output:
	// INFO: Starting job... ({ jobId: 84, taskIdentifier: 't', workerId: 'w1' })
	// map[workerId:w1]
}

func Example_customTemplate() {
	logger := log.New(log.ConsoleFactory(
		log.WithTemplate("[%s] %s"),
		log.WithFormatParameters(func(level log.Level, msg string, scope log.Scope) []any {
			return []any{scope["workerId"], strings.ToLower(msg)}
		}),
	), log.Scope{"workerId": "w7"})

	_ = logger.Info("Job COMPLETE")

	// Output:
	// [w7] job complete
}

func Example_customFactory() {
	// A backend is any function binding a scope to a log function.
	factory := func(scope log.Scope) log.Func {
		prefix := fmt.Sprint(scope["component"])

		return func(level log.Level, msg string, meta log.Meta) error {
			_, err := fmt.Fprintf(os.Stdout, "%s %s %s %v\n", prefix, level, msg, meta)

			return err
		}
	}

	logger := log.New(factory, log.Scope{"component": "queue"})
	_ = logger.Warn("backlog", log.Meta{"depth": 12})

	// Output:
	// queue warning backlog map[depth:12]
}

func Example_debug() {
	logger := log.New(log.ConsoleFactory(log.WithDebug(true)), nil)
	_ = logger.Debug("cache miss")

	// Output:
	// DEBUG: cache miss ({})
}
