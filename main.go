package main

import (
	"context"
	"errors"
	"maps"
	"os"

	"github.com/ardnew/scopelog/cli"
	"github.com/ardnew/scopelog/cli/cmd"
	"github.com/ardnew/scopelog/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		scope := log.Scope{"error": err.Error()}

		var cerr *cmd.Error
		if errors.As(err, &cerr) {
			maps.Copy(scope, cerr.Scope())
		}

		_ = log.Scoped(scope).Error("run failed")

		os.Exit(1)
	}
}
