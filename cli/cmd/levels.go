package cmd

import (
	"context"
	"fmt"

	"github.com/ardnew/scopelog/log"
	"github.com/ardnew/scopelog/pkg"
)

// Levels prints the level symbols, most severe first.
type Levels struct{}

// Run executes the levels command.
func (Levels) Run(ctx context.Context) error {
	stdout, _ := streams(ctx)

	for level := range log.Levels() {
		if _, err := fmt.Fprintln(stdout, level); err != nil {
			return err
		}
	}

	return nil
}

// Version prints the command version.
type Version struct{}

// Run executes the version command.
func (Version) Run(ctx context.Context) error {
	stdout, _ := streams(ctx)

	_, err := fmt.Fprintln(stdout, pkg.Name, pkg.Version)

	return err
}
