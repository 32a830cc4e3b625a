// Package cmd provides the scopelog subcommands: emit, levels, and version.
package cmd

var (
	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file.
	ConfigIdentifier = "config"

	// LevelsIdentifier is the kong variable identifier listing the level
	// symbols accepted by emit.
	LevelsIdentifier = "levels"

	// BackendsIdentifier is the kong variable identifier listing the backend
	// names accepted by emit.
	BackendsIdentifier = "backends"
)
