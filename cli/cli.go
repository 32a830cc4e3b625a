package cli

import (
	"context"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/scopelog/backend/structured"
	"github.com/ardnew/scopelog/cli/cmd"
	"github.com/ardnew/scopelog/log"
	"github.com/ardnew/scopelog/pkg"
)

// baseConfig is the base name of the configuration file.
const baseConfig = "config.yaml"

// CLI is the top-level command-line interface for scopelog.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Emit    cmd.Emit    `cmd:"" default:"withargs" help:"Log a message through a backend"`
	Levels  cmd.Levels  `cmd:""                    help:"List the log levels"`
	Version cmd.Version `cmd:""                    help:"Print the version"`
}

// Run executes the scopelog CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	return run(ctx, exit, os.Stdout, os.Stderr, configPath(baseConfig), args)
}

func run(
	ctx context.Context,
	exit func(code int),
	stdout, stderr io.Writer,
	config string,
	args []string,
) error {
	var cli CLI

	vars := kong.Vars{
		cmd.ConfigIdentifier:   config,
		cmd.LevelsIdentifier:   levelSymbols(),
		cmd.BackendsIdentifier: strings.Join(cmd.Backends(), ", "),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(groups(cli.Log.group(), cli.Pprof.group())),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(resolve, config),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Command diagnostics go through the structured backend configured by
	// the log flags; emitted messages use the backend selected by emit.
	diag := log.New(
		structured.Factory(structured.New(stderr, cli.Log.options()...)),
		log.Scope{"component": pkg.Name},
	)

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithBackendConfig(ctx, cli.Log.backend())
	ctx = log.WithContext(ctx, diag)

	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	ktx.BindTo(ctx, (*context.Context)(nil))

	return ktx.Run()
}

func levelSymbols() string {
	var symbols []string
	for level := range log.Levels() {
		symbols = append(symbols, level.String())
	}

	return strings.Join(symbols, ", ")
}

// groups drops the empty groups of disabled features.
func groups(all ...kong.Group) []kong.Group {
	return slices.DeleteFunc(all, func(g kong.Group) bool { return g.Key == "" })
}
