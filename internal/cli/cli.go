// Package cli implements the computor command-line interface.
//
// This package provides commands for reducing polynomial equations to
// their canonical form, solving them, running batches of equations from
// a TOML file, and solving interactively. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - solve: Reduce an equation and report its solution set
//   - reduce: Print the canonical reduced form and degree only
//   - batch: Solve every equation listed in a TOML file
//   - interactive: Solve equations from a prompt loop
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging of the
// pipeline stages. Output goes to stderr so it never mixes with results.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mallah-elmehdi/computorv1/pkg/buildinfo"
	"github.com/mallah-elmehdi/computorv1/pkg/pipeline"
)

// appName is the application name used for display.
const appName = "computor"

// defaultPrecision is the number of decimal places for printed roots.
const defaultPrecision = 6

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance writing log output to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Computor solves polynomial equations of degree two or less",
		Long:         `Computor is a CLI tool that reduces a polynomial equation to its canonical a*X^2 + b*X + c = 0 form, reports its degree, and computes its solution set: no solution, every real, one or two real roots, or a complex-conjugate pair.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.reduceCommand())
	root.AddCommand(c.batchCommand())
	root.AddCommand(c.interactiveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}
