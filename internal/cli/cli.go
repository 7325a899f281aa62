// Package cli implements the tabulate command-line interface.
//
// The root command lays out whitespace-separated words (or whole lines with
// --lines) read from files or stdin. The sort subcommand writes the sorted
// words of a file to another file. Defaults come from the engine, then the
// TOML config file, then explicit flags.
//
// All commands support --verbose (-v) for debug-level logging to stderr.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bjaus/tabulate"
)

const appName = "tabulate"

// Version is reported by --version. Set at build time with -ldflags.
var Version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// termWidth reports the terminal width of stdout, if it is a terminal.
	termWidth func() (int, bool)
}

// New creates a CLI whose logger writes to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:    newLogger(w, level),
		termWidth: stdoutWidth,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := c.tabulateCommand()
	root.Version = Version
	root.SilenceUsage = true
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			c.SetLogLevel(LogDebug)
		}
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	}

	root.AddCommand(c.sortCommand())
	return root
}

// terminalWidth is the width of the terminal on stdout, or the engine
// default when stdout is not a terminal.
func (c *CLI) terminalWidth() int {
	if w, ok := c.termWidth(); ok && w > 0 {
		return w
	}
	return tabulate.DefaultMaxWidth
}

func stdoutWidth() (int, bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0, false
	}
	return w, true
}
