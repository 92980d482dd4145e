// Package cli implements the treewidth command-line interface.
//
// Commands:
//   - instances: estimate every built-in reference instance
//   - bench:     estimate seeded random G(n, m) graphs
//
// All commands accept --config (TOML estimator options) and --verbose.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/treewidth"
)

// Version is reported by --version; main may overwrite it.
var Version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out        io.Writer
	configPath string
}

// New creates a CLI that logs to logw and prints results to out.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(logw, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		out: out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "treewidth",
		Short:        "Estimate treewidth with simplicial elimination and matching contraction",
		Version:      Version,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "TOML file with estimator options")

	root.AddCommand(c.instancesCommand())
	root.AddCommand(c.benchCommand())

	return root
}

// options resolves estimator options from --config, falling back to defaults.
func (c *CLI) options() (treewidth.Options, error) {
	opts := treewidth.DefaultOptions()
	if c.configPath != "" {
		loaded, err := treewidth.LoadOptions(c.configPath)
		if err != nil {
			return treewidth.Options{}, err
		}
		opts = loaded
		c.Logger.Debug("loaded config", "path", c.configPath)
	}
	opts.Logger = c.Logger

	return opts, nil
}
