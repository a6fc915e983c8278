// Package cli implements the smtree command-line interface.
//
// smtree loads hierarchical state machine diagrams (JSON or GraphML),
// projects them into the addressable item tree of pkg/model and exposes
// commands to inspect, browse and export the result. All commands support
// --verbose (-v) for debug-level logging; loggers travel through
// context.Context.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/veretenov/smtree/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "smtree"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and the user's
// configuration, falling back to defaults when no config file exists.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}
	cfg, err := loadConfig()
	if err != nil {
		c.Logger.Warnf("config: %v", err)
		cfg = defaultConfig()
	}
	c.Config = cfg
	return c
}

// SetLogLevel adjusts the logger's level after flag parsing.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand builds the root command with all subcommands attached.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "smtree inspects hierarchical state machine diagrams",
		Long:         `smtree loads a state machine diagram, projects the graph into an addressable item tree and lets you inspect, browse and export it.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(newShowCmd(c))
	root.AddCommand(newInfoCmd(c))
	root.AddCommand(newExportCmd(c))
	root.AddCommand(newBrowseCmd(c))

	return root
}

// userConfigPath returns the path of the optional config file.
func userConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return dir + "/" + appName + "/config.toml", nil
}
