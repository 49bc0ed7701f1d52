package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with values
// injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the mindweave CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (layout, merge,
// expand, render, serve), configures logging based on the --verbose flag,
// and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext. The passed context carries signal cancellation from
// main, so long-running commands (serve) shut down gracefully.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "mindweave",
		Short:        "Mindweave lays out and grows concept mind maps",
		Long:         `Mindweave is an incremental mind-map engine: it positions concept graphs without overlaps, merges generated subgraphs into an existing map while preserving user-placed nodes, and renders the result.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("mindweave %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newLayoutCmd())
	root.AddCommand(newMergeCmd())
	root.AddCommand(newExpandCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(ctx)
}
