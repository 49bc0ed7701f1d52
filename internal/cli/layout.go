package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindweave/mindweave/pkg/layout"
	"github.com/mindweave/mindweave/pkg/mindmap"
)

// layoutOpts holds the command-line flags for the layout command.
type layoutOpts struct {
	output string // output file path; empty overwrites the input
	rootID string // designated root node; empty uses the first node
	config string // optional TOML file overriding layout tunables
}

// newLayoutCmd creates the layout command. It reads a concept graph from a
// JSON file, computes non-overlapping positions for every unpinned node, and
// writes the positioned graph back out.
func newLayoutCmd() *cobra.Command {
	opts := layoutOpts{}

	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Compute non-overlapping positions for a concept graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: overwrite input)")
	cmd.Flags().StringVarP(&opts.rootID, "root", "r", "", "root node id (default: first node)")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "layout config TOML file")

	return cmd
}

func runLayout(ctx context.Context, path string, opts *layoutOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadLayoutConfig(opts.config)
	if err != nil {
		return err
	}

	g, err := mindmap.ReadGraphFile(path)
	if err != nil {
		return fmt.Errorf("read graph: %w", err)
	}
	logger.Debug("graph loaded", "nodes", len(g.Nodes), "edges", len(g.Edges))

	prog := newProgress(logger)
	positioned, report := layout.Layout(g, opts.rootID, cfg)
	prog.done(report.String())

	if report.Degraded() {
		printWarning("%d overlapping pairs could not be resolved (pinned nodes)", report.ResidualOverlaps)
		for _, pair := range report.DegradedPairs {
			logger.Warn("degraded pair", "a", pair[0], "b", pair[1])
		}
	}

	out := opts.output
	if out == "" {
		out = path
	}
	g.Nodes = positioned
	if err := mindmap.WriteGraphFile(g, out); err != nil {
		return fmt.Errorf("write graph: %w", err)
	}

	printSuccess("Laid out %d nodes", report.Nodes)
	printStats(len(g.Nodes), len(g.Edges), false)
	printFile(out)
	printNextStep("Render it", fmt.Sprintf("mindweave render %s", out))
	return nil
}

// loadLayoutConfig resolves the layout configuration: defaults when no file
// is given, otherwise the file overlaid on the defaults.
func loadLayoutConfig(path string) (layout.Config, error) {
	if path == "" {
		return layout.DefaultConfig(), nil
	}
	return layout.LoadConfigFile(path)
}
