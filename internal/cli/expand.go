package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindweave/mindweave/pkg/errors"
	"github.com/mindweave/mindweave/pkg/generate"
	"github.com/mindweave/mindweave/pkg/interact"
	"github.com/mindweave/mindweave/pkg/layout"
	"github.com/mindweave/mindweave/pkg/merge"
	"github.com/mindweave/mindweave/pkg/mindmap"
)

// expandOpts holds the command-line flags for the expand command.
type expandOpts struct {
	from    string // JSON file standing in for the generation service
	nodeID  string // node being expanded
	rootID  string // layout root; empty uses the first node
	config  string // optional TOML file overriding layout tunables
	output  string // output file path; empty overwrites the input
	replace bool   // force replace-children even on first expansion
}

// newExpandCmd creates the expand command: the full grow step in one
// invocation. It loads a generation result, merges it at the target node,
// and re-lays-out the map, preserving every pinned position.
func newExpandCmd() *cobra.Command {
	opts := expandOpts{}

	cmd := &cobra.Command{
		Use:   "expand [file]",
		Short: "Generate, merge, and lay out in one step",
		Long: `Expand grows the map at one node: a generation result (from --from, a JSON
file standing in for the generation service) is merged under the target node
and the whole map is re-laid-out. First expansions append only new elements;
re-expansions replace the node's previous subtree.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "generation result JSON file (required)")
	cmd.Flags().StringVarP(&opts.nodeID, "node", "n", "", "node to expand (required)")
	cmd.Flags().StringVarP(&opts.rootID, "root", "r", "", "root node id (default: first node)")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "layout config TOML file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: overwrite input)")
	cmd.Flags().BoolVar(&opts.replace, "replace", false, "replace the node's existing subtree")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("node")

	return cmd
}

func runExpand(ctx context.Context, path string, opts *expandOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadLayoutConfig(opts.config)
	if err != nil {
		return err
	}

	g, err := mindmap.ReadGraphFile(path)
	if err != nil {
		return fmt.Errorf("read graph: %w", err)
	}
	if !g.HasNode(opts.nodeID) {
		return errors.New(errors.ErrCodeNodeNotFound, "node %q not in graph", opts.nodeID)
	}

	session := interact.NewSession()
	if opts.replace {
		session.Finish(opts.nodeID) // marks the node as previously expanded
	}
	if err := session.Begin(opts.nodeID); err != nil {
		return err
	}

	label := ""
	if n, ok := g.Node(opts.nodeID); ok {
		label = n.DisplayLabel()
	}

	gen := generate.NewFileGenerator(opts.from)
	result, err := gen.Expand(ctx, generate.Request{
		NodeID:   opts.nodeID,
		Label:    label,
		Snapshot: g,
	})
	if err != nil {
		session.Abort(opts.nodeID)
		return fmt.Errorf("generate: %w", err)
	}
	if result.Empty() {
		session.Abort(opts.nodeID)
		printWarning("generation returned nothing; map unchanged")
		return nil
	}
	logger.Debug("generation result", "nodes", len(result.Nodes), "edges", len(result.Edges))

	policy := session.PolicyFor(opts.nodeID)
	combined := merge.Apply(g, result.Graph(), opts.nodeID, policy)
	session.Finish(opts.nodeID)

	prog := newProgress(logger)
	positioned, report := layout.Layout(combined, opts.rootID, cfg)
	prog.done(report.String())

	if report.Degraded() {
		printWarning("%d overlapping pairs could not be resolved (pinned nodes)", report.ResidualOverlaps)
	}

	out := opts.output
	if out == "" {
		out = path
	}
	combined.Nodes = positioned
	if err := mindmap.WriteGraphFile(combined, out); err != nil {
		return fmt.Errorf("write graph: %w", err)
	}

	printSuccess("Expanded %q with policy %s", opts.nodeID, policy)
	printStats(len(combined.Nodes), len(combined.Edges), false)
	printFile(out)
	printNextStep("Render it", fmt.Sprintf("mindweave render %s", out))
	return nil
}
