package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindweave/mindweave/pkg/errors"
	"github.com/mindweave/mindweave/pkg/merge"
	"github.com/mindweave/mindweave/pkg/mindmap"
)

// mergeOpts holds the command-line flags for the merge command.
type mergeOpts struct {
	generated string // JSON file with the generated subgraph
	targetID  string // expansion node the subgraph hangs off
	policy    string // merge policy name
	output    string // output file path; empty overwrites the input
}

// newMergeCmd creates the merge command. It combines a generated subgraph
// file into an existing graph under the chosen policy. Retained nodes keep
// their positions; admitted nodes enter unplaced, ready for layout.
func newMergeCmd() *cobra.Command {
	opts := mergeOpts{policy: string(merge.PolicyAppendNew)}

	cmd := &cobra.Command{
		Use:   "merge [file]",
		Short: "Merge a generated subgraph into a concept graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.generated, "generated", "g", "", "generated subgraph JSON file (required)")
	cmd.Flags().StringVarP(&opts.targetID, "target", "t", "", "expansion node id (required)")
	cmd.Flags().StringVarP(&opts.policy, "policy", "p", opts.policy, "merge policy: append-new, replace-children")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: overwrite input)")
	_ = cmd.MarkFlagRequired("generated")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func runMerge(ctx context.Context, path string, opts *mergeOpts) error {
	logger := loggerFromContext(ctx)

	policy := merge.Policy(opts.policy)
	if !merge.ValidPolicies[policy] {
		return errors.New(errors.ErrCodeInvalidPolicy, "unknown merge policy %q", opts.policy)
	}

	prev, err := mindmap.ReadGraphFile(path)
	if err != nil {
		return fmt.Errorf("read graph: %w", err)
	}
	gen, err := mindmap.ReadGraphFile(opts.generated)
	if err != nil {
		return fmt.Errorf("read generated subgraph: %w", err)
	}

	if !prev.HasNode(opts.targetID) {
		printWarning("target %q not in graph; nothing merged", opts.targetID)
	}

	prog := newProgress(logger)
	combined := merge.Apply(prev, gen, opts.targetID, policy)
	prog.done(fmt.Sprintf("Merged %d generated nodes", len(gen.Nodes)))

	out := opts.output
	if out == "" {
		out = path
	}
	if err := mindmap.WriteGraphFile(combined, out); err != nil {
		return fmt.Errorf("write graph: %w", err)
	}

	printSuccess("Graph now has %d nodes", len(combined.Nodes))
	printStats(len(combined.Nodes), len(combined.Edges), false)
	printFile(out)
	printNextStep("Lay it out", fmt.Sprintf("mindweave layout %s", out))
	return nil
}
