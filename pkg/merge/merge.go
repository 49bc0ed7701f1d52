// Package merge combines a previously displayed concept graph with a freshly
// generated subgraph rooted at an expansion node.
//
// Two policies are supported. ReplaceChildren discards the expansion node's
// old subtree before admitting the generated elements, used when the user
// re-expands a node. AppendNew admits only elements whose ids are not
// already present, making duplicate-echoing generators safe and the merge
// idempotent.
//
// Both policies preserve the position/pinned state of every retained node
// unchanged. Merge never raises on malformed input: a stale target (removed
// by an earlier merge) is a no-op, and duplicate ids resolve deterministically
// by policy.
package merge

import (
	"github.com/google/uuid"

	"github.com/mindweave/mindweave/pkg/mindmap"
	"github.com/mindweave/mindweave/pkg/observability"
)

// Policy selects how generated elements combine with the previous graph.
type Policy string

const (
	// PolicyReplaceChildren removes the target's existing children (and the
	// descendants reachable only through them) before appending the
	// generated subgraph.
	PolicyReplaceChildren Policy = "replace-children"

	// PolicyAppendNew keeps everything previously displayed and admits only
	// generated elements whose ids do not already exist.
	PolicyAppendNew Policy = "append-new"
)

// ValidPolicies is the set of supported merge policies.
var ValidPolicies = map[Policy]bool{
	PolicyReplaceChildren: true,
	PolicyAppendNew:       true,
}

// Apply merges the generated subgraph into prev at targetID under the given
// policy and returns the combined graph. The inputs are treated as immutable
// snapshots.
//
// If targetID is no longer present in prev (the expansion raced a
// replace-children merge elsewhere), the generated result is stale and prev
// is returned unchanged.
func Apply(prev, gen mindmap.Graph, targetID string, policy Policy) mindmap.Graph {
	if !prev.HasNode(targetID) {
		return prev.Clone()
	}

	base := prev.Clone()
	removed := 0
	if policy == PolicyReplaceChildren {
		base, removed = pruneSubtree(base, targetID)
	}

	out, admitted := appendNew(base, gen)
	observability.Merge().OnMerge(string(policy), admitted, removed)
	return out
}

// pruneSubtree removes the target's children and every descendant reachable
// only through those children, along with all edges touching a removed node.
// Nodes that are also reachable from elsewhere in the graph survive.
func pruneSubtree(g mindmap.Graph, targetID string) (mindmap.Graph, int) {
	idx := mindmap.NewIndex(g.Nodes, g.Edges)
	inOldSubtree := idx.Descendants(targetID)

	// Drop the edges from target to its children, then recompute
	// reachability from the root side: anything in the old subtree still
	// reachable without those edges is shared and must be kept.
	remaining := g.Edges[:0:0]
	for _, e := range g.Edges {
		if e.Source == targetID && inOldSubtree[e.Target] {
			continue
		}
		remaining = append(remaining, e)
	}

	kept := mindmap.NewIndex(g.Nodes, remaining)
	reachable := reachableFromOutside(g, kept, inOldSubtree)

	doomed := make(map[string]bool, len(inOldSubtree))
	for id := range inOldSubtree {
		if !reachable[id] {
			doomed[id] = true
		}
	}

	out := mindmap.Graph{}
	for _, n := range g.Nodes {
		if !doomed[n.ID] {
			out.Nodes = append(out.Nodes, n)
		}
	}
	for _, e := range remaining {
		if doomed[e.Source] || doomed[e.Target] {
			continue
		}
		out.Edges = append(out.Edges, e)
	}
	return out, len(doomed)
}

// reachableFromOutside marks every member of subtree that is still reachable
// from some node outside it via the kept edges.
func reachableFromOutside(g mindmap.Graph, kept *mindmap.Index, subtree map[string]bool) map[string]bool {
	reachable := make(map[string]bool)
	for _, n := range g.Nodes {
		if subtree[n.ID] {
			continue
		}
		for id := range kept.Descendants(n.ID) {
			if subtree[id] {
				reachable[id] = true
			}
		}
	}
	return reachable
}

// appendNew admits generated nodes and edges whose ids are not already
// present. Admitted nodes start unpinned with no position, to be assigned by
// the layout engine. Generated elements missing an id receive a fresh UUID
// so an id-less generator cannot produce colliding entries.
func appendNew(base, gen mindmap.Graph) (mindmap.Graph, int) {
	nodeIDs := make(map[string]bool, len(base.Nodes))
	for _, n := range base.Nodes {
		nodeIDs[n.ID] = true
	}
	edgeIDs := make(map[string]bool, len(base.Edges))
	for _, e := range base.Edges {
		edgeIDs[e.ID] = true
	}

	admitted := 0
	for _, n := range gen.Nodes {
		if n.ID == "" {
			n.ID = uuid.NewString()
		}
		if nodeIDs[n.ID] {
			continue
		}
		n.Pinned = false
		n.Position = mindmap.Position{}
		nodeIDs[n.ID] = true
		base.Nodes = append(base.Nodes, n)
		admitted++
	}

	for _, e := range gen.Edges {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if edgeIDs[e.ID] {
			continue
		}
		// An edge naming a node that was neither retained nor admitted would
		// dangle; the index ignores it, but keeping it out entirely keeps
		// serialized graphs clean.
		if !nodeIDs[e.Source] || !nodeIDs[e.Target] {
			continue
		}
		edgeIDs[e.ID] = true
		base.Edges = append(base.Edges, e)
	}
	return base, admitted
}
