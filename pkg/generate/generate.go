// Package generate defines the contract with the external text-generation
// collaborator that supplies new concept subgraphs.
//
// The engine's consumption contract is deliberately defensive: a malformed
// or empty result degrades to "no change", and returned ids are never
// assumed to be globally fresh - duplicate filtering is the merge policy's
// job (pkg/merge). The transport used to reach a real generation service is
// out of scope here; callers plug in any Generator implementation.
package generate

import (
	"context"
	"encoding/json"

	"github.com/mindweave/mindweave/pkg/mindmap"
)

// Request describes one expansion: either a free-text topic (fresh map) or
// the node being expanded, plus the caller's current graph snapshot so the
// generator can avoid repeating known concepts.
type Request struct {
	Topic    string        `json:"topic,omitempty"`     // free-text topic for a fresh map
	NodeID   string        `json:"node_id,omitempty"`   // id of the node being expanded
	Label    string        `json:"label,omitempty"`     // label of the node being expanded
	Snapshot mindmap.Graph `json:"snapshot,omitempty"`  // current node/edge sets
	MaxNodes int           `json:"max_nodes,omitempty"` // soft cap on generated nodes
}

// Result is the generated subgraph: new concept nodes plus the edges
// connecting them to the existing graph.
type Result struct {
	Nodes []mindmap.Node `json:"nodes"`
	Edges []mindmap.Edge `json:"edges"`
}

// Empty reports whether the result carries nothing to merge.
func (r Result) Empty() bool { return len(r.Nodes) == 0 && len(r.Edges) == 0 }

// Graph converts the result into a graph fragment for the merge engine.
func (r Result) Graph() mindmap.Graph {
	return mindmap.Graph{Nodes: r.Nodes, Edges: r.Edges}
}

// Generator produces concept subgraphs. Implementations wrap whatever
// service actually generates content; the engine only sees the Result.
type Generator interface {
	// Expand returns a generated subgraph for the request. Implementations
	// should return an empty Result (not an error) for "nothing to add".
	Expand(ctx context.Context, req Request) (Result, error)
}

// ParseResult decodes a generator payload, tolerating malformed input.
// Invalid JSON, a non-object payload, or elements of the wrong shape all
// degrade to an empty Result - the caller treats that as "no change". No
// input can make this function panic or return an error.
func ParseResult(data []byte) Result {
	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		return Result{}
	}

	// Drop elements an untrusted generator got structurally wrong. Edges
	// naming nodes outside both the result and the snapshot are left in:
	// the merge engine validates endpoints against the combined graph.
	nodes := res.Nodes[:0:0]
	for _, n := range res.Nodes {
		if n.ID == "" && n.Label == "" {
			continue
		}
		nodes = append(nodes, n)
	}
	edges := res.Edges[:0:0]
	for _, e := range res.Edges {
		if e.Source == "" || e.Target == "" {
			continue
		}
		edges = append(edges, e)
	}
	return Result{Nodes: nodes, Edges: edges}
}
