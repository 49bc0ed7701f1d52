package mindmap

import (
	"encoding/json"
	"fmt"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Edge relations.
const (
	RelationInforms   = "informs"
	RelationDependsOn = "depends-on"
	RelationRelated   = "related"
)

// ValidRelations is the set of supported edge relations.
var ValidRelations = map[string]bool{
	RelationInforms:   true,
	RelationDependsOn: true,
	RelationRelated:   true,
}

// =============================================================================
// Graph - Concept Graph Serialization
// =============================================================================

// Graph is the canonical serialization format for concept graphs.
// Used for API requests/responses, CLI files, and caching.
//
// The format is human-readable and designed for round-trip fidelity:
// import → layout → export → re-import produces identical results.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Clone returns a deep copy of the graph. Layout and merge operate on
// copies so callers can treat the previous graph as an immutable snapshot.
func (g Graph) Clone() Graph {
	out := Graph{
		Nodes: make([]Node, len(g.Nodes)),
		Edges: make([]Edge, len(g.Edges)),
	}
	copy(out.Nodes, g.Nodes)
	copy(out.Edges, g.Edges)
	return out
}

// Node returns the node with the given ID and true, or a zero Node and false.
func (g Graph) Node(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// HasNode reports whether a node with the given ID exists.
func (g Graph) HasNode(id string) bool {
	_, ok := g.Node(id)
	return ok
}

// =============================================================================
// Node - Concept Node
// =============================================================================

// Position is a 2-D point in layout space.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a single concept in the mind map.
//
// Position is assigned by the layout engine unless Pinned is set. Pinned is
// set the moment a user drags the node (or an ancestor of it); once set, the
// stored position is never overwritten by automatic layout.
type Node struct {
	ID        string   `json:"id"`
	Label     string   `json:"label,omitempty"`     // Display label (defaults to ID)
	Group     string   `json:"group,omitempty"`     // Legend group tag
	Kind      string   `json:"kind,omitempty"`      // Shape/kind tag for rendering
	Preview   bool     `json:"preview,omitempty"`   // Placeholder awaiting generated content
	Collapsed bool     `json:"collapsed,omitempty"` // Subtree hidden by the user
	Position  Position `json:"position"`
	Pinned    bool     `json:"pinned,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// =============================================================================
// Edge - Directed Relation
// =============================================================================

// Edge is a directed source→target relation. Edges define the only
// parent/child structure the layout engine uses; their order in the edge
// list determines left-to-right child placement.
type Edge struct {
	ID       string `json:"id"`
	Source   string `json:"source"`
	Target   string `json:"target"`
	Relation string `json:"relation,omitempty"`
}

// =============================================================================
// Serialization
// =============================================================================

// MarshalGraph serializes a Graph to pretty-printed JSON bytes.
func MarshalGraph(g Graph) ([]byte, error) {
	return json.MarshalIndent(g, "", "  ")
}

// UnmarshalGraph deserializes JSON bytes to a Graph.
func UnmarshalGraph(data []byte) (Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return Graph{}, fmt.Errorf("unmarshal graph: %w", err)
	}
	return g, nil
}
