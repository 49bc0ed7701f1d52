// Package mindmap defines the concept-graph data model shared by the layout
// engine, the merge engine, and the CLI/server surfaces.
//
// A Graph is a flat node list plus a directed edge list. Edges define the
// only parent/child relation used anywhere: the Index derives adjacency and
// descendant closures from them, Levels derives BFS depths for styling, and
// Drag cascades a user position delta through a subtree.
//
// All derivations are pure. Malformed structure (dangling edge endpoints,
// missing roots, cyclic adjacency) degrades to skipping the offending
// element - the data originates from an untrusted external generator, so
// nothing in this package panics or returns an error for bad shape.
package mindmap
