// Package render exports laid-out concept graphs as Graphviz DOT and SVG.
//
// Positions computed by the layout engine are emitted as pinned neato
// coordinates (pos="x,y!"), so Graphviz draws exactly the geometry the
// engine produced and only contributes edge routing and text metrics.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mindweave/mindweave/pkg/mindmap"
	"github.com/mindweave/mindweave/pkg/style"
)

// dotScale converts layout px to DOT inches (Graphviz pos units are 72 dpi).
const dotScale = 1.0 / 72.0

// Options configures DOT generation.
type Options struct {
	// RootID selects the level-styling root. Empty falls back to the first
	// node in the list.
	RootID string

	// Styles memoizes level colors; nil uses a throwaway memo.
	Styles *style.Memo
}

// ToDOT converts a laid-out graph to Graphviz DOT. Node positions are pinned
// and level styling is applied deterministically from BFS depth.
func ToDOT(g mindmap.Graph, opts Options) string {
	memo := opts.Styles
	if memo == nil {
		memo = style.NewMemo()
	}
	levels := mindmap.Levels(g.Nodes, g.Edges, mindmap.RootID(g.Nodes, opts.RootID))

	var buf bytes.Buffer
	buf.WriteString("digraph mindmap {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [style=\"filled\", fontcolor=white, fontsize=12, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  edge [color=\"#868e96\"];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(nodeAttrs(n, levels, memo), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "  %q -> %q%s;\n", e.Source, e.Target, edgeAttrs(e))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n mindmap.Node, levels map[string]int, memo *style.Memo) []string {
	st := memo.ForLevel(levels[n.ID])

	shape := "box"
	styles := []string{"filled"}
	switch st.Shape {
	case style.ShapeRounded:
		styles = append(styles, "rounded")
	case style.ShapeEllipse:
		shape = "ellipse"
	}
	if n.Preview {
		styles = append(styles, "dashed")
	}

	attrs := []string{
		fmt.Sprintf("label=%q", n.DisplayLabel()),
		// Graphviz Y grows upward; layout Y grows downward.
		fmt.Sprintf("pos=\"%.3f,%.3f!\"", n.Position.X*dotScale, -n.Position.Y*dotScale),
		fmt.Sprintf("fillcolor=%q", st.Fill),
		fmt.Sprintf("color=%q", st.Stroke),
		fmt.Sprintf("shape=%s", shape),
		fmt.Sprintf("style=%q", strings.Join(styles, ",")),
	}
	if n.Collapsed {
		attrs = append(attrs, "peripheries=2")
	}
	return attrs
}

func edgeAttrs(e mindmap.Edge) string {
	switch e.Relation {
	case mindmap.RelationDependsOn:
		return " [style=bold]"
	case mindmap.RelationRelated:
		return " [style=dashed, dir=none]"
	default:
		return ""
	}
}
