package io

import (
	"bufio"
	"fmt"
	"io"

	"github.com/matzehuels/classgraph/pkg/graph"
)

// WriteDOT writes doc as a Graphviz digraph description. Nodes are keyed by
// id and labelled with their class or module name; colors carry over as
// fill, border and edge colors.
func WriteDOT(doc *graph.Document, w io.Writer) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("digraph G {\n")
	bw.WriteString("  rankdir=LR;\n")
	bw.WriteString("  bgcolor=\"transparent\";\n")
	bw.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=14, margin=\"0.2,0.1\"];\n")
	bw.WriteString("\n")

	for _, n := range doc.Nodes {
		fmt.Fprintf(bw, "  n%d [label=%q, fillcolor=%q, color=%q, penwidth=%.1f];\n",
			n.ID, n.Label, n.Color.Background, n.Color.Border, penWidth(n.Value))
	}

	bw.WriteString("\n")
	for _, e := range doc.Edges {
		fmt.Fprintf(bw, "  n%d -> n%d [color=%q];\n", e.From, e.To, e.Color.Color)
	}

	bw.WriteString("}\n")
	return bw.Flush()
}

// penWidth scales a node's weight into a border width.
func penWidth(value int) float64 {
	w := float64(value) / float64(graph.BaseWeight)
	if w < 1 {
		return 1
	}
	return w
}
