package graph

import (
	"fmt"
	"io"
	"strings"
)

// DOTWriter renders the graph in Graphviz DOT syntax. Node names are
// abbreviated identifiers; each retained commit gets a label carrying its
// short identifier, resolved date-time and author.
type DOTWriter struct{}

// Write outputs the graph as a digraph.
func (w *DOTWriter) Write(g *Graph, out io.Writer) error {
	var b strings.Builder
	b.WriteString("digraph commits {\n")

	for _, n := range g.Nodes {
		fmt.Fprintf(&b, "\t%q [label=%q];\n", n.ShortID, n.ShortID+"\n"+n.Date+"\n"+n.Author)
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&b, "\t%q -> %q;\n", shortID(e.From), shortID(e.To))
	}

	b.WriteString("}\n")
	_, err := io.WriteString(out, b.String())
	return err
}
