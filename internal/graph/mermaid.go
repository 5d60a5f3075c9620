package graph

import (
	"fmt"
	"io"
	"strings"
)

// MermaidWriter renders the graph as a Mermaid flowchart.
type MermaidWriter struct{}

// Write outputs the graph in "graph TD" syntax.
func (w *MermaidWriter) Write(g *Graph, out io.Writer) error {
	var b strings.Builder
	b.WriteString("graph TD\n")

	for _, n := range g.Nodes {
		label := strings.Join([]string{n.ShortID, n.Date, n.Author}, "<br>")
		fmt.Fprintf(&b, "\t%s[%q]\n", n.ShortID, label)
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&b, "\t%s --> %s\n", shortID(e.From), shortID(e.To))
	}

	_, err := io.WriteString(out, b.String())
	return err
}
