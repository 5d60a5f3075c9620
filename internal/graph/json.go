package graph

import (
	"encoding/json"
	"io"
)

// JSONWriter renders the graph as indented JSON, full identifiers included.
type JSONWriter struct{}

// Write outputs the graph as a JSON document.
func (w *JSONWriter) Write(g *Graph, out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(g)
}
