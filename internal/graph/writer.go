package graph

import (
	"io"
	"os"
)

// Compile-time interface conformance checks.
var (
	_ Writer = (*DOTWriter)(nil)
	_ Writer = (*MermaidWriter)(nil)
	_ Writer = (*JSONWriter)(nil)
)

// Format selects the graph serialization.
type Format string

const (
	FormatDOT     Format = "dot"
	FormatMermaid Format = "mermaid"
	FormatJSON    Format = "json"
)

// Ext returns the conventional file extension for the format.
func (f Format) Ext() string {
	switch f {
	case FormatMermaid:
		return ".mmd"
	case FormatJSON:
		return ".json"
	default:
		return ".dot"
	}
}

// Writer renders a graph to a stream.
type Writer interface {
	Write(g *Graph, w io.Writer) error
}

// NewWriter creates a graph writer for the specified format.
func NewWriter(format Format) Writer {
	switch format {
	case FormatMermaid:
		return &MermaidWriter{}
	case FormatJSON:
		return &JSONWriter{}
	default:
		return &DOTWriter{}
	}
}

// Render writes the graph to outputPath, or to stdout when outputPath is
// empty.
func Render(g *Graph, format Format, outputPath string) error {
	out, file, err := openOutputWriter(outputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	return NewWriter(format).Write(g, out)
}

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}
