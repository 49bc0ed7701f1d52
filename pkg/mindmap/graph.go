package mindmap

import (
	"fmt"
	"io"
	"os"
)

// ReadGraph reads a JSON concept graph from r.
func ReadGraph(r io.Reader) (Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Graph{}, fmt.Errorf("read graph: %w", err)
	}
	return UnmarshalGraph(data)
}

// ReadGraphFile reads a JSON concept graph from a file.
func ReadGraphFile(path string) (Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Graph{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalGraph(data)
}

// WriteGraph writes a graph as pretty-printed JSON to w.
func WriteGraph(g Graph, w io.Writer) error {
	data, err := MarshalGraph(g)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteGraphFile writes a graph as pretty-printed JSON to a file.
func WriteGraphFile(g Graph, path string) error {
	data, err := MarshalGraph(g)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
