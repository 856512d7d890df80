package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/classgraph/pkg/graph"
)

// WriteJSON encodes doc as indented JSON and writes it to w.
// The output can be re-read with [ReadJSON].
func WriteJSON(doc *graph.Document, w io.Writer) error {
	out := *doc
	if out.Nodes == nil {
		out.Nodes = []graph.Node{}
	}
	if out.Edges == nil {
		out.Edges = []graph.Edge{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes doc to a JSON file at path, creating parent directories
// as needed.
func ExportJSON(doc *graph.Document, path string) error {
	return export(path, func(w io.Writer) error { return WriteJSON(doc, w) })
}

// ExportDOT writes doc to a DOT file at path, creating parent directories as
// needed.
func ExportDOT(doc *graph.Document, path string) error {
	return export(path, func(w io.Writer) error { return WriteDOT(doc, w) })
}

func export(path string, write func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
