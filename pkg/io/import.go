package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/classgraph/pkg/graph"
)

var (
	// ErrDuplicateNode is returned when two nodes share an id.
	ErrDuplicateNode = errors.New("duplicate node id")

	// ErrUnknownNode is returned when an edge references a missing node.
	ErrUnknownNode = errors.New("edge references unknown node")
)

// ReadJSON decodes a document from r.
//
// ReadJSON returns an error if the JSON is malformed, if two nodes share an
// id, or if an edge references an id that no node carries. Errors name the
// offending node or edge. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*graph.Document, error) {
	var doc graph.Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	ids := make(map[int]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		if ids[n.ID] {
			return nil, fmt.Errorf("node %d: %w", n.ID, ErrDuplicateNode)
		}
		ids[n.ID] = true
	}
	for _, e := range doc.Edges {
		if !ids[e.From] || !ids[e.To] {
			return nil, fmt.Errorf("edge %d->%d: %w", e.From, e.To, ErrUnknownNode)
		}
	}

	if doc.Nodes == nil {
		doc.Nodes = []graph.Node{}
	}
	if doc.Edges == nil {
		doc.Edges = []graph.Edge{}
	}
	return &doc, nil
}

// ImportJSON reads the JSON document at path. It returns the same
// validation errors as [ReadJSON], wrapped with the path.
func ImportJSON(path string) (*graph.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
