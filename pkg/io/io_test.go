package io

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/classgraph/pkg/graph"
)

func sampleDocument() *graph.Document {
	class := graph.DefaultPalette.Style(graph.LanguagePython, graph.CategoryClass)
	module := graph.DefaultPalette.Style(graph.LanguagePython, graph.CategoryModule)
	return &graph.Document{
		Nodes: []graph.Node{
			{ID: 1, Label: "Parser", Group: "class", Value: 6, Color: class.Node},
			{ID: 2, Label: "os", Group: "module", Value: 4, Color: module.Node},
		},
		Edges: []graph.Edge{
			{From: 1, To: 2, Color: class.Edge},
		},
	}
}

func TestJSONRoundTrip(t *testing.T) {
	doc := sampleDocument()

	var buf bytes.Buffer
	if err := WriteJSON(doc, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if len(got.Nodes) != 2 || len(got.Edges) != 1 {
		t.Fatalf("round trip: %d nodes, %d edges", len(got.Nodes), len(got.Edges))
	}
	if got.Nodes[0] != doc.Nodes[0] || got.Nodes[1] != doc.Nodes[1] {
		t.Errorf("nodes differ: %+v", got.Nodes)
	}
	if got.Edges[0] != doc.Edges[0] {
		t.Errorf("edge differs: %+v", got.Edges[0])
	}
}

func TestWriteJSONEmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&graph.Document{}, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `"nodes": []`) || !strings.Contains(out, `"edges": []`) {
		t.Errorf("empty document should serialize empty arrays, got %s", out)
	}
}

func TestReadJSONValidation(t *testing.T) {
	tests := []struct {
		name string
		json string
		want error
	}{
		{"duplicate node", `{"nodes":[{"id":1},{"id":1}],"edges":[]}`, ErrDuplicateNode},
		{"dangling edge", `{"nodes":[{"id":1}],"edges":[{"from":1,"to":9}]}`, ErrUnknownNode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.json))
			if !errors.Is(err, tt.want) {
				t.Errorf("ReadJSON() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := ReadJSON(strings.NewReader("{")); err == nil {
		t.Error("malformed JSON should fail")
	}
}

func TestExportImportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "deep", "graph.json")
	if err := ExportJSON(sampleDocument(), path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	doc, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if doc.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", doc.NodeCount())
	}

	if _, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ImportJSON of a missing file should fail")
	}
}

func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDOT(sampleDocument(), &buf); err != nil {
		t.Fatalf("WriteDOT: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"digraph G {",
		`n1 [label="Parser"`,
		`n2 [label="os"`,
		"n1 -> n2",
		"}\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("DOT output missing %q:\n%s", want, out)
		}
	}
}

func TestExportDOT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.dot")
	if err := ExportDOT(sampleDocument(), path); err != nil {
		t.Fatalf("ExportDOT: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("digraph G {")) {
		t.Errorf("unexpected DOT file: %s", data)
	}
}
