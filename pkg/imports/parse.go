package imports

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// Import is one imported module of an import statement.
type Import struct {
	Module string   `json:"module,omitempty"` // Dotted module path; empty for "from . import x"
	Level  int      `json:"level,omitempty"`  // Leading dots of a relative import
	Names  []string `json:"names,omitempty"`  // Names imported by a from-import; "*" for a wildcard
}

// Relative reports whether the import is relative to the importing package.
func (i Import) Relative() bool { return i.Level > 0 }

const importQuery = `
	(import_statement) @import
	(import_from_statement) @from
`

// Parse returns the imports of a Python source in statement order.
// Statements nested in functions, classes or conditionals are included.
func Parse(ctx context.Context, src []byte) ([]Import, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(python.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	defer tree.Close()

	query, err := sitter.NewQuery([]byte(importQuery), python.GetLanguage())
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer query.Close()
	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(query, tree.RootNode())

	var out []Import
	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, c := range m.Captures {
			switch query.CaptureNameForId(c.Index) {
			case "import":
				out = append(out, plainImports(c.Node, src)...)
			case "from":
				if imp, ok := fromImport(c.Node, src); ok {
					out = append(out, imp)
				}
			}
		}
	}
	return out, nil
}

// plainImports handles "import a.b, c as d".
func plainImports(n *sitter.Node, src []byte) []Import {
	var out []Import
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if name := importedName(n.NamedChild(i), src); name != "" {
			out = append(out, Import{Module: name})
		}
	}
	return out
}

// fromImport handles "from [.]*a.b import c, d as e" and wildcards.
func fromImport(n *sitter.Node, src []byte) (Import, bool) {
	mod := n.ChildByFieldName("module_name")
	if mod == nil {
		return Import{}, false
	}

	var imp Import
	text := compact(mod.Content(src))
	if mod.Type() == "relative_import" {
		trimmed := strings.TrimLeft(text, ".")
		imp.Level = len(text) - len(trimmed)
		imp.Module = trimmed
	} else {
		imp.Module = text
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.StartByte() == mod.StartByte() {
			continue
		}
		if child.Type() == "wildcard_import" {
			imp.Names = append(imp.Names, "*")
			continue
		}
		if name := importedName(child, src); name != "" {
			imp.Names = append(imp.Names, name)
		}
	}
	return imp, true
}

// importedName returns the dotted name of a dotted_name or aliased_import node.
func importedName(n *sitter.Node, src []byte) string {
	switch n.Type() {
	case "dotted_name":
		return compact(n.Content(src))
	case "aliased_import":
		if name := n.ChildByFieldName("name"); name != nil {
			return compact(name.Content(src))
		}
	}
	return ""
}

// compact drops whitespace inside a dotted name ("a . b" is legal Python).
func compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}
