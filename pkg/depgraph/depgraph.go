// Package depgraph holds the logical class dependency graph produced by
// reconciliation and consumed by the graph builder.
//
// A [Graph] maps each label (a class name or a module name) to an [Entry].
// Class entries carry an ordered list of dependency labels. Module entries
// are leaves: they stand for modules that host no inventoried class, such as
// standard-library or third-party imports, and track no dependencies.
//
// Labels iterate in insertion order so that downstream identifier assignment
// is deterministic.
package depgraph

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidLabel is returned by [Graph.AddClass] and [Graph.AddModule]
	// when the label is empty.
	ErrInvalidLabel = errors.New("label must not be empty")

	// ErrDuplicateLabel is returned by [Graph.AddClass] and [Graph.AddModule]
	// when the label is already present. Labels are unique across classes
	// and modules.
	ErrDuplicateLabel = errors.New("duplicate label")
)

// Kind distinguishes class entries from module-only entries.
type Kind int

const (
	// KindClass is an inventoried class with a (possibly empty) dependency list.
	KindClass Kind = iota
	// KindModule is a module that no inventoried class lives in.
	KindModule
)

// String returns "class" or "module".
func (k Kind) String() string {
	if k == KindModule {
		return "module"
	}
	return "class"
}

// Entry is one label of the graph.
type Entry struct {
	Label        string   // Class name as scanned, or module name
	Kind         Kind     // KindClass or KindModule
	Dependencies []string // Dependency labels in order; always nil for modules
}

// IsModule reports whether the entry is a module-only leaf.
func (e Entry) IsModule() bool { return e.Kind == KindModule }

// Graph is an insertion-ordered mapping from label to [Entry].
//
// The zero value is not usable - use New.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	order   []string
	entries map[string]*Entry
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{entries: make(map[string]*Entry)}
}

// AddClass adds a class label with its dependency labels.
// The dependency slice is copied.
func (g *Graph) AddClass(label string, deps []string) error {
	return g.add(&Entry{Label: label, Kind: KindClass, Dependencies: slices.Clone(deps)})
}

// AddModule adds a module-only label.
func (g *Graph) AddModule(label string) error {
	return g.add(&Entry{Label: label, Kind: KindModule})
}

func (g *Graph) add(e *Entry) error {
	if e.Label == "" {
		return ErrInvalidLabel
	}
	if _, exists := g.entries[e.Label]; exists {
		return ErrDuplicateLabel
	}
	g.entries[e.Label] = e
	g.order = append(g.order, e.Label)
	return nil
}

// Has reports whether label is present.
func (g *Graph) Has(label string) bool {
	_, ok := g.entries[label]
	return ok
}

// Entry returns the entry for label and true, or nil and false if not found.
// The returned pointer refers to the graph's own entry.
func (g *Graph) Entry(label string) (*Entry, bool) {
	e, ok := g.entries[label]
	return e, ok
}

// Labels returns all labels in insertion order.
func (g *Graph) Labels() []string { return slices.Clone(g.order) }

// Entries returns all entries in insertion order.
func (g *Graph) Entries() []*Entry {
	out := make([]*Entry, len(g.order))
	for i, l := range g.order {
		out[i] = g.entries[l]
	}
	return out
}

// Len returns the number of labels.
func (g *Graph) Len() int { return len(g.order) }

// Modules returns the labels of module-only entries in insertion order.
func (g *Graph) Modules() []string {
	var out []string
	for _, l := range g.order {
		if g.entries[l].IsModule() {
			out = append(out, l)
		}
	}
	return out
}

// DependencyCount returns the total number of dependency labels across all
// class entries, counting repeats.
func (g *Graph) DependencyCount() int {
	n := 0
	for _, e := range g.entries {
		n += len(e.Dependencies)
	}
	return n
}
