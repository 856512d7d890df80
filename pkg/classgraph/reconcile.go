package classgraph

import (
	"fmt"

	"github.com/matzehuels/classgraph/pkg/depgraph"
)

// Reconcile converts the module-level dependencies in idx into a class-level
// dependency graph.
//
// A dependency module that hosts at least one indexed class is replaced by
// that module's representative class (the last one seen in index order).
// Any other dependency module is kept as a bare module label and added to the
// graph as a module-only leaf after all classes. A module label that collides
// with a class label is not added again; the class entry stands.
func Reconcile(idx *Index) (*depgraph.Graph, error) {
	classes := idx.Classes()

	moduleToClass := make(map[string]string)
	for _, class := range classes {
		e, _ := idx.Get(class)
		moduleToClass[e.Module.Name] = class
	}

	var external []string
	seenExternal := make(map[string]bool)
	for _, class := range classes {
		e, _ := idx.Get(class)
		for _, dep := range e.Dependencies {
			if _, hosted := moduleToClass[dep]; hosted || seenExternal[dep] {
				continue
			}
			seenExternal[dep] = true
			external = append(external, dep)
		}
	}

	g := depgraph.New()
	for _, class := range classes {
		e, _ := idx.Get(class)
		labels := make([]string, 0, len(e.Dependencies))
		for _, dep := range e.Dependencies {
			if rep, ok := moduleToClass[dep]; ok {
				labels = append(labels, rep)
			} else {
				labels = append(labels, dep)
			}
		}
		if err := g.AddClass(class, labels); err != nil {
			return nil, fmt.Errorf("class %s: %w", class, err)
		}
	}

	for _, module := range external {
		if g.Has(module) {
			continue
		}
		if err := g.AddModule(module); err != nil {
			return nil, fmt.Errorf("module %s: %w", module, err)
		}
	}
	return g, nil
}
