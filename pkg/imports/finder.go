package imports

import (
	"context"
	"fmt"
	"os"
)

// Finder reads a Python file and resolves its imports.
//
// It is the standalone form of the dependency finder that
// classgraph.BuildIndex accepts: it parses each file on demand. The pipeline
// uses its own finder that serves already scanned (and cached) imports
// through the same Resolver.
type Finder struct {
	Resolver *Resolver
}

// NewFinder creates a finder for the project at root.
func NewFinder(root string) *Finder {
	return &Finder{Resolver: NewResolver(root)}
}

// FindDependencies returns the files the Python file at path depends on.
func (f *Finder) FindDependencies(ctx context.Context, path string) ([]string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	imps, err := Parse(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f.Resolver.Resolve(path, imps), nil
}
