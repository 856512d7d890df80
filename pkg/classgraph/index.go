package classgraph

import (
	"context"
	"slices"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/classgraph/pkg/errors"
)

// ClassInventory maps a file path to the class names declared in it, in
// declaration order. A well-formed inventory covers exactly one file.
type ClassInventory map[string][]string

// NewInventory creates a single-file inventory.
func NewInventory(filePath string, classes []string) ClassInventory {
	return ClassInventory{filePath: classes}
}

// File returns the inventory's only file and its classes. It returns an
// INVALID_INVENTORY error when the inventory covers zero or several files.
func (inv ClassInventory) File() (string, []string, error) {
	if len(inv) != 1 {
		return "", nil, errs.New(errs.ErrCodeInvalidInventory, "inventory covers %d files, want 1", len(inv))
	}
	for path, classes := range inv {
		return path, classes, nil
	}
	return "", nil, nil
}

// DependencyFinder returns the files a source file statically depends on.
type DependencyFinder interface {
	FindDependencies(ctx context.Context, filePath string) ([]string, error)
}

// FinderFunc adapts a function to [DependencyFinder].
type FinderFunc func(ctx context.Context, filePath string) ([]string, error)

// FindDependencies calls f.
func (f FinderFunc) FindDependencies(ctx context.Context, filePath string) ([]string, error) {
	return f(ctx, filePath)
}

// Entry is the class-module record for one class name. Classes declared in
// the same file share one Entry; treat it as read-only.
type Entry struct {
	Module       ModuleIdentity // Module the class lives in
	Dependencies []string       // Module names the file depends on, deduplicated, in finder order
}

// Index maps class names to their [Entry], in first-insertion order.
//
// The zero value is not usable - use NewIndex.
type Index struct {
	order   []string
	entries map[string]*Entry
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{entries: make(map[string]*Entry)}
}

// Set inserts or replaces the entry for class. A replaced class keeps its
// original position in iteration order.
func (x *Index) Set(class string, e *Entry) {
	if _, exists := x.entries[class]; !exists {
		x.order = append(x.order, class)
	}
	x.entries[class] = e
}

// Get returns the entry for class.
func (x *Index) Get(class string) (*Entry, bool) {
	e, ok := x.entries[class]
	return e, ok
}

// Classes returns the indexed class names in iteration order.
func (x *Index) Classes() []string { return slices.Clone(x.order) }

// Len returns the number of indexed class names.
func (x *Index) Len() int { return len(x.order) }

// BuildIndex builds the class-module index from inventories, asking finder
// for each file's dependencies.
//
// Per-item anomalies are logged to logger and never abort the build:
// malformed inventories are skipped, and a finder failure leaves the file's
// classes without dependencies. A nil logger uses log.Default(). The only
// error returned is ctx's.
func BuildIndex(ctx context.Context, inventories []ClassInventory, finder DependencyFinder, logger *log.Logger) (*Index, error) {
	if logger == nil {
		logger = log.Default()
	}
	idx := NewIndex()

	for _, inv := range inventories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path, classes, err := inv.File()
		if err != nil {
			logger.Warn("skipping inventory", "err", err)
			continue
		}
		module := Identify(path)

		files, err := finder.FindDependencies(ctx, path)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Warn("dependency lookup failed", "file", path, "err", err)
			files = nil
		}

		entry := &Entry{Module: module, Dependencies: dependencyModules(files)}
		for _, class := range classes {
			if class == "" {
				continue
			}
			if prev, ok := idx.Get(class); ok && prev.Module.FilePath != path {
				logger.Debug("class redeclared, keeping last", "class", class, "was", prev.Module.FilePath, "now", path)
			}
			idx.Set(class, entry)
		}
	}
	return idx, nil
}

// dependencyModules maps dependency files to module names, dropping empty
// names and repeats.
func dependencyModules(files []string) []string {
	var out []string
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		name := Identify(f).Name
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
