package imports

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolver maps imports to project files.
type Resolver struct {
	Root string // Project root; absolute imports are searched here first

	isFile func(path string) bool
}

// NewResolver creates a resolver for the project at root.
func NewResolver(root string) *Resolver {
	return &Resolver{Root: root, isFile: isRegularFile}
}

// Resolve returns the files the file at from depends on through imps,
// deduplicated, in import order.
func (r *Resolver) Resolve(from string, imps []Import) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(paths ...string) {
		for _, p := range paths {
			if p != "" && !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}

	for _, imp := range imps {
		if imp.Relative() {
			add(r.resolveRelative(from, imp)...)
		} else {
			add(r.resolveAbsolute(from, imp)...)
		}
	}
	return out
}

func (r *Resolver) resolveRelative(from string, imp Import) []string {
	base := filepath.Dir(from)
	for range imp.Level - 1 {
		base = filepath.Dir(base)
	}
	if found := r.fromImport(base, imp); len(found) > 0 {
		return found
	}
	if imp.Module == "" {
		// "from . import x" where x is not a module: the package itself.
		if p, ok := r.module(base, ""); ok {
			return []string{p}
		}
	}
	return nil
}

func (r *Resolver) resolveAbsolute(from string, imp Import) []string {
	for _, base := range r.searchPath(from) {
		if found := r.fromImport(base, imp); len(found) > 0 {
			return found
		}
	}
	top, _, _ := strings.Cut(imp.Module, ".")
	if top == "" {
		return nil
	}
	return []string{top + ".py"}
}

// fromImport resolves imp against base: imported submodules first, then the
// module itself.
func (r *Resolver) fromImport(base string, imp Import) []string {
	var found []string
	for _, name := range imp.Names {
		if name == "*" {
			continue
		}
		if p, ok := r.module(base, joinDotted(imp.Module, name)); ok {
			found = append(found, p)
		}
	}
	if len(found) > 0 {
		return found
	}
	if imp.Module == "" {
		return nil
	}
	if p, ok := r.module(base, imp.Module); ok {
		return []string{p}
	}
	return nil
}

// module returns the file implementing dotted module name under base: the
// .py file, else the package initializer.
func (r *Resolver) module(base, dotted string) (string, bool) {
	dir := base
	if dotted != "" {
		dir = filepath.Join(base, filepath.FromSlash(strings.ReplaceAll(dotted, ".", "/")))
		if r.isFile(dir + ".py") {
			return dir + ".py", true
		}
	}
	if p := filepath.Join(dir, "__init__.py"); r.isFile(p) {
		return p, true
	}
	return "", false
}

func (r *Resolver) searchPath(from string) []string {
	dir := filepath.Dir(from)
	if r.Root == "" || filepath.Clean(r.Root) == dir {
		return []string{dir}
	}
	return []string{r.Root, dir}
}

func joinDotted(module, name string) string {
	if module == "" {
		return name
	}
	return module + "." + name
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
