package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/classgraph/pkg/imports"
)

// scanFinder answers dependency lookups from already-parsed imports, so no
// file is read twice.
type scanFinder struct {
	resolver *imports.Resolver
	scans    map[string]*fileScan
}

func newScanFinder(root string, scans []*fileScan) *scanFinder {
	f := &scanFinder{
		resolver: imports.NewResolver(root),
		scans:    make(map[string]*fileScan, len(scans)),
	}
	for _, s := range scans {
		f.scans[s.path] = s
	}
	return f
}

func (f *scanFinder) FindDependencies(ctx context.Context, path string) ([]string, error) {
	s, ok := f.scans[path]
	if !ok {
		return nil, fmt.Errorf("%s was not scanned", path)
	}
	if s.importErr != nil {
		return nil, fmt.Errorf("parse imports: %w", s.importErr)
	}
	return f.resolver.Resolve(path, s.Imports), nil
}
