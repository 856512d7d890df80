package pipeline

import (
	"context"
	"encoding/json"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/classgraph/pkg/cache"
	"github.com/matzehuels/classgraph/pkg/imports"
	"github.com/matzehuels/classgraph/pkg/observability"
	"github.com/matzehuels/classgraph/pkg/scan"
)

const scanKeyType = "scan"

// fileScan is the per-file result of the scan stage. It is what the cache
// stores.
type fileScan struct {
	Classes []string         `json:"classes"`
	Imports []imports.Import `json:"imports"`

	path      string
	importErr error
	readErr   error
	cached    bool
}

// scanFiles scans files in parallel, bounded by workers. The result is
// indexed like files. Per-file failures are recorded on the result; the only
// error returned is the context's.
func (r *Runner) scanFiles(ctx context.Context, files []string, lang scan.Language, workers int) ([]*fileScan, error) {
	results := make([]*fileScan, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.scanFile(ctx, path, lang)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) scanFile(ctx context.Context, path string, lang scan.Language) *fileScan {
	src, err := os.ReadFile(path)
	if err != nil {
		return &fileScan{path: path, readErr: err}
	}

	key := cache.ScanKey(lang.String(), cache.Hash(src))
	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		var fs fileScan
		if json.Unmarshal(data, &fs) == nil {
			observability.Cache().OnCacheHit(ctx, scanKeyType)
			fs.path, fs.cached = path, true
			return &fs
		}
	}
	observability.Cache().OnCacheMiss(ctx, scanKeyType)

	fs := &fileScan{path: path, Classes: scan.ExtractClasses(string(src))}
	fs.Imports, fs.importErr = imports.Parse(ctx, src)
	if fs.importErr != nil {
		return fs
	}

	if data, err := json.Marshal(fs); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.ScanTTL); err != nil {
			r.Logger.Debug("cache write failed", "file", path, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, scanKeyType, len(data))
		}
	}
	return fs
}
