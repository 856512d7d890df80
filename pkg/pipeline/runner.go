package pipeline

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/classgraph/pkg/cache"
	"github.com/matzehuels/classgraph/pkg/classgraph"
	errs "github.com/matzehuels/classgraph/pkg/errors"
	"github.com/matzehuels/classgraph/pkg/graph"
	cgio "github.com/matzehuels/classgraph/pkg/io"
	"github.com/matzehuels/classgraph/pkg/observability"
	"github.com/matzehuels/classgraph/pkg/scan"
)

// Runner executes the pipeline with a scan cache.
//
// The Runner holds no per-run state, so multiple goroutines can use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching; a nil logger
// uses log.Default().
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs scan → index → reconcile → build → write.
//
// Only boundary failures are returned: an unusable root (INVALID_PATH), a
// failed output write (IO_ERROR), invalid options, or context cancellation.
// Per-file problems are logged and the file is left out.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "invalid options")
	}
	r = r.forRun(opts)

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidPath, err, "resolve %s", opts.Root)
	}

	result := &Result{}

	scanStart := time.Now()
	scans, err := r.scan(ctx, root, opts, &result.Stats)
	result.Stats.ScanTime = time.Since(scanStart)
	observability.Pipeline().OnScanComplete(ctx, root, result.Stats.Scanned, result.Stats.ScanTime, err)
	if err != nil {
		return nil, err
	}
	r.Logger.Info("scanned project",
		"files", result.Stats.Scanned,
		"skipped", result.Stats.Skipped,
		"cached", result.Stats.CacheHits,
		"duration", result.Stats.ScanTime)

	buildStart := time.Now()
	doc, classes, err := r.build(ctx, root, scans, opts)
	result.Stats.BuildTime = time.Since(buildStart)
	if err != nil {
		observability.Pipeline().OnBuildComplete(ctx, 0, 0, result.Stats.BuildTime, err)
		return nil, err
	}
	observability.Pipeline().OnBuildComplete(ctx, doc.NodeCount(), doc.EdgeCount(), result.Stats.BuildTime, nil)

	result.Document = doc
	result.Stats.Classes = classes
	result.Stats.Nodes = doc.NodeCount()
	result.Stats.Edges = doc.EdgeCount()
	r.Logger.Info("built graph",
		"classes", classes,
		"nodes", result.Stats.Nodes,
		"edges", result.Stats.Edges,
		"duration", result.Stats.BuildTime)

	if opts.Output != "" {
		if err := write(doc, opts.Output, opts.Format); err != nil {
			return nil, err
		}
		result.Output = opts.Output
		r.Logger.Debug("wrote document", "path", opts.Output, "format", opts.Format)
	}
	return result, nil
}

// scan walks root and scans every file of a supported language. Results for
// readable files are returned in path order.
func (r *Runner) scan(ctx context.Context, root string, opts Options, stats *Stats) ([]*fileScan, error) {
	files, err := scan.Walk(root, opts.Ignore)
	if err != nil {
		return nil, err
	}
	stats.Files = len(files)

	var sources []string
	for _, f := range files {
		if scan.DetectLanguage(f) != scan.LanguagePython {
			if strings.HasPrefix(filepath.Base(f), ".") {
				r.Logger.Debug("language unknown", "file", f)
			} else {
				r.Logger.Info("language unknown", "file", f)
			}
			stats.Skipped++
			continue
		}
		sources = append(sources, f)
	}
	observability.Pipeline().OnScanStart(ctx, root, len(sources))

	results, err := r.scanFiles(ctx, sources, scan.LanguagePython, opts.Workers)
	if err != nil {
		return nil, err
	}

	scans := make([]*fileScan, 0, len(results))
	for _, s := range results {
		if s.readErr != nil {
			r.Logger.Warn("unreadable file", "file", s.path, "err", s.readErr)
			stats.Failed++
			continue
		}
		if s.cached {
			stats.CacheHits++
		}
		scans = append(scans, s)
	}
	stats.Scanned = len(scans)
	return scans, nil
}

// build reduces scans into the document. It returns the number of indexed
// class names alongside.
func (r *Runner) build(ctx context.Context, root string, scans []*fileScan, opts Options) (*graph.Document, int, error) {
	inventories := make([]classgraph.ClassInventory, 0, len(scans))
	for _, s := range scans {
		if len(s.Classes) == 0 {
			continue
		}
		inventories = append(inventories, classgraph.NewInventory(s.path, s.Classes))
	}
	observability.Pipeline().OnBuildStart(ctx, len(inventories))

	idx, err := classgraph.BuildIndex(ctx, inventories, newScanFinder(root, scans), r.Logger)
	if err != nil {
		return nil, 0, err
	}
	g, err := classgraph.Reconcile(idx)
	if err != nil {
		return nil, 0, errs.Wrap(errs.ErrCodeInternal, err, "reconcile")
	}
	return graph.Build(g, graph.NewCounter(graph.FirstID), opts.BuildOptions()), idx.Len(), nil
}

func write(doc *graph.Document, path, format string) error {
	var err error
	switch format {
	case FormatDOT:
		err = cgio.ExportDOT(doc, path)
	default:
		err = cgio.ExportJSON(doc, path)
	}
	if err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "write %s", path)
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// forRun returns a copy of r that logs to the run's logger and always has a
// cache.
func (r *Runner) forRun(opts Options) *Runner {
	run := &Runner{Cache: r.Cache, Logger: opts.Logger}
	if run.Cache == nil {
		run.Cache = cache.NewNullCache()
	}
	return run
}

