// Package pipeline runs a complete class dependency analysis of a project.
//
// # Architecture
//
// The pipeline has two halves:
//
//  1. Scan: walk the project, keep files of a supported language, and extract
//     each file's class declarations and import statements. Files are
//     scanned in parallel and results are cached by content hash.
//  2. Build: reduce the scan results in sorted path order into class
//     inventories, index them, reconcile module dependencies down to classes,
//     and build the node/edge document.
//
// The reduction is sequential, so node ids are identical from run to run for
// an unchanged tree regardless of scan parallelism.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Root:   ".",
//	    Output: "classgraph.json",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Stats.Nodes, "nodes")
package pipeline

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/classgraph/pkg/config"
	errs "github.com/matzehuels/classgraph/pkg/errors"
	"github.com/matzehuels/classgraph/pkg/graph"
	"github.com/matzehuels/classgraph/pkg/scan"
)

// Format constants for output formats.
const (
	FormatJSON = config.FormatJSON
	FormatDOT  = config.FormatDOT
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: json, dot)", format)
	}
	return nil
}

// Options configures one pipeline run.
type Options struct {
	// Root is the project directory to analyze.
	Root string

	// Output is the file the document is written to. Empty skips writing.
	Output string

	// Format is FormatJSON or FormatDOT (default: FormatJSON).
	Format string

	// Workers bounds scan parallelism (default: GOMAXPROCS).
	Workers int

	// Ignore lists directory names never descended into
	// (default: scan.DefaultIgnore).
	Ignore []string

	// TestMarkers, Weight and ModuleValue are passed to the graph builder.
	TestMarkers []string
	Weight      graph.WeightFunc
	ModuleValue int

	// Logger receives per-file diagnostics (default: discard).
	Logger *log.Logger

	validated bool
}

// FromConfig returns the options for analyzing root with cfg.
func FromConfig(root string, cfg *config.Config) Options {
	return Options{
		Root:        root,
		Output:      cfg.Output,
		Format:      cfg.Format,
		Workers:     cfg.Workers,
		Ignore:      cfg.Ignore,
		TestMarkers: cfg.TestMarkers,
		Weight:      cfg.WeightFunc(),
		ModuleValue: cfg.Weight.Base,
	}
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Calling it more than once has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Root == "" {
		return fmt.Errorf("root is required")
	}
	if o.Format == "" {
		o.Format = FormatJSON
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if o.Workers < 0 {
		return fmt.Errorf("workers must not be negative: %d", o.Workers)
	}
	if o.Workers == 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Ignore == nil {
		o.Ignore = scan.DefaultIgnore
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// BuildOptions returns the graph builder options for o.
func (o *Options) BuildOptions() graph.Options {
	return graph.Options{
		Language:    graph.LanguagePython,
		Weight:      o.Weight,
		ModuleValue: o.ModuleValue,
		TestMarkers: o.TestMarkers,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the built node/edge document.
	Document *graph.Document

	// Output is the path the document was written to, if any.
	Output string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Files     int // Regular files found under the root
	Skipped   int // Files of an unsupported language
	Failed    int // Files that could not be read
	Scanned   int // Files scanned successfully
	CacheHits int // Scans served from the cache
	Classes   int // Distinct class names indexed
	Nodes     int
	Edges     int
	ScanTime  time.Duration
	BuildTime time.Duration
}
