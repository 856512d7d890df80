// Package pkg provides the libraries behind classgraph, a static analyzer
// that recovers class-level dependencies from a Python project.
//
// # Overview
//
// Import statements tie files to files; classgraph collapses that
// file-level picture down to classes. A class depends on another class when
// its file imports the module that class lives in. Imports of modules that
// host no scanned class (the standard library, third-party packages) are
// kept as module-only leaves.
//
// # Architecture
//
// The data flow of one run:
//
//	project directory
//	         ↓
//	    [scan] (walk, detect language, extract class declarations)
//	         ↓
//	    [imports] (parse import statements, resolve them to files)
//	         ↓
//	    [classgraph] (module identities, class-module index, reconciliation)
//	         ↓
//	    [depgraph] (ordered label → dependencies graph)
//	         ↓
//	    [graph] (ids, categories, weights, colors)
//	         ↓
//	    [io] (JSON or DOT document)
//
// [pipeline] runs all of the above, scanning files in parallel and reducing
// the results sequentially so that node ids are stable from run to run.
//
// # Quick Start
//
//	import (
//	    "context"
//	    "fmt"
//
//	    "github.com/matzehuels/classgraph/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil, nil)
//	result, _ := runner.Execute(context.Background(), pipeline.Options{
//	    Root:   "./myproject",
//	    Output: "classgraph.json",
//	})
//	fmt.Println(result.Stats.Nodes, "nodes,", result.Stats.Edges, "edges")
//
// # Supporting Packages
//
// [config] loads .classgraph.toml and CLASSGRAPH_* overrides. [cache] keeps
// per-file scan results keyed by content hash. [errors] defines coded errors.
// [observability] exposes optional pipeline and cache hooks. [buildinfo]
// carries ldflags version data.
//
// [scan]: https://pkg.go.dev/github.com/matzehuels/classgraph/pkg/scan
// [imports]: https://pkg.go.dev/github.com/matzehuels/classgraph/pkg/imports
// [classgraph]: https://pkg.go.dev/github.com/matzehuels/classgraph/pkg/classgraph
// [depgraph]: https://pkg.go.dev/github.com/matzehuels/classgraph/pkg/depgraph
// [graph]: https://pkg.go.dev/github.com/matzehuels/classgraph/pkg/graph
// [io]: https://pkg.go.dev/github.com/matzehuels/classgraph/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/classgraph/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/classgraph/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/classgraph/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/classgraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/classgraph/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/classgraph/pkg/buildinfo
package pkg
