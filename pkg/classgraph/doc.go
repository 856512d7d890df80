// Package classgraph turns per-file class inventories and file-level
// dependencies into a class-level dependency graph.
//
// # Overview
//
// The package implements the three resolution steps that sit between the
// scanner and the graph builder:
//
//  1. Module identity: [ResolveModule] normalizes a file's module name,
//     mapping package initializers ("__init__") to their directory name.
//  2. Class-module index: [BuildIndex] records, for every class name, the
//     module it lives in and the modules that module depends on.
//  3. Reconciliation: [Reconcile] rewrites module dependencies into class
//     dependencies wherever a dependency module hosts an inventoried class,
//     and keeps the rest as module-only leaves.
//
// # Collisions
//
// Two policies are "last write wins" and are kept deliberately:
//
//   - Two files declaring the same class name: the later file's entry
//     replaces the earlier one in the [Index]. The key keeps its original
//     position so iteration order is unchanged.
//   - Several classes in one module: the module is represented by the last
//     class seen for it when other classes depend on that module.
//
// # Determinism
//
// Every container iterated to produce output is insertion ordered. Given the
// same inventories in the same order, [Reconcile] returns the same graph.
package classgraph
