// Package graph builds the visualization-ready node/edge document from a
// class dependency graph.
//
// # Architecture
//
// The package sits at the serialization boundary of classgraph:
//
//   - pkg/depgraph.Graph: logical label → dependencies mapping (input)
//   - [Document], [Node], [Edge]: wire format consumed by visualization layers (output)
//
// [Build] walks the input twice. Pass one allocates an integer identifier per
// label from a [Counter], classifies it into a [Category] and computes its
// weight. Pass two emits one directed edge per dependency whose label was
// promoted to a node; dependencies that never became a node are dropped.
//
// # Wire Format
//
//	{
//	  "nodes": [
//	    {"id": 1, "label": "A", "group": "class", "value": 8,
//	     "color": {"background": "#97C2FC", "border": "#2B7CE9",
//	               "highlight": {"background": "#D2E5FF", "border": "#2B7CE9"}}}
//	  ],
//	  "edges": [
//	    {"from": 1, "to": 2, "color": {"color": "#2B7CE9", "highlight": "#1A4F99"}}
//	  ]
//	}
//
// Colors are categorical tokens from a [Palette] keyed by language and
// category; they never affect topology.
//
// # Labels
//
// Class labels may carry the scanner's base-class annotation, e.g.
// "T(unittest.TestCase)". The annotation drives classification and is then
// stripped from the stored label. Edge matching uses the label as scanned.
package graph
