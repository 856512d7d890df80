// Package io reads and writes class dependency documents.
//
// # JSON Format
//
// The JSON form is the canonical output of an analysis run: two top-level
// arrays shaped for network-graph front ends such as vis.js.
//
//	{
//	  "nodes": [
//	    {"id": 1, "label": "Parser", "group": "class", "value": 8,
//	     "color": {"background": "#97C2FC", "border": "#2B7CE9",
//	               "highlight": {"background": "#D2E5FF", "border": "#2B7CE9"}}},
//	    {"id": 2, "label": "os", "group": "module", "value": 4, "color": {...}}
//	  ],
//	  "edges": [
//	    {"from": 1, "to": 2, "color": {"color": "#2B7CE9", "highlight": "#2B7CE9"}}
//	  ]
//	}
//
// Use [WriteJSON] or [ExportJSON] to write a document and [ReadJSON] or
// [ImportJSON] to read one back. Reading validates that node ids are unique
// and that every edge references an existing node.
//
// # DOT Format
//
// [WriteDOT] emits the same document as a Graphviz digraph description, with
// node colors carried over as fill and border attributes. Nothing in this
// package draws the graph.
package io
