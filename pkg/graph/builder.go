package graph

import "github.com/matzehuels/classgraph/pkg/depgraph"

// FirstID is the identifier of the first node of a run.
const FirstID = 1

// Options configures [Build]. The zero value uses Python styles, the
// default weight function and the default test markers.
type Options struct {
	Language    string     // Palette key (default: python)
	Weight      WeightFunc // Class weight (default: DefaultWeight)
	ModuleValue int        // Module-only node weight (default: BaseWeight)
	TestMarkers []string   // Unit-test base-class markers (default: DefaultTestMarkers)
	Palette     Palette    // Styles (default: DefaultPalette)
}

func (o *Options) setDefaults() {
	if o.Language == "" {
		o.Language = LanguagePython
	}
	if o.Weight == nil {
		o.Weight = DefaultWeight
	}
	if o.ModuleValue <= 0 {
		o.ModuleValue = BaseWeight
	}
	if o.TestMarkers == nil {
		o.TestMarkers = DefaultTestMarkers
	}
	if o.Palette == nil {
		o.Palette = DefaultPalette
	}
}

// Build converts g into a Document, drawing identifiers from ids in label
// order. A nil ids starts a fresh counter at FirstID.
//
// Edges are emitted per dependency in order and are not deduplicated.
func Build(g *depgraph.Graph, ids *Counter, opts Options) *Document {
	opts.setDefaults()
	if ids == nil {
		ids = NewCounter(FirstID)
	}

	entries := g.Entries()
	doc := &Document{
		Nodes: make([]Node, 0, len(entries)),
		Edges: []Edge{},
	}
	byLabel := make(map[string]int, len(entries))
	categories := make([]Category, len(entries))

	for i, e := range entries {
		id := ids.Next()
		byLabel[e.Label] = id

		var cat Category
		var value int
		if e.IsModule() {
			cat, value = CategoryModule, opts.ModuleValue
		} else {
			cat, value = ClassifyClass(e.Label, opts.TestMarkers), opts.Weight(len(e.Dependencies))
		}
		categories[i] = cat

		doc.Nodes = append(doc.Nodes, Node{
			ID:    id,
			Label: StripAnnotation(e.Label),
			Group: cat.String(),
			Value: value,
			Color: opts.Palette.Style(opts.Language, cat).Node,
		})
	}

	for i, e := range entries {
		if e.IsModule() {
			continue
		}
		from := doc.Nodes[i].ID
		edgeColor := opts.Palette.Style(opts.Language, categories[i]).Edge
		for _, dep := range e.Dependencies {
			to, ok := byLabel[dep]
			if !ok {
				continue
			}
			doc.Edges = append(doc.Edges, Edge{From: from, To: to, Color: edgeColor})
		}
	}
	return doc
}
