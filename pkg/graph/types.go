package graph

// Document is the serialized graph: nodes plus directed edges.
type Document struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is one class or module of the document.
type Node struct {
	ID    int       `json:"id"`
	Label string    `json:"label"`
	Group string    `json:"group,omitempty"` // Category name
	Value int       `json:"value"`           // Visual weight
	Color NodeColor `json:"color"`
}

// Edge is a directed dependency from one node to another.
type Edge struct {
	From  int       `json:"from"`
	To    int       `json:"to"`
	Color EdgeColor `json:"color"`
}

// NodeColor is the fill/border styling of a node.
type NodeColor struct {
	Background string    `json:"background"`
	Border     string    `json:"border"`
	Highlight  Highlight `json:"highlight"`
}

// Highlight is the styling of a selected node.
type Highlight struct {
	Background string `json:"background"`
	Border     string `json:"border"`
}

// EdgeColor is the styling of an edge.
type EdgeColor struct {
	Color     string `json:"color"`
	Highlight string `json:"highlight"`
}

// NodeCount returns the number of nodes.
func (d *Document) NodeCount() int { return len(d.Nodes) }

// EdgeCount returns the number of edges.
func (d *Document) EdgeCount() int { return len(d.Edges) }

// Node returns the node with the given id.
func (d *Document) Node(id int) (Node, bool) {
	for _, n := range d.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// NodeByLabel returns the first node with the given label.
func (d *Document) NodeByLabel(label string) (Node, bool) {
	for _, n := range d.Nodes {
		if n.Label == label {
			return n, true
		}
	}
	return Node{}, false
}

// OutDegree returns the number of edges leaving id.
func (d *Document) OutDegree(id int) int {
	n := 0
	for _, e := range d.Edges {
		if e.From == id {
			n++
		}
	}
	return n
}
