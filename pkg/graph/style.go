package graph

// LanguagePython keys the Python styles of a [Palette].
const LanguagePython = "python"

// Style is the presentation of one category: node colors plus the color of
// edges leaving such a node.
type Style struct {
	Node NodeColor
	Edge EdgeColor
}

// Palette maps language and category to a Style.
type Palette map[string]map[Category]Style

// DefaultPalette holds the built-in styles.
var DefaultPalette = Palette{
	LanguagePython: {
		CategoryClass: {
			Node: NodeColor{
				Background: "#97C2FC",
				Border:     "#2B7CE9",
				Highlight:  Highlight{Background: "#D2E5FF", Border: "#2B7CE9"},
			},
			Edge: EdgeColor{Color: "#2B7CE9", Highlight: "#1A4F99"},
		},
		CategoryTestCase: {
			Node: NodeColor{
				Background: "#7BE141",
				Border:     "#41A906",
				Highlight:  Highlight{Background: "#A1EC76", Border: "#41A906"},
			},
			Edge: EdgeColor{Color: "#41A906", Highlight: "#2B7004"},
		},
		CategoryModule: {
			Node: NodeColor{
				Background: "#FFD571",
				Border:     "#FFA807",
				Highlight:  Highlight{Background: "#FFE6A8", Border: "#FFA807"},
			},
			Edge: EdgeColor{Color: "#FFA807", Highlight: "#C27F00"},
		},
	},
}

// Style returns the style for language and category. Unknown languages fall
// back to the Python styles.
func (p Palette) Style(language string, c Category) Style {
	if styles, ok := p[language]; ok {
		if s, ok := styles[c]; ok {
			return s
		}
	}
	return DefaultPalette[LanguagePython][c]
}
