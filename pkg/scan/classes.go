package scan

import "strings"

var blockDelimiters = []string{`"""`, `'''`}

// ExtractClasses returns the class names declared in text, in order.
//
// For a declaration line the name is the text after "class " up to the first
// ':' with surrounding spaces removed. Comment lines and lines inside
// triple-quoted blocks are ignored. A block opened on a declaration line,
// such as a docstring, does not hide the declaration itself.
func ExtractClasses(text string) []string {
	var classes []string
	var closing string // delimiter that ends the current block, "" outside blocks

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if closing != "" {
			if strings.Count(trimmed, closing)%2 == 1 {
				closing = ""
			}
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			continue
		}
		code := trimmed
		if name, ok := className(trimmed); ok {
			classes = append(classes, name)
			code = headerBody(trimmed)
		}
		closing = openedBlock(code)
	}
	return classes
}

// openedBlock returns the delimiter of a triple-quoted block left open at the
// end of line, or "".
func openedBlock(line string) string {
	first, delim := -1, ""
	for _, d := range blockDelimiters {
		if i := strings.Index(line, d); i >= 0 && (first < 0 || i < first) {
			first, delim = i, d
		}
	}
	if delim == "" || strings.Count(line, delim)%2 == 0 {
		return ""
	}
	return delim
}

// headerBody returns the statement text after the ':' of a class header,
// without a trailing comment.
func headerBody(line string) string {
	_, body, _ := strings.Cut(line, ":")
	body, _, _ = strings.Cut(body, "#")
	return body
}

func className(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, "class ")
	if !ok {
		rest, ok = strings.CutPrefix(line, "class\t")
	}
	if !ok {
		return "", false
	}
	name, _, _ := strings.Cut(rest, ":")
	name = strings.TrimSpace(name)
	return name, name != ""
}
