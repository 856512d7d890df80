package graph

import "strings"

// Category is the display class of a node.
type Category int

const (
	// CategoryClass is an ordinary class.
	CategoryClass Category = iota
	// CategoryTestCase is a class deriving from a unit-test base class.
	CategoryTestCase
	// CategoryModule is a module hosting no inventoried class.
	CategoryModule
)

var categoryNames = map[Category]string{
	CategoryClass:    "class",
	CategoryTestCase: "testcase",
	CategoryModule:   "module",
}

// String returns the category name used as the node group.
func (c Category) String() string { return categoryNames[c] }

// DefaultTestMarkers are the base-class names that mark a unit-test class.
// A base matches a marker exactly or as the last dotted component, so
// "TestCase" covers "unittest.TestCase" and "django.test.TestCase".
var DefaultTestMarkers = []string{"TestCase"}

// SplitAnnotation splits a scanned class label into its name and the content
// of its parenthesized base-class annotation. ok is false when the label has
// no annotation. An unterminated annotation (a class header continued on the
// next line) still counts.
func SplitAnnotation(label string) (name, bases string, ok bool) {
	i := strings.IndexByte(label, '(')
	if i < 0 {
		return label, "", false
	}
	name = strings.TrimSpace(label[:i])
	bases = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(label[i+1:]), ")"))
	return name, bases, true
}

// StripAnnotation returns label without its base-class annotation.
func StripAnnotation(label string) string {
	name, _, _ := SplitAnnotation(label)
	return name
}

// ClassifyClass returns CategoryTestCase when any base in label's annotation
// matches one of markers, CategoryClass otherwise.
func ClassifyClass(label string, markers []string) Category {
	_, bases, ok := SplitAnnotation(label)
	if !ok {
		return CategoryClass
	}
	for _, base := range strings.Split(bases, ",") {
		base = strings.TrimSpace(base)
		for _, m := range markers {
			if base == m || strings.HasSuffix(base, "."+m) {
				return CategoryTestCase
			}
		}
	}
	return CategoryClass
}
