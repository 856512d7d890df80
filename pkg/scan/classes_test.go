package scan

import (
	"slices"
	"testing"
)

func TestExtractClasses(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "simple",
			text: "class A:\n    pass\n",
			want: []string{"A"},
		},
		{
			name: "base classes kept",
			text: "import unittest\n\nclass T(unittest.TestCase):\n    def test(self): pass\n",
			want: []string{"T(unittest.TestCase)"},
		},
		{
			name: "nested and ordered",
			text: "class Outer:\n    class Inner(Base):\n        pass\nclass Last: pass\n",
			want: []string{"Outer", "Inner(Base)", "Last"},
		},
		{
			name: "comment lines skipped",
			text: "# class Commented:\n  # class Indented:\nclass Real:\n",
			want: []string{"Real"},
		},
		{
			name: "block strings skipped",
			text: "\"\"\"\nclass InDoc:\n\"\"\"\nx = '''\nclass InOther:\n'''\nclass After:\n",
			want: []string{"After"},
		},
		{
			name: "one-line docstring does not open a block",
			text: "\"\"\"module doc\"\"\"\nclass A:\n",
			want: []string{"A"},
		},
		{
			name: "keyword must start the line",
			text: "subclass Foo:\nx = 'my class Bar:'\nclassy = 1\n",
			want: nil,
		},
		{
			name: "continued header",
			text: "class Wide(Base,\n           Mixin):\n",
			want: []string{"Wide(Base,"},
		},
		{
			name: "windows line endings",
			text: "class A:\r\nclass B(A):\r\n",
			want: []string{"A", "B(A)"},
		},
		{
			name: "header opens docstring",
			text: "class Foo:  \"\"\"Docstring\n    continues.\"\"\"\n\nclass Bar:\n    pass\n",
			want: []string{"Foo", "Bar"},
		},
		{
			name: "header with one-line docstring",
			text: "class Foo: '''Doc.'''\nclass Bar:\n",
			want: []string{"Foo", "Bar"},
		},
		{
			name: "quotes in trailing comment",
			text: "class Foo: pass  # \"\"\"\nclass Bar:\n",
			want: []string{"Foo", "Bar"},
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractClasses(tt.text); !slices.Equal(got, tt.want) {
				t.Errorf("ExtractClasses() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		path string
		want Language
	}{
		{"a.py", LanguagePython},
		{"dir/sub/__init__.py", LanguagePython},
		{"README.md", LanguageUndefined},
		{"Makefile", LanguageUndefined},
		{"dir.py/file", LanguageUndefined},
		{"a.pyc", LanguageUndefined},
	}

	for _, tt := range tests {
		if got := DetectLanguage(tt.path); got != tt.want {
			t.Errorf("DetectLanguage(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
	if LanguagePython.String() != "python" || LanguageUndefined.String() != "undefined" {
		t.Error("unexpected language names")
	}
}
