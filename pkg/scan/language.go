package scan

import "strings"

// Language identifies the source language of a file.
type Language int

const (
	// LanguageUndefined is any file outside the supported extension set.
	LanguageUndefined Language = iota
	// LanguagePython is a ".py" file.
	LanguagePython
)

var extensions = map[string]Language{
	"py": LanguagePython,
}

// String returns the language name used for styling and cache keys.
func (l Language) String() string {
	if l == LanguagePython {
		return "python"
	}
	return "undefined"
}

// DetectLanguage returns the language of path based on its extension.
func DetectLanguage(path string) Language {
	i := strings.LastIndexByte(path, '.')
	if i < 0 || strings.ContainsAny(path[i:], `/\`) {
		return LanguageUndefined
	}
	if lang, ok := extensions[path[i+1:]]; ok {
		return lang
	}
	return LanguageUndefined
}
