package classgraph

import "strings"

// PackageInit is the file stem that marks a directory as an importable package.
const PackageInit = "__init__"

// ModuleIdentity pairs a file with its normalized module name.
type ModuleIdentity struct {
	FilePath string `json:"file_path"`
	Name     string `json:"name"`
}

// Identify returns the module identity of filePath, deriving the raw module
// name from the file stem.
func Identify(filePath string) ModuleIdentity {
	return ModuleIdentity{
		FilePath: filePath,
		Name:     ResolveModule(filePath, RawModuleName(filePath)),
	}
}

// ResolveModule returns the module name for a file given the name derived from
// its own file name. A package initializer resolves to its parent directory
// name; paths may use either '/' or '\' as separator. When the path has no
// usable parent segment the raw name is returned unchanged.
func ResolveModule(filePath, rawName string) string {
	if rawName != PackageInit {
		return rawName
	}
	segments := splitPath(filePath)
	if len(segments) < 2 {
		return rawName
	}
	parent := segments[len(segments)-2]
	if parent == "." || parent == ".." {
		return rawName
	}
	return parent
}

// RawModuleName returns the file stem of path: the last path segment without
// its extension. It returns "" for an empty path or a path ending in a separator.
func RawModuleName(path string) string {
	segments := splitPath(path)
	if len(segments) == 0 || isSeparator(rune(path[len(path)-1])) {
		return ""
	}
	base := segments[len(segments)-1]
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		return base[:i]
	}
	return base
}

func splitPath(path string) []string {
	return strings.FieldsFunc(path, isSeparator)
}

func isSeparator(r rune) bool { return r == '/' || r == '\\' }
