package errors

import (
	"strings"
	"unicode"
)

// ValidateOutputPath validates the configured output location.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must name a file, not a directory (no trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path must name a file: %q", path)
	}

	return nil
}

// ValidateMarker validates a unit-test base-class marker such as "TestCase"
// or "unittest.TestCase": a dotted sequence of identifiers.
func ValidateMarker(marker string) error {
	if marker == "" {
		return New(ErrCodeInvalidConfig, "test marker cannot be empty")
	}
	for _, part := range strings.Split(marker, ".") {
		if !isIdentifier(part) {
			return New(ErrCodeInvalidConfig, "invalid test marker: %q", marker)
		}
	}
	return nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
