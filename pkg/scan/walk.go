package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	errs "github.com/matzehuels/classgraph/pkg/errors"
)

// DefaultIgnore lists directory names never descended into.
var DefaultIgnore = []string{".git", ".hg", "__pycache__", "venv", ".venv", "node_modules", ".tox", ".mypy_cache"}

// Walk returns the regular files under root in lexical order, skipping
// directories whose name is in ignore. Unreadable subdirectories are skipped.
// It returns an INVALID_PATH error when root does not exist or is not a
// directory.
func Walk(root string, ignore []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidPath, err, "open project root %s", root)
	}
	if !info.IsDir() {
		return nil, errs.New(errs.ErrCodeInvalidPath, "project root %s is not a directory", root)
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && slices.Contains(ignore, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidPath, err, "walk %s", root)
	}
	slices.Sort(files)
	return files, nil
}
