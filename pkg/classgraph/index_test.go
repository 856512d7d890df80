package classgraph

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapFinder answers dependency lookups from a fixed table.
type mapFinder map[string][]string

func (m mapFinder) FindDependencies(_ context.Context, path string) ([]string, error) {
	return m[path], nil
}

func quietLogger() *log.Logger { return log.New(io.Discard) }

func TestClassInventoryFile(t *testing.T) {
	path, classes, err := NewInventory("a.py", []string{"A"}).File()
	require.NoError(t, err)
	assert.Equal(t, "a.py", path)
	assert.Equal(t, []string{"A"}, classes)

	_, _, err = ClassInventory{}.File()
	assert.Error(t, err)

	_, _, err = ClassInventory{"a.py": {"A"}, "b.py": {"B"}}.File()
	assert.Error(t, err)
}

func TestBuildIndex(t *testing.T) {
	inventories := []ClassInventory{
		NewInventory("proj/a.py", []string{"A", "A2"}),
		NewInventory("proj/pkg/__init__.py", []string{"P"}),
	}
	finder := mapFinder{
		"proj/a.py": {"proj/pkg/__init__.py", "os.py", "proj/pkg/__init__.py", ""},
	}

	idx, err := BuildIndex(context.Background(), inventories, finder, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "A2", "P"}, idx.Classes())

	a, ok := idx.Get("A")
	require.True(t, ok)
	assert.Equal(t, "a", a.Module.Name)
	assert.Equal(t, []string{"pkg", "os"}, a.Dependencies, "duplicates and empty names are dropped")

	a2, _ := idx.Get("A2")
	assert.Same(t, a, a2, "classes in one file share the file's entry")

	p, _ := idx.Get("P")
	assert.Equal(t, "pkg", p.Module.Name)
	assert.Empty(t, p.Dependencies)
}

func TestBuildIndexLastWriteWins(t *testing.T) {
	inventories := []ClassInventory{
		NewInventory("first.py", []string{"Shared", "Other"}),
		NewInventory("second.py", []string{"Shared"}),
	}

	idx, err := BuildIndex(context.Background(), inventories, mapFinder{}, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, []string{"Shared", "Other"}, idx.Classes(), "overwritten key keeps its position")
	e, _ := idx.Get("Shared")
	assert.Equal(t, "second", e.Module.Name)
}

func TestBuildIndexSkipsMalformedInventory(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	inventories := []ClassInventory{
		{"x.py": {"X"}, "y.py": {"Y"}},
		NewInventory("z.py", []string{"Z"}),
	}

	idx, err := BuildIndex(context.Background(), inventories, mapFinder{}, logger)
	require.NoError(t, err)
	assert.Equal(t, []string{"Z"}, idx.Classes())
	assert.Contains(t, buf.String(), "skipping inventory")
}

func TestBuildIndexFinderFailure(t *testing.T) {
	var buf bytes.Buffer
	finder := FinderFunc(func(context.Context, string) ([]string, error) {
		return []string{"b.py"}, errors.New("parse failed")
	})

	idx, err := BuildIndex(context.Background(), []ClassInventory{NewInventory("a.py", []string{"A"})}, finder, log.New(&buf))
	require.NoError(t, err)

	e, ok := idx.Get("A")
	require.True(t, ok, "class is still indexed")
	assert.Empty(t, e.Dependencies)
	assert.Contains(t, buf.String(), "dependency lookup failed")
}

func TestBuildIndexCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BuildIndex(ctx, []ClassInventory{NewInventory("a.py", []string{"A"})}, mapFinder{}, quietLogger())
	assert.ErrorIs(t, err, context.Canceled)
}
