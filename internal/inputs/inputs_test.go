package inputs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/RomuloAS/TBFSBS/internal/inputs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("% s 1 d\nAC\n"), 0o644))
}

func TestResolveFilesKeepOrder(t *testing.T) {
	dir := t.TempDir()
	fileA := filepath.Join(dir, "a.tbfsbs")
	fileB := filepath.Join(dir, "b.tbfsbs")
	writeFile(t, fileA)
	writeFile(t, fileB)

	// argument order wins, not lexical order
	got, err := inputs.Resolve([]string{fileB, fileA})
	require.NoError(t, err)
	assert.Equal(t, []string{fileB, fileA}, got)
}

func TestResolveDirectoryRecursive(t *testing.T) {
	dir := t.TempDir()
	fileA := filepath.Join(dir, "a.tbfsbs")
	fileB := filepath.Join(dir, "sub", "b.tbfsbs")
	fileC := filepath.Join(dir, "sub", "deeper", "c.tbfsbs")
	writeFile(t, fileA)
	writeFile(t, fileB)
	writeFile(t, fileC)

	got, err := inputs.Resolve([]string{dir})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{fileA, fileB, fileC}, got)
}

func TestResolveDirectoryMatchesExplicitListing(t *testing.T) {
	dir := t.TempDir()
	var explicit []string
	for _, name := range []string{"a.tbfsbs", "b.tbfsbs", "c.tbfsbs"} {
		path := filepath.Join(dir, name)
		writeFile(t, path)
		explicit = append(explicit, path)
	}

	fromDir, err := inputs.Resolve([]string{dir})
	require.NoError(t, err)
	fromFiles, err := inputs.Resolve(explicit)
	require.NoError(t, err)
	assert.ElementsMatch(t, fromFiles, fromDir)
}

func TestResolveMixedFileAndDirectory(t *testing.T) {
	dir := t.TempDir()
	loose := filepath.Join(dir, "loose.tbfsbs")
	nested := filepath.Join(dir, "set", "nested.tbfsbs")
	writeFile(t, loose)
	writeFile(t, nested)

	got, err := inputs.Resolve([]string{loose, filepath.Join(dir, "set")})
	require.NoError(t, err)
	assert.Equal(t, []string{loose, nested}, got)
}

func TestResolvePathNotFound(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "a.tbfsbs")
	writeFile(t, existing)

	_, err := inputs.Resolve([]string{existing, filepath.Join(dir, "missing.tbfsbs")})
	require.ErrorIs(t, err, inputs.ErrPathNotFound)
}
