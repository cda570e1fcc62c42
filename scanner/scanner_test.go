package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner(t *testing.T) {
	tempDir := t.TempDir()

	files := map[string]string{
		"tree1.json":        `{"kind": "Program"}`,
		"tree2.yaml":        "kind: Program",
		"notes.txt":         "not a tree document",
		"subdir/tree3.json": `{"kind": "Program"}`,
	}

	for path, content := range files {
		fullPath := filepath.Join(tempDir, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
		require.NoError(t, os.WriteFile(fullPath, []byte(content), 0o644))
	}

	docs, err := New(tempDir).Scan()
	require.NoError(t, err)
	assert.Len(t, docs, 3)

	foundPaths := make(map[string]bool)
	for _, doc := range docs {
		foundPaths[doc.Path] = true
		assert.Greater(t, doc.Size, int64(0))
	}

	assert.True(t, foundPaths[filepath.Join(tempDir, "tree1.json")])
	assert.True(t, foundPaths[filepath.Join(tempDir, "tree2.yaml")])
	assert.True(t, foundPaths[filepath.Join(tempDir, "subdir/tree3.json")])
	assert.False(t, foundPaths[filepath.Join(tempDir, "notes.txt")])
}

func TestScannerCustomExtensions(t *testing.T) {
	tempDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "tree.ast"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "tree.json"), []byte("{}"), 0o644))

	docs, err := New(tempDir, ".ast").Scan()
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, filepath.Join(tempDir, "tree.ast"), docs[0].Path)
}
