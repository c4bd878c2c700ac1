package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectFiles(t *testing.T) {
	t.Parallel()

	t.Run("globs files in sorted order with base names", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.md"), []byte("two"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("one"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.txt.bak"), []byte("x"), 0o644))

		files, err := collectFiles("", []string{filepath.Join(dir, "*.md")})
		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.Equal(t, "a.md", files[0].Name)
		assert.Equal(t, "one", files[0].Content)
		assert.Equal(t, "b.md", files[1].Name)
	})

	t.Run("overlapping patterns deduplicate", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("one"), 0o644))

		files, err := collectFiles("", []string{
			filepath.Join(dir, "*.md"),
			filepath.Join(dir, "a.*"),
		})
		require.NoError(t, err)
		assert.Len(t, files, 1)
	})

	t.Run("reads a batch request file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "batch.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"files":[{"name":"x.md","content":"hi"}]}`), 0o644))

		files, err := collectFiles(path, nil)
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "x.md", files[0].Name)
		assert.Equal(t, "hi", files[0].Content)
	})

	t.Run("no matches yields an empty batch", func(t *testing.T) {
		t.Parallel()
		files, err := collectFiles("", []string{filepath.Join(t.TempDir(), "*.md")})
		require.NoError(t, err)
		assert.Empty(t, files)
	})
}
