package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docview-dev/docview/fs"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("# doc\n"), 0o644))
}

func TestGlob(t *testing.T) {
	t.Parallel()

	t.Run("matches recursively and sorts", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "readme.md"))
		writeFile(t, filepath.Join(dir, "docs", "guide.md"))
		writeFile(t, filepath.Join(dir, "docs", "api", "index.md"))
		writeFile(t, filepath.Join(dir, "notes.txt"))

		files, err := fs.Glob(dir, "**/*.md")
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "docs", "api", "index.md"),
			filepath.Join(dir, "docs", "guide.md"),
			filepath.Join(dir, "readme.md"),
		}, files)
	})

	t.Run("never returns directories", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		// A directory whose name matches the pattern.
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "archive.md"), 0o755))
		writeFile(t, filepath.Join(dir, "real.md"))

		files, err := fs.Glob(dir, "*.md")
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "real.md")}, files)
	})

	t.Run("no matches yields an empty result", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "notes.txt"))

		files, err := fs.Glob(dir, "**/*.md")
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("rejects a malformed pattern", func(t *testing.T) {
		t.Parallel()
		_, err := fs.Glob(t.TempDir(), "[")
		assert.Error(t, err)
	})
}
