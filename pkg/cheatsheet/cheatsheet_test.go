package cheatsheet

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/christophe-duc/lazyts/pkg/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAtDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateAtDir(dir))

	for lang := range i18n.GetTranslationSets() {
		assert.FileExists(t, filepath.Join(dir, "Commands_"+lang+".md"))
	}

	content, err := os.ReadFile(filepath.Join(dir, "Commands_en.md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "# lazyts Commands\n")
	assert.Contains(t, string(content), "\n## translate\n")
	assert.Contains(t, string(content), "Usage: `lazyts lookup <file> <context> <source>`\n")
	assert.Contains(t, string(content), "  <kbd>-f, --file</kbd>: The .ts files\n")

	content, err = os.ReadFile(filepath.Join(dir, "Commands_pl.md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "# lazyts Polecenia\n")
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateAtDir(dir))

	out := &bytes.Buffer{}
	upToDate, err := checkDir(out, dir)
	require.NoError(t, err)
	assert.True(t, upToDate)
	assert.Contains(t, out.String(), "up to date")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "Commands_en.md"), []byte("# stale\n"), 0o644))

	out.Reset()
	upToDate, err = checkDir(out, dir)
	require.NoError(t, err)
	assert.False(t, upToDate)
	assert.Contains(t, out.String(), "--- Expected")
	assert.Contains(t, out.String(), "+# stale")
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "pkg", "cheatsheet")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module x\n"), 0o644))

	found, err := findProjectRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, root, found)
}
