package crawler

import (
	"docsync/internal/extractor"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// newTestTree builds a small project with files the crawler must pick up and
// files it must skip.
func newTestTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "app.py"),
		"def handler(request):\n    \"\"\"Handle a request.\"\"\"\n    return request\n\n\ndef helper():\n    return None\n")
	writeFile(t, filepath.Join(root, "README.md"), "# not a source file\n")
	writeFile(t, filepath.Join(root, ".hidden.py"), "def hidden():\n    return None\n")
	writeFile(t, filepath.Join(root, "pkg", "util.py"), "def util(value):\n    return value\n")
	writeFile(t, filepath.Join(root, "__pycache__", "cached.py"), "def cached():\n    return None\n")
	writeFile(t, filepath.Join(root, ".venv", "site.py"), "def site():\n    return None\n")
	return root
}

func newPythonCrawler(t *testing.T, extraIgnored ...string) *Crawler {
	t.Helper()
	ext, err := extractor.NewExtractor("python")
	require.NoError(t, err)
	return NewCrawler(ext, extraIgnored...)
}

func TestCrawler_Discover(t *testing.T) {
	c := newPythonCrawler(t)
	root := newTestTree(t)

	files, err := c.Discover(root)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(root, "app.py"),
		filepath.Join(root, "pkg", "util.py"),
	}, files, "Hidden files, ignored directories and non-Python files are skipped")
}

func TestCrawler_Discover_ExtraIgnored(t *testing.T) {
	c := newPythonCrawler(t, "pkg")
	root := newTestTree(t)

	files, err := c.Discover(root)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "app.py")}, files)
}

func TestCrawler_Discover_MissingRoot(t *testing.T) {
	c := newPythonCrawler(t)

	_, err := c.Discover(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

func TestCrawler_ScanFiles(t *testing.T) {
	c := newPythonCrawler(t)
	root := newTestTree(t)

	files, err := c.Discover(root)
	require.NoError(t, err)

	records, err := c.ScanFiles(files)
	require.NoError(t, err)
	require.Len(t, records, 3)

	names := make([]string, 0, len(records))
	for _, rec := range records {
		names = append(names, rec.Name)
	}
	assert.ElementsMatch(t, []string{"handler", "helper", "util"}, names)
}

func TestCrawler_ScanFiles_SkipsUnparseable(t *testing.T) {
	c := newPythonCrawler(t)
	root := t.TempDir()
	good := filepath.Join(root, "good.py")
	bad := filepath.Join(root, "bad.py")
	writeFile(t, good, "def fine():\n    return 1\n")
	writeFile(t, bad, "def broken(:\n    return 2\n")

	// The malformed file contributes nothing; the rest of the run is normal.
	records, err := c.ScanFiles([]string{bad, good})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "fine", records[0].Name)
}

func TestCrawler_ScanProject(t *testing.T) {
	c := newPythonCrawler(t)
	root := newTestTree(t)

	var streamed []extractor.FunctionRecord
	err := c.ScanProject(root, func(rec extractor.FunctionRecord) {
		streamed = append(streamed, rec)
	})
	require.NoError(t, err)
	assert.Len(t, streamed, 3)
}
