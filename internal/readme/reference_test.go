package readme

import (
	"docsync/internal/extractor"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docPtr(s string) *string {
	return &s
}

func TestRenderReference(t *testing.T) {
	root := t.TempDir()
	records := []extractor.FunctionRecord{
		{Name: "zeta", Params: []string{"x"}, Doc: docPtr("Summary line.\n\nDetails."), File: filepath.Join(root, "pkg", "util.py")},
		{Name: "alpha", Params: []string{"a", "b"}, File: filepath.Join(root, "app.py")},
		{Name: "beta", Params: []string{}, Doc: docPtr(""), File: filepath.Join(root, "app.py")},
	}

	lines := RenderReference(records, root)

	expected := []string{
		"### `app.py`",
		"- **alpha(a, b)**: TODO: Write documentation",
		"- **beta()**: TODO: Write documentation",
		"",
		"### `pkg/util.py`",
		"- **zeta(x)**: Summary line.",
		"",
	}
	assert.Equal(t, expected, lines, "groups sort by path, empty docstrings fall back to the placeholder")
}

func TestRenderReference_FirstDocLine(t *testing.T) {
	records := []extractor.FunctionRecord{
		{Name: "pad", Doc: docPtr("   Leading and trailing.   \nSecond line."), File: "pad.py"},
		{Name: "crlf", Doc: docPtr("Line one.\r\nLine two."), File: "pad.py"},
		{Name: "blank", Doc: docPtr("   \nBody on the next line."), File: "pad.py"},
	}

	lines := RenderReference(records, ".")
	require.Len(t, lines, 5)
	assert.Equal(t, "- **pad()**: Leading and trailing.", lines[1])
	assert.Equal(t, "- **crlf()**: Line one.", lines[2])

	// A whitespace-only first line is present, so no placeholder applies.
	assert.Equal(t, "- **blank()**: ", lines[3])
}

func TestRenderReference_EscapesBackticks(t *testing.T) {
	records := []extractor.FunctionRecord{
		{Name: "weird`name", File: "w.py"},
	}

	lines := RenderReference(records, ".")
	require.Len(t, lines, 3)
	assert.Equal(t, "- **weird\\`name()**: TODO: Write documentation", lines[1])
}

func TestRenderReference_NoRecords(t *testing.T) {
	assert.Empty(t, RenderReference(nil, "."))
}
