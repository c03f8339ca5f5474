package readme

import (
	"docsync/internal/extractor"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

const docPlaceholder = "TODO: Write documentation"

// RenderReference builds the Markdown API reference lines for the given
// records, grouped per source file. Paths are shown relative to root with
// forward slashes so the output stays stable across platforms. Groups come
// out in lexicographic path order; within a group records keep scan order.
func RenderReference(records []extractor.FunctionRecord, root string) []string {
	grouped := make(map[string][]extractor.FunctionRecord)
	for _, rec := range records {
		rel := relativePath(root, rec.File)
		grouped[rel] = append(grouped[rel], rec)
	}

	paths := make([]string, 0, len(grouped))
	for path := range grouped {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var lines []string
	for _, path := range paths {
		lines = append(lines, fmt.Sprintf("### `%s`", path))
		for _, rec := range grouped[path] {
			signature := strings.ReplaceAll(rec.Signature(), "`", "\\`")
			lines = append(lines, fmt.Sprintf("- **%s**: %s", signature, docSummary(rec.Doc)))
		}
		lines = append(lines, "")
	}
	return lines
}

// docSummary reduces a raw docstring to the single line shown in the
// reference. A nil or empty docstring yields the placeholder text.
func docSummary(doc *string) string {
	text := docPlaceholder
	if doc != nil && *doc != "" {
		text = *doc
	}
	if idx := strings.IndexAny(text, "\r\n"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

func relativePath(root, file string) string {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return filepath.ToSlash(file)
	}
	return filepath.ToSlash(rel)
}
