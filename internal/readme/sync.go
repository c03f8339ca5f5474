package readme

import (
	"docsync/internal/extractor"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	startMarker    = "<!-- DOCS START -->"
	endMarker      = "<!-- DOCS END -->"
	defaultContent = "# Project Documentation\n\n"
)

// SyncDocument rewrites the README.md under root so the region between the
// docs markers holds the current API reference. A missing README is created
// from a bare title, and a README without markers has the section appended.
// Bytes outside the marker region are preserved exactly.
func SyncDocument(root string, records []extractor.FunctionRecord) error {
	readmePath := filepath.Join(root, "README.md")
	contents, err := os.ReadFile(readmePath)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read file %s: %w", readmePath, err)
		}
		contents = []byte(defaultContent)
	}

	sectionLines := append([]string{startMarker}, RenderReference(records, root)...)
	sectionLines = append(sectionLines, endMarker)
	section := strings.Join(sectionLines, "\n")

	text := string(contents)
	startIdx := strings.Index(text, startMarker)
	endIdx := strings.Index(text, endMarker)
	if startIdx >= 0 && endIdx >= 0 {
		// Splice between the first occurrence of each marker.
		text = text[:startIdx] + section + text[endIdx+len(endMarker):]
	} else {
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		text += section + "\n"
	}

	if err := os.WriteFile(readmePath, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", readmePath, err)
	}
	return nil
}
