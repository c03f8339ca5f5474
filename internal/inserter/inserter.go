package inserter

import (
	"docsync/internal/extractor"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"
)

// InsertMissingDocs rewrites the source files behind the given records so
// that every definition without a docstring gains a stub placeholder on the
// line directly below its header. Files whose definitions are all documented
// are never touched. Returns the number of stubs inserted; on an I/O failure
// the count covers the files already rewritten, which stay rewritten.
func InsertMissingDocs(records []extractor.FunctionRecord) (int, error) {
	byFile := make(map[string][]extractor.FunctionRecord)
	var order []string
	for _, rec := range records {
		if rec.Doc != nil {
			continue
		}
		if _, seen := byFile[rec.File]; !seen {
			order = append(order, rec.File)
		}
		byFile[rec.File] = append(byFile[rec.File], rec)
	}

	count := 0
	for _, path := range order {
		inserted, err := insertIntoFile(path, byFile[path])
		count += inserted
		if err != nil {
			return count, err
		}
	}
	return count, nil
}

func insertIntoFile(path string, funcs []extractor.FunctionRecord) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	lines := splitAfterLines(string(content))

	// Insertions are applied bottom to top so each one lands below the line
	// numbers the remaining insertions depend on.
	sort.Slice(funcs, func(i, j int) bool {
		return funcs[i].Line > funcs[j].Line
	})

	for _, fn := range funcs {
		indent := strings.Repeat(" ", fn.Col-1+4)
		stub := fmt.Sprintf("%s\"\"\"TODO: Document `%s`.\"\"\"\n", indent, fn.Name)

		// The 1-based header line number doubles as the zero-based insertion
		// index: the stub becomes the line directly after the header.
		idx := fn.Line
		if idx > len(lines) {
			idx = len(lines)
		}
		if idx > 0 && !strings.HasSuffix(lines[idx-1], "\n") {
			lines[idx-1] += "\n"
		}
		lines = slices.Insert(lines, idx, stub)
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "")), 0644); err != nil {
		return 0, fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return len(funcs), nil
}

// splitAfterLines splits content into lines that keep their trailing newline,
// so joining the slice back together reproduces the untouched bytes exactly.
func splitAfterLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
