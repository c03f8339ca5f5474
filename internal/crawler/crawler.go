package crawler

import (
	"docsync/internal/extractor"
	"io/fs"
	"path/filepath"
	"strings"
)

// Crawler scans a directory for source files.
type Crawler struct {
	extractor *extractor.Extractor
	ignored   []string
}

// NewCrawler creates a new crawler instance. Extra directory names to skip
// can be passed on top of the built-in defaults.
func NewCrawler(ext *extractor.Extractor, extraIgnored ...string) *Crawler {
	return &Crawler{
		extractor: ext,
		ignored:   append([]string{".git", "__pycache__", ".venv", "venv", "node_modules"}, extraIgnored...),
	}
}

// Discover walks the root directory and lists every eligible source file:
// Python files that are not hidden and do not live under an ignored
// directory. Order is whatever the walk produces; callers must not rely on
// it.
func (c *Crawler) Discover(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Skip ignored directories
		if d.IsDir() {
			for _, ign := range c.ignored {
				if d.Name() == ign {
					return filepath.SkipDir
				}
			}
			return nil
		}

		// Only process visible Python files
		if !strings.HasSuffix(d.Name(), ".py") || strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// ScanFiles extracts function records from the given files, in order. The
// first read failure aborts the scan.
func (c *Crawler) ScanFiles(paths []string) ([]extractor.FunctionRecord, error) {
	var records []extractor.FunctionRecord
	for _, path := range paths {
		recs, err := c.extractor.ScanFile(path)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}
	return records, nil
}

// ScanProject walks the root directory and processes all relevant files.
// It uses a callback to stream records, preventing large memory buildup.
func (c *Crawler) ScanProject(root string, onRecord func(extractor.FunctionRecord)) error {
	files, err := c.Discover(root)
	if err != nil {
		return err
	}

	for _, path := range files {
		recs, err := c.extractor.ScanFile(path)
		if err != nil {
			return err
		}
		for _, rec := range recs {
			onRecord(rec)
		}
	}

	return nil
}
