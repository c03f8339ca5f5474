package pipeline

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"docsync/internal/crawler"
	"docsync/internal/extractor"
	"docsync/internal/inserter"
	"docsync/internal/readme"
)

// SyncPipeline drives one documentation sync run: discover source files,
// scan them into function records, insert stub docstrings and refresh the
// README reference section.
type SyncPipeline struct {
	ProjectRoot string
	Language    string
	SkipStubs   bool
	SkipReadme  bool
	ReportPath  string
	IgnoreDirs  []string
}

func NewSyncPipeline(projectRoot string) *SyncPipeline {
	return &SyncPipeline{
		ProjectRoot: projectRoot,
		Language:    "python",
	}
}

func (s *SyncPipeline) Run() (retErr error) {
	report := NewReport("sync", s.ProjectRoot)
	defer func() {
		if retErr != nil {
			report.AddSignal("sync_failed", "pipeline", "critical", "Documentation sync failed.", 1)
		}
		if s.ReportPath == "" {
			return
		}
		if err := report.Save(s.ReportPath); err != nil {
			fmt.Printf("⚠️  Failed to write pipeline report: %v\n", err)
		}
	}()

	slog.Info("starting documentation sync", "root", s.ProjectRoot)

	ext, err := extractor.NewExtractor(s.Language)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}
	cr := crawler.NewCrawler(ext, s.IgnoreDirs...)

	files, err := s.discoverStage(report, cr)
	if err != nil {
		return err
	}

	records, err := s.scanStage(report, cr, files)
	if err != nil {
		return err
	}

	if s.SkipStubs {
		s.skipStage(report, "insert_stubs")
	} else {
		records, err = s.stubStage(report, cr, files, records)
		if err != nil {
			return err
		}
	}

	if s.SkipReadme {
		s.skipStage(report, "sync_readme")
	} else {
		if err := s.readmeStage(report, records); err != nil {
			return err
		}
	}

	report.AddSignal("sync_complete", "pipeline", "info", "Documentation sync completed successfully.", 1)
	slog.Info("documentation sync finished", "files", len(files), "functions", len(records))
	return nil
}

func (s *SyncPipeline) discoverStage(report *Report, cr *crawler.Crawler) ([]string, error) {
	stage := report.BeginStage("discover_files")
	files, err := cr.Discover(s.ProjectRoot)
	if err != nil {
		report.EndStage(stage, "error", nil, nil, err)
		return nil, fmt.Errorf("failed to discover source files: %w", err)
	}
	report.EndStage(stage, "ok", map[string]float64{
		"python_files": float64(len(files)),
	}, nil, nil)

	fmt.Printf("📂 Discovered %d Python files.\n", len(files))
	if len(files) == 0 {
		report.AddSignal("no_source_files", "discover_files", "warning", "No Python files found under the project root.", 0)
	}
	return files, nil
}

func (s *SyncPipeline) scanStage(report *Report, cr *crawler.Crawler, files []string) ([]extractor.FunctionRecord, error) {
	stage := report.BeginStage("scan_files")
	records, err := cr.ScanFiles(files)
	if err != nil {
		report.EndStage(stage, "error", nil, nil, err)
		return nil, fmt.Errorf("failed to scan source files: %w", err)
	}

	metrics := make([]FileMetric, len(files))
	index := make(map[string]int, len(files))
	for i, path := range files {
		metrics[i] = FileMetric{Path: s.displayPath(path)}
		index[path] = i
	}
	missing := 0
	for _, rec := range records {
		i, ok := index[rec.File]
		if !ok {
			continue
		}
		metrics[i].Functions++
		if rec.Doc == nil {
			metrics[i].MissingDocs++
			missing++
		}
	}
	for _, m := range metrics {
		report.AddFileMetric(m)
	}

	report.EndStage(stage, "ok", map[string]float64{
		"functions_total": float64(len(records)),
		"missing_docs":    float64(missing),
	}, nil, nil)
	fmt.Printf("📊 Found %d functions (%d missing docstrings).\n", len(records), missing)
	return records, nil
}

func (s *SyncPipeline) stubStage(report *Report, cr *crawler.Crawler, files []string, records []extractor.FunctionRecord) ([]extractor.FunctionRecord, error) {
	stage := report.BeginStage("insert_stubs")
	inserted, err := inserter.InsertMissingDocs(records)
	if err != nil {
		report.EndStage(stage, "error", map[string]float64{
			"stubs_inserted": float64(inserted),
		}, nil, err)
		return nil, fmt.Errorf("failed to insert stub docstrings: %w", err)
	}
	report.EndStage(stage, "ok", map[string]float64{
		"stubs_inserted": float64(inserted),
	}, nil, nil)
	fmt.Printf("Inserted %d stub docstrings.\n", inserted)

	if inserted == 0 {
		return records, nil
	}
	// Stubs shift line numbers, so rebuild the snapshot from the same file list.
	return s.rescanStage(report, cr, files)
}

func (s *SyncPipeline) rescanStage(report *Report, cr *crawler.Crawler, files []string) ([]extractor.FunctionRecord, error) {
	stage := report.BeginStage("rescan_files")
	records, err := cr.ScanFiles(files)
	if err != nil {
		report.EndStage(stage, "error", nil, nil, err)
		return nil, fmt.Errorf("failed to rescan source files: %w", err)
	}
	report.EndStage(stage, "ok", map[string]float64{
		"functions_total": float64(len(records)),
	}, nil, nil)
	return records, nil
}

func (s *SyncPipeline) readmeStage(report *Report, records []extractor.FunctionRecord) error {
	stage := report.BeginStage("sync_readme")
	if err := readme.SyncDocument(s.ProjectRoot, records); err != nil {
		report.EndStage(stage, "error", nil, nil, err)
		return fmt.Errorf("failed to update README: %w", err)
	}
	report.EndStage(stage, "ok", map[string]float64{
		"records_total": float64(len(records)),
	}, nil, nil)
	fmt.Println("Updated README.md with API reference section.")
	return nil
}

func (s *SyncPipeline) skipStage(report *Report, name string) {
	h := report.BeginStage(name)
	report.EndStage(h, "skipped", nil, nil, nil)
}

// displayPath shows a file relative to the project root when possible.
func (s *SyncPipeline) displayPath(path string) string {
	rel, err := filepath.Rel(s.ProjectRoot, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
