package extractor

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
)

// Extractor orchestrates the extraction process using language-specific extractors.
type Extractor struct {
	langExtractor LanguageExtractor
}

// NewExtractor creates a new extractor for a given language.
func NewExtractor(lang string) (*Extractor, error) {
	var langExt LanguageExtractor
	switch lang {
	case "python":
		langExt = &PythonExtractor{}
	default:
		return nil, fmt.Errorf("unsupported language: %s", lang)
	}
	return &Extractor{langExtractor: langExt}, nil
}

// ScanFile parses a single source file and extracts a record for every
// function and method definition in it. A file that fails to parse
// contributes zero records and no error, so callers cannot tell a malformed
// file apart from one that simply defines no functions.
func (e *Extractor) ScanFile(filepath string) ([]FunctionRecord, error) {
	sourceCode, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filepath, err)
	}

	parser := sitter.NewParser()
	parser.SetLanguage(e.langExtractor.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, sourceCode)
	if err != nil {
		slog.Debug("skipping unparseable file", "path", filepath, "error", err)
		return nil, nil
	}
	if tree.RootNode().HasError() {
		slog.Debug("skipping file with syntax errors", "path", filepath)
		return nil, nil
	}

	return e.langExtractor.ExtractTree(tree.RootNode(), sourceCode, filepath), nil
}
