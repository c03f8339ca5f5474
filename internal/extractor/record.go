package extractor

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// FunctionRecord describes a single function or method definition found in a
// source file. Records are rebuilt from scratch on every scan pass: they are a
// snapshot of one filesystem state and become stale the moment their file is
// rewritten.
type FunctionRecord struct {
	// Name is the identifier of the function or method.
	Name string
	// Params holds parameter names in declaration order. The receiver
	// parameter is never included.
	Params []string
	// Doc is the raw docstring text, or nil when the definition has none.
	// An empty string means an empty docstring was present.
	Doc *string
	// Line and Col locate the definition header, both 1-based.
	Line int
	Col  int
	// File is the path of the source file the definition was found in.
	File string
}

// Signature renders the record as name(param1, param2).
func (r FunctionRecord) Signature() string {
	return fmt.Sprintf("%s(%s)", r.Name, strings.Join(r.Params, ", "))
}

// LanguageExtractor defines the interface that each language parser must implement.
type LanguageExtractor interface {
	GetLanguage() *sitter.Language
	ExtractTree(root *sitter.Node, sourceCode []byte, filepath string) []FunctionRecord
}
