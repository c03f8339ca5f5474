package extractor

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// PythonExtractor implements LanguageExtractor for Python.
type PythonExtractor struct{}

func (p *PythonExtractor) GetLanguage() *sitter.Language {
	return python.GetLanguage()
}

// ExtractTree collects one record per function or method definition, in
// pre-order. Dispatch is by node kind: module, class and function bodies are
// descended into, so nested definitions are found at any depth. Decorated
// definitions are unwrapped to the definition they decorate, which keeps the
// recorded position on the def header rather than the first decorator.
func (p *PythonExtractor) ExtractTree(root *sitter.Node, sourceCode []byte, filepath string) []FunctionRecord {
	var records []FunctionRecord
	p.gather(root, sourceCode, filepath, &records)
	return records
}

func (p *PythonExtractor) gather(node *sitter.Node, sourceCode []byte, filepath string, out *[]FunctionRecord) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "decorated_definition" {
			if def := child.ChildByFieldName("definition"); def != nil {
				child = def
			}
		}
		switch child.Type() {
		case "function_definition":
			if rec := p.extractFunction(child, sourceCode, filepath); rec != nil {
				*out = append(*out, *rec)
			}
			if body := child.ChildByFieldName("body"); body != nil {
				p.gather(body, sourceCode, filepath, out)
			}
		case "class_definition":
			if body := child.ChildByFieldName("body"); body != nil {
				p.gather(body, sourceCode, filepath, out)
			}
		}
	}
}

func (p *PythonExtractor) extractFunction(node *sitter.Node, sourceCode []byte, filepath string) *FunctionRecord {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	rec := &FunctionRecord{
		Name: nameNode.Content(sourceCode),
		Line: int(node.StartPoint().Row + 1),
		Col:  int(node.StartPoint().Column + 1),
		File: filepath,
	}
	if paramsNode := node.ChildByFieldName("parameters"); paramsNode != nil {
		rec.Params = p.extractParams(paramsNode, sourceCode)
	}
	if bodyNode := node.ChildByFieldName("body"); bodyNode != nil {
		rec.Doc = p.extractDocstring(bodyNode, sourceCode)
	}
	return rec
}

// extractParams returns the parameter names in declaration order. Splat
// parameters (*args, **kwargs) and the bare * and / separators carry no plain
// name and are skipped. A leading receiver parameter named self is dropped.
func (p *PythonExtractor) extractParams(paramsNode *sitter.Node, sourceCode []byte) []string {
	params := []string{}
	for i := 0; i < int(paramsNode.NamedChildCount()); i++ {
		child := paramsNode.NamedChild(i)

		var nameNode *sitter.Node
		switch child.Type() {
		case "identifier":
			nameNode = child
		case "typed_parameter":
			// The grammar exposes no name field here; the identifier is the
			// first named child unless the parameter is a typed splat.
			if first := child.NamedChild(0); first != nil && first.Type() == "identifier" {
				nameNode = first
			}
		case "default_parameter", "typed_default_parameter":
			if n := child.ChildByFieldName("name"); n != nil && n.Type() == "identifier" {
				nameNode = n
			}
		}
		if nameNode == nil {
			continue
		}
		params = append(params, nameNode.Content(sourceCode))
	}

	if len(params) > 0 && params[0] == "self" {
		params = params[1:]
	}
	return params
}

// extractDocstring returns the raw text of the docstring when the first
// statement of the body is a plain string literal, nil otherwise.
func (p *PythonExtractor) extractDocstring(bodyNode *sitter.Node, sourceCode []byte) *string {
	first := bodyNode.NamedChild(0)
	if first == nil || first.Type() != "expression_statement" || first.NamedChildCount() != 1 {
		return nil
	}
	strNode := first.NamedChild(0)
	if strNode.Type() != "string" {
		return nil
	}
	doc, ok := stringLiteralValue(strNode.Content(sourceCode))
	if !ok {
		return nil
	}
	return &doc
}

// stringLiteralValue strips the prefix letters and quote delimiters from a
// Python string literal and returns the text between the quotes as written,
// escape sequences included. Bytes and f-string literals are not docstrings,
// so those prefixes report ok=false.
func stringLiteralValue(literal string) (string, bool) {
	i := 0
prefix:
	for i < len(literal) {
		switch literal[i] {
		case '"', '\'':
			break prefix
		case 'r', 'R', 'u', 'U':
			i++
		default:
			return "", false
		}
	}

	rest := literal[i:]
	if len(rest) < 2 {
		return "", false
	}
	quote := rest[0]
	width := 1
	if len(rest) >= 6 && rest[1] == quote && rest[2] == quote {
		width = 3
	}
	if len(rest) < 2*width {
		return "", false
	}
	return rest[width : len(rest)-width], true
}
