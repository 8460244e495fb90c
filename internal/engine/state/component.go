package state

import (
	"strings"
	"unicode"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"uiscope/internal/engine/source"
)

// component is the located React-shaped component: its name and the function
// node carrying parameters and body.
type component struct {
	name string
	fn   *sitter.Node
}

var memoWrappers = map[string]bool{
	"memo":             true,
	"React.memo":       true,
	"forwardRef":       true,
	"React.forwardRef": true,
}

// findComponent locates the first exported capitalized component: a function
// declaration or a const arrow/function whose body provably returns JSX,
// optionally wrapped once in memo/forwardRef.
func findComponent(doc *source.Document) *component {
	root := doc.Root()

	// Exported declarations first, then bare top-level ones.
	for _, exportedOnly := range []bool{true, false} {
		for i := uint(0); i < root.ChildCount(); i++ {
			child := root.Child(i)
			node := child
			if child.Kind() == "export_statement" {
				node = exportedDeclaration(child)
			} else if exportedOnly {
				continue
			}
			if found := componentFrom(doc, node); found != nil {
				return found
			}
		}
	}
	return nil
}

func exportedDeclaration(export *sitter.Node) *sitter.Node {
	if decl := export.ChildByFieldName("declaration"); decl != nil {
		return decl
	}
	if value := export.ChildByFieldName("value"); value != nil {
		return value
	}
	for i := uint(0); i < export.ChildCount(); i++ {
		child := export.Child(i)
		switch child.Kind() {
		case "function_declaration", "lexical_declaration", "arrow_function", "function_expression", "call_expression":
			return child
		}
	}
	return nil
}

func componentFrom(doc *source.Document, node *sitter.Node) *component {
	if node == nil {
		return nil
	}

	switch node.Kind() {
	case "function_declaration":
		name := doc.Text(node.ChildByFieldName("name"))
		if isComponentName(name) && returnsJSX(node) {
			return &component{name: name, fn: node}
		}

	case "lexical_declaration", "variable_declaration":
		for i := uint(0); i < node.ChildCount(); i++ {
			declarator := node.Child(i)
			if declarator.Kind() != "variable_declarator" {
				continue
			}
			name := doc.Text(declarator.ChildByFieldName("name"))
			if !isComponentName(name) {
				continue
			}
			if fn := functionValue(doc, declarator.ChildByFieldName("value")); fn != nil && returnsJSX(fn) {
				return &component{name: name, fn: fn}
			}
		}

	case "arrow_function", "function_expression":
		// export default () => ... has no name; synthesize one.
		if returnsJSX(node) {
			return &component{name: "Component", fn: node}
		}

	case "call_expression":
		if fn := unwrapMemo(doc, node); fn != nil && returnsJSX(fn) {
			return &component{name: "Component", fn: fn}
		}
	}
	return nil
}

// functionValue resolves a declarator value to its function node, unwrapping
// a single memo/forwardRef call.
func functionValue(doc *source.Document, value *sitter.Node) *sitter.Node {
	if value == nil {
		return nil
	}
	switch value.Kind() {
	case "arrow_function", "function_expression":
		return value
	case "call_expression":
		return unwrapMemo(doc, value)
	}
	return nil
}

func unwrapMemo(doc *source.Document, call *sitter.Node) *sitter.Node {
	callee := doc.Text(call.ChildByFieldName("function"))
	if !memoWrappers[callee] {
		return nil
	}
	args := call.ChildByFieldName("arguments")
	if args == nil {
		return nil
	}
	for i := uint(0); i < args.ChildCount(); i++ {
		arg := args.Child(i)
		if arg.Kind() == "arrow_function" || arg.Kind() == "function_expression" {
			return arg
		}
	}
	return nil
}

func isComponentName(name string) bool {
	return name != "" && unicode.IsUpper(rune(name[0])) && !strings.Contains(name, ".")
}

// returnsJSX reports whether a function body provably returns JSX: an arrow
// expression body that is JSX, or a block with a return statement containing
// a JSX element.
func returnsJSX(fn *sitter.Node) bool {
	body := fn.ChildByFieldName("body")
	if body == nil {
		return false
	}
	if body.Kind() != "statement_block" {
		return source.ContainsJSX(body)
	}
	return hasJSXReturn(body)
}

func hasJSXReturn(node *sitter.Node) bool {
	if node == nil {
		return false
	}
	if node.Kind() == "return_statement" && source.ContainsJSX(node) {
		return true
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		// Nested function literals return their own JSX, not the component's.
		kind := child.Kind()
		if kind == "arrow_function" || kind == "function_expression" || kind == "function_declaration" {
			continue
		}
		if hasJSXReturn(child) {
			return true
		}
	}
	return false
}
