// Package classes pulls statically resolvable class-name strings out of JSX
// attributes. Dynamic branches it cannot evaluate are unioned: the extracted
// token list is the set of classes that could apply, not the set that will.
package classes

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"uiscope/internal/engine/source"
)

// Extraction is the class list found on one JSX element, with the element's
// stable per-file identity.
type Extraction struct {
	Element string
	Tag     string
	Line    int
	Classes []string
	Node    *sitter.Node
}

type Extractor struct {
	doc     *source.Document
	helpers map[string]bool
}

func NewExtractor(doc *source.Document, helpers []string) *Extractor {
	set := make(map[string]bool, len(helpers))
	for _, h := range helpers {
		set[h] = true
	}
	return &Extractor{doc: doc, helpers: set}
}

// ExtractAll walks every JSX element in the document in source order and
// returns one Extraction per element carrying a class/className attribute.
// Identity is Tag#N where N counts prior elements with the same tag, so it is
// stable across runs over identical content.
func (e *Extractor) ExtractAll(filter *Filter) []Extraction {
	var out []Extraction
	tagCounts := make(map[string]int)

	var walk func(node *sitter.Node)
	walk = func(node *sitter.Node) {
		if node == nil {
			return
		}
		if source.IsJSXElementKind(node.Kind()) {
			tag := e.doc.TagName(node)
			identity := fmt.Sprintf("%s#%d", tag, tagCounts[tag])
			tagCounts[tag]++

			if filter.Match(identity, tag) {
				if classes := e.ElementClasses(node); classes != nil {
					out = append(out, Extraction{
						Element: identity,
						Tag:     tag,
						Line:    e.doc.Line(node),
						Classes: classes,
						Node:    node,
					})
				}
			}
		}
		for i := uint(0); i < node.ChildCount(); i++ {
			walk(node.Child(i))
		}
	}
	walk(e.doc.Root())
	return out
}

// ElementClasses resolves the class attribute of a single element into
// whitespace-split tokens. Returns nil when the element has no class
// attribute; an empty (but present) attribute yields an empty slice.
func (e *Extractor) ElementClasses(element *sitter.Node) []string {
	var value *sitter.Node
	for _, attr := range e.doc.Attributes(element) {
		if attr.Name == "className" || attr.Name == "class" {
			value = attr.Value
			break
		}
	}
	if value == nil {
		if e.doc.HasAttribute(element, "className") || e.doc.HasAttribute(element, "class") {
			return []string{}
		}
		return nil
	}
	text := e.ResolveValue(value)
	return strings.Fields(text)
}

// ResolveValue turns an attribute value node into the union of its statically
// visible class text.
func (e *Extractor) ResolveValue(node *sitter.Node) string {
	if node == nil {
		return ""
	}
	switch node.Kind() {
	case "string":
		return e.stringText(node)
	case "jsx_expression":
		for i := uint(0); i < node.ChildCount(); i++ {
			child := node.Child(i)
			kind := child.Kind()
			if kind == "{" || kind == "}" || kind == "comment" {
				continue
			}
			return e.resolveExpr(child)
		}
		return ""
	}
	return e.resolveExpr(node)
}

// resolveExpr handles the expression shapes of the extraction contract:
// string literal, template literal, ternary (both branches unioned), helper
// call, array literal and parenthesized expression. Anything else resolves to
// no text.
func (e *Extractor) resolveExpr(node *sitter.Node) string {
	if node == nil {
		return ""
	}

	switch node.Kind() {
	case "string":
		return e.stringText(node)

	case "template_string":
		var parts []string
		for i := uint(0); i < node.ChildCount(); i++ {
			child := node.Child(i)
			if child.Kind() == "string_fragment" {
				parts = append(parts, e.doc.Text(child))
			}
		}
		return strings.Join(parts, " ")

	case "ternary_expression":
		consequence := e.resolveExpr(node.ChildByFieldName("consequence"))
		alternative := e.resolveExpr(node.ChildByFieldName("alternative"))
		return joinNonEmpty(consequence, alternative)

	case "call_expression":
		callee := node.ChildByFieldName("function")
		if callee == nil || !e.helpers[e.doc.Text(callee)] {
			return ""
		}
		args := node.ChildByFieldName("arguments")
		if args == nil {
			return ""
		}
		var parts []string
		for i := uint(0); i < args.ChildCount(); i++ {
			if resolved := e.resolveExpr(args.Child(i)); resolved != "" {
				parts = append(parts, resolved)
			}
		}
		return strings.Join(parts, " ")

	case "array":
		var parts []string
		for i := uint(0); i < node.ChildCount(); i++ {
			if resolved := e.resolveExpr(node.Child(i)); resolved != "" {
				parts = append(parts, resolved)
			}
		}
		return strings.Join(parts, " ")

	case "parenthesized_expression":
		for i := uint(0); i < node.ChildCount(); i++ {
			child := node.Child(i)
			kind := child.Kind()
			if kind == "(" || kind == ")" || kind == "comment" {
				continue
			}
			return e.resolveExpr(child)
		}
		return ""
	}

	return ""
}

func (e *Extractor) stringText(node *sitter.Node) string {
	var parts []string
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child.Kind() == "string_fragment" {
			parts = append(parts, e.doc.Text(child))
		}
	}
	return strings.Join(parts, " ")
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}
