package events

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"uiscope/internal/engine/source"
)

// EventHandler is one handler prop bound to an element, with its resolved
// body already scanned for propagation-control calls.
type EventHandler struct {
	Element          string `json:"element"`
	Event            string `json:"event"`
	HandlerText      string `json:"handler"`
	Line             int    `json:"line"`
	StopsPropagation bool   `json:"stops_propagation"`
	PreventsDefault  bool   `json:"prevents_default"`
}

// ComponentNode mirrors the JSX element tree for bubbling simulation. Depth
// counts from 0 at the root.
type ComponentNode struct {
	Element  string           `json:"element"`
	Tag      string           `json:"tag"`
	Depth    int              `json:"depth"`
	Line     int              `json:"line"`
	Handlers []EventHandler   `json:"handlers,omitempty"`
	Children []*ComponentNode `json:"children,omitempty"`

	bodies []string // resolved handler bodies, parallel to Handlers
	role   string
	parent *ComponentNode
}

// treeBuilder assembles ComponentNodes with stable per-tag identities and
// resolves handler bodies against the whole file.
type treeBuilder struct {
	doc       *source.Document
	tagCounts map[string]int
}

func buildTree(doc *source.Document) *ComponentNode {
	b := &treeBuilder{doc: doc, tagCounts: map[string]int{}}

	roots := source.TopLevelJSXElements(doc.Root())
	switch len(roots) {
	case 0:
		return nil
	case 1:
		return b.build(roots[0], nil, 0)
	default:
		// Sibling trees under a fragment share one synthetic root so bubbling
		// can cross into it.
		root := &ComponentNode{Element: "fragment#0", Tag: "fragment", Depth: 0}
		for _, el := range roots {
			root.Children = append(root.Children, b.build(el, root, 1))
		}
		return root
	}
}

func (b *treeBuilder) build(element *sitter.Node, parent *ComponentNode, depth int) *ComponentNode {
	tag := b.doc.TagName(element)
	identity := fmt.Sprintf("%s#%d", tag, b.tagCounts[tag])
	b.tagCounts[tag]++

	node := &ComponentNode{
		Element: identity,
		Tag:     tag,
		Depth:   depth,
		Line:    b.doc.Line(element),
		parent:  parent,
	}

	for _, attr := range b.doc.Attributes(element) {
		if attr.Name == "role" && attr.Value != nil && attr.Value.Kind() == "string" {
			node.role = strings.Trim(b.doc.Text(attr.Value), "\"'")
			continue
		}
		event, ok := domEvents[attr.Name]
		if !ok || attr.Value == nil {
			continue
		}
		body := b.resolveHandler(attr.Value)
		node.Handlers = append(node.Handlers, EventHandler{
			Element:          identity,
			Event:            event,
			HandlerText:      handlerLabel(b.doc, attr.Value),
			Line:             b.doc.Line(attr.Node),
			StopsPropagation: stopsPropagation(body),
			PreventsDefault:  strings.Contains(body, ".preventDefault("),
		})
		node.bodies = append(node.bodies, body)
	}

	for _, child := range source.JSXChildren(element) {
		node.Children = append(node.Children, b.build(child, node, depth+1))
	}
	return node
}

func stopsPropagation(body string) bool {
	return strings.Contains(body, ".stopPropagation(") ||
		strings.Contains(body, ".stopImmediatePropagation(")
}

// resolveHandler returns the source text of the handler body: the inline
// expression itself, or the in-file declaration a bare identifier points at.
func (b *treeBuilder) resolveHandler(value *sitter.Node) string {
	inner := expressionInner(value)
	if inner == nil {
		return ""
	}
	if inner.Kind() == "identifier" {
		if decl := b.findDeclaration(b.doc.Text(inner)); decl != nil {
			return b.doc.Text(decl)
		}
	}
	return b.doc.Text(inner)
}

// handlerLabel is the short text shown in reports: the identifier name or the
// inline expression source.
func handlerLabel(doc *source.Document, value *sitter.Node) string {
	inner := expressionInner(value)
	if inner == nil {
		return doc.Text(value)
	}
	return doc.Text(inner)
}

// findDeclaration searches the file for `function name(...)` or
// `const name = ...` and returns the declaration node.
func (b *treeBuilder) findDeclaration(name string) *sitter.Node {
	var found *sitter.Node
	var walk func(node *sitter.Node)
	walk = func(node *sitter.Node) {
		if node == nil || found != nil {
			return
		}
		switch node.Kind() {
		case "function_declaration":
			if b.doc.Text(node.ChildByFieldName("name")) == name {
				found = node
				return
			}
		case "variable_declarator":
			nameNode := node.ChildByFieldName("name")
			if nameNode != nil && nameNode.Kind() == "identifier" && b.doc.Text(nameNode) == name {
				if value := node.ChildByFieldName("value"); value != nil {
					found = value
					return
				}
			}
		}
		for i := uint(0); i < node.ChildCount(); i++ {
			walk(node.Child(i))
		}
	}
	walk(b.doc.Root())
	return found
}

func expressionInner(expr *sitter.Node) *sitter.Node {
	if expr.Kind() != "jsx_expression" {
		return expr
	}
	for i := uint(0); i < expr.ChildCount(); i++ {
		child := expr.Child(i)
		kind := child.Kind()
		if kind == "{" || kind == "}" || kind == "comment" {
			continue
		}
		return child
	}
	return nil
}
