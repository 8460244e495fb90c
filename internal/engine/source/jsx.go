package source

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Attr is one JSX attribute on an opening element. Value is nil for bare
// boolean attributes (<input disabled />).
type Attr struct {
	Name  string
	Value *sitter.Node
	Node  *sitter.Node
}

// IsJSXElementKind reports whether a node kind opens a JSX element subtree.
func IsJSXElementKind(kind string) bool {
	return kind == "jsx_element" || kind == "jsx_self_closing_element"
}

// OpeningElement returns the node that carries tag name and attributes.
func OpeningElement(node *sitter.Node) *sitter.Node {
	if node == nil {
		return nil
	}
	switch node.Kind() {
	case "jsx_self_closing_element":
		return node
	case "jsx_element":
		for i := uint(0); i < node.ChildCount(); i++ {
			child := node.Child(i)
			if child.Kind() == "jsx_opening_element" {
				return child
			}
		}
	}
	return nil
}

// TagName extracts the element's tag ("div", "Button", "Foo.Bar").
func (d *Document) TagName(node *sitter.Node) string {
	opening := OpeningElement(node)
	if opening == nil {
		return ""
	}
	if name := opening.ChildByFieldName("name"); name != nil {
		return d.Text(name)
	}
	for i := uint(0); i < opening.ChildCount(); i++ {
		child := opening.Child(i)
		switch child.Kind() {
		case "identifier", "member_expression", "jsx_identifier", "nested_identifier":
			return d.Text(child)
		}
	}
	return ""
}

// Attributes lists the attributes of a JSX element in source order.
func (d *Document) Attributes(node *sitter.Node) []Attr {
	opening := OpeningElement(node)
	if opening == nil {
		return nil
	}
	var attrs []Attr
	for i := uint(0); i < opening.ChildCount(); i++ {
		child := opening.Child(i)
		if child.Kind() != "jsx_attribute" {
			continue
		}
		name := ""
		var value *sitter.Node
		for j := uint(0); j < child.ChildCount(); j++ {
			part := child.Child(j)
			switch part.Kind() {
			case "property_identifier", "jsx_namespace_name", "identifier":
				if name == "" {
					name = d.Text(part)
				}
			case "string", "jsx_expression":
				value = part
			}
		}
		if name != "" {
			attrs = append(attrs, Attr{Name: name, Value: value, Node: child})
		}
	}
	return attrs
}

// Attribute returns the named attribute, or nil.
func (d *Document) Attribute(node *sitter.Node, name string) *sitter.Node {
	for _, attr := range d.Attributes(node) {
		if attr.Name == name {
			return attr.Value
		}
	}
	return nil
}

// HasAttribute reports presence of an attribute regardless of value.
func (d *Document) HasAttribute(node *sitter.Node, name string) bool {
	for _, attr := range d.Attributes(node) {
		if attr.Name == name {
			return true
		}
	}
	return false
}

// JSXChildren returns the child JSX elements of an element node, skipping
// text, expressions and fragments (fragment children are flattened through).
func JSXChildren(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}
	var out []*sitter.Node
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		kind := child.Kind()
		switch {
		case IsJSXElementKind(kind):
			out = append(out, child)
		case kind == "jsx_fragment" || kind == "jsx_expression":
			out = append(out, JSXChildren(child)...)
		}
	}
	return out
}

// FirstJSXElement finds the first JSX element (depth-first) under node.
func FirstJSXElement(node *sitter.Node) *sitter.Node {
	if node == nil {
		return nil
	}
	if IsJSXElementKind(node.Kind()) {
		return node
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		if found := FirstJSXElement(node.Child(i)); found != nil {
			return found
		}
	}
	return nil
}

// TopLevelJSXElements returns the JSX roots of a document or subtree: the
// elements not nested inside another JSX element. Fragments contribute each
// of their element children.
func TopLevelJSXElements(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}
	if IsJSXElementKind(node.Kind()) {
		return []*sitter.Node{node}
	}
	var out []*sitter.Node
	for i := uint(0); i < node.ChildCount(); i++ {
		out = append(out, TopLevelJSXElements(node.Child(i))...)
	}
	return out
}

// ContainsJSX reports whether any JSX element exists under node.
func ContainsJSX(node *sitter.Node) bool {
	return FirstJSXElement(node) != nil
}
