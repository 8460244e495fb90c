package state

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"uiscope/internal/engine/source"
)

// collectProps merges the component's destructured parameter pattern with the
// members of a named props interface or type alias. The pattern decides which
// props exist; the declaration contributes types and optionality.
func collectProps(doc *source.Document, comp *component) []ReceivedProp {
	var props []ReceivedProp
	index := map[string]int{}

	param := firstParameter(comp.fn)
	if param == nil {
		return props
	}

	for _, prop := range destructuredProps(doc, param) {
		if _, taken := index[prop.Name]; taken {
			continue
		}
		index[prop.Name] = len(props)
		props = append(props, prop)
	}

	if typeName := parameterTypeName(doc, param); typeName != "" {
		for _, declared := range declaredProps(doc, typeName) {
			if at, taken := index[declared.Name]; taken {
				existing := &props[at]
				if existing.Type == "" {
					existing.Type = declared.Type
				}
				// A destructuring default keeps the prop optional even when
				// the declaration requires it.
				if existing.Default == "" {
					existing.Required = declared.Required
				}
				continue
			}
			index[declared.Name] = len(props)
			props = append(props, declared)
		}
	}
	return props
}

func firstParameter(fn *sitter.Node) *sitter.Node {
	params := fn.ChildByFieldName("parameters")
	if params == nil {
		// Arrow shorthand: props => <div/> puts a bare identifier before =>.
		if param := fn.ChildByFieldName("parameter"); param != nil {
			return param
		}
		return nil
	}
	for i := uint(0); i < params.ChildCount(); i++ {
		child := params.Child(i)
		kind := child.Kind()
		if kind == "required_parameter" || kind == "optional_parameter" {
			return child
		}
	}
	return nil
}

func destructuredProps(doc *source.Document, param *sitter.Node) []ReceivedProp {
	pattern := param.ChildByFieldName("pattern")
	if pattern == nil {
		pattern = param
	}
	if pattern.Kind() != "object_pattern" {
		return nil
	}

	var props []ReceivedProp
	for i := uint(0); i < pattern.ChildCount(); i++ {
		child := pattern.Child(i)
		switch child.Kind() {
		case "shorthand_property_identifier_pattern":
			props = append(props, ReceivedProp{Name: doc.Text(child), Required: true})
		case "object_assignment_pattern":
			// { size = "md" } carries a default and is therefore optional.
			name := doc.Text(child.ChildByFieldName("left"))
			def := doc.Text(child.ChildByFieldName("right"))
			if name != "" {
				props = append(props, ReceivedProp{Name: name, Default: def})
			}
		case "pair_pattern":
			// { className: cls } renames; the prop name is the key.
			name := doc.Text(child.ChildByFieldName("key"))
			if name != "" {
				props = append(props, ReceivedProp{Name: name, Required: true})
			}
		case "rest_pattern":
			// ...rest swallows the remainder; not an individual prop.
		}
	}
	return props
}

// parameterTypeName returns the bare identifier of the parameter's type
// annotation, "" for inline object types and generics.
func parameterTypeName(doc *source.Document, param *sitter.Node) string {
	annotation := param.ChildByFieldName("type")
	if annotation == nil {
		return ""
	}
	for i := uint(0); i < annotation.ChildCount(); i++ {
		child := annotation.Child(i)
		if child.Kind() == "type_identifier" {
			return doc.Text(child)
		}
	}
	return ""
}

// declaredProps resolves a named interface or type alias in the same file and
// reads its property signatures.
func declaredProps(doc *source.Document, typeName string) []ReceivedProp {
	body := typeBody(doc, doc.Root(), typeName)
	if body == nil {
		return nil
	}

	var props []ReceivedProp
	for i := uint(0); i < body.ChildCount(); i++ {
		member := body.Child(i)
		if member.Kind() != "property_signature" {
			continue
		}
		name := doc.Text(member.ChildByFieldName("name"))
		if name == "" {
			continue
		}
		prop := ReceivedProp{Name: name, Required: !hasOptionalMarker(doc, member)}
		if annotation := member.ChildByFieldName("type"); annotation != nil {
			prop.Type = strings.TrimSpace(strings.TrimPrefix(doc.Text(annotation), ":"))
		}
		props = append(props, prop)
	}
	return props
}

func typeBody(doc *source.Document, node *sitter.Node, typeName string) *sitter.Node {
	if node == nil {
		return nil
	}
	switch node.Kind() {
	case "interface_declaration":
		if doc.Text(node.ChildByFieldName("name")) == typeName {
			return node.ChildByFieldName("body")
		}
	case "type_alias_declaration":
		if doc.Text(node.ChildByFieldName("name")) == typeName {
			value := node.ChildByFieldName("value")
			if value != nil && value.Kind() == "object_type" {
				return value
			}
		}
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		if found := typeBody(doc, node.Child(i), typeName); found != nil {
			return found
		}
	}
	return nil
}

func hasOptionalMarker(doc *source.Document, member *sitter.Node) bool {
	for i := uint(0); i < member.ChildCount(); i++ {
		if member.Child(i).Kind() == "?" {
			return true
		}
	}
	return false
}
