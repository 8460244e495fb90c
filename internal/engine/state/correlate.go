package state

import (
	"unicode"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"uiscope/internal/engine/source"
	"uiscope/internal/shared/util"
)

// passedProp is one attribute handed to a capitalized child element, kept with
// enough shape information for the rule engine.
type passedProp struct {
	PropName    string
	ToComponent string
	Source      string
	Line        int
	BareIdent   string // set when the value is a single bare identifier
	InlineFunc  bool   // value is an arrow/function literal
}

// correlation is the result of the second pass over the component's JSX.
type correlation struct {
	passed []passedProp
}

// correlate walks the component's JSX, back-fills UsedInJSX and PassedTo on
// the hook entries, and classifies every prop passed to a child component.
func correlate(doc *source.Document, comp *component, states []ComponentState, props []ReceivedProp) correlation {
	origin := originIndex(states, props)
	var result correlation

	var visit func(element *sitter.Node)
	visit = func(element *sitter.Node) {
		tag := doc.TagName(element)
		childComponent := isCapitalized(tag)

		for _, attr := range doc.Attributes(element) {
			if attr.Value == nil {
				continue
			}
			idents := expressionIdentifiers(doc, attr.Value)
			markUsage(states, idents, tag, childComponent)

			if childComponent {
				result.passed = append(result.passed, passedProp{
					PropName:    attr.Name,
					ToComponent: tag,
					Source:      classify(origin, idents),
					Line:        doc.Line(attr.Node),
					BareIdent:   bareIdentifier(doc, attr.Value),
					InlineFunc:  isInlineFunction(attr.Value),
				})
			}
		}

		// Text interpolations: <span>{count}</span>.
		for i := uint(0); i < element.ChildCount(); i++ {
			child := element.Child(i)
			if child.Kind() == "jsx_expression" {
				markUsage(states, expressionIdentifiers(doc, child), "", false)
			}
		}
		for _, child := range source.JSXChildren(element) {
			visit(child)
		}
	}
	for _, root := range source.TopLevelJSXElements(comp.fn.ChildByFieldName("body")) {
		visit(root)
	}
	return result
}

// originIndex maps every known identifier to its source classification.
// Precedence prop > state > context > derived is applied at lookup time.
func originIndex(states []ComponentState, props []ReceivedProp) map[string]string {
	index := map[string]string{}
	for _, entry := range states {
		switch entry.Hook {
		case HookUseContext:
			index[entry.Name] = SourceContext
		case HookUseState, HookUseReducer:
			index[entry.Name] = SourceState
			if entry.Setter != "" {
				index[entry.Setter] = SourceState
			}
			if entry.Dispatch != "" {
				index[entry.Dispatch] = SourceState
			}
		default:
			if _, taken := index[entry.Name]; !taken {
				index[entry.Name] = SourceDerived
			}
		}
	}
	// Props win over everything.
	for _, prop := range props {
		index[prop.Name] = SourceProp
	}
	return index
}

var sourceRank = map[string]int{
	SourceProp:    0,
	SourceState:   1,
	SourceContext: 2,
	SourceDerived: 3,
}

// classify picks the strongest origin among the expression's identifiers.
func classify(origin map[string]string, idents []string) string {
	best := SourceDerived
	for _, ident := range idents {
		if src, ok := origin[ident]; ok && sourceRank[src] < sourceRank[best] {
			best = src
		}
	}
	return best
}

func markUsage(states []ComponentState, idents []string, tag string, childComponent bool) {
	for i := range states {
		entry := &states[i]
		for _, ident := range idents {
			if ident != entry.Name && ident != entry.Setter && ident != entry.Dispatch {
				continue
			}
			entry.UsedInJSX = true
			if childComponent {
				entry.PassedTo = util.AppendUnique(entry.PassedTo, tag)
			}
		}
	}
}

// expressionIdentifiers collects the root identifiers referenced in a JSX
// attribute value or expression container. Member accesses contribute their
// leftmost object (user.name -> user); property names are skipped.
func expressionIdentifiers(doc *source.Document, node *sitter.Node) []string {
	var idents []string
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil {
			return
		}
		switch n.Kind() {
		case "identifier":
			name := doc.Text(n)
			if name != "" && name != "undefined" {
				idents = append(idents, name)
			}
			return
		case "member_expression":
			walk(n.ChildByFieldName("object"))
			return
		case "jsx_element", "jsx_self_closing_element":
			// Nested elements are visited by the caller.
			return
		}
		for i := uint(0); i < n.ChildCount(); i++ {
			walk(n.Child(i))
		}
	}
	walk(node)
	return idents
}

// bareIdentifier returns the identifier text when the attribute value is
// exactly {ident}, "" otherwise.
func bareIdentifier(doc *source.Document, value *sitter.Node) string {
	if value.Kind() != "jsx_expression" {
		return ""
	}
	inner := expressionInner(value)
	if inner != nil && inner.Kind() == "identifier" {
		return doc.Text(inner)
	}
	return ""
}

func isInlineFunction(value *sitter.Node) bool {
	if value.Kind() != "jsx_expression" {
		return false
	}
	inner := expressionInner(value)
	return inner != nil && (inner.Kind() == "arrow_function" || inner.Kind() == "function_expression")
}

func expressionInner(expr *sitter.Node) *sitter.Node {
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

// isCapitalized accepts dotted tags too, unlike isComponentName.
func isCapitalized(name string) bool {
	return name != "" && unicode.IsUpper(rune(name[0]))
}
