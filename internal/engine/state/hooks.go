package state

import (
	"strings"
	"unicode"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"uiscope/internal/engine/source"
	"uiscope/internal/shared/util"
)

const (
	HookUseState        = "useState"
	HookUseReducer      = "useReducer"
	HookUseRef          = "useRef"
	HookUseContext      = "useContext"
	HookUseEffect       = "useEffect"
	HookUseLayoutEffect = "useLayoutEffect"
	HookUseMemo         = "useMemo"
	HookUseCallback     = "useCallback"
	HookCustom          = "custom"
)

var knownHooks = map[string]string{
	"useState":        HookUseState,
	"useReducer":      HookUseReducer,
	"useRef":          HookUseRef,
	"useContext":      HookUseContext,
	"useEffect":       HookUseEffect,
	"useLayoutEffect": HookUseLayoutEffect,
	"useMemo":         HookUseMemo,
	"useCallback":     HookUseCallback,
}

// collectHooks walks the component body once and classifies every hook call.
func collectHooks(doc *source.Document, fn *sitter.Node) []ComponentState {
	var states []ComponentState

	var walk func(node *sitter.Node)
	walk = func(node *sitter.Node) {
		if node == nil {
			return
		}
		switch node.Kind() {
		case "variable_declarator":
			if entry := hookBinding(doc, node); entry != nil {
				states = append(states, *entry)
			}
		case "call_expression":
			// Bare effect calls never bind a name: useEffect(() => {...}).
			if kind, callee := hookCallee(doc, node); kind != "" && isBareStatement(node) {
				states = append(states, ComponentState{
					Name: "effect",
					Type: "effect",
					Hook: hookLabel(kind, callee),
					Line: doc.Line(node),
				})
			}
		}
		for i := uint(0); i < node.ChildCount(); i++ {
			walk(node.Child(i))
		}
	}
	walk(fn.ChildByFieldName("body"))
	return states
}

// hookBinding classifies `const X = useY(...)` declarators.
func hookBinding(doc *source.Document, declarator *sitter.Node) *ComponentState {
	value := declarator.ChildByFieldName("value")
	if value == nil || value.Kind() != "call_expression" {
		return nil
	}
	kind, callee := hookCallee(doc, value)
	if kind == "" {
		return nil
	}

	pattern := declarator.ChildByFieldName("name")
	entry := &ComponentState{
		Hook: hookLabel(kind, callee),
		Line: doc.Line(declarator),
	}

	switch kind {
	case HookUseState, HookUseReducer:
		// Two-element array destructuring: [value, setter] / [state, dispatch].
		names := arrayPatternNames(doc, pattern)
		if len(names) == 0 {
			return nil
		}
		entry.Name = names[0]
		if len(names) > 1 {
			if kind == HookUseState {
				entry.Setter = names[1]
			} else {
				entry.Dispatch = names[1]
			}
		}
		entry.InitialValue = firstArgumentText(doc, value)
		entry.Type = inferType(doc, value, firstArgument(value))

	case HookUseContext:
		entry.Name = identifierName(doc, pattern)
		if entry.Name == "" {
			return nil
		}
		entry.Type = firstArgumentText(doc, value)
		if entry.Type == "" {
			entry.Type = "context"
		}

	case HookUseMemo, HookUseCallback:
		entry.Name = identifierName(doc, pattern)
		if entry.Name == "" {
			return nil
		}
		if kind == HookUseCallback {
			entry.Type = "function"
		} else {
			entry.Type = inferType(doc, value, nil)
			if entry.Type == "" {
				entry.Type = "derived"
			}
		}

	case HookUseEffect, HookUseLayoutEffect:
		// Effects assigned to a variable are unusual; treat like bare calls.
		entry.Name = "effect"
		entry.Type = "effect"

	default: // useRef and custom hooks bind a single identifier or pattern
		entry.Name = identifierName(doc, pattern)
		if entry.Name == "" {
			// Custom hooks may destructure: const {data, error} = useQuery().
			names := patternNames(doc, pattern)
			if len(names) == 0 {
				return nil
			}
			entry.Name = strings.Join(names, ", ")
		}
		entry.InitialValue = firstArgumentText(doc, value)
		entry.Type = inferType(doc, value, firstArgument(value))
	}

	return entry
}

// hookCallee returns the hook kind and callee text for a call expression, or
// "" when the callee is not hook-shaped.
func hookCallee(doc *source.Document, call *sitter.Node) (string, string) {
	callee := doc.Text(call.ChildByFieldName("function"))
	base := callee
	if dot := strings.LastIndex(base, "."); dot >= 0 {
		base = base[dot+1:]
	}
	if kind, ok := knownHooks[base]; ok {
		return kind, base
	}
	if len(base) > 3 && strings.HasPrefix(base, "use") && unicode.IsUpper(rune(base[3])) {
		return HookCustom, base
	}
	return "", ""
}

func hookLabel(kind, callee string) string {
	if kind == HookCustom {
		return callee
	}
	return kind
}

func isBareStatement(call *sitter.Node) bool {
	parent := call.Parent()
	return parent != nil && parent.Kind() == "expression_statement"
}

func arrayPatternNames(doc *source.Document, pattern *sitter.Node) []string {
	if pattern == nil || pattern.Kind() != "array_pattern" {
		return nil
	}
	var names []string
	for i := uint(0); i < pattern.ChildCount(); i++ {
		child := pattern.Child(i)
		if child.Kind() == "identifier" {
			names = append(names, doc.Text(child))
		}
	}
	return names
}

func patternNames(doc *source.Document, pattern *sitter.Node) []string {
	if pattern == nil {
		return nil
	}
	switch pattern.Kind() {
	case "identifier":
		return []string{doc.Text(pattern)}
	case "array_pattern":
		return arrayPatternNames(doc, pattern)
	case "object_pattern":
		var names []string
		for i := uint(0); i < pattern.ChildCount(); i++ {
			child := pattern.Child(i)
			switch child.Kind() {
			case "shorthand_property_identifier_pattern":
				names = append(names, doc.Text(child))
			case "pair_pattern":
				if value := child.ChildByFieldName("value"); value != nil && value.Kind() == "identifier" {
					names = append(names, doc.Text(value))
				}
			}
		}
		return names
	}
	return nil
}

func identifierName(doc *source.Document, pattern *sitter.Node) string {
	if pattern != nil && pattern.Kind() == "identifier" {
		return doc.Text(pattern)
	}
	return ""
}

func firstArgument(call *sitter.Node) *sitter.Node {
	args := call.ChildByFieldName("arguments")
	if args == nil {
		return nil
	}
	for i := uint(0); i < args.ChildCount(); i++ {
		child := args.Child(i)
		kind := child.Kind()
		if kind == "(" || kind == ")" || kind == "," || kind == "comment" {
			continue
		}
		return child
	}
	return nil
}

func firstArgumentText(doc *source.Document, call *sitter.Node) string {
	return util.Truncate(doc.Text(firstArgument(call)), 60)
}

// inferType prefers an explicit generic type argument, then falls back to the
// literal kind of the initializer expression.
func inferType(doc *source.Document, call, initializer *sitter.Node) string {
	if typeArgs := call.ChildByFieldName("type_arguments"); typeArgs != nil {
		for i := uint(0); i < typeArgs.ChildCount(); i++ {
			child := typeArgs.Child(i)
			kind := child.Kind()
			if kind == "<" || kind == ">" || kind == "," {
				continue
			}
			return doc.Text(child)
		}
	}
	if initializer == nil {
		return ""
	}
	switch initializer.Kind() {
	case "string", "template_string":
		return "string"
	case "number":
		return "number"
	case "true", "false":
		return "boolean"
	case "array":
		return "array"
	case "object":
		return "object"
	case "null":
		return "null"
	case "undefined":
		return "undefined"
	case "arrow_function", "function_expression":
		return "function"
	case "unary_expression":
		// -1 and friends
		if strings.HasPrefix(doc.Text(initializer), "-") {
			return "number"
		}
	case "identifier":
		if doc.Text(initializer) == "undefined" {
			return "undefined"
		}
	}
	return util.Truncate(doc.Text(initializer), 30)
}
