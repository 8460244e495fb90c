// Package layout converts a JSX subtree into a sizing/flex/grid/overflow
// annotated tree and flags structural layout hazards. Ancestor context is
// passed down the recursion rather than stored on nodes, so the tree stays a
// strict top-down ownership hierarchy.
package layout

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"uiscope/internal/engine/classes"
	"uiscope/internal/engine/report"
	"uiscope/internal/engine/source"
	"uiscope/internal/engine/tailwind"
)

type SizeSpec struct {
	Kind  string `json:"kind"`
	Value string `json:"value,omitempty"`
}

type Sizing struct {
	Width  SizeSpec `json:"width"`
	Height SizeSpec `json:"height"`
}

type FlexProps struct {
	Direction string `json:"direction,omitempty"`
	Wrap      string `json:"wrap,omitempty"`
	Justify   string `json:"justify,omitempty"`
	Align     string `json:"align,omitempty"`
	Gap       string `json:"gap,omitempty"`
}

type GridProps struct {
	Columns     string `json:"columns,omitempty"`
	Rows        string `json:"rows,omitempty"`
	ColumnCount int    `json:"column_count,omitempty"`
	Gap         string `json:"gap,omitempty"`
}

type Overflow struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// Node is one element of the layout tree. A parent exclusively owns its
// children; there are no back-references.
type Node struct {
	Element  string     `json:"element"`
	Tag      string     `json:"tag"`
	ID       string     `json:"id,omitempty"`
	Line     int        `json:"line"`
	Classes  []string   `json:"classes,omitempty"`
	Display  string     `json:"display"`
	Sizing   Sizing     `json:"sizing"`
	Flex     *FlexProps `json:"flex,omitempty"`
	Grid     *GridProps `json:"grid,omitempty"`
	Overflow Overflow   `json:"overflow"`
	Position string     `json:"position"`
	Children []*Node    `json:"children,omitempty"`
}

type Report struct {
	File     string         `json:"file"`
	Selector string         `json:"selector,omitempty"`
	Tree     *Node          `json:"tree"`
	Issues   []report.Issue `json:"issues"`
	Note     string         `json:"note,omitempty"`
}

type builder struct {
	doc       *source.Document
	extractor *classes.Extractor
	tagCounts map[string]int
}

// Analyze builds the layout tree, optionally pruned to a selector
// ("#id", ".class" or a bare tag name).
func Analyze(doc *source.Document, helpers []string, selector string) *Report {
	rep := &Report{
		File:     doc.Path,
		Selector: selector,
		Issues:   []report.Issue{},
	}

	roots := source.TopLevelJSXElements(doc.Root())
	if len(roots) == 0 {
		rep.Note = "no JSX elements found"
		return rep
	}

	b := &builder{
		doc:       doc,
		extractor: classes.NewExtractor(doc, helpers),
		tagCounts: make(map[string]int),
	}

	trees := make([]*Node, 0, len(roots))
	for _, root := range roots {
		trees = append(trees, b.build(root))
	}

	var tree *Node
	if selector == "" {
		tree = trees[0]
		if len(trees) > 1 {
			// Multiple top-level siblings get a synthetic fragment root so
			// the result is still a single tree.
			tree = &Node{
				Element:  "fragment#0",
				Tag:      "fragment",
				Display:  "block",
				Sizing:   Sizing{Width: SizeSpec{Kind: string(tailwind.SizeAuto)}, Height: SizeSpec{Kind: string(tailwind.SizeAuto)}},
				Overflow: Overflow{X: "visible", Y: "visible"},
				Position: "static",
				Children: trees,
			}
		}
	} else {
		for _, candidate := range trees {
			if tree = b.findMatch(candidate, selector); tree != nil {
				break
			}
		}
		if tree == nil {
			rep.Note = fmt.Sprintf("no element matches selector %q", selector)
			return rep
		}
	}

	rep.Tree = tree
	rep.Issues = evaluateRules(tree, rootContext())
	return rep
}

func (b *builder) build(element *sitter.Node) *Node {
	tag := b.doc.TagName(element)
	identity := fmt.Sprintf("%s#%d", tag, b.tagCounts[tag])
	b.tagCounts[tag]++

	tokens := b.extractor.ElementClasses(element)
	props := tailwind.PropsFor(tokens)

	node := &Node{
		Element:  identity,
		Tag:      tag,
		ID:       attrString(b.doc, element, "id"),
		Line:     b.doc.Line(element),
		Classes:  tokens,
		Display:  displayOf(props),
		Sizing:   sizingOf(props),
		Overflow: overflowOf(props),
		Position: positionOf(props),
	}

	switch node.Display {
	case "flex", "inline-flex":
		node.Flex = flexOf(props)
	case "grid", "inline-grid":
		node.Grid = gridOf(props)
	}

	for _, child := range source.JSXChildren(element) {
		node.Children = append(node.Children, b.build(child))
	}
	return node
}

// findMatch returns the subtree rooted at the first node matching the
// selector, depth-first.
func (b *builder) findMatch(node *Node, selector string) *Node {
	if node == nil {
		return nil
	}
	if b.matches(node, selector) {
		return node
	}
	for _, child := range node.Children {
		if found := b.findMatch(child, selector); found != nil {
			return found
		}
	}
	return nil
}

func (b *builder) matches(node *Node, selector string) bool {
	switch {
	case strings.HasPrefix(selector, "#"):
		return node.ID != "" && node.ID == selector[1:]
	case strings.HasPrefix(selector, "."):
		wanted := selector[1:]
		for _, token := range node.Classes {
			_, bare := tailwind.Split(token)
			if bare == wanted {
				return true
			}
		}
		return false
	default:
		return node.Tag == selector || node.Element == selector
	}
}
