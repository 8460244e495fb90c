package layout

import (
	"fmt"

	"uiscope/internal/engine/report"
	"uiscope/internal/engine/tailwind"
)

const (
	KindOverflowRisk       = "overflow_risk"
	KindGridMissingColumns = "grid_missing_columns"
)

// ruleContext is the ancestor state carried down the recursion in place of
// parent pointers.
type ruleContext struct {
	fixedHeight  bool
	overflowYVis bool
	display      string
	position     string
}

func rootContext() ruleContext {
	return ruleContext{display: "block", position: "static", overflowYVis: true}
}

// evaluateRules walks the layout tree with its ancestor context and collects
// structural issues.
func evaluateRules(node *Node, ctx ruleContext) []report.Issue {
	issues := []report.Issue{}
	walkRules(node, ctx, &issues)
	return issues
}

func walkRules(node *Node, ctx ruleContext, issues *[]report.Issue) {
	if node == nil {
		return
	}

	// A fixed-height box that lets vertical overflow stay visible will paint
	// auto-height children outside its bounds.
	if ctx.fixedHeight && ctx.overflowYVis && node.Sizing.Height.Kind == string(tailwind.SizeAuto) {
		*issues = append(*issues, report.Issue{
			Kind:     KindOverflowRisk,
			Severity: report.SeverityWarning,
			Location: report.Locate(node.Element, node.Line),
			Description: fmt.Sprintf(
				"auto-height %s sits inside a fixed-height container whose vertical overflow is visible; content can spill out",
				node.Tag),
			Suggestion: "add overflow-y-auto or overflow-hidden to the fixed-height container, or give the child a bounded height",
		})
	}

	if node.Display == "grid" && (node.Grid == nil || node.Grid.Columns == "") {
		*issues = append(*issues, report.Issue{
			Kind:        KindGridMissingColumns,
			Severity:    report.SeverityWarning,
			Location:    report.Locate(node.Element, node.Line),
			Description: "grid container has no explicit column template; items fall into a single implicit column",
			Suggestion:  "add a column template such as grid-cols-2 or grid-cols-[200px_1fr]",
		})
	}

	childCtx := ruleContext{
		fixedHeight:  node.Sizing.Height.Kind == string(tailwind.SizeFixed),
		overflowYVis: node.Overflow.Y == "visible",
		display:      node.Display,
		position:     node.Position,
	}
	for _, child := range node.Children {
		walkRules(child, childCtx, issues)
	}
}
