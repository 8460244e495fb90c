package layout

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"uiscope/internal/engine/source"
	"uiscope/internal/engine/tailwind"
)

// displayOf maps the resolved display token onto a CSS display value.
// Elements without a display class default to block.
func displayOf(props map[string]string) string {
	token, ok := props["display"]
	if !ok {
		return "block"
	}
	if token == "hidden" {
		return "none"
	}
	return token
}

func positionOf(props map[string]string) string {
	if token, ok := props["position"]; ok {
		return token
	}
	return "static"
}

func sizingOf(props map[string]string) Sizing {
	sizing := Sizing{
		Width:  SizeSpec{Kind: string(tailwind.SizeAuto)},
		Height: SizeSpec{Kind: string(tailwind.SizeAuto)},
	}

	if token, ok := props["width"]; ok {
		sizing.Width = sizeSpec(token, "w-", false)
	}
	if token, ok := props["height"]; ok {
		sizing.Height = sizeSpec(token, "h-", true)
	}

	// flex-1 / flex-auto make the main axis flexible; without parent context
	// at this point, width carries the flex tag unless explicitly sized.
	if flexToken, ok := props["flex"]; ok && (flexToken == "flex-1" || flexToken == "flex-auto") {
		if sizing.Width.Kind == string(tailwind.SizeAuto) {
			sizing.Width = SizeSpec{Kind: string(tailwind.SizeFlex)}
		}
	}
	return sizing
}

func sizeSpec(token, prefix string, vertical bool) SizeSpec {
	suffix, ok := strings.CutPrefix(token, prefix)
	if !ok {
		// container and friends resolve to width without the w- prefix.
		if token == "container" {
			return SizeSpec{Kind: string(tailwind.SizePercentage), Value: "100%"}
		}
		return SizeSpec{Kind: string(tailwind.SizeAuto)}
	}
	kind, value := tailwind.SizeValue(suffix, vertical)
	return SizeSpec{Kind: string(kind), Value: value}
}

func overflowOf(props map[string]string) Overflow {
	overflow := Overflow{X: "visible", Y: "visible"}
	if token, ok := props["overflow"]; ok {
		value := strings.TrimPrefix(token, "overflow-")
		overflow.X = value
		overflow.Y = value
	}
	if token, ok := props["overflow-x"]; ok {
		overflow.X = strings.TrimPrefix(token, "overflow-x-")
	}
	if token, ok := props["overflow-y"]; ok {
		overflow.Y = strings.TrimPrefix(token, "overflow-y-")
	}
	return overflow
}

var justifyValues = map[string]string{
	"justify-start":   "flex-start",
	"justify-end":     "flex-end",
	"justify-center":  "center",
	"justify-between": "space-between",
	"justify-around":  "space-around",
	"justify-evenly":  "space-evenly",
	"justify-stretch": "stretch",
}

var alignValues = map[string]string{
	"items-start":    "flex-start",
	"items-end":      "flex-end",
	"items-center":   "center",
	"items-baseline": "baseline",
	"items-stretch":  "stretch",
}

func flexOf(props map[string]string) *FlexProps {
	flex := &FlexProps{Direction: "row"}

	switch props["flex-direction"] {
	case "flex-col":
		flex.Direction = "column"
	case "flex-row-reverse":
		flex.Direction = "row-reverse"
	case "flex-col-reverse":
		flex.Direction = "column-reverse"
	}

	switch props["flex-wrap"] {
	case "flex-wrap":
		flex.Wrap = "wrap"
	case "flex-nowrap":
		flex.Wrap = "nowrap"
	case "flex-wrap-reverse":
		flex.Wrap = "wrap-reverse"
	}

	if value, ok := justifyValues[props["justify-content"]]; ok {
		flex.Justify = value
	}
	if value, ok := alignValues[props["align-items"]]; ok {
		flex.Align = value
	}
	flex.Gap = gapValue(props["gap"])
	return flex
}

func gridOf(props map[string]string) *GridProps {
	grid := &GridProps{}
	if token, ok := props["grid-template-columns"]; ok {
		if count := tailwind.GridColumnCount(token); count > 0 {
			grid.ColumnCount = count
			grid.Columns = fmt.Sprintf("repeat(%d, minmax(0, 1fr))", count)
		} else {
			grid.Columns = strings.TrimPrefix(token, "grid-cols-")
		}
	}
	if token, ok := props["grid-template-rows"]; ok {
		grid.Rows = strings.TrimPrefix(token, "grid-rows-")
	}
	grid.Gap = gapValue(props["gap"])
	return grid
}

func gapValue(token string) string {
	suffix, ok := strings.CutPrefix(token, "gap-")
	if !ok {
		return ""
	}
	kind, value := tailwind.SizeValue(suffix, false)
	if kind != tailwind.SizeFixed {
		return suffix
	}
	return value
}

// attrString resolves a plain string attribute value (id="...").
func attrString(doc *source.Document, element *sitter.Node, name string) string {
	value := doc.Attribute(element, name)
	if value == nil {
		return ""
	}
	if value.Kind() == "string" {
		return strings.Trim(doc.Text(value), "\"'")
	}
	return ""
}
