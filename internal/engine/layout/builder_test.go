package layout

import (
	"testing"

	"uiscope/internal/engine/source"
)

func parseTSX(t *testing.T, src string) *source.Document {
	t.Helper()
	doc, err := source.Parse("test.tsx", []byte(src), source.DialectTSX)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	t.Cleanup(doc.Close)
	return doc
}

func TestAnalyzeTree(t *testing.T) {
	doc := parseTSX(t, `
export default function Page() {
	return (
		<div className="flex flex-col gap-4 h-screen">
			<header className="h-16">top</header>
			<main className="flex-1 overflow-y-auto">body</main>
		</div>
	);
}
`)
	rep := Analyze(doc, nil, "")
	if rep.Tree == nil {
		t.Fatal("nil tree")
	}

	root := rep.Tree
	if root.Element != "div#0" || root.Display != "flex" {
		t.Fatalf("root = %s display=%s", root.Element, root.Display)
	}
	if root.Flex == nil || root.Flex.Direction != "column" {
		t.Errorf("root flex = %+v", root.Flex)
	}
	if root.Flex.Gap != "1rem" {
		t.Errorf("root gap = %q, want 1rem", root.Flex.Gap)
	}
	if root.Sizing.Height.Kind != "fixed" || root.Sizing.Height.Value != "100vh" {
		t.Errorf("root height = %+v", root.Sizing.Height)
	}
	if len(root.Children) != 2 {
		t.Fatalf("root children = %d", len(root.Children))
	}

	header := root.Children[0]
	if header.Tag != "header" || header.Sizing.Height.Kind != "fixed" || header.Sizing.Height.Value != "4rem" {
		t.Errorf("header = %+v", header)
	}

	main := root.Children[1]
	if main.Sizing.Width.Kind != "flex" {
		t.Errorf("flex-1 width kind = %q, want flex", main.Sizing.Width.Kind)
	}
	if main.Overflow.Y != "auto" {
		t.Errorf("main overflow-y = %q", main.Overflow.Y)
	}
}

func TestGridNode(t *testing.T) {
	doc := parseTSX(t, `
export default function Grid() {
	return <div className="grid grid-cols-3 gap-2">x</div>;
}
`)
	rep := Analyze(doc, nil, "")
	grid := rep.Tree.Grid
	if grid == nil {
		t.Fatal("expected grid props")
	}
	if grid.ColumnCount != 3 || grid.Columns != "repeat(3, minmax(0, 1fr))" {
		t.Errorf("grid = %+v", grid)
	}
	if grid.Gap != "0.5rem" {
		t.Errorf("grid gap = %q", grid.Gap)
	}
}

func TestFragmentRootForSiblings(t *testing.T) {
	doc := parseTSX(t, `
export default function Pair() {
	return (
		<>
			<div className="w-full">a</div>
			<div className="w-full">b</div>
		</>
	);
}
`)
	rep := Analyze(doc, nil, "")
	if rep.Tree == nil {
		t.Fatal("nil tree")
	}
	if rep.Tree.Tag != "fragment" || len(rep.Tree.Children) != 2 {
		t.Fatalf("tree = %s with %d children", rep.Tree.Tag, len(rep.Tree.Children))
	}
}

func TestSelectorByID(t *testing.T) {
	doc := parseTSX(t, `
export default function S() {
	return (
		<div className="flex">
			<section id="content" className="grid grid-cols-2">
				<p>x</p>
			</section>
		</div>
	);
}
`)
	rep := Analyze(doc, nil, "#content")
	if rep.Tree == nil {
		t.Fatal("selector did not match")
	}
	if rep.Tree.Tag != "section" || rep.Tree.ID != "content" {
		t.Errorf("tree root = %+v", rep.Tree)
	}
}

func TestSelectorByClass(t *testing.T) {
	doc := parseTSX(t, `
export default function S() {
	return (
		<div className="outer">
			<span className="badge text-sm">x</span>
		</div>
	);
}
`)
	rep := Analyze(doc, nil, ".badge")
	if rep.Tree == nil || rep.Tree.Tag != "span" {
		t.Fatalf("selector .badge: tree = %+v", rep.Tree)
	}
}

func TestSelectorNoMatch(t *testing.T) {
	doc := parseTSX(t, `
export default function S() {
	return <div className="flex">x</div>;
}
`)
	rep := Analyze(doc, nil, "#missing")
	if rep.Tree != nil {
		t.Fatal("expected nil tree for unmatched selector")
	}
	if rep.Note == "" {
		t.Error("expected note naming the unmatched selector")
	}
}

func TestOverflowRisk(t *testing.T) {
	doc := parseTSX(t, `
export default function Risk() {
	return (
		<div className="h-64">
			<div className="p-4">content</div>
		</div>
	);
}
`)
	rep := Analyze(doc, nil, "")
	found := false
	for _, issue := range rep.Issues {
		if issue.Kind == KindOverflowRisk {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected overflow_risk, got %v", rep.Issues)
	}
}

func TestOverflowRiskSuppressedByClipping(t *testing.T) {
	doc := parseTSX(t, `
export default function Safe() {
	return (
		<div className="h-64 overflow-y-auto">
			<div className="p-4">content</div>
		</div>
	);
}
`)
	rep := Analyze(doc, nil, "")
	for _, issue := range rep.Issues {
		if issue.Kind == KindOverflowRisk {
			t.Fatalf("clipped container should not warn: %v", issue)
		}
	}
}

func TestGridMissingColumns(t *testing.T) {
	doc := parseTSX(t, `
export default function G() {
	return <div className="grid gap-4">x</div>;
}
`)
	rep := Analyze(doc, nil, "")
	found := false
	for _, issue := range rep.Issues {
		if issue.Kind == KindGridMissingColumns {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected grid_missing_columns, got %v", rep.Issues)
	}
}

func TestNoJSXNote(t *testing.T) {
	doc := parseTSX(t, `export const x = 42;`)
	rep := Analyze(doc, nil, "")
	if rep.Tree != nil || rep.Note == "" {
		t.Fatalf("expected note-only report, got %+v", rep)
	}
}
