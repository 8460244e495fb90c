package classes

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

func TestExtractAllLiteral(t *testing.T) {
	doc := parseTSX(t, `
export default function Card() {
	return (
		<div className="flex flex-col md:flex-row gap-4">
			<span className="text-sm">hi</span>
		</div>
	);
}
`)
	got := NewExtractor(doc, nil).ExtractAll(nil)
	if len(got) != 2 {
		t.Fatalf("expected 2 extractions, got %d", len(got))
	}
	if got[0].Element != "div#0" || got[0].Tag != "div" {
		t.Errorf("first element = %s (%s)", got[0].Element, got[0].Tag)
	}
	want := []string{"flex", "flex-col", "md:flex-row", "gap-4"}
	if len(got[0].Classes) != len(want) {
		t.Fatalf("classes = %v, want %v", got[0].Classes, want)
	}
	for i, c := range want {
		if got[0].Classes[i] != c {
			t.Errorf("classes[%d] = %q, want %q", i, got[0].Classes[i], c)
		}
	}
	if got[1].Element != "span#0" {
		t.Errorf("second element = %s", got[1].Element)
	}
}

func TestExtractAllSkipsElementsWithoutClasses(t *testing.T) {
	doc := parseTSX(t, `
export default function Bare() {
	return <div><p>text</p></div>;
}
`)
	got := NewExtractor(doc, nil).ExtractAll(nil)
	if len(got) != 0 {
		t.Fatalf("expected no extractions, got %d", len(got))
	}
}

func TestExtractAllIdentityCounters(t *testing.T) {
	doc := parseTSX(t, `
export default function List() {
	return (
		<ul className="list">
			<li className="item">a</li>
			<li className="item">b</li>
			<li className="item">c</li>
		</ul>
	);
}
`)
	got := NewExtractor(doc, nil).ExtractAll(nil)
	if len(got) != 4 {
		t.Fatalf("expected 4 extractions, got %d", len(got))
	}
	wantIdentities := []string{"ul#0", "li#0", "li#1", "li#2"}
	for i, id := range wantIdentities {
		if got[i].Element != id {
			t.Errorf("element[%d] = %s, want %s", i, got[i].Element, id)
		}
	}
}

func TestResolveTernaryUnionsBothBranches(t *testing.T) {
	doc := parseTSX(t, `
export default function Toggle({ open }: { open: boolean }) {
	return <div className={open ? "block" : "hidden"}>x</div>;
}
`)
	got := NewExtractor(doc, nil).ExtractAll(nil)
	if len(got) != 1 {
		t.Fatalf("expected 1 extraction, got %d", len(got))
	}
	if len(got[0].Classes) != 2 || got[0].Classes[0] != "block" || got[0].Classes[1] != "hidden" {
		t.Fatalf("classes = %v, want [block hidden]", got[0].Classes)
	}
}

func TestResolveTemplateString(t *testing.T) {
	doc := parseTSX(t, "export default function T() {\n\treturn <div className={`flex ${dynamic} gap-2`}>x</div>;\n}\n")
	got := NewExtractor(doc, nil).ExtractAll(nil)
	if len(got) != 1 {
		t.Fatalf("expected 1 extraction, got %d", len(got))
	}
	classes := got[0].Classes
	if len(classes) != 2 || classes[0] != "flex" || classes[1] != "gap-2" {
		t.Fatalf("classes = %v, want [flex gap-2]", classes)
	}
}

func TestResolveHelperCall(t *testing.T) {
	doc := parseTSX(t, `
export default function H({ active }: { active: boolean }) {
	return <div className={cn("base", active && "on", active ? "yes" : "no")}>x</div>;
}
`)
	got := NewExtractor(doc, []string{"cn", "clsx"}).ExtractAll(nil)
	if len(got) != 1 {
		t.Fatalf("expected 1 extraction, got %d", len(got))
	}
	classes := got[0].Classes
	// "active && ..." is not statically resolvable; the literal and both
	// ternary branches are.
	want := map[string]bool{"base": true, "yes": true, "no": true}
	if len(classes) != len(want) {
		t.Fatalf("classes = %v", classes)
	}
	for _, c := range classes {
		if !want[c] {
			t.Errorf("unexpected class %q in %v", c, classes)
		}
	}
}

func TestResolveUnknownHelperYieldsNothing(t *testing.T) {
	doc := parseTSX(t, `
export default function H() {
	return <div className={mystery("base")}>x</div>;
}
`)
	got := NewExtractor(doc, []string{"cn"}).ExtractAll(nil)
	if len(got) != 1 {
		t.Fatalf("expected 1 extraction, got %d", len(got))
	}
	if len(got[0].Classes) != 0 {
		t.Fatalf("unresolvable helper should yield no classes, got %v", got[0].Classes)
	}
}

func TestFilterByTag(t *testing.T) {
	doc := parseTSX(t, `
export default function F() {
	return (
		<div className="outer">
			<span className="inner">x</span>
		</div>
	);
}
`)
	got := NewExtractor(doc, nil).ExtractAll(NewFilter("span"))
	if len(got) != 1 || got[0].Tag != "span" {
		t.Fatalf("filter by tag: got %v", got)
	}
}

func TestFilterGlob(t *testing.T) {
	doc := parseTSX(t, `
export default function F() {
	return (
		<div className="a">
			<div className="b">x</div>
			<span className="c">y</span>
		</div>
	);
}
`)
	got := NewExtractor(doc, nil).ExtractAll(NewFilter("div#*"))
	if len(got) != 2 {
		t.Fatalf("glob filter: expected 2 divs, got %d", len(got))
	}
}

func TestNilFilterMatchesEverything(t *testing.T) {
	var f *Filter
	if !f.Match("div#0", "div") {
		t.Fatal("nil filter should match")
	}
	if NewFilter("  ") != nil {
		t.Fatal("blank pattern should produce a nil filter")
	}
}
