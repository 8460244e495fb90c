package events

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

func TestAnalyzeTreeAndHandlers(t *testing.T) {
	doc := parseTSX(t, `
export default function Menu() {
	return (
		<nav onClick={handleNav}>
			<button onClick={handleItem}>item</button>
		</nav>
	);
}
`)
	rep := Analyze(doc, "")
	if rep.Tree == nil {
		t.Fatal("nil tree")
	}
	if rep.Tree.Element != "nav#0" || rep.Tree.Depth != 0 {
		t.Errorf("root = %s depth=%d", rep.Tree.Element, rep.Tree.Depth)
	}
	if len(rep.Tree.Children) != 1 || rep.Tree.Children[0].Depth != 1 {
		t.Fatalf("children = %v", rep.Tree.Children)
	}
	if len(rep.Handlers) != 2 {
		t.Fatalf("handlers = %v", rep.Handlers)
	}
	for _, handler := range rep.Handlers {
		if handler.Event != "click" {
			t.Errorf("event = %q, want click", handler.Event)
		}
	}
}

func TestBubblingOrderDeepestFirst(t *testing.T) {
	doc := parseTSX(t, `
export default function Nested() {
	return (
		<div onClick={outer}>
			<section onClick={middle}>
				<button onClick={inner}>x</button>
			</section>
		</div>
	);
}
`)
	rep := Analyze(doc, "")
	if len(rep.Flows) != 1 {
		t.Fatalf("flows = %v", rep.Flows)
	}
	flow := rep.Flows[0]
	if flow.Event != "click" || !flow.Bubbles {
		t.Errorf("flow = %+v", flow)
	}
	if len(flow.Steps) != 3 {
		t.Fatalf("steps = %v", flow.Steps)
	}
	wantOrder := []string{"button#0", "section#0", "div#0"}
	for i, element := range wantOrder {
		if flow.Steps[i].Element != element {
			t.Errorf("step[%d] = %s, want %s", i, flow.Steps[i].Element, element)
		}
	}
	if flow.StoppedAt != "" {
		t.Errorf("nothing stops propagation, StoppedAt = %q", flow.StoppedAt)
	}
}

func TestStopPropagationTruncatesFlow(t *testing.T) {
	doc := parseTSX(t, `
export default function Stopper() {
	return (
		<div onClick={outer}>
			<button onClick={(e) => { e.stopPropagation(); select(); }}>x</button>
		</div>
	);
}
`)
	rep := Analyze(doc, "")
	if len(rep.Flows) != 1 {
		t.Fatalf("flows = %v", rep.Flows)
	}
	flow := rep.Flows[0]
	if len(flow.Steps) != 1 {
		t.Fatalf("steps = %v", flow.Steps)
	}
	if flow.StoppedAt != "button#0" {
		t.Errorf("stopped at %q, want button#0", flow.StoppedAt)
	}
	if !flow.Steps[0].StopsPropagation {
		t.Error("step should record stopPropagation")
	}
}

func TestNonBubblingEvent(t *testing.T) {
	doc := parseTSX(t, `
export default function Focusers() {
	return (
		<div onFocus={outer}>
			<input onFocus={inner} />
		</div>
	);
}
`)
	rep := Analyze(doc, "")
	if len(rep.Flows) != 1 {
		t.Fatalf("flows = %v", rep.Flows)
	}
	flow := rep.Flows[0]
	if flow.Event != "focus" || flow.Bubbles {
		t.Errorf("flow = %+v", flow)
	}
	if len(flow.Steps) != 2 {
		t.Errorf("non-bubbling steps = %v", flow.Steps)
	}
	if flow.StoppedAt != "" {
		t.Errorf("StoppedAt = %q", flow.StoppedAt)
	}
}

func TestEventFilterNarrowsHandlersNotRules(t *testing.T) {
	doc := parseTSX(t, `
export default function Mixed() {
	return (
		<div onClick={outer}>
			<button onClick={inner}>x</button>
			<input onChange={change} />
		</div>
	);
}
`)
	rep := Analyze(doc, "change")
	if len(rep.Handlers) != 1 || rep.Handlers[0].Event != "change" {
		t.Fatalf("filtered handlers = %v", rep.Handlers)
	}
	if len(rep.Flows) != 1 || rep.Flows[0].Event != "change" {
		t.Fatalf("filtered flows = %v", rep.Flows)
	}
	// The nested clickable pair still gets flagged even though the filter
	// excludes click from the reported handlers.
	found := false
	for _, issue := range rep.Issues {
		if issue.Kind == KindNestedClickable {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected nested_clickable_elements, got %v", rep.Issues)
	}
}

func TestNestedClickableSuppressedByStopPropagation(t *testing.T) {
	doc := parseTSX(t, `
export default function Safe() {
	return (
		<div onClick={outer}>
			<button onClick={(e) => { e.stopPropagation(); inner(); }}>x</button>
		</div>
	);
}
`)
	rep := Analyze(doc, "")
	for _, issue := range rep.Issues {
		if issue.Kind == KindNestedClickable {
			t.Fatalf("stopPropagation should suppress the warning: %v", issue)
		}
	}
}

func TestNonInteractiveClick(t *testing.T) {
	doc := parseTSX(t, `
export default function Bad() {
	return <div onClick={open}>open</div>;
}
`)
	rep := Analyze(doc, "")
	found := false
	for _, issue := range rep.Issues {
		if issue.Kind == KindNonInteractiveClick {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected non_interactive_click_handler, got %v", rep.Issues)
	}
}

func TestNonInteractiveClickOptOuts(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"button tag", `export default function A() { return <button onClick={f}>x</button>; }`},
		{"role button", `export default function B() { return <div role="button" onClick={f} onKeyDown={g}>x</div>; }`},
		{"keyboard handler", `export default function C() { return <div onClick={f} onKeyDown={g}>x</div>; }`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rep := Analyze(parseTSX(t, tc.src), "")
			for _, issue := range rep.Issues {
				if issue.Kind == KindNonInteractiveClick {
					t.Fatalf("%s should not warn: %v", tc.name, issue)
				}
			}
		})
	}
}

func TestFormSubmitNoPreventDefault(t *testing.T) {
	doc := parseTSX(t, `
export default function F() {
	return <form onSubmit={() => save()}><input /></form>;
}
`)
	rep := Analyze(doc, "")
	found := false
	for _, issue := range rep.Issues {
		if issue.Kind == KindSubmitNoPreventDefault {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected form_submit_no_prevent_default, got %v", rep.Issues)
	}
}

func TestFormSubmitWithPreventDefaultIsClean(t *testing.T) {
	doc := parseTSX(t, `
export default function F() {
	return <form onSubmit={(e) => { e.preventDefault(); save(); }}><input /></form>;
}
`)
	rep := Analyze(doc, "")
	for _, issue := range rep.Issues {
		if issue.Kind == KindSubmitNoPreventDefault {
			t.Fatalf("preventDefault should suppress the warning: %v", issue)
		}
	}
}

func TestHandlerResolutionFromDeclaration(t *testing.T) {
	doc := parseTSX(t, `
export default function Resolver() {
	const handleClick = (e) => {
		e.stopPropagation();
		toggle();
	};
	return (
		<div onClick={bubble}>
			<span onClick={handleClick}>x</span>
		</div>
	);
}
`)
	rep := Analyze(doc, "")
	var span EventHandler
	for _, handler := range rep.Handlers {
		if handler.Element == "span#0" {
			span = handler
		}
	}
	if !span.StopsPropagation {
		t.Error("handler body resolved through its declaration should record stopPropagation")
	}
}

func TestDelegationDetection(t *testing.T) {
	doc := parseTSX(t, `
export default function Table() {
	const handleRow = (e) => {
		const row = e.target.closest("tr[data-id]");
		if (row) select(row.dataset.id);
	};
	return <tbody onClick={handleRow}><tr data-id="1"><td>x</td></tr></tbody>;
}
`)
	rep := Analyze(doc, "")
	if len(rep.Delegations) == 0 {
		t.Fatal("expected a delegation entry")
	}
	delegation := rep.Delegations[0]
	if delegation.Pattern != "target.closest" || delegation.Selector != "tr[data-id]" {
		t.Errorf("delegation = %+v", delegation)
	}
}

func TestFragmentRoots(t *testing.T) {
	doc := parseTSX(t, `
export default function Pair() {
	return (
		<>
			<button onClick={a}>a</button>
			<button onClick={b}>b</button>
		</>
	);
}
`)
	rep := Analyze(doc, "")
	if rep.Tree == nil || rep.Tree.Tag != "fragment" {
		t.Fatalf("tree = %+v", rep.Tree)
	}
	if len(rep.Tree.Children) != 2 {
		t.Fatalf("children = %v", rep.Tree.Children)
	}
	if rep.Tree.Children[0].Element != "button#0" || rep.Tree.Children[1].Element != "button#1" {
		t.Errorf("identities = %s, %s", rep.Tree.Children[0].Element, rep.Tree.Children[1].Element)
	}
}

func TestNoHandlersNote(t *testing.T) {
	doc := parseTSX(t, `
export default function Static() {
	return <div><p>x</p></div>;
}
`)
	rep := Analyze(doc, "")
	if rep.Note == "" {
		t.Error("expected note for handler-free markup")
	}
	if rep.Tree == nil {
		t.Error("tree should still be reported")
	}
}
