package state

import (
	"testing"

	"uiscope/internal/core/errors"
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

func findState(t *testing.T, rep *Report, name string) ComponentState {
	t.Helper()
	for _, state := range rep.States {
		if state.Name == name {
			return state
		}
	}
	t.Fatalf("no state named %q in %v", name, rep.States)
	return ComponentState{}
}

func findProp(t *testing.T, rep *Report, name string) ReceivedProp {
	t.Helper()
	for _, prop := range rep.ReceivedProps {
		if prop.Name == name {
			return prop
		}
	}
	t.Fatalf("no prop named %q in %v", name, rep.ReceivedProps)
	return ReceivedProp{}
}

func TestAnalyzeUseState(t *testing.T) {
	doc := parseTSX(t, `
export default function Counter() {
	const [count, setCount] = useState(0);
	return <div>{count}</div>;
}
`)
	rep, err := Analyze(doc)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if rep.Component != "Counter" {
		t.Errorf("component = %q", rep.Component)
	}

	count := findState(t, rep, "count")
	if count.Hook != "useState" {
		t.Errorf("hook = %q", count.Hook)
	}
	if count.Type != "number" {
		t.Errorf("type = %q, want number", count.Type)
	}
	if count.Setter != "setCount" {
		t.Errorf("setter = %q", count.Setter)
	}
	if count.InitialValue != "0" {
		t.Errorf("initial value = %q", count.InitialValue)
	}
	if !count.UsedInJSX {
		t.Error("count appears in JSX but was not marked used")
	}
}

func TestAnalyzeUseReducerAndContext(t *testing.T) {
	doc := parseTSX(t, `
export function Panel() {
	const [items, dispatch] = useReducer(reducer, []);
	const theme = useContext(ThemeContext);
	return <ul className={theme}>{items.length}</ul>;
}
`)
	rep, err := Analyze(doc)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	items := findState(t, rep, "items")
	if items.Hook != "useReducer" || items.Dispatch != "dispatch" {
		t.Errorf("items = %+v", items)
	}

	theme := findState(t, rep, "theme")
	if theme.Hook != "useContext" {
		t.Errorf("theme hook = %q", theme.Hook)
	}
	if !theme.UsedInJSX {
		t.Error("theme used in className but not marked")
	}
}

func TestAnalyzeTypedStateFromTypeArguments(t *testing.T) {
	doc := parseTSX(t, `
export default function Form() {
	const [name, setName] = useState<string>("");
	return <input value={name} />;
}
`)
	rep, err := Analyze(doc)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if state := findState(t, rep, "name"); state.Type != "string" {
		t.Errorf("type = %q, want string", state.Type)
	}
}

func TestReceivedPropsFromDestructuring(t *testing.T) {
	doc := parseTSX(t, `
export default function Button({ label, onClick, size = "md" }) {
	return <button onClick={onClick}>{label}</button>;
}
`)
	rep, err := Analyze(doc)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	label := findProp(t, rep, "label")
	if !label.Required {
		t.Error("label should be required")
	}
	size := findProp(t, rep, "size")
	if size.Required {
		t.Error("defaulted prop should not be required")
	}
	if size.Default != `"md"` {
		t.Errorf("size default = %q", size.Default)
	}
}

func TestReceivedPropsFromInterface(t *testing.T) {
	doc := parseTSX(t, `
interface CardProps {
	title: string;
	subtitle?: string;
}

export default function Card({ title, subtitle }: CardProps) {
	return <div>{title}</div>;
}
`)
	rep, err := Analyze(doc)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	title := findProp(t, rep, "title")
	if title.Type != "string" || !title.Required {
		t.Errorf("title = %+v", title)
	}
	subtitle := findProp(t, rep, "subtitle")
	if subtitle.Required {
		t.Error("optional member should not be required")
	}
}

func TestPassedDownProps(t *testing.T) {
	doc := parseTSX(t, `
export default function Parent() {
	const [value, setValue] = useState("");
	return <Child value={value} onChange={setValue} />;
}
`)
	rep, err := Analyze(doc)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if len(rep.PassedDownProps) != 2 {
		t.Fatalf("passed down = %v", rep.PassedDownProps)
	}
	byName := map[string]PassedDownProp{}
	for _, passed := range rep.PassedDownProps {
		byName[passed.PropName] = passed
	}
	if passed := byName["value"]; passed.ToComponent != "Child" || passed.OriginalSource != SourceState {
		t.Errorf("value = %+v", passed)
	}
	if passed := byName["onChange"]; passed.OriginalSource != SourceState {
		t.Errorf("onChange = %+v", passed)
	}

	value := findState(t, rep, "value")
	if len(value.PassedTo) != 1 || value.PassedTo[0] != "Child" {
		t.Errorf("passed_to = %v", value.PassedTo)
	}
}

func TestPropDrilling(t *testing.T) {
	doc := parseTSX(t, `
export default function Middle({ user }) {
	return <Profile user={user} />;
}
`)
	rep, err := Analyze(doc)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	found := false
	for _, issue := range rep.Issues {
		if issue.Kind == KindPropDrilling {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected prop_drilling, got %v", rep.Issues)
	}
}

func TestInlineFunctionProp(t *testing.T) {
	doc := parseTSX(t, `
export default function List({ items }) {
	return <Row onSelect={() => console.log("hi")} />;
}
`)
	rep, err := Analyze(doc)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	found := false
	for _, issue := range rep.Issues {
		if issue.Kind == KindInlineFunctionProp {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected inline_function_prop, got %v", rep.Issues)
	}
}

func TestNoComponentIsError(t *testing.T) {
	doc := parseTSX(t, `export const helper = (x: number) => x * 2;`)
	_, err := Analyze(doc)
	if !errors.IsCode(err, errors.CodeNoComponent) {
		t.Fatalf("expected NO_COMPONENT, got %v", err)
	}
}

func TestMemoWrappedComponent(t *testing.T) {
	doc := parseTSX(t, `
export const Badge = memo(({ text }) => {
	return <span>{text}</span>;
});
`)
	rep, err := Analyze(doc)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if rep.Component != "Badge" {
		t.Errorf("component = %q", rep.Component)
	}
	if prop := findProp(t, rep, "text"); !prop.Required {
		t.Errorf("text = %+v", prop)
	}
}

func TestCustomHook(t *testing.T) {
	doc := parseTSX(t, `
export default function Widget() {
	const data = useFetch("/api/items");
	return <div>{data}</div>;
}
`)
	rep, err := Analyze(doc)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if state := findState(t, rep, "data"); state.Hook != "useFetch" {
		t.Errorf("hook = %q, want useFetch", state.Hook)
	}
}
