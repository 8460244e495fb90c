package source

import (
	"os"
	"path/filepath"
	"testing"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"uiscope/internal/core/errors"
)

func findTag(doc *Document, tag string) *sitter.Node {
	var found *sitter.Node
	var walk func(node *sitter.Node)
	walk = func(node *sitter.Node) {
		if node == nil || found != nil {
			return
		}
		if IsJSXElementKind(node.Kind()) && doc.TagName(node) == tag {
			found = node
			return
		}
		for i := uint(0); i < node.ChildCount(); i++ {
			walk(node.Child(i))
		}
	}
	walk(doc.Root())
	return found
}

func TestParseTSX(t *testing.T) {
	doc, err := Parse("test.tsx", []byte(`
export default function App() {
	return <div className="flex">hi</div>;
}
`), DialectTSX)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	defer doc.Close()

	if doc.Root() == nil {
		t.Fatal("nil root")
	}
	el := FirstJSXElement(doc.Root())
	if el == nil {
		t.Fatal("no JSX element found")
	}
	if tag := doc.TagName(el); tag != "div" {
		t.Errorf("tag = %q, want div", tag)
	}
	if line := doc.Line(el); line != 3 {
		t.Errorf("line = %d, want 3", line)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := Load("style.css", map[string]bool{".tsx": true})
	if !errors.IsCode(err, errors.CodeUnsupportedFile) {
		t.Fatalf("expected UNSUPPORTED_FILE_TYPE, got %v", err)
	}
	ctx := errors.ContextOf(err)
	if ctx[errors.CtxExtension] != ".css" {
		t.Errorf("context extension = %q", ctx[errors.CtxExtension])
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.tsx"), map[string]bool{".tsx": true})
	if !errors.IsCode(err, errors.CodeFileNotFound) {
		t.Fatalf("expected FILE_NOT_FOUND, got %v", err)
	}
}

func TestLoadResolvesDialectFromExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "widget.jsx")
	src := "export default function W() {\n\treturn <span>x</span>;\n}\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path, map[string]bool{".jsx": true})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defer doc.Close()

	if doc.Dialect != DialectJSX {
		t.Errorf("dialect = %s, want jsx", doc.Dialect)
	}
	if FirstJSXElement(doc.Root()) == nil {
		t.Error("no JSX element in parsed jsx file")
	}
}

func TestParseVueTemplate(t *testing.T) {
	vue := `<script setup>
const x = 1;
</script>
<template>
  <div class="grid grid-cols-2">
    <span class="col-span-1">a</span>
  </div>
</template>
`
	doc, err := Parse("comp.vue", []byte(vue), DialectVueTemplate)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	defer doc.Close()

	// Elements inside <template> must report their line in the original
	// .vue file, not in the rewrapped source.
	found := findTag(doc, "div")
	if found == nil {
		t.Fatal("div not found")
	}
	if line := doc.Line(found); line != 5 {
		t.Errorf("div line = %d, want 5", line)
	}
}

func TestParseVueWithoutTemplate(t *testing.T) {
	doc, err := Parse("comp.vue", []byte("<script>export default {}</script>\n"), DialectVueTemplate)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	defer doc.Close()
	if found := findTag(doc, "div"); found != nil {
		t.Error("expected empty synthetic component")
	}
}

func TestParseSvelteStripsScriptAndStyle(t *testing.T) {
	svelte := `<script>
	let count = 0;
</script>

<button class="px-4 py-2" on:click={() => count++}>
	clicks: {count}
</button>

<style>
	button { color: red; }
</style>
`
	doc, err := Parse("comp.svelte", []byte(svelte), DialectSvelteTemplate)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	defer doc.Close()

	button := findTag(doc, "button")
	if button == nil {
		t.Fatal("button not found in svelte markup")
	}
	if line := doc.Line(button); line != 5 {
		t.Errorf("button line = %d, want 5", line)
	}
	if style := findTag(doc, "style"); style != nil {
		t.Error("style block should be stripped")
	}
}
