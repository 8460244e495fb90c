package source

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"uiscope/internal/core/errors"
	"uiscope/internal/shared/observability"
)

type Dialect string

const (
	DialectJSX            Dialect = "jsx"
	DialectTSX            Dialect = "tsx"
	DialectTS             Dialect = "ts"
	DialectJS             Dialect = "js"
	DialectVueTemplate    Dialect = "vue-template"
	DialectSvelteTemplate Dialect = "svelte-template"
)

// Document is the immutable parse result for one source file. It owns the
// underlying tree-sitter tree; Close releases it.
type Document struct {
	Path    string
	Dialect Dialect
	Source  []byte

	// lineDelta maps parsed line numbers back to lines in the original file
	// for dialects that are rewrapped before parsing (vue/svelte).
	lineDelta int

	tree *sitter.Tree
	root *sitter.Node
}

func (d *Document) Root() *sitter.Node { return d.root }

func (d *Document) Text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return string(d.Source[n.StartByte():n.EndByte()])
}

// Line returns the 1-based line of a node in the original file.
func (d *Document) Line(n *sitter.Node) int {
	if n == nil {
		return 0
	}
	line := int(n.StartPosition().Row) + 1 + d.lineDelta
	if line < 1 {
		line = 1
	}
	return line
}

func (d *Document) Close() {
	if d.tree != nil {
		d.tree.Close()
		d.tree = nil
	}
}

var dialectByExtension = map[string]Dialect{
	".jsx":    DialectJSX,
	".tsx":    DialectTSX,
	".ts":     DialectTS,
	".js":     DialectJS,
	".vue":    DialectVueTemplate,
	".svelte": DialectSvelteTemplate,
}

// Load resolves a path, gates it against the analyzer's accepted extensions
// and parses it into a Document. Relative paths resolve against the current
// working directory.
func Load(path string, accepted map[string]bool) (*Document, error) {
	resolved := path
	if !filepath.IsAbs(resolved) {
		cwd, err := os.Getwd()
		if err == nil {
			resolved = filepath.Join(cwd, resolved)
		}
	}

	ext := strings.ToLower(filepath.Ext(resolved))
	if !accepted[ext] {
		err := errors.New(errors.CodeUnsupportedFile, "unsupported file type")
		err = errors.AddContext(err, errors.CtxPath, path)
		return nil, errors.AddContext(err, errors.CtxExtension, ext)
	}

	info, err := os.Stat(resolved)
	if err != nil || info.IsDir() {
		notFound := errors.New(errors.CodeFileNotFound, "file not found")
		return nil, errors.AddContext(notFound, errors.CtxPath, path)
	}

	content, err := os.ReadFile(resolved)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "read file")
	}

	dialect := dialectByExtension[ext]
	return Parse(resolved, content, dialect)
}

// Parse builds a Document from raw content. Exposed separately so tests and
// the watch loop can parse in-memory content without touching the filesystem.
func Parse(path string, content []byte, dialect Dialect) (*Document, error) {
	start := time.Now()

	normalized := content
	delta := 0
	switch dialect {
	case DialectVueTemplate:
		normalized, delta = normalizeVue(content)
	case DialectSvelteTemplate:
		normalized, delta = normalizeSvelte(content)
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(grammarFor(dialect))

	tree := parser.Parse(normalized, nil)
	if tree == nil {
		return nil, errors.New(errors.CodeInternal, "parse failed")
	}

	observability.ParsingDuration.WithLabelValues(string(dialect)).Observe(time.Since(start).Seconds())

	return &Document{
		Path:      path,
		Dialect:   dialect,
		Source:    normalized,
		lineDelta: delta,
		tree:      tree,
		root:      tree.RootNode(),
	}, nil
}

func grammarFor(dialect Dialect) *sitter.Language {
	switch dialect {
	case DialectJS, DialectJSX:
		return sitter.NewLanguage(tree_sitter_javascript.Language())
	case DialectTS:
		return sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript())
	default:
		// tsx handles JSX plus the synthetic wrapper used for vue/svelte.
		return sitter.NewLanguage(tree_sitter_typescript.LanguageTSX())
	}
}

const wrapperHead = "export default function Component() {\n\treturn (\n<>"
const wrapperTail = "</>\n\t);\n}\n"

// wrapperLines is the number of lines the synthetic head adds before the
// extracted template content.
const wrapperLines = 2

// normalizeVue pulls the first <template> block out of a .vue file and wraps
// it as a synthetic function component. This is string surgery, not a Vue
// parser; complex templates are handled best-effort.
func normalizeVue(content []byte) ([]byte, int) {
	text := string(content)

	open := strings.Index(text, "<template")
	if open < 0 {
		return []byte(wrapperHead + wrapperTail), -wrapperLines
	}
	openEnd := strings.Index(text[open:], ">")
	if openEnd < 0 {
		return []byte(wrapperHead + wrapperTail), -wrapperLines
	}
	bodyStart := open + openEnd + 1

	close := strings.LastIndex(text, "</template>")
	if close < bodyStart {
		close = len(text)
	}

	body := text[bodyStart:close]
	startLine := strings.Count(text[:bodyStart], "\n")
	return []byte(wrapperHead + body + wrapperTail), startLine - wrapperLines
}

// normalizeSvelte strips <script> and <style> blocks and wraps what remains.
// Stripped blocks are replaced by equivalent blank lines so positions in the
// surviving markup stay roughly aligned with the original file.
func normalizeSvelte(content []byte) ([]byte, int) {
	text := string(content)
	text = blankOutBlocks(text, "<script", "</script>")
	text = blankOutBlocks(text, "<style", "</style>")
	return []byte(wrapperHead + text + wrapperTail), -wrapperLines
}

func blankOutBlocks(text, openTag, closeTag string) string {
	for {
		open := strings.Index(text, openTag)
		if open < 0 {
			return text
		}
		close := strings.Index(text[open:], closeTag)
		if close < 0 {
			return text[:open]
		}
		end := open + close + len(closeTag)
		blanked := strings.Repeat("\n", strings.Count(text[open:end], "\n"))
		text = text[:open] + blanked + text[end:]
	}
}
