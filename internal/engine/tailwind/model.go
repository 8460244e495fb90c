// Package tailwind maps utility-class tokens to canonical CSS properties.
// The tables are static and evaluated in a fixed order: exact matches first,
// then prefix/regex rules where the first match wins. Rule order is part of
// the contract; reordering silently changes downstream classifications.
package tailwind

import "regexp"

// Breakpoint is a responsive variant key. Base means "no prefix".
type Breakpoint string

const (
	Base Breakpoint = "base"
	SM   Breakpoint = "sm"
	MD   Breakpoint = "md"
	LG   Breakpoint = "lg"
	XL   Breakpoint = "xl"
	XXL  Breakpoint = "2xl"
)

// CanonicalOrder is the fixed increasing breakpoint order.
var CanonicalOrder = []Breakpoint{Base, SM, MD, LG, XL, XXL}

// Index returns a breakpoint's position in canonical order, -1 if unknown.
func Index(bp Breakpoint) int {
	for i, candidate := range CanonicalOrder {
		if candidate == bp {
			return i
		}
	}
	return -1
}

var responsivePrefixes = map[string]Breakpoint{
	"sm":  SM,
	"md":  MD,
	"lg":  LG,
	"xl":  XL,
	"2xl": XXL,
}

// Split strips a leading responsive variant from a token. Tokens without a
// recognized responsive prefix file under Base and are returned unchanged,
// including tokens with non-responsive variants like hover: or dark:.
func Split(token string) (Breakpoint, string) {
	for i := 0; i < len(token); i++ {
		if token[i] != ':' {
			continue
		}
		if bp, ok := responsivePrefixes[token[:i]]; ok {
			return bp, token[i+1:]
		}
		return Base, token
	}
	return Base, token
}

// exactProperties maps whole tokens to their CSS property.
var exactProperties = map[string]string{
	"flex":         "display",
	"grid":         "display",
	"block":        "display",
	"inline":       "display",
	"inline-block": "display",
	"inline-flex":  "display",
	"inline-grid":  "display",
	"hidden":       "display",
	"contents":     "display",
	"flow-root":    "display",
	"table":        "display",

	"static":   "position",
	"relative": "position",
	"absolute": "position",
	"fixed":    "position",
	"sticky":   "position",

	"flex-row":         "flex-direction",
	"flex-col":         "flex-direction",
	"flex-row-reverse": "flex-direction",
	"flex-col-reverse": "flex-direction",

	"flex-wrap":         "flex-wrap",
	"flex-nowrap":       "flex-wrap",
	"flex-wrap-reverse": "flex-wrap",

	"flex-1":       "flex",
	"flex-auto":    "flex",
	"flex-initial": "flex",
	"flex-none":    "flex",

	"grow":     "flex-grow",
	"grow-0":   "flex-grow",
	"shrink":   "flex-shrink",
	"shrink-0": "flex-shrink",

	"items-start":    "align-items",
	"items-end":      "align-items",
	"items-center":   "align-items",
	"items-baseline": "align-items",
	"items-stretch":  "align-items",

	"justify-start":   "justify-content",
	"justify-end":     "justify-content",
	"justify-center":  "justify-content",
	"justify-between": "justify-content",
	"justify-around":  "justify-content",
	"justify-evenly":  "justify-content",
	"justify-stretch": "justify-content",

	"content-start":   "align-content",
	"content-end":     "align-content",
	"content-center":  "align-content",
	"content-between": "align-content",
	"content-around":  "align-content",
	"content-evenly":  "align-content",

	"self-auto":     "align-self",
	"self-start":    "align-self",
	"self-end":      "align-self",
	"self-center":   "align-self",
	"self-stretch":  "align-self",
	"self-baseline": "align-self",

	"overflow-auto":    "overflow",
	"overflow-hidden":  "overflow",
	"overflow-visible": "overflow",
	"overflow-scroll":  "overflow",
	"overflow-clip":    "overflow",

	"truncate": "text-overflow",

	"container": "width",
	"w-full":    "width",
	"w-auto":    "width",
	"w-screen":  "width",
	"w-fit":     "width",
	"w-min":     "width",
	"w-max":     "width",
	"h-full":    "height",
	"h-auto":    "height",
	"h-screen":  "height",
	"h-fit":     "height",
	"h-min":     "height",
	"h-max":     "height",
}

type prefixRule struct {
	pattern  *regexp.Regexp
	property string
}

// prefixRules is evaluated top to bottom; the first match wins. Narrower
// patterns (min-w-, overflow-x-, text alignment) must stay above the broader
// families they would otherwise be swallowed by.
var prefixRules = []prefixRule{
	{regexp.MustCompile(`^-?inset-`), "inset"},
	{regexp.MustCompile(`^-?top-`), "top"},
	{regexp.MustCompile(`^-?right-`), "right"},
	{regexp.MustCompile(`^-?bottom-`), "bottom"},
	{regexp.MustCompile(`^-?left-`), "left"},
	{regexp.MustCompile(`^-?z-`), "z-index"},
	{regexp.MustCompile(`^order-`), "order"},

	{regexp.MustCompile(`^grid-cols-`), "grid-template-columns"},
	{regexp.MustCompile(`^grid-rows-`), "grid-template-rows"},
	{regexp.MustCompile(`^grid-flow-`), "grid-auto-flow"},
	{regexp.MustCompile(`^(col-span-|col-start-|col-end-|col-auto$)`), "grid-column"},
	{regexp.MustCompile(`^(row-span-|row-start-|row-end-|row-auto$)`), "grid-row"},

	{regexp.MustCompile(`^gap-x-`), "column-gap"},
	{regexp.MustCompile(`^gap-y-`), "row-gap"},
	{regexp.MustCompile(`^gap-`), "gap"},
	{regexp.MustCompile(`^-?space-x-`), "margin-left"},
	{regexp.MustCompile(`^-?space-y-`), "margin-top"},

	{regexp.MustCompile(`^-?mt-`), "margin-top"},
	{regexp.MustCompile(`^-?mr-`), "margin-right"},
	{regexp.MustCompile(`^-?mb-`), "margin-bottom"},
	{regexp.MustCompile(`^-?ml-`), "margin-left"},
	{regexp.MustCompile(`^-?mx-`), "margin-inline"},
	{regexp.MustCompile(`^-?my-`), "margin-block"},
	{regexp.MustCompile(`^-?m-`), "margin"},

	{regexp.MustCompile(`^pt-`), "padding-top"},
	{regexp.MustCompile(`^pr-`), "padding-right"},
	{regexp.MustCompile(`^pb-`), "padding-bottom"},
	{regexp.MustCompile(`^pl-`), "padding-left"},
	{regexp.MustCompile(`^px-`), "padding-inline"},
	{regexp.MustCompile(`^py-`), "padding-block"},
	{regexp.MustCompile(`^p-`), "padding"},

	{regexp.MustCompile(`^min-w-`), "min-width"},
	{regexp.MustCompile(`^max-w-`), "max-width"},
	{regexp.MustCompile(`^min-h-`), "min-height"},
	{regexp.MustCompile(`^max-h-`), "max-height"},
	{regexp.MustCompile(`^w-`), "width"},
	{regexp.MustCompile(`^h-`), "height"},
	{regexp.MustCompile(`^size-`), "size"},
	{regexp.MustCompile(`^basis-`), "flex-basis"},
	{regexp.MustCompile(`^grow-`), "flex-grow"},
	{regexp.MustCompile(`^shrink-`), "flex-shrink"},

	{regexp.MustCompile(`^overflow-x-`), "overflow-x"},
	{regexp.MustCompile(`^overflow-y-`), "overflow-y"},
	{regexp.MustCompile(`^overflow-`), "overflow"},

	{regexp.MustCompile(`^text-(xs|sm|base|lg|xl|[2-9]xl)$`), "font-size"},
	{regexp.MustCompile(`^text-(left|center|right|justify|start|end)$`), "text-align"},
	{regexp.MustCompile(`^text-`), "color"},
	{regexp.MustCompile(`^font-(thin|extralight|light|normal|medium|semibold|bold|extrabold|black)$`), "font-weight"},
	{regexp.MustCompile(`^font-`), "font-family"},
	{regexp.MustCompile(`^leading-`), "line-height"},
	{regexp.MustCompile(`^tracking-`), "letter-spacing"},
	{regexp.MustCompile(`^line-clamp-`), "-webkit-line-clamp"},

	{regexp.MustCompile(`^bg-`), "background-color"},
	{regexp.MustCompile(`^border-[trbl]($|-)`), "border-width"},
	{regexp.MustCompile(`^border($|-)`), "border"},
	{regexp.MustCompile(`^rounded`), "border-radius"},
	{regexp.MustCompile(`^shadow`), "box-shadow"},
	{regexp.MustCompile(`^opacity-`), "opacity"},

	{regexp.MustCompile(`^justify-self-`), "justify-self"},
	{regexp.MustCompile(`^justify-items-`), "justify-items"},
	{regexp.MustCompile(`^place-content-`), "place-content"},
	{regexp.MustCompile(`^place-items-`), "place-items"},
	{regexp.MustCompile(`^place-self-`), "place-self"},

	{regexp.MustCompile(`^aspect-`), "aspect-ratio"},
	{regexp.MustCompile(`^object-`), "object-fit"},
	{regexp.MustCompile(`^cursor-`), "cursor"},
	{regexp.MustCompile(`^select-`), "user-select"},
	{regexp.MustCompile(`^(transition|duration-|ease-|delay-)`), "transition"},
	{regexp.MustCompile(`^(-?translate-|-?rotate-|-?scale-|-?skew-|transform$)`), "transform"},
}

// Resolve maps a bare token (responsive prefix already stripped) to its CSS
// property. Unrecognized tokens resolve to no property and are ignored by
// property tracking, though callers keep them in raw class lists.
func Resolve(token string) (string, bool) {
	if property, ok := exactProperties[token]; ok {
		return property, true
	}
	for _, rule := range prefixRules {
		if rule.pattern.MatchString(token) {
			return rule.property, true
		}
	}
	return "", false
}

// PropsFor folds a token list into a property bag. Responsive prefixes are
// stripped before resolution; duplicated properties are last-wins. Values are
// the bare tokens themselves, not computed CSS values.
func PropsFor(tokens []string) map[string]string {
	props := make(map[string]string)
	for _, token := range tokens {
		_, bare := Split(token)
		if property, ok := Resolve(bare); ok {
			props[property] = bare
		}
	}
	return props
}
