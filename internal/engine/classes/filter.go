package classes

import (
	"strings"

	"github.com/gobwas/glob"
)

// Filter narrows an extraction walk to elements whose identity or tag
// matches. The pattern may be a glob ("div#*", "Card*") or a plain string,
// which matches as a substring of the identity or as an exact tag name.
type Filter struct {
	raw     string
	pattern glob.Glob
}

func NewFilter(raw string) *Filter {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	f := &Filter{raw: raw}
	if strings.ContainsAny(raw, "*?[") {
		if compiled, err := glob.Compile(raw); err == nil {
			f.pattern = compiled
		}
	}
	return f
}

// Match reports whether an element passes the filter. A nil filter matches
// everything.
func (f *Filter) Match(identity, tag string) bool {
	if f == nil {
		return true
	}
	if f.pattern != nil {
		return f.pattern.Match(identity) || f.pattern.Match(tag)
	}
	return strings.Contains(identity, f.raw) || tag == f.raw
}
