// Package breakpoints tracks how each CSS property's value changes as
// responsive breakpoints increase, and flags responsive-design gaps.
package breakpoints

import (
	"uiscope/internal/engine/classes"
	"uiscope/internal/engine/report"
	"uiscope/internal/engine/source"
	"uiscope/internal/engine/tailwind"
)

type Transition struct {
	Breakpoint string `json:"breakpoint"`
	Value      string `json:"value"`
}

// PropertyChange records one CSS property's base value and its transitions in
// canonical breakpoint order. An empty base value means the property is
// undefined at base.
type PropertyChange struct {
	Property    string       `json:"property"`
	BaseValue   string       `json:"base_value"`
	Transitions []Transition `json:"transitions"`
}

type ElementReport struct {
	Element             string              `json:"element"`
	Tag                 string              `json:"tag"`
	Line                int                 `json:"line"`
	ClassesByBreakpoint map[string][]string `json:"classes_by_breakpoint"`
	PropertyChanges     []PropertyChange    `json:"property_changes"`
}

type Report struct {
	File             string          `json:"file"`
	Approach         string          `json:"approach"`
	BreakpointsUsed  []string        `json:"breakpoints_used"`
	CompleteCoverage bool            `json:"complete_coverage"`
	Elements         []ElementReport `json:"elements"`
	Issues           []report.Issue  `json:"issues"`
	Note             string          `json:"note,omitempty"`
}

const (
	ApproachMobileFirst  = "mobile-first"
	ApproachDesktopFirst = "desktop-first"
)

// Analyze builds the breakpoint coverage report for one document.
func Analyze(doc *source.Document, helpers []string, elementFilter string) *Report {
	extractor := classes.NewExtractor(doc, helpers)
	extractions := extractor.ExtractAll(classes.NewFilter(elementFilter))

	rep := &Report{
		File:            doc.Path,
		Approach:        ApproachMobileFirst,
		BreakpointsUsed: []string{},
		Elements:        []ElementReport{},
		Issues:          []report.Issue{},
	}

	if len(extractions) == 0 {
		rep.Note = "no elements with class attributes found"
		return rep
	}

	used := make(map[tailwind.Breakpoint]bool)
	desktopFirstProps := 0
	emptyBaseProps := 0

	for _, extraction := range extractions {
		sets := splitByBreakpoint(extraction.Classes)
		for bp, tokens := range sets {
			if len(tokens) > 0 {
				used[bp] = true
			}
		}

		changes := propertyChanges(sets)
		for _, change := range changes {
			if change.BaseValue != "" || len(change.Transitions) == 0 {
				continue
			}
			emptyBaseProps++
			if tailwind.Index(tailwind.Breakpoint(change.Transitions[0].Breakpoint)) >= tailwind.Index(tailwind.MD) {
				desktopFirstProps++
			}
		}

		rep.Elements = append(rep.Elements, ElementReport{
			Element:             extraction.Element,
			Tag:                 extraction.Tag,
			Line:                extraction.Line,
			ClassesByBreakpoint: toJSONSets(sets),
			PropertyChanges:     changes,
		})
	}

	for _, bp := range tailwind.CanonicalOrder {
		if used[bp] {
			rep.BreakpointsUsed = append(rep.BreakpointsUsed, string(bp))
		}
	}

	// Heuristic threshold: more desktop-first properties than half of all
	// base-undefined properties flips the classification.
	if desktopFirstProps*2 > emptyBaseProps {
		rep.Approach = ApproachDesktopFirst
	}

	rep.CompleteCoverage = used[tailwind.Base] &&
		(used[tailwind.SM] || used[tailwind.MD]) &&
		(used[tailwind.LG] || used[tailwind.XL])

	rep.Issues = evaluateRules(rep, extractions)
	return rep
}

// splitByBreakpoint groups tokens into buckets keyed by responsive variant.
// The base bucket is always present, possibly empty.
func splitByBreakpoint(tokens []string) map[tailwind.Breakpoint][]string {
	sets := map[tailwind.Breakpoint][]string{
		tailwind.Base: {},
	}
	for _, token := range tokens {
		bp, bare := tailwind.Split(token)
		sets[bp] = append(sets[bp], bare)
	}
	return sets
}

// propertyChanges builds one PropertyChange per property targeted anywhere on
// the element. Construction iterates breakpoints in canonical order, which
// guarantees the transition-order invariant.
func propertyChanges(sets map[tailwind.Breakpoint][]string) []PropertyChange {
	propsByBp := make(map[tailwind.Breakpoint]map[string]string)
	var order []string
	seen := make(map[string]bool)

	for _, bp := range tailwind.CanonicalOrder {
		tokens := sets[bp]
		if len(tokens) == 0 {
			continue
		}
		bag := make(map[string]string)
		for _, token := range tokens {
			property, ok := tailwind.Resolve(token)
			if !ok {
				continue
			}
			bag[property] = token // last wins on duplicates
			if !seen[property] {
				seen[property] = true
				order = append(order, property)
			}
		}
		propsByBp[bp] = bag
	}

	changes := make([]PropertyChange, 0, len(order))
	for _, property := range order {
		change := PropertyChange{
			Property:    property,
			BaseValue:   propsByBp[tailwind.Base][property],
			Transitions: []Transition{},
		}
		for _, bp := range tailwind.CanonicalOrder[1:] {
			if value, ok := propsByBp[bp][property]; ok {
				change.Transitions = append(change.Transitions, Transition{
					Breakpoint: string(bp),
					Value:      value,
				})
			}
		}
		if change.BaseValue == "" && len(change.Transitions) == 0 {
			continue
		}
		changes = append(changes, change)
	}
	return changes
}

func toJSONSets(sets map[tailwind.Breakpoint][]string) map[string][]string {
	out := make(map[string][]string, len(sets))
	for bp, tokens := range sets {
		out[string(bp)] = tokens
	}
	return out
}
