package breakpoints

import (
	"fmt"
	"strings"

	"uiscope/internal/engine/classes"
	"uiscope/internal/engine/report"
	"uiscope/internal/engine/tailwind"
)

const (
	KindMissingBaseClass = "missing_base_class"
	KindHiddenNeverShown = "hidden_never_shown"
)

var revealDisplayClasses = map[string]bool{
	"block":        true,
	"flex":         true,
	"grid":         true,
	"inline":       true,
	"inline-block": true,
	"inline-flex":  true,
	"inline-grid":  true,
}

// evaluateRules runs the breakpoint rule engine over a finished report.
func evaluateRules(rep *Report, extractions []classes.Extraction) []report.Issue {
	issues := []report.Issue{}

	for i, element := range rep.Elements {
		for _, change := range element.PropertyChanges {
			if change.BaseValue != "" || len(change.Transitions) == 0 {
				continue
			}
			first := tailwind.Breakpoint(change.Transitions[0].Breakpoint)
			if tailwind.Index(first) < tailwind.Index(tailwind.MD) {
				continue
			}
			issues = append(issues, report.Issue{
				Kind:     KindMissingBaseClass,
				Severity: report.SeverityWarning,
				Location: report.Locate(element.Element, element.Line),
				Description: fmt.Sprintf(
					"%s is first defined at %s with no base value; smaller screens have no styling for it",
					change.Property, first),
				Suggestion: fmt.Sprintf(
					"add a base (mobile) class for %s, e.g. the unprefixed form of %q",
					change.Property, change.Transitions[0].Value),
			})
		}

		if hidden, revealed := hiddenState(extractions[i].Classes); hidden && !revealed {
			issues = append(issues, report.Issue{
				Kind:        KindHiddenNeverShown,
				Severity:    report.SeverityWarning,
				Location:    report.Locate(element.Element, element.Line),
				Description: "element is hidden on mobile and never shown at larger breakpoints",
				Suggestion:  "add a breakpoint display class (e.g. md:block or md:flex) or remove the element",
			})
		}
	}

	return issues
}

// hiddenState reports whether the element is hidden at base and whether any
// class at any breakpoint would reveal it again.
func hiddenState(tokens []string) (hidden, revealed bool) {
	for _, token := range tokens {
		bp, bare := tailwind.Split(token)
		if bare == "hidden" && bp == tailwind.Base {
			hidden = true
			continue
		}
		if revealDisplayClasses[bare] || strings.HasPrefix(bare, "inline-") {
			revealed = true
		}
	}
	return hidden, revealed
}
