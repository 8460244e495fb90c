package state

import (
	"fmt"

	"uiscope/internal/engine/report"
)

const (
	KindPropDrilling       = "prop_drilling"
	KindInlineFunctionProp = "inline_function_prop"
)

// evaluateRules inspects the correlation result against the received props.
func evaluateRules(props []ReceivedProp, corr correlation) []report.Issue {
	issues := []report.Issue{}

	received := map[string]bool{}
	for _, prop := range props {
		received[prop.Name] = true
	}

	for _, passed := range corr.passed {
		if passed.BareIdent != "" && received[passed.BareIdent] {
			issues = append(issues, report.Issue{
				Kind:     KindPropDrilling,
				Severity: report.SeverityInfo,
				Location: report.Locate(passed.ToComponent, passed.Line),
				Description: fmt.Sprintf(
					"prop %q is received and passed unchanged to %s",
					passed.BareIdent, passed.ToComponent),
				Suggestion: "consider context or composition if this prop travels through several layers",
			})
		}

		if passed.InlineFunc {
			issues = append(issues, report.Issue{
				Kind:     KindInlineFunctionProp,
				Severity: report.SeverityInfo,
				Location: report.Locate(passed.ToComponent, passed.Line),
				Description: fmt.Sprintf(
					"inline function passed as prop %q to %s creates a new reference on every render",
					passed.PropName, passed.ToComponent),
				Suggestion: "hoist the handler or wrap it in useCallback when the child is memoized",
			})
		}
	}
	return issues
}
