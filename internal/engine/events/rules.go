package events

import (
	"fmt"

	"uiscope/internal/engine/report"
)

const (
	KindNestedClickable        = "nested_clickable_elements"
	KindNonInteractiveClick    = "non_interactive_click_handler"
	KindSubmitNoPreventDefault = "form_submit_no_prevent_default"
)

var keyboardEvents = map[string]bool{
	"keydown":  true,
	"keyup":    true,
	"keypress": true,
}

// evaluateRules runs the propagation and accessibility checks over every
// handler site, regardless of any event filter on the report.
func evaluateRules(sites []handlerSite) []report.Issue {
	issues := []report.Issue{}

	for _, site := range sites {
		switch site.handler.Event {
		case "click":
			issues = append(issues, nestedClickable(site)...)
			issues = append(issues, nonInteractiveClick(site)...)
		case "submit":
			if site.node.Tag == "form" && !site.handler.PreventsDefault {
				issues = append(issues, report.Issue{
					Kind:     KindSubmitNoPreventDefault,
					Severity: report.SeverityWarning,
					Location: report.Locate(site.handler.Element, site.handler.Line),
					Description: fmt.Sprintf(
						"submit handler %s never calls preventDefault; the browser will reload the page",
						site.handler.HandlerText),
					Suggestion: "call e.preventDefault() at the top of the submit handler",
				})
			}
		}
	}
	return issues
}

// nestedClickable flags a click handler whose nearest clickable ancestor will
// also fire because the inner handler never stops propagation.
func nestedClickable(site handlerSite) []report.Issue {
	if site.handler.StopsPropagation {
		return nil
	}
	for ancestor := site.node.parent; ancestor != nil; ancestor = ancestor.parent {
		for _, handler := range ancestor.Handlers {
			if handler.Event != "click" {
				continue
			}
			return []report.Issue{{
				Kind:     KindNestedClickable,
				Severity: report.SeverityWarning,
				Location: report.Locate(site.handler.Element, site.handler.Line),
				Description: fmt.Sprintf(
					"click on %s bubbles to %s which has its own click handler; both fire",
					site.handler.Element, handler.Element),
				Suggestion: "call e.stopPropagation() in the inner handler, or restructure so only one element is clickable",
			}}
		}
	}
	return nil
}

// nonInteractiveClick flags click handlers on tags the browser gives no
// keyboard semantics, unless the element opts in via role or a key handler.
func nonInteractiveClick(site handlerSite) []report.Issue {
	if interactiveTags[site.node.Tag] || isCapitalizedTag(site.node.Tag) {
		return nil
	}
	if site.node.role == "button" || site.node.role == "link" {
		return nil
	}
	for _, handler := range site.node.Handlers {
		if keyboardEvents[handler.Event] {
			return nil
		}
	}
	return []report.Issue{{
		Kind:     KindNonInteractiveClick,
		Severity: report.SeverityWarning,
		Location: report.Locate(site.handler.Element, site.handler.Line),
		Description: fmt.Sprintf(
			"click handler on <%s> is unreachable by keyboard",
			site.node.Tag),
		Suggestion: "use a <button>, or add role=\"button\" with an onKeyDown handler",
	}}
}

func isCapitalizedTag(tag string) bool {
	return tag != "" && tag[0] >= 'A' && tag[0] <= 'Z'
}
