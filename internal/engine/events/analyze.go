package events

import (
	"uiscope/internal/engine/report"
	"uiscope/internal/engine/source"
)

type Report struct {
	File        string         `json:"file"`
	Event       string         `json:"event,omitempty"`
	Tree        *ComponentNode `json:"tree"`
	Handlers    []EventHandler `json:"handlers"`
	Flows       []EventFlow    `json:"flows"`
	Delegations []Delegation   `json:"delegations"`
	Issues      []report.Issue `json:"issues"`
	Note        string         `json:"note,omitempty"`
}

// Analyze simulates event flow for one document. eventFilter narrows the
// reported handlers and flows to a single DOM event type; rules always run
// over the full tree.
func Analyze(doc *source.Document, eventFilter string) *Report {
	rep := &Report{
		File:        doc.Path,
		Event:       eventFilter,
		Handlers:    []EventHandler{},
		Flows:       []EventFlow{},
		Delegations: []Delegation{},
		Issues:      []report.Issue{},
	}

	root := buildTree(doc)
	if root == nil {
		rep.Note = "no JSX elements found"
		return rep
	}
	rep.Tree = root

	sites := collectHandlers(root)
	if len(sites) == 0 {
		rep.Note = "no event handlers found"
		return rep
	}

	for _, site := range sites {
		if eventFilter == "" || site.handler.Event == eventFilter {
			rep.Handlers = append(rep.Handlers, site.handler)
		}
	}
	rep.Flows = simulateFlows(sites, eventFilter)
	rep.Delegations = detectDelegations(sites)
	rep.Issues = evaluateRules(sites)
	return rep
}
