package events

import (
	"regexp"
	"sort"
)

// FlowStep is one handler firing during a bubbling pass.
type FlowStep struct {
	Element          string `json:"element"`
	Handler          string `json:"handler"`
	Depth            int    `json:"depth"`
	StopsPropagation bool   `json:"stops_propagation"`
}

// EventFlow is the simulated bubbling path for one event type, deepest
// handler first.
type EventFlow struct {
	Event     string     `json:"event"`
	Bubbles   bool       `json:"bubbles"`
	Steps     []FlowStep `json:"steps"`
	StoppedAt string     `json:"stopped_at,omitempty"`
}

// Delegation records an ancestor handler that inspects e.target instead of
// attaching per-descendant handlers.
type Delegation struct {
	Element  string `json:"element"`
	Event    string `json:"event"`
	Pattern  string `json:"pattern"`
	Selector string `json:"selector,omitempty"`
}

// handlerSite pairs a handler with the node it is attached to.
type handlerSite struct {
	node    *ComponentNode
	handler EventHandler
	body    string
}

func collectHandlers(root *ComponentNode) []handlerSite {
	var sites []handlerSite
	var walk func(node *ComponentNode)
	walk = func(node *ComponentNode) {
		if node == nil {
			return
		}
		for i, handler := range node.Handlers {
			sites = append(sites, handlerSite{node: node, handler: handler, body: node.bodies[i]})
		}
		for _, child := range node.Children {
			walk(child)
		}
	}
	walk(root)
	return sites
}

// simulateFlows builds one EventFlow per event type present in the tree.
// Handlers fire deepest-first until one stops propagation.
func simulateFlows(sites []handlerSite, eventFilter string) []EventFlow {
	byEvent := map[string][]handlerSite{}
	var order []string
	for _, site := range sites {
		event := site.handler.Event
		if eventFilter != "" && event != eventFilter {
			continue
		}
		if _, seen := byEvent[event]; !seen {
			order = append(order, event)
		}
		byEvent[event] = append(byEvent[event], site)
	}
	sort.Strings(order)

	flows := make([]EventFlow, 0, len(order))
	for _, event := range order {
		group := byEvent[event]
		flow := EventFlow{Event: event, Bubbles: bubblingEvents[event], Steps: []FlowStep{}}

		if !flow.Bubbles {
			// Non-bubbling events fire in isolation; report each handler as
			// its own single step.
			for _, site := range group {
				flow.Steps = append(flow.Steps, step(site))
			}
			flows = append(flows, flow)
			continue
		}

		sort.SliceStable(group, func(i, j int) bool {
			return group[i].node.Depth > group[j].node.Depth
		})
		for _, site := range group {
			flow.Steps = append(flow.Steps, step(site))
			if site.handler.StopsPropagation {
				flow.StoppedAt = site.handler.Element
				break
			}
		}
		flows = append(flows, flow)
	}
	return flows
}

func step(site handlerSite) FlowStep {
	return FlowStep{
		Element:          site.handler.Element,
		Handler:          site.handler.HandlerText,
		Depth:            site.node.Depth,
		StopsPropagation: site.handler.StopsPropagation,
	}
}

var (
	delegateClosest = regexp.MustCompile(`\.target\.closest\(\s*['"]([^'"]+)['"]`)
	delegateMatches = regexp.MustCompile(`\.matches\(\s*['"]([^'"]+)['"]`)
	delegateTagName = regexp.MustCompile(`\.target\.tagName\s*===?\s*['"]([^'"]+)['"]`)
	delegateDataset = regexp.MustCompile(`\.target\.dataset\.(\w+)`)
)

// detectDelegations scans handler bodies for e.target dispatch patterns.
func detectDelegations(sites []handlerSite) []Delegation {
	delegations := []Delegation{}
	for _, site := range sites {
		if m := delegateClosest.FindStringSubmatch(site.body); m != nil {
			delegations = append(delegations, delegation(site, "target.closest", m[1]))
		}
		if m := delegateMatches.FindStringSubmatch(site.body); m != nil {
			delegations = append(delegations, delegation(site, "target.matches", m[1]))
		}
		if m := delegateTagName.FindStringSubmatch(site.body); m != nil {
			delegations = append(delegations, delegation(site, "target.tagName", m[1]))
		}
		if m := delegateDataset.FindStringSubmatch(site.body); m != nil {
			delegations = append(delegations, delegation(site, "target.dataset", "[data-"+m[1]+"]"))
		}
	}
	return delegations
}

func delegation(site handlerSite, pattern, selector string) Delegation {
	return Delegation{
		Element:  site.handler.Element,
		Event:    site.handler.Event,
		Pattern:  pattern,
		Selector: selector,
	}
}
