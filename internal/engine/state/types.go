// Package state traces hook calls, props and identifier usage inside a React
// component, correlating each binding back to its origin.
package state

import "uiscope/internal/engine/report"

// ComponentState is one hook call's binding. Usage flags are back-filled by
// the JSX correlation pass; after Analyze returns, entries are immutable.
type ComponentState struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Hook         string   `json:"hook"`
	Setter       string   `json:"setter,omitempty"`
	Dispatch     string   `json:"dispatch,omitempty"`
	InitialValue string   `json:"initial_value,omitempty"`
	UsedInJSX    bool     `json:"used_in_jsx"`
	PassedTo     []string `json:"passed_to_children,omitempty"`
	Line         int      `json:"line"`
}

type ReceivedProp struct {
	Name     string `json:"name"`
	Type     string `json:"type,omitempty"`
	Required bool   `json:"required"`
	Default  string `json:"default,omitempty"`
}

// PassedDownProp records a prop handed to a child component and where its
// value originally came from: prop, state, context or derived.
type PassedDownProp struct {
	PropName       string `json:"prop_name"`
	ToComponent    string `json:"to_component"`
	OriginalSource string `json:"original_source"`
}

const (
	SourceProp    = "prop"
	SourceState   = "state"
	SourceContext = "context"
	SourceDerived = "derived"
)

type Report struct {
	File            string           `json:"file"`
	Component       string           `json:"component"`
	States          []ComponentState `json:"states"`
	ReceivedProps   []ReceivedProp   `json:"received_props"`
	PassedDownProps []PassedDownProp `json:"passed_down_props"`
	Issues          []report.Issue   `json:"issues"`
}
