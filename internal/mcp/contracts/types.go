// Package contracts defines the wire types of the analyzer tools.
package contracts

import (
	"encoding/json"
	"fmt"
)

const (
	ToolAnalyzeBreakpoints  = "analyze_breakpoints"
	ToolAnalyzeLayout       = "analyze_layout"
	ToolTraceComponentState = "trace_component_state"
	ToolAnalyzeEventFlow    = "analyze_event_flow"

	ContractVersion = "v1"
)

type AnalyzeBreakpointsInput struct {
	File    string `json:"file"`
	Element string `json:"element,omitempty"`
}

type AnalyzeLayoutInput struct {
	File     string `json:"file"`
	Selector string `json:"selector,omitempty"`
}

// IncludeChildren and Depth are accepted for forward compatibility; tracing
// stays single-file for now.
type TraceComponentStateInput struct {
	File            string `json:"file"`
	IncludeChildren bool   `json:"include_children,omitempty"`
	Depth           int    `json:"depth,omitempty"`
}

type AnalyzeEventFlowInput struct {
	File  string `json:"file"`
	Event string `json:"event,omitempty"`
}

type ToolError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e ToolError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	ErrorInvalidArgument = "invalid_argument"
	ErrorNotFound        = "not_found"
	ErrorInternal        = "internal"
	ErrorUnavailable     = "unavailable"
)

// Accepted file extensions per tool.
var (
	MarkupExtensions = map[string]bool{
		".tsx": true, ".jsx": true, ".vue": true, ".svelte": true,
	}
	ScriptExtensions = map[string]bool{
		".tsx": true, ".jsx": true, ".ts": true, ".js": true,
	}
	EventExtensions = map[string]bool{
		".tsx": true, ".jsx": true, ".ts": true, ".js": true, ".vue": true, ".svelte": true,
	}
)

func fileSchema(extra string) json.RawMessage {
	base := `{"type":"object","properties":{"file":{"type":"string","description":"path to the component file"}%s},"required":["file"]}`
	return json.RawMessage(fmt.Sprintf(base, extra))
}

var (
	BreakpointsSchema = fileSchema(`,"element":{"type":"string","description":"limit to elements matching this tag or identity substring"}`)
	LayoutSchema      = fileSchema(`,"selector":{"type":"string","description":"prune the tree to #id, .class or tag"}`)
	StateSchema       = fileSchema(`,"include_children":{"type":"boolean"},"depth":{"type":"integer"}`)
	EventFlowSchema   = fileSchema(`,"event":{"type":"string","description":"limit to one DOM event type, e.g. click"}`)
)
