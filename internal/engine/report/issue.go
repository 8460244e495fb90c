// Package report holds the issue type shared by every rule engine.
package report

import "fmt"

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Issue is the sole externally visible defect type. Rule engines construct
// issues; nothing mutates them afterwards.
type Issue struct {
	Kind        string   `json:"kind"`
	Severity    Severity `json:"severity"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Suggestion  string   `json:"suggestion"`
}

// Locate formats the conventional element location string.
func Locate(element string, line int) string {
	if line <= 0 {
		return element
	}
	return fmt.Sprintf("%s (line %d)", element, line)
}

// CountBySeverity tallies issues for history snapshots and metrics.
func CountBySeverity(issues []Issue) map[Severity]int {
	counts := make(map[Severity]int)
	for _, issue := range issues {
		counts[issue.Severity]++
	}
	return counts
}
