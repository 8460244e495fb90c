// Package statetool adapts the component state tracer to the tool surface.
package statetool

import (
	"context"
	"time"

	"uiscope/internal/engine/source"
	"uiscope/internal/engine/state"
	"uiscope/internal/mcp/contracts"
	"uiscope/internal/shared/observability"
)

const analyzer = "state"

func Handle(ctx context.Context, in contracts.TraceComponentStateInput) (*state.Report, error) {
	_, span := observability.Tracer.Start(ctx, "trace_component_state")
	defer span.End()

	start := time.Now()
	doc, err := source.Load(in.File, contracts.ScriptExtensions)
	if err != nil {
		observability.AnalysisTotal.WithLabelValues(analyzer, "error").Inc()
		return nil, err
	}
	defer doc.Close()

	rep, err := state.Analyze(doc)
	if err != nil {
		observability.AnalysisTotal.WithLabelValues(analyzer, "error").Inc()
		return nil, err
	}

	observability.AnalysisDuration.WithLabelValues(analyzer).Observe(time.Since(start).Seconds())
	observability.AnalysisTotal.WithLabelValues(analyzer, "ok").Inc()
	observability.CountIssues(analyzer, rep.Issues)
	return rep, nil
}
