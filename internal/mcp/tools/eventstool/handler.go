// Package eventstool adapts the event flow simulator to the tool surface.
package eventstool

import (
	"context"
	"time"

	"uiscope/internal/engine/events"
	"uiscope/internal/engine/source"
	"uiscope/internal/mcp/contracts"
	"uiscope/internal/shared/observability"
)

const analyzer = "events"

func Handle(ctx context.Context, in contracts.AnalyzeEventFlowInput) (*events.Report, error) {
	_, span := observability.Tracer.Start(ctx, "analyze_event_flow")
	defer span.End()

	start := time.Now()
	doc, err := source.Load(in.File, contracts.EventExtensions)
	if err != nil {
		observability.AnalysisTotal.WithLabelValues(analyzer, "error").Inc()
		return nil, err
	}
	defer doc.Close()

	rep := events.Analyze(doc, in.Event)

	observability.AnalysisDuration.WithLabelValues(analyzer).Observe(time.Since(start).Seconds())
	observability.AnalysisTotal.WithLabelValues(analyzer, "ok").Inc()
	observability.CountIssues(analyzer, rep.Issues)
	return rep, nil
}
