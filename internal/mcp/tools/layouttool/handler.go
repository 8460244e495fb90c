// Package layouttool adapts the layout hierarchy builder to the tool surface.
package layouttool

import (
	"context"
	"time"

	"uiscope/internal/core/config"
	"uiscope/internal/engine/layout"
	"uiscope/internal/engine/source"
	"uiscope/internal/mcp/contracts"
	"uiscope/internal/shared/observability"
)

const analyzer = "layout"

func Handle(ctx context.Context, cfg *config.Config, in contracts.AnalyzeLayoutInput) (*layout.Report, error) {
	_, span := observability.Tracer.Start(ctx, "analyze_layout")
	defer span.End()

	start := time.Now()
	doc, err := source.Load(in.File, contracts.MarkupExtensions)
	if err != nil {
		observability.AnalysisTotal.WithLabelValues(analyzer, "error").Inc()
		return nil, err
	}
	defer doc.Close()

	rep := layout.Analyze(doc, cfg.ClassHelpers, in.Selector)

	observability.AnalysisDuration.WithLabelValues(analyzer).Observe(time.Since(start).Seconds())
	observability.AnalysisTotal.WithLabelValues(analyzer, "ok").Inc()
	observability.CountIssues(analyzer, rep.Issues)
	return rep, nil
}
