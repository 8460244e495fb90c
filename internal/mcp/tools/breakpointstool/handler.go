// Package breakpointstool adapts the breakpoint analyzer to the tool surface.
package breakpointstool

import (
	"context"
	"time"

	"uiscope/internal/core/config"
	"uiscope/internal/engine/breakpoints"
	"uiscope/internal/engine/source"
	"uiscope/internal/mcp/contracts"
	"uiscope/internal/shared/observability"
)

const analyzer = "breakpoints"

func Handle(ctx context.Context, cfg *config.Config, in contracts.AnalyzeBreakpointsInput) (*breakpoints.Report, error) {
	_, span := observability.Tracer.Start(ctx, "analyze_breakpoints")
	defer span.End()

	start := time.Now()
	doc, err := source.Load(in.File, contracts.MarkupExtensions)
	if err != nil {
		observability.AnalysisTotal.WithLabelValues(analyzer, "error").Inc()
		return nil, err
	}
	defer doc.Close()

	rep := breakpoints.Analyze(doc, cfg.ClassHelpers, in.Element)

	observability.AnalysisDuration.WithLabelValues(analyzer).Observe(time.Since(start).Seconds())
	observability.AnalysisTotal.WithLabelValues(analyzer, "ok").Inc()
	observability.CountIssues(analyzer, rep.Issues)
	return rep, nil
}
