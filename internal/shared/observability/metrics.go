package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"uiscope/internal/engine/report"
)

// Metrics definitions
var (
	ParsingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "uiscope_parsing_seconds",
		Help:    "Time spent parsing a component source file.",
		Buckets: prometheus.DefBuckets,
	}, []string{"dialect"})

	AnalysisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "uiscope_analysis_seconds",
		Help:    "Time spent running one analyzer over a file.",
		Buckets: prometheus.DefBuckets,
	}, []string{"analyzer"})

	AnalysisTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "uiscope_analysis_total",
		Help: "Total analyzer invocations, by analyzer and outcome.",
	}, []string{"analyzer", "outcome"})

	IssuesReported = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "uiscope_issues_reported_total",
		Help: "Total issues emitted by rule engines, by analyzer and severity.",
	}, []string{"analyzer", "severity"})

	WatcherEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uiscope_watcher_events_total",
		Help: "Total number of file system events received by the watcher.",
	})
)

// CountIssues bumps IssuesReported once per issue severity.
func CountIssues(analyzer string, issues []report.Issue) {
	for severity, count := range report.CountBySeverity(issues) {
		IssuesReported.WithLabelValues(analyzer, string(severity)).Add(float64(count))
	}
}
