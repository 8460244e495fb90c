package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"uiscope/internal/core/config"
	"uiscope/internal/core/errors"
	"uiscope/internal/core/watcher"
	"uiscope/internal/data/history"
	"uiscope/internal/engine/breakpoints"
	"uiscope/internal/engine/events"
	"uiscope/internal/engine/layout"
	"uiscope/internal/engine/report"
	"uiscope/internal/engine/source"
	"uiscope/internal/engine/state"
	"uiscope/internal/mcp/contracts"
)

// analysisResult is one analyzer's outcome for one file. Report holds the
// analyzer-specific result shape and marshals directly to JSON.
type analysisResult struct {
	File     string         `json:"file"`
	Analyzer string         `json:"analyzer"`
	Issues   []report.Issue `json:"issues"`
	Report   any            `json:"report,omitempty"`
	Err      string         `json:"error,omitempty"`
}

type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	history *history.Store
	watcher *watcher.Watcher
}

func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	app := &App{cfg: cfg, logger: logger}

	if cfg.History.Enabled {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return nil, fmt.Errorf("open history: %w", err)
		}
		app.history = store
	}
	return app, nil
}

func (a *App) Close() error {
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	if a.history != nil {
		return a.history.Close()
	}
	return nil
}

// AnalyzeFile runs every analyzer whose extension set accepts the file.
// Unsupported extensions are skipped silently; other failures are reported.
func (a *App) AnalyzeFile(ctx context.Context, path string) []analysisResult {
	results := make([]analysisResult, 0, 4)

	run := func(analyzer string, accepted map[string]bool, analyze func(doc *source.Document) (any, []report.Issue, error)) {
		start := time.Now()
		doc, err := source.Load(path, accepted)
		if err != nil {
			if errors.IsCode(err, errors.CodeUnsupportedFile) {
				return
			}
			results = append(results, analysisResult{File: path, Analyzer: analyzer, Issues: []report.Issue{}, Err: err.Error()})
			return
		}
		defer doc.Close()

		rep, issues, err := analyze(doc)
		if err != nil {
			results = append(results, analysisResult{File: path, Analyzer: analyzer, Issues: []report.Issue{}, Err: err.Error()})
			return
		}
		results = append(results, analysisResult{File: path, Analyzer: analyzer, Issues: issues, Report: rep})
		a.recordRun(ctx, analyzer, path, issues, start)
	}

	run("breakpoints", contracts.MarkupExtensions, func(doc *source.Document) (any, []report.Issue, error) {
		rep := breakpoints.Analyze(doc, a.cfg.ClassHelpers, "")
		return rep, rep.Issues, nil
	})
	run("layout", contracts.MarkupExtensions, func(doc *source.Document) (any, []report.Issue, error) {
		rep := layout.Analyze(doc, a.cfg.ClassHelpers, "")
		return rep, rep.Issues, nil
	})
	run("state", contracts.ScriptExtensions, func(doc *source.Document) (any, []report.Issue, error) {
		rep, err := state.Analyze(doc)
		if err != nil {
			return nil, nil, err
		}
		return rep, rep.Issues, nil
	})
	run("events", contracts.EventExtensions, func(doc *source.Document) (any, []report.Issue, error) {
		rep := events.Analyze(doc, "")
		return rep, rep.Issues, nil
	})

	return results
}

func (a *App) recordRun(ctx context.Context, analyzer, file string, issues []report.Issue, start time.Time) {
	if a.history == nil {
		return
	}
	counts := report.CountBySeverity(issues)
	err := a.history.RecordRun(ctx, history.Run{
		File:       file,
		Analyzer:   analyzer,
		Infos:      counts[report.SeverityInfo],
		Warnings:   counts[report.SeverityWarning],
		Errors:     counts[report.SeverityError],
		DurationMs: int(time.Since(start).Milliseconds()),
	})
	if err != nil {
		a.logger.Warn("history record failed", "file", file, "error", err)
	}
}

// StartWatcher re-analyzes changed component files and feeds results to sink.
func (a *App) StartWatcher(ctx context.Context, roots []string, sink func([]analysisResult)) error {
	w, err := watcher.New(
		a.cfg.Watch.Debounce,
		a.cfg.Watch.MaxPerSecond,
		a.cfg.Watch.ExcludeDirs,
		a.cfg.Watch.ExcludeFiles,
		func(paths []string) {
			var batch []analysisResult
			for _, path := range paths {
				batch = append(batch, a.AnalyzeFile(ctx, path)...)
			}
			if len(batch) > 0 {
				sink(batch)
			}
		},
	)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Watch(roots); err != nil {
		_ = w.Close()
		return fmt.Errorf("watch %s: %w", strings.Join(roots, ", "), err)
	}
	a.watcher = w
	a.logger.Info("watching for changes", "roots", roots, "debounce", a.cfg.Watch.Debounce)
	return nil
}
