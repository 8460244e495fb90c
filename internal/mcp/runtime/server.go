// Package runtime wires the analyzer tools into an MCP server over stdio.
package runtime

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"uiscope/internal/core/config"
	"uiscope/internal/core/errors"
	"uiscope/internal/data/history"
	"uiscope/internal/engine/report"
	"uiscope/internal/mcp/contracts"
	"uiscope/internal/mcp/tools/breakpointstool"
	"uiscope/internal/mcp/tools/eventstool"
	"uiscope/internal/mcp/tools/layouttool"
	"uiscope/internal/mcp/tools/statetool"
)

const (
	serverName    = "uiscope"
	serverVersion = "0.2.0"
)

// Recorder persists one analyzer run. A nil Recorder disables history.
type Recorder interface {
	RecordRun(ctx context.Context, run history.Run) error
	Close() error
}

type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	history Recorder
}

func New(cfg *config.Config, logger *slog.Logger, recorder Recorder) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{cfg: cfg, logger: logger, history: recorder}
}

// Run serves the four analyzer tools on stdio until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)
	s.Register(srv)

	s.logger.Info("mcp runtime active", "transport", "stdio", "tools", 4)
	err := srv.Run(ctx, &mcp.StdioTransport{})
	if s.history != nil {
		if closeErr := s.history.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return err
}

// Register adds the analyzer tools to an already constructed server. Split
// from Run so tests can connect over in-memory transports.
func (s *Server) Register(srv *mcp.Server) {
	srv.AddTool(&mcp.Tool{
		Name:        contracts.ToolAnalyzeBreakpoints,
		Description: "Analyze responsive breakpoint coverage of a component's utility classes",
		InputSchema: contracts.BreakpointsSchema,
	}, func(ctx context.Context, req *mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
		defer s.recovered(contracts.ToolAnalyzeBreakpoints, &res)
		var in contracts.AnalyzeBreakpointsInput
		if failed := s.decode(req, &in, &res); failed {
			return res, nil
		}
		ctx, cancel := s.callContext(ctx)
		defer cancel()
		start := time.Now()
		out, err := breakpointstool.Handle(ctx, s.cfg, in)
		if err != nil {
			return s.failure(contracts.ToolAnalyzeBreakpoints, err), nil
		}
		s.record(ctx, "breakpoints", in.File, out.Issues, start)
		return s.success(out), nil
	})

	srv.AddTool(&mcp.Tool{
		Name:        contracts.ToolAnalyzeLayout,
		Description: "Build the sizing/flex/grid layout tree of a component, optionally pruned to a selector",
		InputSchema: contracts.LayoutSchema,
	}, func(ctx context.Context, req *mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
		defer s.recovered(contracts.ToolAnalyzeLayout, &res)
		var in contracts.AnalyzeLayoutInput
		if failed := s.decode(req, &in, &res); failed {
			return res, nil
		}
		ctx, cancel := s.callContext(ctx)
		defer cancel()
		start := time.Now()
		out, err := layouttool.Handle(ctx, s.cfg, in)
		if err != nil {
			return s.failure(contracts.ToolAnalyzeLayout, err), nil
		}
		s.record(ctx, "layout", in.File, out.Issues, start)
		return s.success(out), nil
	})

	srv.AddTool(&mcp.Tool{
		Name:        contracts.ToolTraceComponentState,
		Description: "Trace hook state, props and prop flow of the first exported React component",
		InputSchema: contracts.StateSchema,
	}, func(ctx context.Context, req *mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
		defer s.recovered(contracts.ToolTraceComponentState, &res)
		var in contracts.TraceComponentStateInput
		if failed := s.decode(req, &in, &res); failed {
			return res, nil
		}
		ctx, cancel := s.callContext(ctx)
		defer cancel()
		start := time.Now()
		out, err := statetool.Handle(ctx, in)
		if err != nil {
			return s.failure(contracts.ToolTraceComponentState, err), nil
		}
		s.record(ctx, "state", in.File, out.Issues, start)
		return s.success(out), nil
	})

	srv.AddTool(&mcp.Tool{
		Name:        contracts.ToolAnalyzeEventFlow,
		Description: "Simulate DOM event bubbling across a component's element tree",
		InputSchema: contracts.EventFlowSchema,
	}, func(ctx context.Context, req *mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
		defer s.recovered(contracts.ToolAnalyzeEventFlow, &res)
		var in contracts.AnalyzeEventFlowInput
		if failed := s.decode(req, &in, &res); failed {
			return res, nil
		}
		ctx, cancel := s.callContext(ctx)
		defer cancel()
		start := time.Now()
		out, err := eventstool.Handle(ctx, in)
		if err != nil {
			return s.failure(contracts.ToolAnalyzeEventFlow, err), nil
		}
		s.record(ctx, "events", in.File, out.Issues, start)
		return s.success(out), nil
	})
}

// callContext applies the configured request timeout.
func (s *Server) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.MCP.RequestTimeout > 0 {
		return context.WithTimeout(ctx, s.cfg.MCP.RequestTimeout)
	}
	return context.WithCancel(ctx)
}

// decode unmarshals tool arguments and validates the file argument. Returns
// true with res populated when the call must fail early.
func (s *Server) decode(req *mcp.CallToolRequest, in any, res **mcp.CallToolResult) bool {
	if req.Params.Arguments != nil {
		if err := json.Unmarshal(req.Params.Arguments, in); err != nil {
			*res = s.failure(req.Params.Name, errors.Wrap(err, errors.CodeValidation, "arguments must be a JSON object"))
			return true
		}
	}
	if fileOf(in) == "" {
		*res = s.failure(req.Params.Name, errors.New(errors.CodeValidation, "file is required"))
		return true
	}
	return false
}

func fileOf(in any) string {
	switch v := in.(type) {
	case *contracts.AnalyzeBreakpointsInput:
		return v.File
	case *contracts.AnalyzeLayoutInput:
		return v.File
	case *contracts.TraceComponentStateInput:
		return v.File
	case *contracts.AnalyzeEventFlowInput:
		return v.File
	}
	return ""
}

func (s *Server) success(payload any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return s.failure("marshal", errors.Wrap(err, errors.CodeInternal, "encoding result failed"))
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}
}

// failure encodes a DomainError as the {error, ...context} envelope with
// IsError set, so protocol-level errors stay reserved for transport faults.
func (s *Server) failure(tool string, err error) *mcp.CallToolResult {
	payload := map[string]any{
		"error": err.Error(),
		"code":  string(errors.CodeOf(err)),
	}
	var de *errors.DomainError
	if stderrors.As(err, &de) {
		payload["error"] = de.Message
	}
	for key, value := range errors.ContextOf(err) {
		payload[key] = value
	}
	s.logger.Warn("tool call failed", "tool", tool, "error", err)

	data, merr := json.MarshalIndent(payload, "", "  ")
	if merr != nil {
		data = []byte(`{"error":"internal encoding failure"}`)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
		IsError: true,
	}
}

// recovered converts an analyzer panic into an INTERNAL_ERROR result.
func (s *Server) recovered(tool string, res **mcp.CallToolResult) {
	if r := recover(); r != nil {
		s.logger.Error("tool handler panicked", "tool", tool, "panic", r)
		err := errors.New(errors.CodeInternal, "analyzer panicked")
		*res = s.failure(tool, errors.AddContext(err, "panic", r))
	}
}

func (s *Server) record(ctx context.Context, analyzer, file string, issues []report.Issue, start time.Time) {
	if s.history == nil {
		return
	}
	counts := report.CountBySeverity(issues)
	run := history.Run{
		File:       file,
		Analyzer:   analyzer,
		Infos:      counts[report.SeverityInfo],
		Warnings:   counts[report.SeverityWarning],
		Errors:     counts[report.SeverityError],
		DurationMs: int(time.Since(start).Milliseconds()),
	}
	if err := s.history.RecordRun(ctx, run); err != nil {
		s.logger.Warn("history record failed", "error", err)
	}
}
