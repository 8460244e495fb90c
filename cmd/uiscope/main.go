package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"uiscope/internal/core/config"
	"uiscope/internal/mcp/runtime"
	"uiscope/internal/shared/observability"
)

var (
	configPath = flag.String("config", "./uiscope.toml", "Path to config file")
	serve      = flag.Bool("serve", false, "Run as MCP server on stdio")
	watch      = flag.Bool("watch", false, "Watch a directory and re-analyze on change")
	ui         = flag.Bool("ui", false, "Enable terminal UI mode (implies -watch)")
	jsonOut    = flag.Bool("json", false, "Print results as JSON")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	version    = flag.Bool("version", false, "Print version and exit")
)

const VERSION = "0.2.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("uiscope v%s\n", VERSION)
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}

	output := os.Stderr
	if *ui {
		// In UI mode, keep the terminal clean; logs go to the state dir.
		logPath := resolveLogPath()
		if err := os.MkdirAll(filepath.Dir(logPath), 0o700); err == nil {
			if f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600); err == nil {
				output = f
			}
		}
	}

	logger := slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *serve {
		os.Exit(runServe(ctx, cfg, logger))
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: uiscope [flags] <file-or-directory>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	target := flag.Arg(0)

	app, err := NewApp(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	if *watch || *ui {
		os.Exit(runWatch(ctx, app, target))
	}

	results := analyzeTarget(ctx, app, target)
	if *jsonOut {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			logger.Error("encode results", "error", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
	} else {
		fmt.Print(formatResults(results))
	}

	if hasErrors(results) {
		os.Exit(1)
	}
}

func runServe(ctx context.Context, cfg *config.Config, logger *slog.Logger) int {
	if cfg.Observability.OTLPEndpoint != "" {
		shutdown, err := observability.SetupTracing(ctx, cfg.Observability.OTLPEndpoint)
		if err != nil {
			logger.Warn("tracing disabled", "error", err)
		} else {
			defer shutdown(context.Background())
		}
	}

	if cfg.Observability.Addr != "" {
		obs := observability.NewServer(cfg.Observability.Addr)
		if err := obs.Start(ctx); err != nil {
			logger.Warn("observability server failed to start", "error", err)
		} else {
			defer obs.Stop(context.Background())
		}
	}

	var recorder runtime.Recorder
	if cfg.History.Enabled {
		app, err := NewApp(cfg, logger)
		if err != nil {
			logger.Error("failed to initialize", "error", err)
			return 1
		}
		defer app.Close()
		recorder = app.history
	}

	srv := runtime.New(cfg, logger, recorder)
	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("mcp server failed", "error", err)
		return 1
	}
	return 0
}

func runWatch(ctx context.Context, app *App, target string) int {
	if *ui {
		return runUI(ctx, app, target)
	}

	err := app.StartWatcher(ctx, []string{target}, func(batch []analysisResult) {
		if *jsonOut {
			data, merr := json.Marshal(batch)
			if merr == nil {
				fmt.Println(string(data))
			}
			return
		}
		fmt.Print(formatResults(batch))
	})
	if err != nil {
		app.logger.Error("failed to start watcher", "error", err)
		return 1
	}

	<-ctx.Done()
	return 0
}

func analyzeTarget(ctx context.Context, app *App, target string) []analysisResult {
	info, err := os.Stat(target)
	if err != nil {
		return []analysisResult{{File: target, Analyzer: "all", Err: err.Error()}}
	}
	if !info.IsDir() {
		return app.AnalyzeFile(ctx, target)
	}

	var results []analysisResult
	_ = filepath.Walk(target, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		results = append(results, app.AnalyzeFile(ctx, path)...)
		return nil
	})
	return results
}

func hasErrors(results []analysisResult) bool {
	for _, result := range results {
		if result.Err != "" {
			return true
		}
	}
	return false
}

func resolveLogPath() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "uiscope", "uiscope.log")
	}
	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		return filepath.Join(home, ".local", "state", "uiscope", "uiscope.log")
	}
	return "uiscope.log"
}
