package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/BTCElectrician/ohmni-oracle-refined/constants"
	"github.com/BTCElectrician/ohmni-oracle-refined/internal/async"
	"github.com/BTCElectrician/ohmni-oracle-refined/internal/common"
	"github.com/BTCElectrician/ohmni-oracle-refined/internal/entity"
	"github.com/BTCElectrician/ohmni-oracle-refined/internal/export"
	"github.com/BTCElectrician/ohmni-oracle-refined/internal/ingest"
	"github.com/BTCElectrician/ohmni-oracle-refined/internal/layout/azure"
	"github.com/BTCElectrician/ohmni-oracle-refined/internal/llm/openai"
	"github.com/BTCElectrician/ohmni-oracle-refined/internal/processor"
	repo "github.com/BTCElectrician/ohmni-oracle-refined/internal/repository"
	"github.com/BTCElectrician/ohmni-oracle-refined/internal/schedule"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	os.Exit(run())
}

// run holds the whole program so deferred cleanup executes on every exit path.
func run() int {
	var (
		dir     = flag.String("dir", "", "directory to scan for panel-schedule PDFs")
		file    = flag.String("file", "", "single PDF to process (bypasses filename routing)")
		out     = flag.String("out", "", "output directory for per-document JSON (default OUTPUT_DIR)")
		format  = flag.String("format", "", "output format: multi or single (default OUTPUT_FORMAT)")
		xlsx    = flag.String("xlsx", "", "optional XLSX summary path (multi format only)")
		workers = flag.Int("workers", 0, "concurrent documents (default PIPELINE_WORKERS)")
	)
	flag.Parse()

	if *dir == "" && *file == "" {
		printError("Error: one of --dir or --file is required\n")
		return 1
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if *out != "" {
		cfg.Output.Dir = *out
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *workers > 0 {
		cfg.Pipeline.Workers = *workers
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		return 1
	}

	ctx := context.Background()

	analyzer := azure.NewClient(azure.Config{
		Endpoint:     cfg.Layout.Endpoint,
		APIKey:       cfg.Layout.APIKey,
		Timeout:      cfg.Layout.Timeout,
		PollInterval: cfg.Layout.PollInterval,
	}, logger)

	completer := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	pipeline := schedule.NewPipeline(analyzer, completer, cfg.Pipeline.BatchSize, logger)

	db, err := repo.Open(ctx, cfg.Output.JobDBPath)
	if err != nil {
		logger.Error("open job ledger", "error", err)
		return 1
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.Error("close job ledger", "error", cerr)
		}
	}()
	jobs := repo.NewJobRepository(db, logger)

	proc := processor.NewProcessor(logger, pipeline, jobs, processor.Config{
		OutputDir: cfg.Output.Dir,
		Format:    cfg.Output.Format,
	})

	// Collect documents
	var paths []string
	if *file != "" {
		paths = append(paths, *file)
	} else {
		matched, stats, err := ingest.ListPanelSchedules(*dir)
		if err != nil {
			logger.Error("scan directory", "dir", *dir, "error", err)
			return 1
		}
		logger.Info("directory scanned",
			"dir", *dir,
			"scanned", stats.Scanned,
			"matched", stats.Matched,
			"skipped", stats.Skipped,
		)
		paths = matched
	}
	if len(paths) == 0 {
		logger.Warn("no panel schedules found")
		return 0
	}

	queue := async.NewProcessorQueue(proc, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithProcessTimeout(cfg.Pipeline.ProcessTimeout),
	)
	for _, path := range paths {
		_ = queue.Enqueue(ctx, async.Job{
			Path:        path,
			SubmittedAt: time.Now().UTC(),
			TraceID:     uuid.New().String(),
		})
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Duration(len(paths))*cfg.Pipeline.ProcessTimeout)
	queue.Shutdown(shutdownCtx)
	cancel()

	if *xlsx != "" {
		if cfg.Output.Format != constants.OutputFormatMulti {
			logger.Warn("xlsx summary requires multi format, skipping", "format", cfg.Output.Format)
			return 0
		}
		if err := writeSummary(cfg.Output.Dir, *xlsx, logger); err != nil {
			logger.Error("write xlsx summary", "error", err)
			return 1
		}
	}
	return 0
}

// writeSummary collects persisted multi-panel results from outDir and renders
// one workbook across all documents.
func writeSummary(outDir, xlsxPath string, logger *slog.Logger) error {
	matches, err := filepath.Glob(filepath.Join(outDir, "*_panel.json"))
	if err != nil {
		return fmt.Errorf("glob results: %w", err)
	}

	var panels []entity.PanelRecord
	for _, path := range matches {
		raw, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("skip unreadable result", "path", path, "error", err)
			continue
		}
		var result entity.DocumentResult
		if err := json.Unmarshal(raw, &result); err != nil {
			logger.Warn("skip malformed result", "path", path, "error", err)
			continue
		}
		panels = append(panels, result.Panels...)
	}

	workbook, err := export.PanelsWorkbook(panels, logger)
	if err != nil {
		return err
	}
	if err := os.WriteFile(xlsxPath, workbook, 0o644); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	logger.Info("xlsx summary written", "path", xlsxPath, "panels", len(panels))
	return nil
}
