package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BTCElectrician/ohmni-oracle-refined/constants"
	"github.com/BTCElectrician/ohmni-oracle-refined/internal/common"
	"github.com/BTCElectrician/ohmni-oracle-refined/internal/entity"
	"github.com/BTCElectrician/ohmni-oracle-refined/internal/repository"
	"github.com/BTCElectrician/ohmni-oracle-refined/internal/schedule"
)

// Config holds persistence behavior for processed documents.
type Config struct {
	OutputDir string
	Format    string // constants.OutputFormatMulti | constants.OutputFormatSingle
}

// Processor coordinates one document end to end: read bytes, run the
// extraction pipeline, persist the result JSON, record the ledger row.
type Processor struct {
	Logger   *slog.Logger
	Pipeline *schedule.Pipeline
	Jobs     *repository.JobRepository // optional; nil skips the ledger
	Cfg      Config
}

func NewProcessor(logger *slog.Logger, pipeline *schedule.Pipeline, jobs *repository.JobRepository, cfg Config) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.Format == "" {
		cfg.Format = constants.OutputFormatMulti
	}
	return &Processor{Logger: logger, Pipeline: pipeline, Jobs: jobs, Cfg: cfg}
}

// ProcessFile runs the pipeline for one document path. Every outcome,
// including total failure, is persisted as a well-formed result file; the
// returned error covers only persistence/ledger problems, so one bad document
// never aborts a batch.
func (p *Processor) ProcessFile(ctx context.Context, path string) (entity.DocumentResult, error) {
	start := time.Now()

	log := p.Logger
	if rid := common.RequestIDFromContext(ctx); rid != "" {
		log = log.With("req_id", rid)
	}

	var jobID uuid.UUID
	if p.Jobs != nil {
		id, err := p.Jobs.Start(ctx, path)
		if err != nil {
			return entity.DocumentResult{}, fmt.Errorf("start job: %w", err)
		}
		jobID = id
	}

	result := p.run(ctx, log, path)

	if err := p.writeResult(path, result); err != nil {
		log.Error("processor.persist_failed", "path", path, "error", err)
		if p.Jobs != nil {
			_ = p.Jobs.FinishFailure(ctx, jobID, err.Error())
		}
		return result, err
	}

	if p.Jobs != nil {
		if result.Error != nil {
			_ = p.Jobs.FinishFailure(ctx, jobID, *result.Error)
		} else {
			_ = p.Jobs.FinishSuccess(ctx, jobID, len(result.Panels))
		}
	}

	log.Info("processor.done",
		"path", path,
		"panels", len(result.Panels),
		"failed", result.Error != nil,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

func (p *Processor) run(ctx context.Context, log *slog.Logger, path string) entity.DocumentResult {
	document, err := os.ReadFile(path)
	if err != nil {
		log.Error("processor.read_failed", "path", path, "error", err)
		msg := fmt.Sprintf("read document: %v", err)
		return entity.DocumentResult{Panels: []entity.PanelRecord{}, Error: &msg}
	}
	return p.Pipeline.Process(ctx, document)
}

func (p *Processor) writeResult(sourcePath string, result entity.DocumentResult) error {
	if err := os.MkdirAll(p.Cfg.OutputDir, 0o755); err != nil {
		return common.WrapError(err, "create output dir")
	}

	var payload any = result
	if p.Cfg.Format == constants.OutputFormatSingle {
		payload = ToSinglePanel(result)
	}

	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return common.WrapError(err, "encode result")
	}

	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	outPath := filepath.Join(p.Cfg.OutputDir, base+"_panel.json")
	if err := os.WriteFile(outPath, encoded, 0o644); err != nil {
		return common.WrapError(err, "write result")
	}
	return nil
}

// ToSinglePanel flattens a multi-panel result into the legacy single-panel
// output shape: the first merged panel supplies the name and type metadata,
// and only its circuits are carried.
func ToSinglePanel(result entity.DocumentResult) entity.SinglePanelResult {
	out := entity.SinglePanelResult{
		GenericPanelTypes: map[string]any{},
		Circuits:          []entity.CircuitRecord{},
		Error:             result.Error,
	}
	if len(result.Panels) == 0 {
		return out
	}
	first := result.Panels[0]
	out.PanelName = first.Name
	out.GenericPanelTypes = map[string]any{
		"type":           first.Type,
		"specifications": first.Specifications,
		"dimensions":     first.Dimensions,
		"panel_totals":   first.Totals,
	}
	out.Circuits = append(out.Circuits, first.Circuits...)
	return out
}
