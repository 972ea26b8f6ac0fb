package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/BTCElectrician/ohmni-oracle-refined/constants"
	"github.com/BTCElectrician/ohmni-oracle-refined/internal/common"
	"github.com/BTCElectrician/ohmni-oracle-refined/internal/entity"
	"github.com/BTCElectrician/ohmni-oracle-refined/internal/layout"
	"github.com/BTCElectrician/ohmni-oracle-refined/internal/llm"
)

// Pipeline drives one document through analyze → classify → segment → map →
// accumulate → merge. One Pipeline value is safe for concurrent documents:
// every Process call owns its fragment accumulator exclusively, and the only
// shared state is the injected service clients.
type Pipeline struct {
	layout     layout.Analyzer
	columns    *ColumnMapper
	panels     *PanelExtractor
	classifier Classifier
	batchSize  int
	log        *slog.Logger
}

func NewPipeline(analyzer layout.Analyzer, completer llm.Completer, batchSize int, logger *slog.Logger) *Pipeline {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		layout:     analyzer,
		columns:    NewColumnMapper(completer, logger),
		panels:     NewPanelExtractor(completer, logger),
		classifier: NewClassifier(),
		batchSize:  batchSize,
		log:        logger,
	}
}

// Process extracts merged panels from one document. Failure handling is
// two-tier: a layout-analysis failure is the only fatal path and yields a
// result with a populated error and empty panel list; every later failure is
// absorbed at chunk or table scope as a missing contribution. Tables are
// visited in input order and chunks in row order; the merge step's
// last-write-wins semantics depend on that order.
func (p *Pipeline) Process(ctx context.Context, document []byte) entity.DocumentResult {
	if len(document) == 0 {
		err := fmt.Errorf("%w: document has no content", common.ErrEmptyInput)
		p.log.Error("schedule.pipeline.empty_document", "error", err)
		msg := err.Error()
		return entity.DocumentResult{Panels: []entity.PanelRecord{}, Error: &msg}
	}

	analyzed, err := p.layout.Analyze(ctx, document)
	if err != nil {
		p.log.Error("schedule.pipeline.analyze_failed", "error", err)
		msg := err.Error()
		return entity.DocumentResult{Panels: []entity.PanelRecord{}, Error: &msg}
	}

	var fragments []entity.PanelFragment
	var revisions []entity.RevisionRecord

	for ti, table := range analyzed.Tables {
		rows := Rows(table)
		if len(rows) == 0 {
			continue
		}

		switch {
		case p.classifier.IsCircuitTable(rows):
			fragments = append(fragments, p.processTable(ctx, ti, rows))
		case p.classifier.IsRevisionTable(rows):
			revisions = append(revisions, MapRevisionRows(rows)...)
		default:
			p.log.Debug("schedule.pipeline.table_skipped", "table", ti)
		}
	}

	panels := MergeFragments(fragments)
	if len(revisions) > 0 && len(panels) > 0 {
		panels[0].Revisions = append(panels[0].Revisions, revisions...)
	}
	if panels == nil {
		panels = []entity.PanelRecord{}
	}

	p.log.Info("schedule.pipeline.done",
		"tables", len(analyzed.Tables),
		"fragments", len(fragments),
		"panels", len(panels),
		"keyword_version", constants.KeywordTableVersion,
	)
	return entity.DocumentResult{Panels: panels, Error: nil}
}

// processTable accumulates one circuit table into a fragment: heuristic
// specification scan, panel metadata from the header area, then per-chunk
// column mapping over the data rows.
func (p *Pipeline) processTable(ctx context.Context, tableIndex int, rows [][]string) entity.PanelFragment {
	frag := entity.PanelFragment{
		TableIndex:     tableIndex,
		Specifications: map[string]string{},
		Totals:         map[string]string{},
	}

	specs, dims := ScanSpecifications(rows)
	for k, v := range specs {
		frag.Specifications[k] = v
	}
	frag.Dimensions = dims

	headerIdx := p.classifier.HeaderRow(rows)
	if headerIdx < 0 {
		headerIdx = 0
	}

	// Panel metadata from the header area. The payload's keys overwrite the
	// heuristic scan above: the completion sees the same cells with context.
	metaEnd := headerIdx + p.batchSize
	if metaEnd > len(rows) {
		metaEnd = len(rows)
	}
	if payload, ok := p.panels.ExtractPanel(ctx, rows[headerIdx:metaEnd]); ok {
		frag.Name = payload.PanelName
		frag.Type = payload.PanelType
		for k, v := range payload.Specifications {
			frag.Specifications[k] = v
		}
		for k, v := range payload.PanelTotals {
			frag.Totals[k] = v
		}
		if h := payload.Dimensions["height"]; h != "" {
			frag.Dimensions.Height = h
		}
		if w := payload.Dimensions["width"]; w != "" {
			frag.Dimensions.Width = w
		}
		if d := payload.Dimensions["depth"]; d != "" {
			frag.Dimensions.Depth = d
		}
		for _, fields := range payload.Circuits {
			if rec, ok := RecordFromPayload(fields); ok {
				frag.Circuits = append(frag.Circuits, rec)
			}
		}
	}

	data := rows[headerIdx+1:]
	for ci, chunk := range Chunks(data, p.batchSize) {
		mapping := p.columns.MapColumns(ctx, chunk)
		if len(mapping) == 0 {
			// error signal: drop the chunk, keep going
			p.log.Warn("schedule.pipeline.chunk_dropped", "table", tableIndex, "chunk", ci)
			continue
		}
		for _, row := range chunk {
			if rec, ok := MapRow(mapping, row); ok {
				frag.Circuits = append(frag.Circuits, rec)
			}
		}
	}

	frag.Circuits = Deduplicate(frag.Circuits)
	return frag
}
