package async

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BTCElectrician/ohmni-oracle-refined/internal/entity"
	"github.com/BTCElectrician/ohmni-oracle-refined/internal/layout"
	"github.com/BTCElectrician/ohmni-oracle-refined/internal/processor"
	"github.com/BTCElectrician/ohmni-oracle-refined/internal/schedule"
)

type stubAnalyzer struct{}

func (stubAnalyzer) Analyze(context.Context, []byte) (layout.AnalyzeResult, error) {
	return layout.AnalyzeResult{Tables: []layout.RecognizedTable{{
		RowCount:    2,
		ColumnCount: 2,
		Cells: []layout.TableCell{
			{RowIndex: 0, ColumnIndex: 0, Content: "CIRCUIT"},
			{RowIndex: 0, ColumnIndex: 1, Content: "LOAD"},
			{RowIndex: 1, ColumnIndex: 0, Content: "1"},
			{RowIndex: 1, ColumnIndex: 1, Content: "Lights"},
		},
	}}}, nil
}

type stubCompleter struct{}

func (stubCompleter) Complete(_ context.Context, system, _ string) (string, error) {
	if strings.Contains(system, "column index") {
		return `{"0":"circuit_number","1":"load_description"}`, nil
	}
	return `{"PanelName":"LP-1"}`, nil
}

func TestProcessorQueue_DrainsAllJobs(t *testing.T) {
	t.Parallel()

	outDir := t.TempDir()
	docDir := t.TempDir()
	pipeline := schedule.NewPipeline(stubAnalyzer{}, stubCompleter{}, 0, nil)
	proc := processor.NewProcessor(nil, pipeline, nil, processor.Config{OutputDir: outDir})

	q := NewProcessorQueue(proc, nil, WithWorkers(2), WithQueueSize(8))

	names := []string{"panel_schedule_a.pdf", "panel_schedule_b.pdf", "panel_schedule_c.pdf"}
	for _, name := range names {
		path := filepath.Join(docDir, name)
		if err := os.WriteFile(path, []byte("%PDF-1.7"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := q.Enqueue(context.Background(), Job{Path: path, SubmittedAt: time.Now()}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	for _, name := range names {
		base := strings.TrimSuffix(name, ".pdf")
		data, err := os.ReadFile(filepath.Join(outDir, base+"_panel.json"))
		if err != nil {
			t.Fatalf("result for %s missing: %v", name, err)
		}
		var res entity.DocumentResult
		if err := json.Unmarshal(data, &res); err != nil {
			t.Fatalf("result for %s malformed: %v", name, err)
		}
		if res.Error != nil || len(res.Panels) != 1 {
			t.Fatalf("result for %s = %+v", name, res)
		}
	}
}

func TestProcessorQueue_EnqueueAfterShutdown(t *testing.T) {
	t.Parallel()

	pipeline := schedule.NewPipeline(stubAnalyzer{}, stubCompleter{}, 0, nil)
	proc := processor.NewProcessor(nil, pipeline, nil, processor.Config{OutputDir: t.TempDir()})
	q := NewProcessorQueue(proc, nil, WithWorkers(1))

	q.Shutdown(context.Background())
	// must not panic on the closed channel
	if err := q.Enqueue(context.Background(), Job{Path: "late.pdf"}); err != nil {
		t.Fatalf("Enqueue after shutdown: %v", err)
	}
	q.Shutdown(context.Background())
}
