package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/BTCElectrician/ohmni-oracle-refined/internal/entity"
)

// PanelsWorkbook renders merged panels into an XLSX workbook (as bytes):
// a "Panels" summary sheet and a flat "Circuits" sheet, one row per circuit.
func PanelsWorkbook(panels []entity.PanelRecord, logger *slog.Logger) ([]byte, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	f := excelize.NewFile()
	const panelSheet = "Panels"
	const circuitSheet = "Circuits"

	if err := f.SetSheetName("Sheet1", panelSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(circuitSheet); err != nil {
		return nil, fmt.Errorf("add sheet: %w", err)
	}

	panelHeaders := []string{"Panel", "Type", "Circuits", "Amps", "Voltage", "Dimensions (HxWxD)"}
	for i, h := range panelHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(panelSheet, cell, h)
	}

	circuitHeaders := []string{"Panel", "Circuit", "Poles", "Breaker", "Load Description", "Load kVA", "Phase"}
	for i, h := range circuitHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(circuitSheet, cell, h)
	}

	circuitRow := 2
	for pi, panel := range panels {
		name := panel.Name
		if name == "" {
			name = entity.UnknownPanelKey
		}

		write := func(sheet string, row, col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		dims := ""
		if !panel.Dimensions.IsZero() {
			dims = panel.Dimensions.Height + " x " + panel.Dimensions.Width + " x " + panel.Dimensions.Depth
		}

		write(panelSheet, pi+2, 1, name)
		write(panelSheet, pi+2, 2, panel.Type)
		write(panelSheet, pi+2, 3, len(panel.Circuits))
		write(panelSheet, pi+2, 4, panel.Specifications["amps"])
		write(panelSheet, pi+2, 5, panel.Specifications["voltage"])
		write(panelSheet, pi+2, 6, dims)

		for _, c := range panel.Circuits {
			write(circuitSheet, circuitRow, 1, name)
			write(circuitSheet, circuitRow, 2, c.Number)
			write(circuitSheet, circuitRow, 3, c.Poles)
			write(circuitSheet, circuitRow, 4, c.BreakerSize)
			write(circuitSheet, circuitRow, 5, c.LoadDescription)
			write(circuitSheet, circuitRow, 6, c.LoadKVA)
			write(circuitSheet, circuitRow, 7, c.Phase)
			circuitRow++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	logger.Info("export.xlsx.ok",
		"panels", len(panels),
		"circuit_rows", circuitRow-2,
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
