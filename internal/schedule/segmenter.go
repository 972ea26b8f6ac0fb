package schedule

import (
	"github.com/BTCElectrician/ohmni-oracle-refined/internal/layout"
)

// DefaultBatchSize is the number of rows sent per completion-service chunk.
const DefaultBatchSize = 5

// Rows groups a table's flat cell collection into ordered rows of cell text,
// rows ordered by row index and cells by column index. Cells with negative
// indices are dropped; cells beyond the declared bounds widen the affected
// row. Short rows are padded with "" so that column indices stay aligned with
// the widest observed grid, keeping one ColumnMapping valid for every row of
// the table.
func Rows(t layout.RecognizedTable) [][]string {
	byRow := make(map[int]map[int]string)
	maxRow := -1
	width := t.ColumnCount

	for _, c := range t.Cells {
		if c.RowIndex < 0 || c.ColumnIndex < 0 {
			continue
		}
		cols, ok := byRow[c.RowIndex]
		if !ok {
			cols = make(map[int]string)
			byRow[c.RowIndex] = cols
		}
		cols[c.ColumnIndex] = c.Content
		if c.RowIndex > maxRow {
			maxRow = c.RowIndex
		}
		if c.ColumnIndex+1 > width {
			width = c.ColumnIndex + 1
		}
	}
	if maxRow < 0 {
		return nil
	}

	rows := make([][]string, maxRow+1)
	for r := 0; r <= maxRow; r++ {
		row := make([]string, width)
		for col, content := range byRow[r] {
			row[col] = content
		}
		rows[r] = row
	}
	return rows
}

// Chunks partitions rows into contiguous batches of size batchSize, preserving
// order; the final batch may be smaller. Batches partition the input
// exhaustively: every row lands in exactly one chunk.
func Chunks(rows [][]string, batchSize int) [][][]string {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	var chunks [][][]string
	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		chunks = append(chunks, rows[start:end])
	}
	return chunks
}
