package layout

import "context"

// TableCell is one recognized cell. Row/column indices come straight from the
// layout service and may be sparse or fall outside the declared bounds; the
// segmenter recovers from both.
type TableCell struct {
	RowIndex    int    `json:"rowIndex"`
	ColumnIndex int    `json:"columnIndex"`
	Content     string `json:"content"`
}

// RecognizedTable is an ordered grid addressed by (row, column).
// RowCount/ColumnCount are declared bounds, not guarantees.
type RecognizedTable struct {
	RowCount    int         `json:"rowCount"`
	ColumnCount int         `json:"columnCount"`
	Cells       []TableCell `json:"cells"`
}

// AnalyzeResult is the layout-analysis output for one document.
type AnalyzeResult struct {
	Tables []RecognizedTable `json:"tables"`
}

// Analyzer is the document-layout-analysis collaborator.
// The pipeline invokes it at most once per document.
type Analyzer interface {
	Analyze(ctx context.Context, document []byte) (AnalyzeResult, error)
}
