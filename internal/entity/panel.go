package entity

import "strings"

// PanelTypeOther is the default panel type when no fragment ever supplied one.
const PanelTypeOther = "Other"

// UnknownPanelKey is the identity bucket for fragments that never recovered a
// panel name. All nameless fragments of one document collapse into it.
const UnknownPanelKey = "unknown"

// CircuitRecord is one normalized row of a panel schedule.
type CircuitRecord struct {
	Number          string `json:"number"`
	Poles           string `json:"poles"`
	BreakerSize     string `json:"breaker_size"`
	LoadDescription string `json:"load_description"`
	LoadKVA         string `json:"load_kva,omitempty"`
	Phase           string `json:"phase"`
}

// Dimensions holds physical enclosure measurements, parsed from "HxWxD" text.
type Dimensions struct {
	Height string `json:"height"`
	Width  string `json:"width"`
	Depth  string `json:"depth"`
}

// IsZero reports whether no dimension field was ever recovered.
func (d Dimensions) IsZero() bool {
	return d.Height == "" && d.Width == "" && d.Depth == ""
}

// RevisionRecord is one row of a drawing revision-history block.
type RevisionRecord struct {
	Revision    string `json:"revision"`
	Date        string `json:"date"`
	Description string `json:"description"`
	By          string `json:"by"`
}

// PanelFragment is partial panel data recovered from one table. Fragments are
// accumulated per table, then handed to the merger; never mutated afterwards.
type PanelFragment struct {
	TableIndex     int
	Name           string
	Type           string
	Circuits       []CircuitRecord
	Specifications map[string]string
	Dimensions     Dimensions
	Totals         map[string]string
}

// PanelRecord is a fully merged panel. Created once per distinct identity key
// during the merge step; immutable once the document's processing completes.
type PanelRecord struct {
	Name           string            `json:"name"`
	Type           string            `json:"type"`
	Circuits       []CircuitRecord   `json:"circuits"`
	Specifications map[string]string `json:"specifications"`
	Dimensions     Dimensions        `json:"dimensions"`
	Totals         map[string]string `json:"panel_totals"`
	Revisions      []RevisionRecord  `json:"revisions,omitempty"`
}

// IdentityKey normalizes a panel name into its merge bucket: lower-cased and
// trimmed, with the empty string falling back to the shared unknown bucket.
func IdentityKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return UnknownPanelKey
	}
	return key
}

// DocumentResult is the multi-panel persisted shape. A populated Error with
// empty Panels signals total failure for the document; a nil Error with
// possibly-empty Panels signals partial or full success.
type DocumentResult struct {
	Panels []PanelRecord `json:"panels"`
	Error  *string       `json:"error"`
}

// SinglePanelResult is the single-panel persisted shape, kept for callers
// configured with the legacy one-panel-per-document output.
type SinglePanelResult struct {
	PanelName         string          `json:"PanelName"`
	GenericPanelTypes map[string]any  `json:"GenericPanelTypes"`
	Circuits          []CircuitRecord `json:"circuits"`
	Error             *string         `json:"error"`
}
