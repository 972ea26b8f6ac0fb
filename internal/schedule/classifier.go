package schedule

import (
	"strings"

	"github.com/BTCElectrician/ohmni-oracle-refined/constants"
)

// Classifier decides what kind of content a recognized table carries.
// Purely keyword-driven; a table whose header wording matches nothing is
// silently skipped by the pipeline, with no false-negative recovery.
type Classifier struct{}

func NewClassifier() Classifier {
	return Classifier{}
}

// IsCircuitTable reports whether the table's first row looks like a circuit
// schedule header.
func (Classifier) IsCircuitTable(rows [][]string) bool {
	if len(rows) == 0 {
		return false
	}
	header := strings.ToLower(strings.Join(rows[0], " "))
	for _, kw := range constants.CircuitTableKeywords {
		if strings.Contains(header, kw) {
			return true
		}
	}
	return false
}

// HeaderRow locates the header: the first row whose combined text carries both
// a circuit-identity keyword and a breaker/load keyword. Returns -1 when no
// row qualifies.
func (Classifier) HeaderRow(rows [][]string) int {
	for idx, row := range rows {
		text := strings.ToLower(strings.Join(row, " "))
		if containsAny(text, constants.CircuitIdentityKeywords) && containsAny(text, constants.BreakerLoadKeywords) {
			return idx
		}
	}
	return -1
}

// IsRevisionTable reports whether the table's first row looks like a drawing
// revision-history block.
func (Classifier) IsRevisionTable(rows [][]string) bool {
	if len(rows) == 0 {
		return false
	}
	header := strings.ToLower(strings.Join(rows[0], " "))
	for _, kw := range constants.RevisionTableKeywords {
		if strings.Contains(header, kw) {
			return true
		}
	}
	return false
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
