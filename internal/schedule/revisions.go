package schedule

import (
	"strings"

	"github.com/BTCElectrician/ohmni-oracle-refined/internal/entity"
)

// MapRevisionRows converts a revision table's data rows (everything after the
// header) into revision records. Cell classification is heuristic: a "rev"
// keyword marks the revision tag, a date-shaped value the date, a value of up
// to three characters the reviewer initials, anything else the description.
func MapRevisionRows(rows [][]string) []entity.RevisionRecord {
	var revisions []entity.RevisionRecord
	for idx, row := range rows {
		if idx == 0 {
			continue
		}
		var rev entity.RevisionRecord
		for _, cell := range row {
			text := strings.TrimSpace(cell)
			if text == "" {
				continue
			}
			lower := strings.ToLower(text)
			switch {
			case strings.Contains(lower, "rev"):
				rev.Revision = text
			case isDateLike(lower):
				rev.Date = text
			case len(text) <= 3:
				rev.By = text
			default:
				rev.Description = text
			}
		}
		if rev != (entity.RevisionRecord{}) {
			revisions = append(revisions, rev)
		}
	}
	return revisions
}

func isDateLike(text string) bool {
	hasDigit := strings.ContainsAny(text, "0123456789")
	return hasDigit && (strings.Contains(text, "/") || strings.Contains(text, "-"))
}
