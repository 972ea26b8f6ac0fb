package schedule

import (
	"strings"
	"unicode"

	"github.com/BTCElectrician/ohmni-oracle-refined/internal/entity"
)

// dedupeKey normalizes a circuit number into its identity: lower-cased with
// every whitespace rune removed, so "12", " 12 " and "1 2" all collide.
func dedupeKey(number string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(number) {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Deduplicate collapses records sharing a normalized circuit number,
// preserving first-seen order. The first occurrence wins outright; later
// duplicates are dropped without field-level reconciliation. Records with no
// number at all carry no identity and are kept as-is. Running the function on
// its own output is a no-op.
func Deduplicate(records []entity.CircuitRecord) []entity.CircuitRecord {
	if len(records) == 0 {
		return records
	}
	seen := make(map[string]struct{}, len(records))
	out := make([]entity.CircuitRecord, 0, len(records))
	for _, rec := range records {
		key := dedupeKey(rec.Number)
		if key == "" {
			out = append(out, rec)
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, rec)
	}
	return out
}
