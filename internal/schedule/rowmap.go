package schedule

import (
	"strings"

	"github.com/BTCElectrician/ohmni-oracle-refined/constants"
	"github.com/BTCElectrician/ohmni-oracle-refined/internal/entity"
)

// MapRow applies a column mapping to one data row, producing a canonical
// circuit record. ok=false means the row contributed nothing: either no cell
// under a mapped, non-unused column carried text, or the row lacks a usable
// circuit number. The record list never contains all-empty placeholders.
func MapRow(mapping ColumnMapping, row []string) (entity.CircuitRecord, bool) {
	if len(mapping) == 0 {
		return entity.CircuitRecord{}, false
	}

	var rec entity.CircuitRecord
	meaningful := false
	for col, field := range mapping {
		if field == constants.FieldUnused {
			continue
		}
		if col < 0 || col >= len(row) {
			continue
		}
		value := strings.TrimSpace(row[col])
		if value != "" {
			meaningful = true
		}
		setField(&rec, field, value)
	}

	if !meaningful || rec.Number == "" {
		return entity.CircuitRecord{}, false
	}
	return rec, true
}

func setField(rec *entity.CircuitRecord, field constants.Field, value string) {
	switch field {
	case constants.FieldCircuitNumber:
		rec.Number = value
	case constants.FieldPoles:
		rec.Poles = value
	case constants.FieldBreakerSize:
		rec.BreakerSize = value
	case constants.FieldLoadDescription:
		rec.LoadDescription = value
	case constants.FieldLoadKVA:
		rec.LoadKVA = value
	case constants.FieldPhase:
		rec.Phase = value
	}
}

// RecordFromPayload converts one circuit object from the panel-metadata
// variant into a CircuitRecord. Unlike MapRow, records without a number are
// kept when any other field is set: the variant may intentionally omit
// numbers.
func RecordFromPayload(fields map[string]string) (entity.CircuitRecord, bool) {
	var rec entity.CircuitRecord
	meaningful := false
	for label, value := range fields {
		field, ok := constants.CanonicalizeField(label)
		if !ok || field == constants.FieldUnused {
			continue
		}
		value = strings.TrimSpace(value)
		if value != "" {
			meaningful = true
		}
		setField(&rec, field, value)
	}
	return rec, meaningful
}
