package constants

import (
	"strings"
)

// Field is a canonical circuit-schedule column label.
type Field string

const (
	FieldCircuitNumber   Field = "circuit_number"
	FieldPoles           Field = "poles"
	FieldBreakerSize     Field = "breaker_size"
	FieldLoadDescription Field = "load_description"
	FieldLoadKVA         Field = "load_kva"
	FieldPhase           Field = "phase"
	FieldUnused          Field = "unused"
)

var allFields = []Field{
	FieldCircuitNumber,
	FieldPoles,
	FieldBreakerSize,
	FieldLoadDescription,
	FieldLoadKVA,
	FieldPhase,
	FieldUnused,
}

// FieldNames returns the vocabulary as plain strings, for prompts and schemas.
func FieldNames() []string {
	result := make([]string, len(allFields))
	for i, f := range allFields {
		result[i] = string(f)
	}
	return result
}

// CanonicalizeField folds a raw label into the canonical vocabulary.
// Unrecognized labels map to FieldUnused with ok=false.
func CanonicalizeField(input string) (Field, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return FieldUnused, false
	}

	for _, f := range allFields {
		if normalized == string(f) {
			return f, true
		}
	}

	// synonyms map
	synonyms := map[string]Field{
		"circuit":           FieldCircuitNumber,
		"circuit_no":        FieldCircuitNumber,
		"ckt":               FieldCircuitNumber,
		"number":            FieldCircuitNumber,
		"pole":              FieldPoles,
		"breaker":           FieldBreakerSize,
		"breaker_size/trip": FieldBreakerSize,
		"trip":              FieldBreakerSize,
		"amps":              FieldBreakerSize,
		"amp":               FieldBreakerSize,
		"description":       FieldLoadDescription,
		"load":              FieldLoadDescription,
		"kva":               FieldLoadKVA,
		"ph":                FieldPhase,
	}
	if f, ok := synonyms[normalized]; ok {
		return f, true
	}
	return FieldUnused, false
}
