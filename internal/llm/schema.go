package llm

import (
	"github.com/BTCElectrician/ohmni-oracle-refined/constants"
)

// BuildColumnMappingSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. Keys must be stringified column indices; values must come from
// the canonical field vocabulary. Anything else is rejected outright rather
// than tolerated by ad hoc key checks.
func BuildColumnMappingSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"propertyNames": map[string]any{
			"pattern": `^\d+$`,
		},
		"additionalProperties": map[string]any{
			"type": "string",
			"enum": constants.FieldNames(),
		},
	}
}

// BuildPanelPayloadSchema constrains the panel-metadata variant's response.
// All keys are optional at the schema level; ParsePanelPayload backfills
// type-appropriate empty defaults afterwards.
func BuildPanelPayloadSchema() map[string]any {
	stringMap := map[string]any{
		"type":                 "object",
		"additionalProperties": map[string]any{"type": "string"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"PanelName": map[string]any{"type": "string"},
			"PanelType": map[string]any{"type": "string"},
			"circuits": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": map[string]any{"type": "string"},
				},
			},
			"specifications": stringMap,
			"dimensions":     stringMap,
			"panel_totals":   stringMap,
		},
	}
}
