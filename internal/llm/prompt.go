package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BTCElectrician/ohmni-oracle-refined/constants"
)

// BuildColumnMappingSystemPrompt composes the instruction for the per-chunk
// column mapper. The prompt is deterministic: same vocabulary, same wording,
// so that responses vary only with the chunk content.
func BuildColumnMappingSystemPrompt() string {
	parts := []string{
		"You are an electrical panel-schedule reader.",
		"You receive a small batch of raw table rows from one panel schedule.",
		"Return ONLY a JSON object mapping each column index (as a string key like \"0\") to exactly one of: " +
			strings.Join(constants.FieldNames(), ", ") + ".",
		"Label a column 'unused' when it carries no circuit data.",
		"Do not invent columns that are not present in the rows.",
		"Never output null, prose, or markdown fences.",
	}
	return strings.Join(parts, " ")
}

// BuildColumnMappingUserPrompt serializes a chunk's rows for the mapper.
func BuildColumnMappingUserPrompt(chunk [][]string) (string, error) {
	encoded, err := json.Marshal(chunk)
	if err != nil {
		return "", fmt.Errorf("encode chunk: %w", err)
	}
	var b strings.Builder
	b.WriteString("Table rows (each row is an ordered list of cell texts):\n")
	b.Write(encoded)
	b.WriteString("\n\nReturn ONLY the JSON column mapping.")
	return b.String(), nil
}

// BuildPanelSystemPrompt composes the instruction for the panel-metadata
// variant: header-area rows in, one panel payload object out.
func BuildPanelSystemPrompt() string {
	parts := []string{
		"You are an electrical panel-schedule reader.",
		"You receive the header area of one panel schedule table.",
		"Return ONLY a JSON object with the keys PanelName, PanelType, circuits, specifications, dimensions, panel_totals.",
		"PanelName is the panel designation (e.g. \"L1\", \"H2\"); use \"\" when not visible.",
		"PanelType is a short classification such as Lighting, Power, Distribution; use \"\" when not visible.",
		"circuits is a list of objects whose keys are drawn from: " + strings.Join(constants.FieldNames(), ", ") + ".",
		"specifications, dimensions and panel_totals are flat string-to-string objects; omit keys you cannot read.",
		"Never output null, prose, or markdown fences.",
	}
	return strings.Join(parts, " ")
}

// BuildPanelUserPrompt serializes header-area rows for the metadata variant.
func BuildPanelUserPrompt(rows [][]string) (string, error) {
	encoded, err := json.Marshal(rows)
	if err != nil {
		return "", fmt.Errorf("encode rows: %w", err)
	}
	var b strings.Builder
	b.WriteString("Header rows (each row is an ordered list of cell texts):\n")
	b.Write(encoded)
	b.WriteString("\n\nReturn ONLY the JSON panel payload.")
	return b.String(), nil
}
