package llm

import (
	"strings"
	"testing"
)

func TestValidateJSONAgainstSchema(t *testing.T) {
	t.Parallel()

	schema := map[string]any{
		"type":                 "object",
		"additionalProperties": map[string]any{"type": "string"},
	}

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"conforming object", `{"voltage":"208"}`, ""},
		{"empty object", `{}`, ""},
		{"non-string value", `{"voltage":208}`, "violates schema"},
		{"not json", `voltage is 208`, "not valid JSON"},
		{"wrong top-level type", `["voltage"]`, "violates schema"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSONAgainstSchema(schema, []byte(tt.data))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateJSONAgainstSchema(%q): %v", tt.data, err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}
