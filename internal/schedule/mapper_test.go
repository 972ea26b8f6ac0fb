package schedule

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/BTCElectrician/ohmni-oracle-refined/constants"
)

// scriptedCompleter routes on the system prompt: column-mapping and
// panel-metadata calls get independent canned responses.
type scriptedCompleter struct {
	mapping    string
	mappingErr error
	panel      string
	panelErr   error
}

func (s *scriptedCompleter) Complete(_ context.Context, system, _ string) (string, error) {
	if strings.Contains(system, "column index") {
		return s.mapping, s.mappingErr
	}
	return s.panel, s.panelErr
}

func TestParseColumnMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    ColumnMapping
		wantErr bool
	}{
		{
			"valid mapping",
			`{"0":"circuit_number","1":"breaker_size","2":"load_description"}`,
			ColumnMapping{
				0: constants.FieldCircuitNumber,
				1: constants.FieldBreakerSize,
				2: constants.FieldLoadDescription,
			},
			false,
		},
		{
			"unused column",
			`{"0":"circuit_number","3":"unused"}`,
			ColumnMapping{0: constants.FieldCircuitNumber, 3: constants.FieldUnused},
			false,
		},
		{"empty object", `{}`, ColumnMapping{}, false},
		{"not json", `column 0 is the circuit number`, nil, true},
		{"label outside vocabulary", `{"0":"bogus_field"}`, nil, true},
		{"non-numeric key", `{"first":"poles"}`, nil, true},
		{"prose-wrapped json", `Here you go: {"0":"poles"}`, nil, true},
		{"array instead of object", `["circuit_number"]`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColumnMapping([]byte(tt.raw))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseColumnMapping(%q) = %v, want error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColumnMapping(%q) error: %v", tt.raw, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("mapping = %v, want %v", got, tt.want)
			}
			for col, field := range tt.want {
				if got[col] != field {
					t.Fatalf("mapping[%d] = %s, want %s", col, got[col], field)
				}
			}
		})
	}
}

func TestColumnMapper_MapColumns(t *testing.T) {
	t.Parallel()

	chunk := [][]string{{"5", "20A", "Refrigerator"}}

	t.Run("valid response", func(t *testing.T) {
		m := NewColumnMapper(&scriptedCompleter{
			mapping: `{"0":"circuit_number","1":"breaker_size","2":"load_description"}`,
		}, nil)
		got := m.MapColumns(context.Background(), chunk)
		if len(got) != 3 {
			t.Fatalf("mapping size = %d, want 3", len(got))
		}
	})

	t.Run("service failure yields empty mapping", func(t *testing.T) {
		m := NewColumnMapper(&scriptedCompleter{mappingErr: errors.New("boom")}, nil)
		if got := m.MapColumns(context.Background(), chunk); len(got) != 0 {
			t.Fatalf("mapping = %v, want empty", got)
		}
	})

	t.Run("malformed response yields empty mapping", func(t *testing.T) {
		m := NewColumnMapper(&scriptedCompleter{mapping: `not json at all`}, nil)
		if got := m.MapColumns(context.Background(), chunk); len(got) != 0 {
			t.Fatalf("mapping = %v, want empty", got)
		}
	})
}

func TestPanelExtractor_ExtractPanel(t *testing.T) {
	t.Parallel()

	rows := [][]string{{"Panel L1", "225A"}}

	t.Run("valid payload with backfill", func(t *testing.T) {
		e := NewPanelExtractor(&scriptedCompleter{
			panel: `{"PanelName":"L1","PanelType":"Lighting"}`,
		}, nil)
		payload, ok := e.ExtractPanel(context.Background(), rows)
		if !ok {
			t.Fatal("ExtractPanel returned ok=false")
		}
		if payload.PanelName != "L1" || payload.PanelType != "Lighting" {
			t.Fatalf("payload = %+v", payload)
		}
		if payload.Circuits == nil || payload.Specifications == nil ||
			payload.Dimensions == nil || payload.PanelTotals == nil {
			t.Fatal("missing keys were not backfilled")
		}
	})

	t.Run("service failure", func(t *testing.T) {
		e := NewPanelExtractor(&scriptedCompleter{panelErr: errors.New("boom")}, nil)
		if _, ok := e.ExtractPanel(context.Background(), rows); ok {
			t.Fatal("ExtractPanel returned ok=true on service failure")
		}
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		e := NewPanelExtractor(&scriptedCompleter{
			panel: `{"PanelName":"L1","surprise":"value"}`,
		}, nil)
		if _, ok := e.ExtractPanel(context.Background(), rows); ok {
			t.Fatal("ExtractPanel accepted a payload with an unknown key")
		}
	})
}
