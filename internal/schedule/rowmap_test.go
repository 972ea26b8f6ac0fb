package schedule

import (
	"testing"

	"github.com/BTCElectrician/ohmni-oracle-refined/constants"
	"github.com/BTCElectrician/ohmni-oracle-refined/internal/entity"
)

func TestMapRow(t *testing.T) {
	t.Parallel()

	mapping := ColumnMapping{
		0: constants.FieldCircuitNumber,
		1: constants.FieldBreakerSize,
		2: constants.FieldLoadDescription,
	}

	tests := []struct {
		name    string
		mapping ColumnMapping
		row     []string
		want    entity.CircuitRecord
		wantOK  bool
	}{
		{
			"full row",
			mapping,
			[]string{"5", "20A", "Refrigerator"},
			entity.CircuitRecord{Number: "5", BreakerSize: "20A", LoadDescription: "Refrigerator"},
			true,
		},
		{
			"values trimmed",
			mapping,
			[]string{" 12 ", " 15A ", " Lights "},
			entity.CircuitRecord{Number: "12", BreakerSize: "15A", LoadDescription: "Lights"},
			true,
		},
		{
			"all empty row yields no record",
			mapping,
			[]string{"", "  ", ""},
			entity.CircuitRecord{},
			false,
		},
		{
			"missing identity yields no record",
			mapping,
			[]string{"", "20A", "Refrigerator"},
			entity.CircuitRecord{},
			false,
		},
		{
			"empty mapping yields no record",
			ColumnMapping{},
			[]string{"5", "20A", "Refrigerator"},
			entity.CircuitRecord{},
			false,
		},
		{
			"unused columns never contribute",
			ColumnMapping{0: constants.FieldCircuitNumber, 1: constants.FieldUnused},
			[]string{"7", "junk"},
			entity.CircuitRecord{Number: "7"},
			true,
		},
		{
			"mapped column beyond row end is absent",
			ColumnMapping{0: constants.FieldCircuitNumber, 9: constants.FieldPhase},
			[]string{"3"},
			entity.CircuitRecord{Number: "3"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MapRow(tt.mapping, tt.row)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Fatalf("record = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRecordFromPayload(t *testing.T) {
	t.Parallel()

	t.Run("number omitted but meaningful", func(t *testing.T) {
		rec, ok := RecordFromPayload(map[string]string{
			"load_description": "Spare",
			"poles":            "1",
		})
		if !ok {
			t.Fatal("meaningful payload circuit dropped")
		}
		if rec.Number != "" || rec.LoadDescription != "Spare" || rec.Poles != "1" {
			t.Fatalf("record = %+v", rec)
		}
	})

	t.Run("synonym labels fold", func(t *testing.T) {
		rec, ok := RecordFromPayload(map[string]string{"trip": "20A", "circuit": "4"})
		if !ok || rec.BreakerSize != "20A" || rec.Number != "4" {
			t.Fatalf("record = %+v ok=%v", rec, ok)
		}
	})

	t.Run("all empty", func(t *testing.T) {
		if _, ok := RecordFromPayload(map[string]string{"poles": " "}); ok {
			t.Fatal("empty payload circuit kept")
		}
	})
}
