package schedule

import (
	"reflect"
	"testing"

	"github.com/BTCElectrician/ohmni-oracle-refined/internal/entity"
)

func TestDeduplicate(t *testing.T) {
	t.Parallel()

	t.Run("whitespace and case collapse to one identity", func(t *testing.T) {
		in := []entity.CircuitRecord{
			{Number: "12", LoadDescription: "Lights"},
			{Number: " 12 ", LoadDescription: "Spare"},
			{Number: "1 2", BreakerSize: "20A"},
		}
		got := Deduplicate(in)
		if len(got) != 1 {
			t.Fatalf("got %d records, want 1", len(got))
		}
		if got[0].LoadDescription != "Lights" || got[0].BreakerSize != "" {
			t.Fatalf("first occurrence did not win: %+v", got[0])
		}
	})

	t.Run("distinct numbers survive in order", func(t *testing.T) {
		in := []entity.CircuitRecord{{Number: "3"}, {Number: "1"}, {Number: "2"}}
		got := Deduplicate(in)
		want := []string{"3", "1", "2"}
		if len(got) != len(want) {
			t.Fatalf("got %d records, want %d", len(got), len(want))
		}
		for i, n := range want {
			if got[i].Number != n {
				t.Fatalf("position %d: got %q, want %q", i, got[i].Number, n)
			}
		}
	})

	t.Run("numberless records are never collapsed", func(t *testing.T) {
		in := []entity.CircuitRecord{
			{LoadDescription: "Spare"},
			{LoadDescription: "Space"},
			{Number: "  ", LoadDescription: "Blank number"},
		}
		got := Deduplicate(in)
		if len(got) != 3 {
			t.Fatalf("got %d records, want 3: %+v", len(got), got)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		in := []entity.CircuitRecord{
			{Number: "1"}, {Number: "1"}, {Number: "2"}, {LoadDescription: "Spare"},
		}
		once := Deduplicate(in)
		twice := Deduplicate(once)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("second pass changed output:\nonce:  %+v\ntwice: %+v", once, twice)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := Deduplicate(nil); len(got) != 0 {
			t.Fatalf("got %+v, want empty", got)
		}
	})
}
