package constants

import "testing"

func TestCanonicalizeField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		want   Field
		wantOK bool
	}{
		{"circuit_number", FieldCircuitNumber, true},
		{"CIRCUIT", FieldCircuitNumber, true},
		{"ckt", FieldCircuitNumber, true},
		{" Number ", FieldCircuitNumber, true},
		{"trip", FieldBreakerSize, true},
		{"Amps", FieldBreakerSize, true},
		{"breaker", FieldBreakerSize, true},
		{"load", FieldLoadDescription, true},
		{"Description", FieldLoadDescription, true},
		{"kva", FieldLoadKVA, true},
		{"pole", FieldPoles, true},
		{"PH", FieldPhase, true},
		{"unused", FieldUnused, true},
		{"wattage", FieldUnused, false},
		{"", FieldUnused, false},
		{"   ", FieldUnused, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := CanonicalizeField(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("CanonicalizeField(%q) = (%s, %v), want (%s, %v)",
					tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFieldNames(t *testing.T) {
	t.Parallel()

	names := FieldNames()
	if len(names) != 7 {
		t.Fatalf("got %d names: %v", len(names), names)
	}
	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			t.Fatalf("duplicate name %q", n)
		}
		seen[n] = true
		if f, ok := CanonicalizeField(n); !ok || string(f) != n {
			t.Fatalf("name %q does not round-trip: (%s, %v)", n, f, ok)
		}
	}
}
