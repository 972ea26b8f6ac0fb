package entity

import "testing"

func TestIdentityKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"LP-1", "lp-1"},
		{"  lp-1  ", "lp-1"},
		{"LP-1 ", "lp-1"},
		{"", UnknownPanelKey},
		{"   ", UnknownPanelKey},
	}
	for _, tt := range tests {
		if got := IdentityKey(tt.name); got != tt.want {
			t.Fatalf("IdentityKey(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDimensionsIsZero(t *testing.T) {
	t.Parallel()

	if !(Dimensions{}).IsZero() {
		t.Fatal("zero value not reported zero")
	}
	if (Dimensions{Depth: "6"}).IsZero() {
		t.Fatal("partial dimensions reported zero")
	}
}
