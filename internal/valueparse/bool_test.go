package valueparse

import "testing"

func TestParseBool(t *testing.T) {
	tests := map[string]bool{
		"true": true, "TRUE": true, "t": true, "T": true,
		"false": false, "FALSE": false, "f": false, "F": false,
	}
	for in, want := range tests {
		if got := ParseBool([]byte(in)); got != want {
			t.Errorf("ParseBool(%q) = %v, want %v", in, got, want)
		}
	}
}
