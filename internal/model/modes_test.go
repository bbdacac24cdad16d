package model

import "testing"

func TestParsePopulationMode_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  PopulationMode
	}{
		{"children", PopulateChildren},
		{"Children", PopulateChildren},
		{"iterator", PopulateIterator},
		{" ITERATOR ", PopulateIterator},
	}
	for _, tt := range tests {
		got, err := ParsePopulationMode(tt.input)
		if err != nil {
			t.Errorf("ParsePopulationMode(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParsePopulationMode(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParsePopulationMode_Invalid(t *testing.T) {
	if _, err := ParsePopulationMode("sideways"); err == nil {
		t.Error("ParsePopulationMode(\"sideways\") should fail")
	}
}

func TestPopulationMode_RoundTrip(t *testing.T) {
	for _, m := range []PopulationMode{PopulateChildren, PopulateIterator} {
		got, err := ParsePopulationMode(m.String())
		if err != nil || got != m {
			t.Errorf("round trip of %v gave %v, %v", m, got, err)
		}
	}
}
