package spoken_test

import (
	"testing"

	"github.com/MrWong99/atisvoice/pkg/spoken"
)

func TestRound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v      float64
		places int
		want   float64
	}{
		{1.2345, 2, 1.23},
		{1.235, 1, 1.2},
		{29.92, 1, 29.9},
		{1013.25, 0, 1013},
		{2.5, 0, 3},
		{-0.5, 0, -1},
		{-2.5, 0, -3},
		{0.125, 2, 0.13},
		// 1.005 is stored as 1.00499999999999989..., so scaling lands below .5.
		{1.005, 2, 1},
		{-1.25, 1, -1.3},
		{7, 3, 7},
	}
	for _, tc := range tests {
		if got := spoken.Round(tc.v, tc.places); got != tc.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tc.v, tc.places, got, tc.want)
		}
	}
}

func TestRoundHundreds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want int
	}{
		{250, 200},
		{-250, -200},
		{99, 0},
		{-99, 0},
		{100, 100},
		{0, 0},
		{12345, 12300},
		{-12399, -12300},
	}
	for _, tc := range tests {
		if got := spoken.RoundHundreds(tc.in); got != tc.want {
			t.Errorf("RoundHundreds(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestPronounce(t *testing.T) {
	t.Parallel()

	if got := spoken.Pronounce(109, true); got != "1 ZERO NINER" {
		t.Errorf("Pronounce(109, true) = %q", got)
	}
	if got := spoken.Pronounce(3.5, true); got != "3 DECIMAL 5" {
		t.Errorf("Pronounce(3.5, true) = %q", got)
	}
	if got := spoken.Pronounce(109, false); got != "109" {
		t.Errorf("Pronounce(109, false) = %q", got)
	}
	if got := spoken.Pronounce(-20, true); got != "- 2 ZERO" {
		t.Errorf("Pronounce(-20, true) = %q", got)
	}
	if got := spoken.Pronounce(1234567890, true); got != "1 2 3 4 5 6 7 8 NINER ZERO" {
		t.Errorf("Pronounce(1234567890, true) = %q", got)
	}
	if got := spoken.Pronounce(uint16(90), true); got != "NINER ZERO" {
		t.Errorf("Pronounce(uint16(90), true) = %q", got)
	}
	if got := spoken.Pronounce(float32(118.3), true); got != "1 1 8 DECIMAL 3" {
		t.Errorf("Pronounce(float32(118.3), true) = %q", got)
	}
	if got := spoken.Pronounce(3.0, true); got != "3" {
		t.Errorf("Pronounce(3.0, true) = %q", got)
	}
	if got := spoken.Pronounce(1e21, false); got != "1000000000000000000000" {
		t.Errorf("Pronounce(1e21, false) = %q", got)
	}
}

func TestPronounceString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in        string
		pronounce bool
		want      string
	}{
		{"251.000", true, "2 5 1 DECIMAL ZERO ZERO ZERO"},
		{"251.000", false, "251.000"},
		{"FL090", true, "F L ZERO NINER ZERO"},
		{"", true, ""},
		{"9", true, "NINER"},
	}
	for _, tc := range tests {
		if got := spoken.PronounceString(tc.in, tc.pronounce); got != tc.want {
			t.Errorf("PronounceString(%q, %v) = %q, want %q", tc.in, tc.pronounce, got, tc.want)
		}
	}
}
