package sequence

import (
	"bytes"
	"testing"
)

func TestCalculateGCContent(t *testing.T) {
	for _, tc := range []struct {
		seq  string
		want float64
	}{
		{"", 0},
		{"GGCC", 1},
		{"ATAT", 0},
		{"gcAT", 0.5},
	} {
		if got := CalculateGCContent(tc.seq); got != tc.want {
			t.Errorf("CalculateGCContent(%q) = %v, want %v", tc.seq, got, tc.want)
		}
	}
}

func TestStripGaps(t *testing.T) {
	if got := StripGaps("A-C--G-"); got != "ACG" {
		t.Errorf("got %q", got)
	}
}

func TestNonNucleotides(t *testing.T) {
	if got := NonNucleotides("ACGTUN"); len(got) != 0 {
		t.Errorf("got %q for plain bases", got)
	}
	if got := NonNucleotides("ACxGaxRa"); !bytes.Equal(got, []byte("xaR")) {
		t.Errorf("got %q, want %q", got, "xaR")
	}
}

func TestReverseComplement(t *testing.T) {
	for _, tc := range []struct{ in, want string }{
		{"", ""},
		{"ACGT", "ACGT"},
		{"GATTACA", "TGTAATC"},
		{"acgN", "Ncgt"},
		{"AXG", "CNT"},
		{"A-C", "G-T"},
	} {
		if got := ReverseComplement(tc.in); got != tc.want {
			t.Errorf("ReverseComplement(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
