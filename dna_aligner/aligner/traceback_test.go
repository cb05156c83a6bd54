package aligner

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"DNA-Pairwise-Alignment/dna_aligner/common"
)

func stripGaps(s string) string { return strings.ReplaceAll(s, "-", "") }

func TestTracebackGlobal(t *testing.T) {
	for _, tc := range []struct {
		seq1, seq2  string
		top, bottom string
	}{
		{"ACTG", "ACCG", "ACTG", "ACCG"},
		{"GATTACA", "GCATGCU", "GATTACA", "GCATGCU"},
		{"ACGTG", "ACTG", "ACGTG", "AC-TG"},
		{"ACAC", "AC", "ACAC", "--AC"},
		{"TACGT", "ACG", "TACGT", "-ACG-"},
		{"AC", "", "AC", "--"},
		{"", "AC", "--", "AC"},
		{"", "", "", ""},
	} {
		m := GlobalAlign(tc.seq1, tc.seq2, defaultScheme)
		pair, err := TracebackGlobal(m, tc.seq1, tc.seq2, defaultScheme)
		if err != nil {
			t.Fatalf("%q/%q: %v", tc.seq1, tc.seq2, err)
		}
		if pair.Top != tc.top || pair.Bottom != tc.bottom {
			t.Errorf("%q/%q: got %q/%q, want %q/%q", tc.seq1, tc.seq2, pair.Top, pair.Bottom, tc.top, tc.bottom)
		}
		if got := Score(pair, defaultScheme); got != m.Bottom() {
			t.Errorf("%q/%q: path score %d, matrix score %d", tc.seq1, tc.seq2, got, m.Bottom())
		}
	}
}

func TestTracebackLocal(t *testing.T) {
	for _, tc := range []struct {
		seq1, seq2  string
		top, bottom string
	}{
		{"ACTG", "ACCG", "ACTG", "ACCG"},
		{"ACGTG", "ACTG", "ACGTG", "AC-TG"},
		{"GATTACA", "GCATGCU", "AT", "AT"},
		{"ACAC", "AC", "AC", "AC"},
		{"TACGT", "ACG", "ACG", "ACG"},
		{"AAA", "TTT", "", ""},
		{"", "AC", "", ""},
	} {
		m, _ := LocalAlign(tc.seq1, tc.seq2, defaultScheme)
		pair, err := TracebackLocal(m, tc.seq1, tc.seq2, defaultScheme)
		if err != nil {
			t.Fatalf("%q/%q: %v", tc.seq1, tc.seq2, err)
		}
		if pair.Top != tc.top || pair.Bottom != tc.bottom {
			t.Errorf("%q/%q: got %q/%q, want %q/%q", tc.seq1, tc.seq2, pair.Top, pair.Bottom, tc.top, tc.bottom)
		}
	}
}

func TestTracebackRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for range 300 {
		seq1, seq2 := randomDNA(r, r.IntN(15)), randomDNA(r, r.IntN(15))

		g := GlobalAlign(seq1, seq2, defaultScheme)
		gp, err := TracebackGlobal(g, seq1, seq2, defaultScheme)
		if err != nil {
			t.Fatal(err)
		}
		if len(gp.Top) != len(gp.Bottom) {
			t.Fatalf("%q/%q: unequal global lengths %+v", seq1, seq2, gp)
		}
		if stripGaps(gp.Top) != seq1 || stripGaps(gp.Bottom) != seq2 {
			t.Fatalf("%q/%q: global round trip failed %+v", seq1, seq2, gp)
		}
		if Score(gp, defaultScheme) != g.Bottom() {
			t.Fatalf("%q/%q: global path score mismatch", seq1, seq2)
		}

		l, best := LocalAlign(seq1, seq2, defaultScheme)
		lp, err := TracebackLocal(l, seq1, seq2, defaultScheme)
		if err != nil {
			t.Fatal(err)
		}
		if len(lp.Top) != len(lp.Bottom) {
			t.Fatalf("%q/%q: unequal local lengths %+v", seq1, seq2, lp)
		}
		if !strings.Contains(seq1, stripGaps(lp.Top)) || !strings.Contains(seq2, stripGaps(lp.Bottom)) {
			t.Fatalf("%q/%q: local alignment %+v is not made of substrings", seq1, seq2, lp)
		}
		if Score(lp, defaultScheme) != best.Score {
			t.Fatalf("%q/%q: local path score %d, best %d", seq1, seq2, Score(lp, defaultScheme), best.Score)
		}
	}
}

// Traceback locates the maximum itself, so it ignores where the caller thinks it is
// and follows whatever matrix it is given.
func TestTracebackLocalRescans(t *testing.T) {
	m, _ := LocalAlign("TACGT", "ACG", defaultScheme)
	rows := m.ToRows()
	rows[2][1] = 9 // pretend A/A scored higher
	edited, err := MatrixFromRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	pair, err := TracebackLocal(edited, "TACGT", "ACG", defaultScheme)
	if err != nil {
		t.Fatal(err)
	}
	// (2,1) does not equal any predecessor plus a step, so the walk falls through to left.
	if pair.Top != "-" || pair.Bottom != "A" {
		t.Errorf("got %+v", pair)
	}
}

func TestTracebackShapeMismatch(t *testing.T) {
	m := GlobalAlign("ACGT", "AC", defaultScheme)
	if _, err := TracebackGlobal(m, "ACG", "AC", defaultScheme); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("global: got %v, want ErrShapeMismatch", err)
	}
	if _, err := TracebackLocal(m, "ACGT", "ACT", defaultScheme); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("local: got %v, want ErrShapeMismatch", err)
	}
}

func TestTraceSavedMatrix(t *testing.T) {
	a := New(defaultScheme)
	want, err := a.Local("ACGTG", "ACTG")
	if err != nil {
		t.Fatal(err)
	}
	m, err := MatrixFromRows(want.Matrix.ToRows())
	if err != nil {
		t.Fatal(err)
	}
	got, err := a.Trace(common.ModeLocal, m, "ACGTG", "ACTG")
	if err != nil {
		t.Fatal(err)
	}
	if got.Pair != want.Pair || got.Max != want.Max || got.Stats != want.Stats {
		t.Errorf("trace of saved matrix = %+v, want %+v", got, want)
	}
}

func TestStats(t *testing.T) {
	st := Stats(common.AlignedPair{Top: "ACGTG", Bottom: "AC-TA"})
	want := Statistics{Length: 5, Matches: 3, Mismatches: 1, Gaps: 1, Identity: 0.6}
	if st != want {
		t.Errorf("got %+v, want %+v", st, want)
	}
	if st := Stats(common.AlignedPair{}); st.Identity != 0 || st.Length != 0 {
		t.Errorf("empty pair stats = %+v", st)
	}
}
