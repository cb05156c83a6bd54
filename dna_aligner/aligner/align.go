package aligner

import (
	"fmt"

	"DNA-Pairwise-Alignment/dna_aligner/common"
)

// LocalAlign fills a Smith-Waterman matrix for seq1 against seq2.
// Cells are floored at 0 and the boundary row and column stay 0.
// The returned location is the first cell, in row-major order, holding the maximum score;
// it is (0,0) with score 0 when no cell scores above 0.
func LocalAlign(seq1, seq2 string, s common.Scheme) (*Matrix, common.MaxScoreLocation) {
	m := newMatrix(len(seq1)+1, len(seq2)+1)
	var best common.MaxScoreLocation

	for i := 1; i <= len(seq1); i++ {
		for j := 1; j <= len(seq2); j++ {
			score := max(0,
				m.At(i-1, j-1)+s.Subst(seq1[i-1], seq2[j-1]),
				m.At(i-1, j)+s.Gap,
				m.At(i, j-1)+s.Gap,
			)
			m.set(i, j, score)
			// Strictly greater: the first cell reaching a maximum keeps it.
			if score > best.Score {
				best = common.MaxScoreLocation{Score: score, Position: common.Position{Row: i, Col: j}}
			}
		}
	}
	return m, best
}

// GlobalAlign fills a Needleman-Wunsch matrix for seq1 against seq2.
// Boundary cells hold cumulative gap penalties; the bottom-right cell is the optimal score.
func GlobalAlign(seq1, seq2 string, s common.Scheme) *Matrix {
	m := newMatrix(len(seq1)+1, len(seq2)+1)
	for i := 0; i <= len(seq1); i++ {
		m.set(i, 0, i*s.Gap)
	}
	for j := 0; j <= len(seq2); j++ {
		m.set(0, j, j*s.Gap)
	}

	for i := 1; i <= len(seq1); i++ {
		for j := 1; j <= len(seq2); j++ {
			m.set(i, j, max(
				m.At(i-1, j-1)+s.Subst(seq1[i-1], seq2[j-1]),
				m.At(i-1, j)+s.Gap,
				m.At(i, j-1)+s.Gap,
			))
		}
	}
	return m
}

// Result is a filled matrix together with the alignment reconstructed from it.
type Result struct {
	Mode   string
	Matrix *Matrix
	// Max is only meaningful for local alignments.
	Max   common.MaxScoreLocation
	Score int
	Pair  common.AlignedPair
	Stats Statistics
}

// Aligner runs alignments under a fixed scoring scheme.
type Aligner struct {
	Scheme common.Scheme
}

// New returns an Aligner for the given scheme.
func New(s common.Scheme) Aligner {
	return Aligner{Scheme: s}
}

// Local runs a local alignment and its traceback.
func (a Aligner) Local(seq1, seq2 string) (Result, error) {
	m, best := LocalAlign(seq1, seq2, a.Scheme)
	pair, err := TracebackLocal(m, seq1, seq2, a.Scheme)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Mode:   common.ModeLocal,
		Matrix: m,
		Max:    best,
		Score:  best.Score,
		Pair:   pair,
		Stats:  Stats(pair),
	}, nil
}

// Global runs a global alignment and its traceback.
func (a Aligner) Global(seq1, seq2 string) (Result, error) {
	m := GlobalAlign(seq1, seq2, a.Scheme)
	pair, err := TracebackGlobal(m, seq1, seq2, a.Scheme)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Mode:   common.ModeGlobal,
		Matrix: m,
		Score:  m.Bottom(),
		Pair:   pair,
		Stats:  Stats(pair),
	}, nil
}

// Trace reconstructs the alignment of an already filled matrix, for example one
// read back from disk. For local mode the maximum is located by scanning m.
func (a Aligner) Trace(mode string, m *Matrix, seq1, seq2 string) (Result, error) {
	res := Result{Mode: mode, Matrix: m}
	var err error
	switch mode {
	case common.ModeLocal:
		res.Max = MaxCell(m)
		res.Score = res.Max.Score
		res.Pair, err = TracebackLocal(m, seq1, seq2, a.Scheme)
	case common.ModeGlobal:
		res.Pair, err = TracebackGlobal(m, seq1, seq2, a.Scheme)
		res.Score = m.Bottom()
	default:
		return Result{}, fmt.Errorf("unknown alignment mode %q", mode)
	}
	if err != nil {
		return Result{}, err
	}
	res.Stats = Stats(res.Pair)
	return res, nil
}

// Align dispatches on mode, one of common.ModeLocal or common.ModeGlobal.
func (a Aligner) Align(mode, seq1, seq2 string) (Result, error) {
	switch mode {
	case common.ModeLocal:
		return a.Local(seq1, seq2)
	case common.ModeGlobal:
		return a.Global(seq1, seq2)
	default:
		return Result{}, fmt.Errorf("unknown alignment mode %q", mode)
	}
}
