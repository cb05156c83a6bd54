package aligner

import (
	"slices"

	"DNA-Pairwise-Alignment/dna_aligner/common"
)

// pathBuilder collects alignment columns while walking the matrix backwards.
type pathBuilder struct {
	top, bottom []byte
}

func newPathBuilder(capacity int) *pathBuilder {
	return &pathBuilder{
		top:    make([]byte, 0, capacity),
		bottom: make([]byte, 0, capacity),
	}
}

func (p *pathBuilder) emit(a, b byte) {
	p.top = append(p.top, a)
	p.bottom = append(p.bottom, b)
}

// pair reverses the collected columns into forward order.
func (p *pathBuilder) pair() common.AlignedPair {
	slices.Reverse(p.top)
	slices.Reverse(p.bottom)
	return common.AlignedPair{Top: string(p.top), Bottom: string(p.bottom)}
}

// MaxCell scans m in row-major order and returns the first cell holding the maximum value.
func MaxCell(m *Matrix) common.MaxScoreLocation {
	best := common.MaxScoreLocation{Score: m.At(0, 0)}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v := m.At(i, j); v > best.Score {
				best = common.MaxScoreLocation{Score: v, Position: common.Position{Row: i, Col: j}}
			}
		}
	}
	return best
}

// TracebackLocal reconstructs one optimal local alignment from a Smith-Waterman matrix.
// The start cell is located by a fresh scan of m rather than taken from the fill step,
// and the walk stops at the first boundary or zero cell.
// Moves are tried diagonal first, then up, then left.
func TracebackLocal(m *Matrix, seq1, seq2 string, s common.Scheme) (common.AlignedPair, error) {
	if err := m.checkShape(seq1, seq2); err != nil {
		return common.AlignedPair{}, err
	}
	start := MaxCell(m)
	i, j := start.Position.Row, start.Position.Col
	path := newPathBuilder(i + j)

	for i > 0 && j > 0 && m.At(i, j) > 0 {
		cur := m.At(i, j)
		switch {
		case cur == m.At(i-1, j-1)+s.Subst(seq1[i-1], seq2[j-1]):
			path.emit(seq1[i-1], seq2[j-1])
			i--
			j--
		case cur == m.At(i-1, j)+s.Gap:
			path.emit(seq1[i-1], common.GapChar)
			i--
		default:
			path.emit(common.GapChar, seq2[j-1])
			j--
		}
	}
	return path.pair(), nil
}

// TracebackGlobal reconstructs one optimal global alignment from a Needleman-Wunsch matrix.
// The walk starts at the bottom-right cell and ends at (0,0), so both sequences are
// reproduced in full once gaps are removed.
// Moves are tried diagonal first, then up, then left.
func TracebackGlobal(m *Matrix, seq1, seq2 string, s common.Scheme) (common.AlignedPair, error) {
	if err := m.checkShape(seq1, seq2); err != nil {
		return common.AlignedPair{}, err
	}
	i, j := len(seq1), len(seq2)
	path := newPathBuilder(i + j)

	for i > 0 || j > 0 {
		cur := m.At(i, j)
		switch {
		case i > 0 && j > 0 && cur == m.At(i-1, j-1)+s.Subst(seq1[i-1], seq2[j-1]):
			path.emit(seq1[i-1], seq2[j-1])
			i--
			j--
		case i > 0 && (j == 0 || cur == m.At(i-1, j)+s.Gap):
			path.emit(seq1[i-1], common.GapChar)
			i--
		default:
			path.emit(common.GapChar, seq2[j-1])
			j--
		}
	}
	return path.pair(), nil
}
