package aligner

import "DNA-Pairwise-Alignment/dna_aligner/common"

// Statistics summarizes the columns of an aligned pair.
type Statistics struct {
	Length     int
	Matches    int
	Mismatches int
	Gaps       int
	Identity   float64 // Matches / Length, 0 for an empty alignment
}

// Stats counts matches, mismatches and gap columns in p.
func Stats(p common.AlignedPair) Statistics {
	st := Statistics{Length: p.Len()}
	for k := 0; k < p.Len(); k++ {
		a, b := p.Top[k], p.Bottom[k]
		switch {
		case a == common.GapChar || b == common.GapChar:
			st.Gaps++
		case a == b:
			st.Matches++
		default:
			st.Mismatches++
		}
	}
	if st.Length > 0 {
		st.Identity = float64(st.Matches) / float64(st.Length)
	}
	return st
}

// Score recomputes the score of an aligned pair under s.
// For a traceback result it equals the score of the cell the walk started from.
func Score(p common.AlignedPair, s common.Scheme) int {
	total := 0
	for k := 0; k < p.Len(); k++ {
		a, b := p.Top[k], p.Bottom[k]
		if a == common.GapChar || b == common.GapChar {
			total += s.Gap
			continue
		}
		total += s.Subst(a, b)
	}
	return total
}
