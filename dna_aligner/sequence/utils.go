package sequence

import (
	"strings"

	"DNA-Pairwise-Alignment/dna_aligner/common"
)

var complement = [256]byte{
	'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C', 'U': 'A', 'N': 'N',
	'a': 't', 't': 'a', 'c': 'g', 'g': 'c', 'u': 'a', 'n': 'n',
	GapByte: GapByte,
}

// GapByte is the gap marker as a byte.
const GapByte = byte(common.GapChar)

// ReverseComplement returns the reverse complement of a DNA sequence.
// Case is preserved; unknown symbols become N.
func ReverseComplement(seq string) string {
	n := len(seq)
	out := make([]byte, n)
	for k := 0; k < n; k++ {
		c := complement[seq[n-1-k]]
		if c == 0 {
			c = 'N' // Default for unknown bases
		}
		out[k] = c
	}
	return string(out)
}

// CalculateGCContent calculates the GC content of a DNA sequence.
func CalculateGCContent(seq string) float64 {
	if len(seq) == 0 {
		return 0.0
	}
	gcCount := 0
	for _, base := range seq {
		if base == 'G' || base == 'C' || base == 'g' || base == 'c' { // Case-insensitive
			gcCount++
		}
	}
	return float64(gcCount) / float64(len(seq))
}

// StripGaps removes gap markers from an aligned string.
func StripGaps(aligned string) string {
	return strings.ReplaceAll(aligned, string(common.GapChar), "")
}

// NonNucleotides returns the distinct symbols of seq outside ACGTUN, in order of appearance.
// Lower case bases are reported as they are: the aligner compares symbols exactly.
func NonNucleotides(seq string) []byte {
	var seen [256]bool
	var out []byte
	for k := 0; k < len(seq); k++ {
		c := seq[k]
		switch c {
		case 'A', 'C', 'G', 'T', 'U', 'N':
			continue
		}
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
