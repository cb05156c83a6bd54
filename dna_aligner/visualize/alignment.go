package visualize

import (
	"fmt"
	"io"
	"strings"

	"DNA-Pairwise-Alignment/dna_aligner/common"
)

// ColoredAlignment prints both aligned strings followed by a marker line:
// matches in green, gaps in yellow (showing the non-gap symbol) and
// mismatches in red (showing the top symbol).
func ColoredAlignment(w io.Writer, p common.AlignedPair, color bool) error {
	var marks strings.Builder
	for k := 0; k < p.Len(); k++ {
		a, b := p.Top[k], p.Bottom[k]
		switch {
		case a == b:
			marks.WriteString(paint(string(a), ansiGreen, color))
		case a == common.GapChar:
			marks.WriteString(paint(string(b), ansiYellow, color))
		case b == common.GapChar:
			marks.WriteString(paint(string(a), ansiYellow, color))
		default:
			marks.WriteString(paint(string(a), ansiRed, color))
		}
	}
	_, err := fmt.Fprintf(w, "\nAlignment Result:\nSeq1: %s\nSeq2: %s\n      %s\n", p.Top, p.Bottom, marks.String())
	return err
}
