package visualize

import (
	"fmt"
	"io"
	"strings"
)

// HotThreshold is the score above which ASCII heatmap cells are highlighted.
const HotThreshold = 5

// ASCIIHeatmap prints the matrix one row per line, highlighting cells above HotThreshold.
func ASCIIHeatmap(w io.Writer, g Grid, color bool) error {
	if _, err := io.WriteString(w, "\nAlignment Score Matrix (Heatmap):\n"); err != nil {
		return err
	}
	cells := make([]string, g.Cols())
	for i := 0; i < g.Rows(); i++ {
		for j := range cells {
			v := g.At(i, j)
			cell := fmt.Sprintf("%2d", v)
			if v > HotThreshold {
				cell = paint(cell, ansiCyan, color)
			}
			cells[j] = cell
		}
		if _, err := io.WriteString(w, strings.Join(cells, " ")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Table prints the matrix with seq1 down the side and seq2 across the top.
func Table(w io.Writer, g Grid, seq1, seq2 string) error {
	width := 2
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			width = max(width, len(fmt.Sprint(g.At(i, j))))
		}
	}
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", width+2))
	for j := 0; j < len(seq2); j++ {
		fmt.Fprintf(&sb, " %*c", width, seq2[j])
	}
	sb.WriteByte('\n')
	for i := 0; i < g.Rows(); i++ {
		label := byte(' ')
		if i > 0 {
			label = seq1[i-1]
		}
		sb.WriteByte(label)
		for j := 0; j < g.Cols(); j++ {
			fmt.Fprintf(&sb, " %*d", width, g.At(i, j))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
