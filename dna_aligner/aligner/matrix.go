package aligner

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned when a matrix does not match the sequences it is used with.
var ErrShapeMismatch = errors.New("matrix shape does not match sequences")

// Matrix is a dense row-major score matrix of (len(seq1)+1) x (len(seq2)+1) cells.
// Row 0 and column 0 are boundary cells. It is read-only once filled.
type Matrix struct {
	rows, cols int
	cells      []int
}

func newMatrix(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, cells: make([]int, rows*cols)}
}

// MatrixFromRows builds a matrix from serialized rows, e.g. a matrix read back from disk.
// All rows must have the same, non-zero length.
func MatrixFromRows(rows [][]int) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrShapeMismatch)
	}
	m := newMatrix(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != m.cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShapeMismatch, i, len(row), m.cols)
		}
		copy(m.cells[i*m.cols:], row)
	}
	return m, nil
}

// Rows returns the number of rows (len(seq1)+1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns (len(seq2)+1).
func (m *Matrix) Cols() int { return m.cols }

// At returns the score of cell (i, j).
func (m *Matrix) At(i, j int) int {
	return m.cells[i*m.cols+j]
}

func (m *Matrix) set(i, j, v int) {
	m.cells[i*m.cols+j] = v
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []int {
	out := make([]int, m.cols)
	copy(out, m.cells[i*m.cols:(i+1)*m.cols])
	return out
}

// ToRows returns a copy of the matrix as a slice of rows, for serialization and display.
func (m *Matrix) ToRows() [][]int {
	out := make([][]int, m.rows)
	for i := range out {
		out[i] = m.Row(i)
	}
	return out
}

// Bottom returns the bottom-right cell, the optimal score of a global alignment.
func (m *Matrix) Bottom() int {
	return m.cells[len(m.cells)-1]
}

// Equal reports whether two matrices have the same shape and cells.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for k, v := range m.cells {
		if o.cells[k] != v {
			return false
		}
	}
	return true
}

// Range returns the minimum and maximum cell values.
func (m *Matrix) Range() (lo, hi int) {
	lo, hi = m.cells[0], m.cells[0]
	for _, v := range m.cells[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

func (m *Matrix) checkShape(seq1, seq2 string) error {
	if m.rows != len(seq1)+1 || m.cols != len(seq2)+1 {
		return fmt.Errorf("%w: matrix is %dx%d, sequences need %dx%d",
			ErrShapeMismatch, m.rows, m.cols, len(seq1)+1, len(seq2)+1)
	}
	return nil
}
