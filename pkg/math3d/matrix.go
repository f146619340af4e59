package math3d

import (
	"fmt"
	"strings"
)

// MaxDim is the largest supported row or column count.
const MaxDim = 4

// Matrix is an immutable grid of at most 4x4 float32 values.
// Storage is a fixed array indexed [row][col]; cells outside the
// matrix's dimensions are always zero and never observable.
type Matrix struct {
	rows, cols int
	m          [MaxDim][MaxDim]float32
}

// NewMatrix builds a matrix from its rows.
// It panics if the grid is empty, ragged, or larger than 4x4.
func NewMatrix(rows ...[]float32) Matrix {
	if len(rows) == 0 || len(rows) > MaxDim {
		panic(fmt.Sprintf("math3d: matrix must have 1 to %d rows, got %d", MaxDim, len(rows)))
	}
	cols := len(rows[0])
	if cols == 0 || cols > MaxDim {
		panic(fmt.Sprintf("math3d: matrix must have 1 to %d columns, got %d", MaxDim, cols))
	}

	mat := Matrix{rows: len(rows), cols: cols}
	for r, row := range rows {
		if len(row) != cols {
			panic(fmt.Sprintf("math3d: ragged matrix: row %d has %d columns, want %d", r, len(row), cols))
		}
		copy(mat.m[r][:], row)
	}
	return mat
}

// Identity returns the 4x4 identity matrix.
func Identity() Matrix {
	return NewMatrix(
		[]float32{1, 0, 0, 0},
		[]float32{0, 1, 0, 0},
		[]float32{0, 0, 1, 0},
		[]float32{0, 0, 0, 1},
	)
}

// Get returns the element at (row, col).
// Indexing outside the matrix is a programming error and panics.
func (m Matrix) Get(row, col int) float32 {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("math3d: index (%d, %d) out of range for %dx%d matrix", row, col, m.rows, m.cols))
	}
	return m.m[row][col]
}

// Dimensions returns the row and column counts.
func (m Matrix) Dimensions() (rows, cols int) {
	return m.rows, m.cols
}

// Equal reports whether a and b have the same dimensions and identical
// cells. Comparison is exact.
//
//nolint:st1016 // a,b naming convention is clearer for comparisons
func (a Matrix) Equal(b Matrix) bool {
	return a.ApproxEqual(b, 0)
}

// ApproxEqual is like Equal but tolerates a per-cell difference below eps.
// An eps of zero means exact comparison.
//
//nolint:st1016 // a,b naming convention is clearer for comparisons
func (a Matrix) ApproxEqual(b Matrix, eps float32) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for r := range a.rows {
		for c := range a.cols {
			if eps == 0 {
				if a.m[r][c] != b.m[r][c] {
					return false
				}
				continue
			}
			if !ApproxEqual(a.m[r][c], b.m[r][c], eps) {
				return false
			}
		}
	}
	return true
}

func (m Matrix) String() string {
	var sb strings.Builder
	for r := range m.rows {
		sb.WriteString("|")
		for c := range m.cols {
			fmt.Fprintf(&sb, " %g", m.m[r][c])
		}
		sb.WriteString(" |\n")
	}
	return sb.String()
}
