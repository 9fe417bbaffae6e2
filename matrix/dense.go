// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Keep one contiguous buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism: fixed loop orders, no map iteration.

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRow = "Row"
)

// denseErrorf wraps a sentinel with method context and coordinates,
// e.g. "Dense.Set(2,3): matrix: index out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64.
type Dense struct {
	r, c int       // row and column counts (>= 0)
	data []float64 // len == r*c, offset = i*c + j
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer (possibly empty).
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom creates an r×c matrix from a row-major buffer, which is copied.
//
// Errors: ErrInvalidDimensions, ErrDimensionMismatch (len(data) != rows*cols),
// ErrNaNInf (any non-finite entry).
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseFrom(%d,%d): len(data)=%d: %w", rows, cols, len(data), ErrDimensionMismatch)
	}
	for k, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, denseErrorf("NewDenseFrom", k/max(cols, 1), k%max(cols, 1), ErrNaNInf)
		}
	}
	copy(m.data, data)

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf maps (row, col) to the flat offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
//
// Errors: ErrNilMatrix, ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	k, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[k], nil
}

// Set assigns v at (row, col).
//
// Errors: ErrNilMatrix, ErrOutOfRange, ErrNaNInf.
func (m *Dense) Set(row, col int, v float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	k, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[k] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// ColSums returns the per-column totals.
func (m *Dense) ColSums() []float64 {
	out := make([]float64, m.c)
	for i := 0; i < m.r; i++ {
		for j, v := range m.data[i*m.c : (i+1)*m.c] {
			out[j] += v
		}
	}

	return out
}

// Transpose returns a new c×r matrix with rows and columns swapped.
//
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Transpose() *Dense {
	t := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			t.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return t
}

// String renders one bracketed row per line with %g formatting.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', -1, 64))
		}
		b.WriteString("]\n")
	}

	return b.String()
}
