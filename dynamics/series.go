// SPDX-License-Identifier: MIT
// Package dynamics - binary time series storage.
//
// A Series is an N × T matrix of 0/1 values stored frame-major: the state at
// tick t occupies data[t*N : (t+1)*N]. The engine writes whole frames, so this
// layout keeps each tick's write contiguous.

package dynamics

import (
	"fmt"
	"strings"
)

// Series is an N × T binary activity matrix: row = node, column = tick.
// Column 0 is the initial state.
type Series struct {
	n, t int
	data []uint8
}

// newSeries allocates a zeroed n × t series.
func newSeries(n, t int) *Series {
	return &Series{n: n, t: t, data: make([]uint8, n*t)}
}

// NewSeriesFromRows builds a Series from per-node rows of equal length.
//
// Errors: ErrBadSeries for ragged rows or values outside {0,1}.
func NewSeriesFromRows(rows [][]uint8) (*Series, error) {
	n := len(rows)
	t := 0
	if n > 0 {
		t = len(rows[0])
	}
	s := newSeries(n, t)
	for i, row := range rows {
		if len(row) != t {
			return nil, fmt.Errorf("NewSeriesFromRows: row %d has %d ticks, want %d: %w", i, len(row), t, ErrBadSeries)
		}
		for j, v := range row {
			if v > 1 {
				return nil, fmt.Errorf("NewSeriesFromRows: (%d,%d)=%d: %w", i, j, v, ErrBadSeries)
			}
			s.data[j*n+i] = v
		}
	}

	return s, nil
}

// Nodes returns N.
func (s *Series) Nodes() int { return s.n }

// Len returns T, the number of time points.
func (s *Series) Len() int { return s.t }

// At returns the state of node at tick t. Panics when out of range, like a slice index.
func (s *Series) At(node, t int) uint8 {
	if node < 0 || node >= s.n || t < 0 || t >= s.t {
		panic(fmt.Sprintf("dynamics: Series.At(%d,%d) out of range %dx%d", node, t, s.n, s.t))
	}

	return s.data[t*s.n+node]
}

// State returns a copy of the state vector at tick t.
func (s *Series) State(t int) []uint8 {
	out := make([]uint8, s.n)
	copy(out, s.frame(t))

	return out
}

// frame returns the live state slice at tick t.
func (s *Series) frame(t int) []uint8 {
	return s.data[t*s.n : (t+1)*s.n]
}

// Row returns a copy of one node's activity over time.
func (s *Series) Row(node int) []uint8 {
	out := make([]uint8, s.t)
	for t := range out {
		out[t] = s.data[t*s.n+node]
	}

	return out
}

// Rows returns the whole series as per-node rows (N slices of length T).
func (s *Series) Rows() [][]uint8 {
	out := make([][]uint8, s.n)
	for i := range out {
		out[i] = s.Row(i)
	}

	return out
}

// OnCount returns the number of ON entries over the whole series.
func (s *Series) OnCount() int {
	total := 0
	for _, v := range s.data {
		total += int(v)
	}

	return total
}

// Equal reports whether two series have the same shape and entries.
func (s *Series) Equal(o *Series) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.n != o.n || s.t != o.t {
		return false
	}
	for i := range s.data {
		if s.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String renders one line per node of 0/1 characters.
func (s *Series) String() string {
	var b strings.Builder
	b.Grow(s.n * (s.t + 1))
	for i := 0; i < s.n; i++ {
		for t := 0; t < s.t; t++ {
			b.WriteByte('0' + s.data[t*s.n+i])
		}
		b.WriteByte('\n')
	}

	return b.String()
}
