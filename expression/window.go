// SPDX-License-Identifier: MIT
// Package expression - window counting and normalization.

package expression

import (
	"fmt"

	"github.com/katalvlaran/boolnet/matrix"
)

// Binary is the read-only view of an N × T binary series.
// *dynamics.Series satisfies it.
type Binary interface {
	Nodes() int
	Len() int
	At(node, t int) uint8
}

// Windows returns the number of windows a series of length t yields.
// It assumes size and overlap were already validated.
func Windows(t, size, overlap int) int {
	return t / (size - overlap)
}

// Activity counts ON occurrences per node and window, returning an
// N × Windows(T, size, overlap) matrix of raw counts.
//
// Errors: ErrNilSeries, ErrInvalidSize, ErrInvalidOverlap.
//
// Complexity: O(N · windows · size).
func Activity(s Binary, size, overlap int) (*matrix.Dense, error) {
	counts, n, w, err := count(s, size, overlap)
	if err != nil {
		return nil, fmt.Errorf("Activity: %w", err)
	}

	return matrix.NewDenseFrom(n, w, counts)
}

// ToExpression computes the windowed activity of s and normalizes it.
//
// Implementation:
//   - Stage 1: validate size, overlap and norm.
//   - Stage 2: count ON ticks per node and window into a row-major buffer.
//   - Stage 3: divide by per-window totals (NormWindow) or the series total (NormTotal).
//
// Errors: ErrNilSeries, ErrInvalidSize, ErrInvalidOverlap, ErrUnknownNormalization.
func ToExpression(s Binary, size, overlap int, norm Normalization) (*matrix.Dense, error) {
	if norm != NormWindow && norm != NormTotal {
		return nil, fmt.Errorf("ToExpression(%v): %w", norm, ErrUnknownNormalization)
	}
	counts, n, w, err := count(s, size, overlap)
	if err != nil {
		return nil, fmt.Errorf("ToExpression: %w", err)
	}

	switch norm {
	case NormWindow:
		raw, err := matrix.NewDenseFrom(n, w, counts)
		if err != nil {
			return nil, fmt.Errorf("ToExpression: %w", err)
		}
		totals := raw.ColSums()
		for i := 0; i < n; i++ {
			for j, total := range totals {
				counts[i*w+j] = safeDiv(counts[i*w+j], total)
			}
		}
	case NormTotal:
		total := float64(onCount(s))
		for k := range counts {
			counts[k] = safeDiv(counts[k], total)
		}
	}

	return matrix.NewDenseFrom(n, w, counts)
}

// count validates the window parameters and fills the raw N × W count buffer.
func count(s Binary, size, overlap int) ([]float64, int, int, error) {
	if s == nil {
		return nil, 0, 0, ErrNilSeries
	}
	if size < 1 {
		return nil, 0, 0, fmt.Errorf("size=%d: %w", size, ErrInvalidSize)
	}
	if overlap < 0 || overlap >= size {
		return nil, 0, 0, fmt.Errorf("overlap=%d size=%d: %w", overlap, size, ErrInvalidOverlap)
	}

	n, t := s.Nodes(), s.Len()
	step := size - overlap
	w := Windows(t, size, overlap)
	counts := make([]float64, n*w)
	for j := 0; j < w; j++ {
		lo := j * step
		hi := min(lo+size, t)
		for i := 0; i < n; i++ {
			c := 0
			for tick := lo; tick < hi; tick++ {
				c += int(s.At(i, tick))
			}
			counts[i*w+j] = float64(c)
		}
	}

	return counts, n, w, nil
}

// onCount sums every entry of s.
func onCount(s Binary) int {
	total := 0
	for i := 0; i < s.Nodes(); i++ {
		for t := 0; t < s.Len(); t++ {
			total += int(s.At(i, t))
		}
	}

	return total
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}

	return num / den
}
