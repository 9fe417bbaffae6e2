// SPDX-License-Identifier: MIT

// Package expression aggregates a binary N × T time series into a windowed,
// normalized activity matrix, the artifact handed to control analysis.
//
// Windowing:
//
//	step    = size − overlap          (0 <= overlap < size)
//	windows = floor(T / step)         trailing remainder is dropped
//	window w covers ticks [w·step, min(w·step + size, T))
//
// Normalization:
//
//   - NormWindow: each node's count is divided by the window's total count.
//   - NormTotal: every count is divided by the ON count of the whole series.
//
// A zero denominator yields zeros rather than NaN, so the result is always a
// finite matrix.
package expression
