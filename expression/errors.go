// SPDX-License-Identifier: MIT
// Package expression: sentinel errors (all configuration errors).

package expression

import "errors"

var (
	// ErrInvalidSize indicates a window size below 1.
	ErrInvalidSize = errors.New("expression: window size must be >= 1")

	// ErrInvalidOverlap indicates overlap < 0 or overlap >= size.
	ErrInvalidOverlap = errors.New("expression: overlap must satisfy 0 <= overlap < size")

	// ErrUnknownNormalization indicates a normalization outside {window, total}.
	ErrUnknownNormalization = errors.New("expression: unknown normalization")

	// ErrNilSeries indicates a nil series was passed.
	ErrNilSeries = errors.New("expression: series is nil")
)
