// SPDX-License-Identifier: MIT

package expression

import (
	"fmt"
	"strings"
)

// Normalization selects the denominator applied to window activity.
type Normalization int

const (
	// NormWindow divides by the total activity of the same window.
	NormWindow Normalization = iota

	// NormTotal divides by the total activity of the whole series.
	NormTotal
)

// String implements fmt.Stringer.
func (n Normalization) String() string {
	switch n {
	case NormWindow:
		return "window"
	case NormTotal:
		return "total"
	default:
		return fmt.Sprintf("Normalization(%d)", int(n))
	}
}

// ParseNormalization maps "window" and "total" (case-insensitive).
func ParseNormalization(s string) (Normalization, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "window":
		return NormWindow, nil
	case "total":
		return NormTotal, nil
	default:
		return 0, fmt.Errorf("ParseNormalization(%q): %w", s, ErrUnknownNormalization)
	}
}
