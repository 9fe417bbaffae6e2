// SPDX-License-Identifier: MIT
// Package dynamics - RNG utilities for state sampling and asynchronous scheduling.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each Run/Stitch call creates or
//     receives its own *rand.Rand and never shares it.
package dynamics

import (
	"math/rand"
	"time"
)

// rngFromSeed returns a deterministic *rand.Rand for the given seed.
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// rngFromClock returns a *rand.Rand seeded from the wall clock, used when the
// caller supplies neither a seed nor a source.
func rngFromClock() *rand.Rand {
	return rngFromSeed(time.Now().UnixNano())
}

// sampleState fills dst with independent fair coin flips.
//
// Complexity: O(n).
func sampleState(dst []uint8, rng *rand.Rand) {
	for i := range dst {
		dst[i] = uint8(rng.Intn(2))
	}
}

// shuffleInPlace performs a Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(a []int, rng *rand.Rand) {
	var j int
	for i := len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// identity returns [0, 1, ..., n-1].
func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}
