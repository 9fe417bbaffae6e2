// SPDX-License-Identifier: MIT
// Package dynamics - stitching independent runs into one long series.

package dynamics

import (
	"fmt"
	"math/bits"
)

// Stitch runs repeat independent simulations of steps time points each
// (steps-1 ticks plus the initial state) and concatenates them into an
// N × (repeat·steps) series in run order.
//
// Every run starts from a freshly sampled initial state that differs from all
// earlier ones in this call (rejection sampling). The repeat bound is checked up
// front, so the sampling loop always terminates.
//
// One RNG (WithSeed/WithRand) drives both the initial states and asynchronous
// scheduling. WithInitialState is rejected: Stitch samples its own states.
//
// Errors: ErrNilEngine, ErrBadRepeat, ErrBadSteps, ErrUnsatisfiableDistinctSampling,
// ErrBadInitialState, plus option validation errors.
//
// Complexity: O(repeat · steps · (N + E)) time, O(N · repeat · steps) space.
func Stitch(e *Engine, repeat, steps int, opts ...RunOption) (*Series, error) {
	if e == nil {
		return nil, ErrNilEngine
	}
	if repeat < 1 {
		return nil, fmt.Errorf("Stitch(repeat=%d): %w", repeat, ErrBadRepeat)
	}
	if steps < 1 {
		return nil, fmt.Errorf("Stitch(steps=%d): %w", steps, ErrBadSteps)
	}
	if !distinctStatesAvailable(e.n, repeat) {
		return nil, fmt.Errorf("Stitch: repeat=%d with %d nodes: %w", repeat, e.n, ErrUnsatisfiableDistinctSampling)
	}
	cfg := newRunConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("Stitch: %w", err)
	}
	if cfg.initial != nil {
		return nil, fmt.Errorf("Stitch: initial states are sampled per run: %w", ErrBadInitialState)
	}
	rng := cfg.source()

	out := newSeries(e.n, repeat*steps)
	known := make(map[string]struct{}, repeat)
	state := make([]uint8, e.n)
	segment := e.n * steps
	for r := 0; r < repeat; r++ {
		sampleState(state, rng)
		for {
			if _, seen := known[string(state)]; !seen {
				break
			}
			sampleState(state, rng)
		}
		known[string(state)] = struct{}{}

		run := e.run(append([]uint8(nil), state...), steps-1, cfg, rng)
		copy(out.data[r*segment:(r+1)*segment], run.data)
	}

	return out, nil
}

// distinctStatesAvailable reports whether repeat <= 2^n − 1.
func distinctStatesAvailable(n, repeat int) bool {
	if n >= bits.UintSize-1 {
		return true
	}

	return repeat <= (1<<uint(n))-1
}

// StitchedInitialStates returns the initial state of every run in a stitched
// series produced with the given per-run length.
func StitchedInitialStates(s *Series, steps int) [][]uint8 {
	if s == nil || steps < 1 {
		return nil
	}
	runs := s.Len() / steps
	out := make([][]uint8, runs)
	for r := range out {
		out[r] = s.State(r * steps)
	}

	return out
}
