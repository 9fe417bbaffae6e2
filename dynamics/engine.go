// SPDX-License-Identifier: MIT
// Package dynamics - the tick kernel.
//
// Hot path notes:
//   - update() is the only per-node work: a linear scan of Adj/Func over
//     [Ptr[i], Ptr[i+1]) with integer accumulation.
//   - Synchronous mode double-buffers (cur/next) and swaps; no per-tick allocation.
//   - Asynchronous mode updates cur in place and reshuffles one permutation buffer.

package dynamics

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/boolnet/incidence"
)

// Engine simulates Boolean dynamics over one immutable incidence structure.
type Engine struct {
	n   int
	ptr []int32
	adj []int32
	fn  []int32
}

// NewEngine validates the incidence arrays once and copies them, so later
// changes by the caller cannot reach the engine.
//
// Errors: incidence.ErrMalformedIncidence.
func NewEngine(ptr, adj, fn []int32) (*Engine, error) {
	if len(ptr) == 0 {
		return nil, fmt.Errorf("NewEngine: empty ptr: %w", incidence.ErrMalformedIncidence)
	}
	n := len(ptr) - 1
	if err := incidence.ValidateArrays(ptr, adj, fn, n); err != nil {
		return nil, fmt.Errorf("NewEngine: %w", err)
	}

	return &Engine{
		n:   n,
		ptr: append([]int32(nil), ptr...),
		adj: append([]int32(nil), adj...),
		fn:  append([]int32(nil), fn...),
	}, nil
}

// FromIncidence builds an Engine from an encoded graph.
func FromIncidence(inc *incidence.Incidence) (*Engine, error) {
	if inc == nil {
		return nil, fmt.Errorf("FromIncidence: nil incidence: %w", incidence.ErrMalformedIncidence)
	}

	return NewEngine(inc.Ptr, inc.Adj, inc.Func)
}

// Nodes returns N.
func (e *Engine) Nodes() int { return e.n }

// Run simulates steps ticks and returns an N × (steps+1) series whose column 0
// is the initial state (given via WithInitialState, else sampled).
//
// Errors: ErrNilEngine, ErrNegativeSteps, ErrBadInitialState, ErrUnknownMode,
// ErrUnknownTiePolicy, ErrUnknownGranularity.
//
// Complexity: O(steps · (N + E)) time, O(N · steps) space.
func (e *Engine) Run(steps int, opts ...RunOption) (*Series, error) {
	if e == nil {
		return nil, ErrNilEngine
	}
	if steps < 0 {
		return nil, fmt.Errorf("Run(%d): %w", steps, ErrNegativeSteps)
	}
	cfg := newRunConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	rng := cfg.source()

	state := make([]uint8, e.n)
	if cfg.initial != nil {
		if err := e.checkState(cfg.initial); err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
		copy(state, cfg.initial)
	} else {
		sampleState(state, rng)
	}

	return e.run(state, steps, cfg, rng), nil
}

// checkState verifies length N and binary values.
func (e *Engine) checkState(state []uint8) error {
	if len(state) != e.n {
		return fmt.Errorf("len=%d want %d: %w", len(state), e.n, ErrBadInitialState)
	}
	for i, v := range state {
		if v > 1 {
			return fmt.Errorf("state[%d]=%d: %w", i, v, ErrBadInitialState)
		}
	}

	return nil
}

// run is the validated kernel. state is owned by run and is overwritten.
func (e *Engine) run(state []uint8, steps int, cfg runConfig, rng *rand.Rand) *Series {
	s := newSeries(e.n, steps+1)
	copy(s.frame(0), state)
	if steps == 0 || e.n == 0 {
		return s
	}

	cur := state
	switch cfg.mode {
	case Asynchronous:
		var order []int
		if cfg.gran == SweepTick {
			order = identity(e.n)
		}
		for t := 1; t <= steps; t++ {
			if cfg.gran == NodeTick {
				i := rng.Intn(e.n)
				cur[i] = e.update(i, cur, cfg.tie)
			} else {
				shuffleInPlace(order, rng)
				for _, i := range order {
					cur[i] = e.update(i, cur, cfg.tie)
				}
			}
			copy(s.frame(t), cur)
		}
	default:
		next := make([]uint8, e.n)
		for t := 1; t <= steps; t++ {
			e.stepSync(cur, next, cfg.tie)
			cur, next = next, cur
			copy(s.frame(t), cur)
		}
	}

	return s
}

// stepSync computes next from the snapshot cur.
func (e *Engine) stepSync(cur, next []uint8, tie TiePolicy) {
	for i := 0; i < e.n; i++ {
		next[i] = e.update(i, cur, tie)
	}
}

// update returns node i's next value given state s.
// Nodes without inputs always keep s[i].
func (e *Engine) update(i int, s []uint8, tie TiePolicy) uint8 {
	lo, hi := e.ptr[i], e.ptr[i+1]
	if lo == hi {
		return s[i]
	}
	var signal int64
	for k := lo; k < hi; k++ {
		signal += int64(e.fn[k]) * int64(s[e.adj[k]])
	}
	switch {
	case signal > 0:
		return 1
	case signal < 0:
		return 0
	}
	switch tie {
	case TieOn:
		return 1
	case TieOff:
		return 0
	default:
		return s[i]
	}
}
