// SPDX-License-Identifier: MIT
// Package dynamics - state identifiers and attractor search.
//
// State IDs pack node i into bit i (little-endian), so the all-OFF state is 0
// and N nodes span [0, 2^N).

package dynamics

import "fmt"

// maxPackedNodes is the widest state that fits a uint64 ID.
const maxPackedNodes = 64

// StateID packs a binary state vector into an integer, node i → bit i.
//
// Errors: ErrStateSpaceTooLarge when len(state) > 64; ErrBadInitialState for non-binary values.
func StateID(state []uint8) (uint64, error) {
	if len(state) > maxPackedNodes {
		return 0, fmt.Errorf("StateID: %d nodes: %w", len(state), ErrStateSpaceTooLarge)
	}
	var id uint64
	for i, v := range state {
		if v > 1 {
			return 0, fmt.Errorf("StateID: state[%d]=%d: %w", i, v, ErrBadInitialState)
		}
		id |= uint64(v) << uint(i)
	}

	return id, nil
}

// StateFromID unpacks id into an n-node state vector.
//
// Errors: ErrStateSpaceTooLarge when n > 64 or n < 0.
func StateFromID(id uint64, n int) ([]uint8, error) {
	if n < 0 || n > maxPackedNodes {
		return nil, fmt.Errorf("StateFromID: %d nodes: %w", n, ErrStateSpaceTooLarge)
	}
	out := make([]uint8, n)
	for i := range out {
		out[i] = uint8(id >> uint(i) & 1)
	}

	return out, nil
}

// Attractor describes where a synchronous trajectory settles.
type Attractor struct {
	// Transient is the number of ticks before the cycle is entered.
	Transient int
	// Period is the cycle length; 1 means a fixed point.
	Period int
	// States lists the cycle's states in visiting order, starting at the entry state.
	States [][]uint8
}

// FixedPoint reports whether the attractor is a single state.
func (a *Attractor) FixedPoint() bool { return a.Period == 1 }

// FindAttractor follows the synchronous trajectory from initial until a state
// repeats or maxSteps ticks have elapsed. Only WithTiePolicy affects the search;
// asynchronous mode is rejected because its trajectories are not deterministic
// functions of the state.
//
// Errors: ErrNilEngine, ErrBadInitialState, ErrAsyncAttractor, ErrNoAttractor,
// plus option validation errors.
//
// Complexity: O(maxSteps · (N + E)) time, O(maxSteps · N) space.
func (e *Engine) FindAttractor(initial []uint8, maxSteps int, opts ...RunOption) (*Attractor, error) {
	if e == nil {
		return nil, ErrNilEngine
	}
	cfg := newRunConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("FindAttractor: %w", err)
	}
	if cfg.mode != Synchronous {
		return nil, fmt.Errorf("FindAttractor: %w", ErrAsyncAttractor)
	}
	if err := e.checkState(initial); err != nil {
		return nil, fmt.Errorf("FindAttractor: %w", err)
	}

	cur := append([]uint8(nil), initial...)
	next := make([]uint8, e.n)
	seen := make(map[string]int)
	var visited [][]uint8
	for t := 0; t <= maxSteps; t++ {
		if first, ok := seen[string(cur)]; ok {
			return &Attractor{
				Transient: first,
				Period:    t - first,
				States:    visited[first:t],
			}, nil
		}
		seen[string(cur)] = t
		visited = append(visited, append([]uint8(nil), cur...))
		e.stepSync(cur, next, cfg.tie)
		cur, next = next, cur
	}

	return nil, fmt.Errorf("FindAttractor: %d steps: %w", maxSteps, ErrNoAttractor)
}
