// SPDX-License-Identifier: MIT
// Package dynamics: functional options shared by Run, Stitch and FindAttractor.
//
// Defaults: Synchronous, TieHold, SweepTick, random initial state, clock seed.
// Options apply in order (last wins). WithRand panics on nil.

package dynamics

import (
	"fmt"
	"math/rand"
)

// RunOption customizes a single simulation call.
type RunOption func(*runConfig)

type runConfig struct {
	mode    Mode
	tie     TiePolicy
	gran    AsyncGranularity
	initial []uint8
	seed    *int64
	rng     *rand.Rand
}

func newRunConfig(opts ...RunOption) runConfig {
	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// validate checks the enumerated knobs.
func (c runConfig) validate() error {
	if c.mode != Synchronous && c.mode != Asynchronous {
		return fmt.Errorf("%v: %w", c.mode, ErrUnknownMode)
	}
	if c.tie < TieHold || c.tie > TieOff {
		return fmt.Errorf("%v: %w", c.tie, ErrUnknownTiePolicy)
	}
	if c.gran != SweepTick && c.gran != NodeTick {
		return fmt.Errorf("%v: %w", c.gran, ErrUnknownGranularity)
	}

	return nil
}

// source resolves the RNG: explicit source, then seed, then the clock.
func (c runConfig) source() *rand.Rand {
	switch {
	case c.rng != nil:
		return c.rng
	case c.seed != nil:
		return rngFromSeed(*c.seed)
	default:
		return rngFromClock()
	}
}

// WithMode selects synchronous or asynchronous updating.
func WithMode(m Mode) RunOption {
	return func(c *runConfig) { c.mode = m }
}

// WithTiePolicy selects the zero-signal rule.
func WithTiePolicy(p TiePolicy) RunOption {
	return func(c *runConfig) { c.tie = p }
}

// WithAsyncGranularity selects what one asynchronous tick covers.
// Ignored in synchronous mode.
func WithAsyncGranularity(g AsyncGranularity) RunOption {
	return func(c *runConfig) { c.gran = g }
}

// WithInitialState fixes the initial state instead of sampling it.
// The slice is copied when the run starts.
func WithInitialState(state []uint8) RunOption {
	return func(c *runConfig) { c.initial = state }
}

// WithSeed seeds the run's private RNG for reproducible sampling and scheduling.
func WithSeed(seed int64) RunOption {
	return func(c *runConfig) {
		s := seed
		c.seed = &s
		c.rng = nil
	}
}

// WithRand supplies the RNG directly. The caller must not share it across goroutines.
func WithRand(r *rand.Rand) RunOption {
	if r == nil {
		panic("dynamics: WithRand(nil)")
	}
	return func(c *runConfig) {
		c.rng = r
		c.seed = nil
	}
}
