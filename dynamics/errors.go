// SPDX-License-Identifier: MIT
// Package dynamics: sentinel errors.
// All are raised synchronously at the point of invalid input; nothing is retried.

package dynamics

import "errors"

var (
	// ErrNilEngine indicates a nil *Engine was passed.
	ErrNilEngine = errors.New("dynamics: engine is nil")

	// ErrNegativeSteps indicates Run was asked for fewer than zero ticks.
	ErrNegativeSteps = errors.New("dynamics: steps must be >= 0")

	// ErrBadInitialState indicates an initial state of wrong length or with values outside {0,1}.
	ErrBadInitialState = errors.New("dynamics: invalid initial state")

	// ErrBadRepeat indicates a stitch repeat count below 1.
	ErrBadRepeat = errors.New("dynamics: repeat must be >= 1")

	// ErrBadSteps indicates a stitch per-run length below 1.
	ErrBadSteps = errors.New("dynamics: steps per run must be >= 1")

	// ErrUnsatisfiableDistinctSampling indicates the repeat count exceeds 2^N − 1,
	// so distinct initial states cannot all be drawn. Reduce repeat or grow the network.
	ErrUnsatisfiableDistinctSampling = errors.New("dynamics: repeat exceeds the distinct initial-state space")

	// ErrUnknownMode indicates an update mode outside {Synchronous, Asynchronous}.
	ErrUnknownMode = errors.New("dynamics: unknown update mode")

	// ErrUnknownTiePolicy indicates a tie policy outside {TieHold, TieOn, TieOff}.
	ErrUnknownTiePolicy = errors.New("dynamics: unknown tie policy")

	// ErrUnknownGranularity indicates an async granularity outside {SweepTick, NodeTick}.
	ErrUnknownGranularity = errors.New("dynamics: unknown asynchronous granularity")

	// ErrBadSeries indicates ragged rows or non-binary values when building a Series.
	ErrBadSeries = errors.New("dynamics: invalid binary series")

	// ErrStateSpaceTooLarge indicates a state vector longer than 64 nodes cannot be packed into a uint64.
	ErrStateSpaceTooLarge = errors.New("dynamics: state has more than 64 nodes")

	// ErrNoAttractor indicates no state repeated within the step budget.
	ErrNoAttractor = errors.New("dynamics: no attractor within step budget")

	// ErrAsyncAttractor indicates attractor search was requested in asynchronous mode.
	ErrAsyncAttractor = errors.New("dynamics: attractor search requires synchronous mode")
)
