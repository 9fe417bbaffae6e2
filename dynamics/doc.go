// SPDX-License-Identifier: MIT

// Package dynamics runs discrete-time Boolean dynamics over a compressed
// incidence representation (see package incidence).
//
// Update rule for node i at tick t:
//
//	signal(i) = Σ Func[k] · state[Adj[k]]   for k in [Ptr[i], Ptr[i+1])
//	signal > 0 → ON,  signal < 0 → OFF,  signal == 0 → TiePolicy (default: hold)
//
// Nodes without incoming edges keep their initial value under every policy.
//
// Modes:
//
//   - Synchronous (default): every node reads the same snapshot of tick t and
//     all nodes commit together to form tick t+1.
//   - Asynchronous: one tick is a sweep of N single-node updates in a uniformly
//     random order without replacement; each update reads the latest committed
//     state. WithAsyncGranularity(NodeTick) makes a tick a single random update.
//
// The tie policy and the asynchronous tick granularity are modelling
// assumptions; both are selectable per run so they can be corrected against
// reference outputs.
//
// Determinism:
//
//	Fixed arrays + fixed initial state + fixed mode + fixed seed ⇒ identical series.
//	An Engine holds no mutable state; every Run owns its RNG, buffers and Series,
//	so concurrent runs on one Engine are safe and independent.
//
// Also in this package:
//
//   - Stitch concatenates runs started from pairwise distinct random states.
//   - FindAttractor follows a synchronous trajectory until a state repeats.
//   - StateID / StateFromID pack a state vector into an integer (N <= 64).
//
// Complexity: O(steps · (N + E)) per Run.
package dynamics
