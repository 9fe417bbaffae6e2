// SPDX-License-Identifier: MIT

// Package config loads YAML descriptions of regulatory networks, simulation
// jobs and job batches, and converts them into the option sets used by the
// incidence, dynamics and expression packages.
//
// Network file:
//
//	multigraph: false          # true: parallel edges, sign stored as the edge key
//	sign_attribute: function   # simple graphs only
//	nodes: [A, B, C]           # optional; lists nodes without edges
//	index: {A: 0, B: 1, C: 2}  # optional explicit node index
//	edges:
//	  - {from: A, to: B, sign: 1}
//	  - {from: A, to: A, sign: -1}
//
// Job file (all fields optional, see DefaultJob):
//
//	name: feedback
//	repeats: 10
//	steps: 100
//	mode: synchronous          # or asynchronous
//	tie_policy: hold           # hold | on | off
//	async_granularity: sweep   # sweep | node
//	seed: 42
//	window: {size: 10, overlap: 0, normalization: window}
//
// Environment overrides (applied by LoadJob and LoadBatch): BOOLSIM_SEED, BOOLSIM_MODE.
package config
