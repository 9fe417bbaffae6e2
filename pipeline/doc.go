// SPDX-License-Identifier: MIT

// Package pipeline drives the core packages end to end:
//
//	core.Graph ─incidence.Encode→ Incidence ─dynamics.Stitch→ Series ─expression.ToExpression→ Dense
//
// Run executes one job; RunBatch runs independent jobs on a bounded pool of
// goroutines that share no mutable state. Both take an injected *zap.Logger
// (nil means no logging) and honour context cancellation between stages. A
// stage that has started always runs to completion, since each is short and
// CPU-bound.
package pipeline
