// SPDX-License-Identifier: MIT
// Package incidence: sentinel errors.
// Callers branch with errors.Is; call sites attach context with %w.

package incidence

import "errors"

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to Encode.
	ErrGraphNil = errors.New("incidence: graph is nil")

	// ErrTooSmallNetwork indicates fewer than 2 nodes or fewer than 2 edges.
	// This is a configuration error of the caller, not a transient condition.
	ErrTooSmallNetwork = errors.New("incidence: network too small (need >= 2 nodes and >= 2 edges)")

	// ErrBadNodeIndex indicates the explicit node index map is not a bijection onto [0, N).
	ErrBadNodeIndex = errors.New("incidence: node index is not a bijection onto [0, N)")

	// ErrMissingSign indicates a simple-graph edge lacks the configured sign attribute.
	ErrMissingSign = errors.New("incidence: edge has no sign attribute")

	// ErrBadSign indicates an edge sign (multigraph key or sign attribute) other than +1 or -1.
	ErrBadSign = errors.New("incidence: edge sign must be +1 or -1")

	// ErrMalformedIncidence indicates Ptr/Adj/Func violate the structural invariants.
	ErrMalformedIncidence = errors.New("incidence: malformed incidence arrays")
)
