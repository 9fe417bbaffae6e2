// SPDX-License-Identifier: MIT
// Package dynamics: enumerated update modes and policies.
//
// Behavior is selected from these closed sets only; strings are parsed once at
// the boundary (ParseMode, ParseTiePolicy, ParseAsyncGranularity).

package dynamics

import (
	"fmt"
	"strings"
)

// Mode selects synchronous or asynchronous updating.
type Mode int

const (
	// Synchronous updates all nodes from one snapshot per tick.
	Synchronous Mode = iota

	// Asynchronous updates nodes one at a time against the latest state.
	Asynchronous
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Synchronous:
		return "synchronous"
	case Asynchronous:
		return "asynchronous"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "synchronous"/"sync" and "asynchronous"/"async" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "synchronous", "sync":
		return Synchronous, nil
	case "asynchronous", "async":
		return Asynchronous, nil
	default:
		return 0, fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
	}
}

// TiePolicy decides the next state when a node's net signal is exactly zero.
type TiePolicy int

const (
	// TieHold keeps the node's current state.
	TieHold TiePolicy = iota

	// TieOn switches the node ON.
	TieOn

	// TieOff switches the node OFF.
	TieOff
)

// String implements fmt.Stringer.
func (p TiePolicy) String() string {
	switch p {
	case TieHold:
		return "hold"
	case TieOn:
		return "on"
	case TieOff:
		return "off"
	default:
		return fmt.Sprintf("TiePolicy(%d)", int(p))
	}
}

// ParseTiePolicy maps "hold", "on" and "off" (case-insensitive).
func ParseTiePolicy(s string) (TiePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hold":
		return TieHold, nil
	case "on":
		return TieOn, nil
	case "off":
		return TieOff, nil
	default:
		return 0, fmt.Errorf("ParseTiePolicy(%q): %w", s, ErrUnknownTiePolicy)
	}
}

// AsyncGranularity decides how much asynchronous work one output tick covers.
type AsyncGranularity int

const (
	// SweepTick: one tick = N single-node updates, each node exactly once.
	SweepTick AsyncGranularity = iota

	// NodeTick: one tick = one update of a uniformly chosen node.
	NodeTick
)

// String implements fmt.Stringer.
func (g AsyncGranularity) String() string {
	switch g {
	case SweepTick:
		return "sweep"
	case NodeTick:
		return "node"
	default:
		return fmt.Sprintf("AsyncGranularity(%d)", int(g))
	}
}

// ParseAsyncGranularity maps "sweep" and "node" (case-insensitive).
func ParseAsyncGranularity(s string) (AsyncGranularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sweep":
		return SweepTick, nil
	case "node":
		return NodeTick, nil
	default:
		return 0, fmt.Errorf("ParseAsyncGranularity(%q): %w", s, ErrUnknownGranularity)
	}
}
