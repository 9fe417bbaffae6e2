// SPDX-License-Identifier: MIT
package dynamics_test

import (
	"testing"

	"github.com/katalvlaran/boolnet/dynamics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateID_RoundTrip(t *testing.T) {
	id, err := dynamics.StateID([]uint8{1, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, uint64(5), id)

	st, err := dynamics.StateFromID(5, 3)
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 0, 1}, st)

	id, err = dynamics.StateID(nil)
	require.NoError(t, err)
	assert.Zero(t, id)

	_, err = dynamics.StateID(make([]uint8, 65))
	assert.ErrorIs(t, err, dynamics.ErrStateSpaceTooLarge)
	_, err = dynamics.StateID([]uint8{0, 3})
	assert.ErrorIs(t, err, dynamics.ErrBadInitialState)
	_, err = dynamics.StateFromID(0, -1)
	assert.ErrorIs(t, err, dynamics.ErrStateSpaceTooLarge)
}

func TestFindAttractor_FixedPoint(t *testing.T) {
	e := feedbackEngine(t)
	a, err := e.FindAttractor([]uint8{1, 1, 1}, 10)
	require.NoError(t, err)
	assert.True(t, a.FixedPoint())
	assert.Zero(t, a.Transient)
	assert.Equal(t, [][]uint8{{1, 1, 1}}, a.States)
}

func TestFindAttractor_Cycle(t *testing.T) {
	e := feedbackEngine(t)
	a, err := e.FindAttractor([]uint8{1, 0, 0}, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, a.Period)
	assert.Zero(t, a.Transient)
	assert.Equal(t, [][]uint8{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, a.States)
}

// TestFindAttractor_TiePolicy: a self-inhibiting node oscillates only when ties turn it ON.
func TestFindAttractor_TiePolicy(t *testing.T) {
	e, err := dynamics.NewEngine([]int32{0, 1}, []int32{0}, []int32{-1})
	require.NoError(t, err)

	a, err := e.FindAttractor([]uint8{1}, 8, dynamics.WithTiePolicy(dynamics.TieOn))
	require.NoError(t, err)
	assert.Equal(t, 2, a.Period)
	assert.Equal(t, [][]uint8{{1}, {0}}, a.States)

	a, err = e.FindAttractor([]uint8{1}, 8)
	require.NoError(t, err)
	assert.Equal(t, 1, a.Transient)
	assert.True(t, a.FixedPoint())
	assert.Equal(t, [][]uint8{{0}}, a.States)
}

func TestFindAttractor_Errors(t *testing.T) {
	e := feedbackEngine(t)

	_, err := e.FindAttractor([]uint8{1, 0, 0}, 1)
	assert.ErrorIs(t, err, dynamics.ErrNoAttractor)

	_, err = e.FindAttractor([]uint8{1, 0, 0}, 10, dynamics.WithMode(dynamics.Asynchronous))
	assert.ErrorIs(t, err, dynamics.ErrAsyncAttractor)

	_, err = e.FindAttractor([]uint8{1}, 10)
	assert.ErrorIs(t, err, dynamics.ErrBadInitialState)

	var nilEngine *dynamics.Engine
	_, err = nilEngine.FindAttractor(nil, 1)
	assert.ErrorIs(t, err, dynamics.ErrNilEngine)
}
