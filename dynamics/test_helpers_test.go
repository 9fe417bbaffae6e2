// SPDX-License-Identifier: MIT
// Package dynamics_test contains fixtures shared by the dynamics tests.

package dynamics_test

import (
	"testing"

	"github.com/katalvlaran/boolnet/core"
	"github.com/katalvlaran/boolnet/dynamics"
	"github.com/katalvlaran/boolnet/incidence"
	"github.com/stretchr/testify/require"
)

// Common seeds (avoid magic numbers in test bodies).
const (
	Seed1 = 1
	Seed7 = 7
	Seed9 = 9
)

// feedbackEngine builds the three-node activating cycle A→B→C→A where every
// node also inhibits itself.
func feedbackEngine(t *testing.T) *dynamics.Engine {
	t.Helper()
	g := core.NewGraph(core.WithLoops())
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}} {
		_, err := g.AddEdge(e[0], e[1], core.WithAttr("function", 1))
		require.NoError(t, err)
	}
	for _, v := range g.Vertices() {
		_, err := g.AddEdge(v, v, core.WithAttr("function", -1))
		require.NoError(t, err)
	}
	inc, err := incidence.Encode(g)
	require.NoError(t, err)
	e, err := dynamics.FromIncidence(inc)
	require.NoError(t, err)

	return e
}

// chainEngine builds 0 → 1 → 2 (activating); node 0 has no inputs.
func chainEngine(t *testing.T) *dynamics.Engine {
	t.Helper()
	e, err := dynamics.NewEngine(
		[]int32{0, 0, 1, 2},
		[]int32{0, 1},
		[]int32{1, 1},
	)
	require.NoError(t, err)

	return e
}

// tieEngine builds node 2 with one activating input from node 0 and one
// inhibiting input from node 1; nodes 0 and 1 have no inputs.
func tieEngine(t *testing.T) *dynamics.Engine {
	t.Helper()
	e, err := dynamics.NewEngine(
		[]int32{0, 0, 0, 2},
		[]int32{0, 1},
		[]int32{1, -1},
	)
	require.NoError(t, err)

	return e
}

// randomEngine builds a dense-ish signed network of n nodes where node i is
// regulated by i-1, i+1 and i+3 (mod n) with alternating signs.
func randomEngine(t testing.TB, n int) *dynamics.Engine {
	t.Helper()
	ptr := make([]int32, n+1)
	var adj, fn []int32
	for i := 0; i < n; i++ {
		for k, d := range []int{n - 1, 1, 3} {
			adj = append(adj, int32((i+d)%n))
			if (i+k)%2 == 0 {
				fn = append(fn, 1)
			} else {
				fn = append(fn, -1)
			}
		}
		ptr[i+1] = int32(len(adj))
	}
	e, err := dynamics.NewEngine(ptr, adj, fn)
	require.NoError(t, err)

	return e
}
