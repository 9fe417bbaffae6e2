// SPDX-License-Identifier: MIT
// Package incidence - the Encode pass and the Incidence type.
//
// Encode walks node indices 0..N-1 once. For index i it enumerates the incoming
// edges of the node placed at i, sets Ptr[i+1] = Ptr[i] + indeg and appends the
// sources and signs in the graph's incoming-edge order.

package incidence

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/boolnet/core"
)

// Incidence is the compressed incoming-edge representation of a regulatory graph.
// It is built once per graph and is read-only afterwards.
type Incidence struct {
	// Ptr holds per-node offsets into Adj/Func (length N+1).
	Ptr []int32
	// Adj holds source node indices of incoming edges (length E).
	Adj []int32
	// Func holds the sign of each incoming edge, aligned with Adj (length E).
	Func []int32
	// Nodes maps index → node key.
	Nodes []string
	// Index maps node key → index.
	Index map[string]int
}

// N returns the number of nodes.
func (inc *Incidence) N() int { return len(inc.Nodes) }

// E returns the number of edges.
func (inc *Incidence) E() int { return len(inc.Adj) }

// InDegree returns the number of incoming edges of node i.
func (inc *Incidence) InDegree(i int) int { return int(inc.Ptr[i+1] - inc.Ptr[i]) }

// Encode converts g into its compressed incidence representation.
//
// Stage 1 (Validate): non-nil graph with >= 2 nodes and >= 2 edges.
// Stage 2 (Order): resolve the index → key layout (explicit map, custom order, or sorted).
// Stage 3 (Execute): one pass over indices filling Ptr/Adj/Func.
//
// Errors: ErrGraphNil, ErrTooSmallNetwork, ErrBadNodeIndex, ErrMissingSign,
// ErrBadSign, ErrMalformedIncidence (graph mutated during the pass), plus core
// errors from incoming-edge enumeration.
func Encode(g *core.Graph, opts ...Option) (*Incidence, error) {
	if g == nil {
		return nil, fmt.Errorf("Encode: %w", ErrGraphNil)
	}
	n, m := g.VertexCount(), g.EdgeCount()
	if n < 2 || m < 2 {
		return nil, fmt.Errorf("Encode: %d nodes, %d edges: %w", n, m, ErrTooSmallNetwork)
	}
	cfg := newEncodeConfig(opts...)

	nodes, index, err := layout(g.Vertices(), cfg)
	if err != nil {
		return nil, fmt.Errorf("Encode: %w", err)
	}

	inc := &Incidence{
		Ptr:   make([]int32, len(nodes)+1),
		Adj:   make([]int32, 0, m),
		Func:  make([]int32, 0, m),
		Nodes: nodes,
		Index: index,
	}
	multi := g.Multigraph()

	var (
		in   []*core.Edge
		sign int64
		src  int
		ok   bool
	)
	for i, key := range nodes {
		if in, err = g.InEdges(key); err != nil {
			return nil, fmt.Errorf("Encode: node %q: %w", key, err)
		}
		inc.Ptr[i+1] = inc.Ptr[i] + int32(len(in))
		for _, e := range in {
			if multi {
				sign = e.Key
			} else if sign, ok = e.Attr(cfg.signAttr); !ok {
				return nil, fmt.Errorf("Encode: edge %s (%s->%s) attribute %q: %w",
					e.ID, e.From, e.To, cfg.signAttr, ErrMissingSign)
			}
			if sign != 1 && sign != -1 {
				return nil, fmt.Errorf("Encode: edge %s (%s->%s) sign %d: %w",
					e.ID, e.From, e.To, sign, ErrBadSign)
			}
			if src, ok = index[e.From]; !ok {
				return nil, fmt.Errorf("Encode: edge %s source %q added during encoding: %w",
					e.ID, e.From, ErrMalformedIncidence)
			}
			inc.Adj = append(inc.Adj, int32(src))
			inc.Func = append(inc.Func, int32(sign))
		}
	}

	// The graph may have changed between the count and the pass.
	if err = inc.Validate(); err != nil {
		return nil, fmt.Errorf("Encode: %w", err)
	}

	return inc, nil
}

// layout resolves nodes (index → key) and index (key → index).
func layout(keys []string, cfg encodeConfig) ([]string, map[string]int, error) {
	n := len(keys)
	nodes := make([]string, n)
	index := make(map[string]int, n)

	if cfg.index != nil {
		if len(cfg.index) != n {
			return nil, nil, fmt.Errorf("%d entries for %d nodes: %w", len(cfg.index), n, ErrBadNodeIndex)
		}
		filled := make([]bool, n)
		for _, key := range keys {
			i, ok := cfg.index[key]
			if !ok {
				return nil, nil, fmt.Errorf("node %q unmapped: %w", key, ErrBadNodeIndex)
			}
			if i < 0 || i >= n || filled[i] {
				return nil, nil, fmt.Errorf("node %q -> %d: %w", key, i, ErrBadNodeIndex)
			}
			filled[i] = true
			nodes[i] = key
			index[key] = i
		}

		return nodes, index, nil
	}

	copy(nodes, keys) // already lexicographic
	if cfg.less != nil {
		sort.SliceStable(nodes, func(a, b int) bool { return cfg.less(nodes[a], nodes[b]) })
	}
	for i, key := range nodes {
		index[key] = i
	}

	return nodes, index, nil
}

// Validate checks the structural invariants:
// len(Ptr) == N+1, Ptr[0] == 0, Ptr non-decreasing, Ptr[N] == len(Adj) == len(Func),
// every Adj entry in [0, N).
//
// Errors: ErrMalformedIncidence (wrapped with the first violation found).
func (inc *Incidence) Validate() error {
	return ValidateArrays(inc.Ptr, inc.Adj, inc.Func, len(inc.Nodes))
}

// ValidateArrays checks raw incidence arrays for n nodes. See Validate.
func ValidateArrays(ptr, adj, fn []int32, n int) error {
	if len(ptr) != n+1 {
		return fmt.Errorf("len(ptr)=%d want %d: %w", len(ptr), n+1, ErrMalformedIncidence)
	}
	if ptr[0] != 0 {
		return fmt.Errorf("ptr[0]=%d: %w", ptr[0], ErrMalformedIncidence)
	}
	for i := 0; i < n; i++ {
		if ptr[i+1] < ptr[i] {
			return fmt.Errorf("ptr decreases at %d: %w", i, ErrMalformedIncidence)
		}
	}
	if int(ptr[n]) != len(adj) || len(adj) != len(fn) {
		return fmt.Errorf("ptr[N]=%d len(adj)=%d len(func)=%d: %w", ptr[n], len(adj), len(fn), ErrMalformedIncidence)
	}
	for k, src := range adj {
		if src < 0 || int(src) >= n {
			return fmt.Errorf("adj[%d]=%d out of [0,%d): %w", k, src, n, ErrMalformedIncidence)
		}
	}

	return nil
}
