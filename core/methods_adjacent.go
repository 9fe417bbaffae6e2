// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood APIs (InEdges, OutEdges, Predecessors).
// Determinism:
//   - Edge lists follow insertion order; Predecessors() is unique and sorted.

package core

import "sort"

// InEdges returns the edges pointing at id (regulators of id), in insertion order.
//
// The slice is freshly allocated; the *Edge values are live catalog entries.
// A self-loop on id appears here as well as in OutEdges(id).
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(indeg(id)).
func (g *Graph) InEdges(id string) ([]*Edge, error) {
	return g.incident(id, g.in)
}

// OutEdges returns the edges leaving id (targets regulated by id), in insertion order.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(outdeg(id)).
func (g *Graph) OutEdges(id string) ([]*Edge, error) {
	return g.incident(id, g.out)
}

func (g *Graph) incident(id string, lists map[string][]string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	ids := lists[id]
	out := make([]*Edge, len(ids))
	for i, eid := range ids {
		out[i] = g.edges[eid]
	}

	return out, nil
}

// Predecessors returns the unique regulator IDs of id, sorted.
//
// Errors:
//   - propagated from InEdges.
func (g *Graph) Predecessors(id string) ([]string, error) {
	edges, err := g.InEdges(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		seen[e.From] = struct{}{}
	}
	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// sortBySeq orders edges by insertion sequence.
func sortBySeq(edges []*Edge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].seq < edges[j].seq })
}
