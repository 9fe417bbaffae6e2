// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Edge IDs are monotonic and stable ("e" + decimal sequence).
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import "strconv"

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = "e"

// AddEdge creates a directed edge from → to and returns its ID.
// Missing endpoints are created.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Build the Edge and apply opts (WithKey, WithAttr).
//  3. Under the write lock, enforce the multi-edge policy:
//     simple graphs allow one edge per ordered pair; multigraphs allow one edge
//     per (from,to,key).
//  4. Register the edge in the catalog and in both enumeration lists.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed, ErrDuplicateEdgeKey.
//
// Complexity: O(deg(from)) for the parallel-edge check, O(1) otherwise.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	e := &Edge{From: from, To: to, Attrs: make(map[string]int64)}
	for _, opt := range opts {
		opt(e)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, eid := range g.out[from] {
		other := g.edges[eid]
		if other.To != to {
			continue
		}
		if !g.allowMulti {
			return "", ErrMultiEdgeNotAllowed
		}
		if other.Key == e.Key {
			return "", ErrDuplicateEdgeKey
		}
	}

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	g.nextSeq++
	e.seq = g.nextSeq
	e.ID = edgeIDPrefix + strconv.FormatUint(e.seq, 10)

	g.edges[e.ID] = e
	g.out[from] = append(g.out[from], e.ID)
	g.in[to] = append(g.in[to], e.ID)

	return e.ID, nil
}

// RemoveEdge deletes the edge with the given ID.
//
// Errors:
//   - ErrEdgeNotFound.
//
// Complexity: O(deg(from) + deg(to)).
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.edges[eid]; !ok {
		return ErrEdgeNotFound
	}
	g.removeEdgeLocked(eid)

	return nil
}

// removeEdgeLocked drops eid from the catalog and both lists; caller holds the write lock.
func (g *Graph) removeEdgeLocked(eid string) {
	e := g.edges[eid]
	delete(g.edges, eid)
	g.out[e.From] = dropID(g.out[e.From], eid)
	g.in[e.To] = dropID(g.in[e.To], eid)
}

// dropID removes the first occurrence of id, preserving order.
func dropID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}

	return ids
}

// HasEdge reports whether at least one edge from → to exists.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, eid := range g.out[from] {
		if g.edges[eid].To == to {
			return true
		}
	}

	return false
}

// Edge returns the edge with the given ID.
//
// Errors:
//   - ErrEdgeNotFound.
func (g *Graph) Edge(eid string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges in insertion order.
// Returned pointers are live catalog entries; treat them as read-only.
// Complexity: O(E·logE)
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortBySeq(out)

	return out
}

// EdgeCount returns the total number of edges (the graph's size). O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
