// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id; caller holds the write lock.
func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes the vertex and every edge touching it.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(deg(v) · d) where d bounds the neighbors' degrees.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	// Copy the ID lists first: removeEdgeLocked rewrites them.
	doomed := make([]string, 0, len(g.in[id])+len(g.out[id]))
	doomed = append(doomed, g.in[id]...)
	doomed = append(doomed, g.out[id]...)
	for _, eid := range doomed {
		if _, ok := g.edges[eid]; ok { // self-loops appear in both lists
			g.removeEdgeLocked(eid)
		}
	}
	delete(g.in, id)
	delete(g.out, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V·logV)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices (the graph's order). O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the in- and out-degree of id. A self-loop counts once in each.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Degree(id string) (in, out int, err error) {
	if id == "" {
		return 0, 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, 0, ErrVertexNotFound
	}

	return len(g.in[id]), len(g.out[id]), nil
}
