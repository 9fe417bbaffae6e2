// SPDX-License-Identifier: MIT

// Package core provides the thread-safe, in-memory regulatory graph that feeds
// the Boolean dynamics engine.
//
// A Graph G = (V,E) is always directed. Each Edge carries:
//
//   - an integer Key, which distinguishes parallel edges in a multigraph and,
//     by convention, holds the regulatory sign (+1 activating, −1 inhibiting);
//   - a map of named integer attributes (for simple graphs the sign lives under
//     an attribute such as "function").
//
// Configuration Options (GraphOption):
//
//	– WithMultiEdges()
//	    Allows parallel edges between the same ordered pair, distinguished by Key.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//	    Regulatory networks commonly carry self-inhibition, so most callers enable it.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1), idempotent
//	HasVertex(id string) bool           // O(1)
//	RemoveVertex(id string) error       // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string, opts ...EdgeOption) (edgeID string, err error) // O(1)†
//	RemoveEdge(edgeID string) error     // O(deg)
//	HasEdge(from, to string) bool       // O(deg(from))
//
//	// Query
//	InEdges(id string) ([]*Edge, error) // insertion order
//	OutEdges(id string) ([]*Edge, error)// insertion order
//	Vertices() []string                 // sorted
//	Edges() []*Edge                     // insertion order
//	Degree(id string) (in, out int, err error)
//	VertexCount(), EdgeCount() int
//
// Determinism:
//
//	Vertices() is sorted lexicographically. Edge enumerations follow insertion
//	order, which is the stable "traversal order" the incidence encoder relies on.
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//	ErrDuplicateEdgeKey    – parallel edge reusing an existing key
//
// † amortized: sequence counter + map insertion + slice append.
package core
