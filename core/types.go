// SPDX-License-Identifier: MIT
// Package core defines Graph, Vertex and Edge for regulatory networks,
// the sentinel errors and the NewGraph constructor.
//
// All core APIs use a single sync.RWMutex, so a graph may be built by one
// goroutine and read by many.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrDuplicateEdgeKey indicates a parallel edge reused the key of an existing (from,to) edge.
	ErrDuplicateEdgeKey = errors.New("core: duplicate edge key")
)

// Vertex represents a gene (node) in the regulatory graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data.
	Metadata map[string]interface{}
}

// Edge is a directed regulatory interaction From → To.
//
// Key distinguishes parallel edges in a multigraph and by convention carries
// the sign of the interaction there. Attrs holds named integer data; simple
// graphs keep the sign under an attribute name chosen by the caller.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the regulator (source vertex ID).
	From string

	// To is the regulated target (destination vertex ID).
	To string

	// Key is the multi-edge key; zero unless set via WithKey.
	Key int64

	// Attrs holds named integer attributes; never nil for edges created by AddEdge.
	Attrs map[string]int64

	seq uint64 // insertion sequence, drives enumeration order
}

// Attr returns the named attribute and whether it is present.
func (e *Edge) Attr(name string) (int64, bool) {
	if e == nil {
		return 0, false
	}
	v, ok := e.Attrs[name]

	return v, ok
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same ordered pair.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithKey sets the multi-edge key (the sign, in a regulatory multigraph).
func WithKey(key int64) EdgeOption {
	return func(e *Edge) { e.Key = key }
}

// WithAttr sets a named integer attribute on the edge.
func WithAttr(name string, value int64) EdgeOption {
	return func(e *Edge) { e.Attrs[name] = value }
}

// Graph is a directed regulatory graph.
//
// mu guards every field below it. in and out hold edge IDs per vertex in
// insertion order; they are the enumeration surface for InEdges/OutEdges.
type Graph struct {
	mu sync.RWMutex

	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	nextSeq  uint64             // monotonic edge sequence ("e" + seq)
	vertices map[string]*Vertex // vertex ID → Vertex
	edges    map[string]*Edge   // edge ID → Edge
	in       map[string][]string
	out      map[string][]string
}

// NewGraph creates an empty directed Graph.
// By default there are no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
		in:       make(map[string][]string),
		out:      make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Multigraph reports whether parallel edges are permitted.
// The flag is immutable after construction.
func (g *Graph) Multigraph() bool {
	return g.allowMulti
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	return g.allowLoops
}
