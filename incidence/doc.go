// SPDX-License-Identifier: MIT

// Package incidence encodes a regulatory core.Graph into the compressed incidence
// form consumed by the dynamics engine.
//
// For N nodes and E edges the encoding is three index-aligned arrays:
//
//	Ptr  — length N+1, non-decreasing, Ptr[0] = 0, Ptr[N] = E
//	Adj  — length E; Adj[Ptr[i]:Ptr[i+1]] are the sources of node i's incoming edges
//	Func — length E; Func[k] is the sign of the edge stored at Adj[k]
//
// Traversal is by integer index only; there is no object graph to chase.
//
// Node ordering:
//
//   - default: node keys sorted lexicographically (reproducible, caller-independent);
//   - WithNodeOrder(less): another total order over keys;
//   - WithNodeIndex(map): an explicit key → index bijection onto [0, N).
//
// Sign source:
//
//   - multigraph: the edge Key;
//   - simple graph: the attribute named by WithSignAttribute (default "function").
//
// Self-loops are ordinary edges. Removing or adding them is the graph builder's job.
//
// Errors:
//
//	ErrGraphNil           – nil graph
//	ErrTooSmallNetwork    – fewer than 2 nodes or 2 edges
//	ErrBadNodeIndex       – explicit index map is not a bijection onto [0, N)
//	ErrMissingSign        – simple-graph edge without the sign attribute
//	ErrMalformedIncidence – arrays violate the structural invariants (Validate)
//
// Complexity: Encode is O(N log N + E) time and O(N + E) space.
package incidence
