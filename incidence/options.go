// SPDX-License-Identifier: MIT
// Package incidence: functional options for Encode.
//
// Option constructors panic on meaningless inputs (nil functions/maps);
// Encode itself never panics and reports problems as sentinel errors.

package incidence

// DefaultSignAttribute is the edge attribute read for signs in simple graphs.
const DefaultSignAttribute = "function"

// Option customizes Encode.
type Option func(*encodeConfig)

type encodeConfig struct {
	signAttr string
	less     func(a, b string) bool // nil ⇒ lexicographic
	index    map[string]int         // nil ⇒ derived from the order
}

func newEncodeConfig(opts ...Option) encodeConfig {
	cfg := encodeConfig{signAttr: DefaultSignAttribute}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSignAttribute names the edge attribute that carries the sign in simple graphs.
// Ignored for multigraphs, whose edge Key is the sign.
func WithSignAttribute(name string) Option {
	if name == "" {
		panic("incidence: WithSignAttribute(\"\")")
	}
	return func(c *encodeConfig) { c.signAttr = name }
}

// WithNodeOrder replaces the lexicographic order with a caller-supplied strict
// total order over node keys. Indices are assigned in that order.
func WithNodeOrder(less func(a, b string) bool) Option {
	if less == nil {
		panic("incidence: WithNodeOrder(nil)")
	}
	return func(c *encodeConfig) { c.less = less }
}

// WithNodeIndex supplies an explicit key → index mapping. It takes precedence
// over any order and must be a bijection onto [0, N).
// The map is copied at Encode time; later caller mutations do not leak in.
func WithNodeIndex(index map[string]int) Option {
	if index == nil {
		panic("incidence: WithNodeIndex(nil)")
	}
	return func(c *encodeConfig) { c.index = index }
}
