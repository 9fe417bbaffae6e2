// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"

	"github.com/katalvlaran/boolnet/core"
	"github.com/katalvlaran/boolnet/incidence"
	"gopkg.in/yaml.v3"
)

// EdgeSpec is one signed regulatory edge.
type EdgeSpec struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Sign int64  `yaml:"sign"`
}

// Network is the YAML form of a signed regulatory network.
type Network struct {
	Multigraph    bool           `yaml:"multigraph"`
	SignAttribute string         `yaml:"sign_attribute"`
	Nodes         []string       `yaml:"nodes"`
	Index         map[string]int `yaml:"index"`
	Edges         []EdgeSpec     `yaml:"edges"`
}

// LoadNetwork reads and parses a network file.
func LoadNetwork(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read network: %w", err)
	}
	n, err := ParseNetwork(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return n, nil
}

// ParseNetwork decodes a network document and checks every edge.
func ParseNetwork(data []byte) (*Network, error) {
	n := &Network{}
	if err := yaml.Unmarshal(data, n); err != nil {
		return nil, fmt.Errorf("failed to parse network: %w", err)
	}
	if n.SignAttribute == "" {
		n.SignAttribute = incidence.DefaultSignAttribute
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}

	return n, nil
}

// Validate checks node names and edge signs.
func (n *Network) Validate() error {
	for i, id := range n.Nodes {
		if id == "" {
			return fmt.Errorf("nodes[%d] is empty: %w", i, ErrInvalidNetwork)
		}
	}
	for i, e := range n.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("edges[%d] needs from and to: %w", i, ErrInvalidNetwork)
		}
		if e.Sign != 1 && e.Sign != -1 {
			return fmt.Errorf("edges[%d] %s→%s sign %d: %w", i, e.From, e.To, e.Sign, ErrBadSign)
		}
	}

	return nil
}

// Graph builds the core graph. Self-loops are always allowed; parallel edges
// only when Multigraph is set, in which case the sign is the edge key.
func (n *Network) Graph() (*core.Graph, error) {
	opts := []core.GraphOption{core.WithLoops()}
	if n.Multigraph {
		opts = append(opts, core.WithMultiEdges())
	}
	g := core.NewGraph(opts...)
	for _, id := range n.Nodes {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("node %q: %w", id, err)
		}
	}
	attr := n.SignAttribute
	if attr == "" {
		attr = incidence.DefaultSignAttribute
	}
	for i, e := range n.Edges {
		var opt core.EdgeOption
		if n.Multigraph {
			opt = core.WithKey(e.Sign)
		} else {
			opt = core.WithAttr(attr, e.Sign)
		}
		if _, err := g.AddEdge(e.From, e.To, opt); err != nil {
			return nil, fmt.Errorf("edges[%d] %s→%s: %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}

// EncodeOptions returns the incidence options matching this network.
func (n *Network) EncodeOptions() []incidence.Option {
	var opts []incidence.Option
	if !n.Multigraph && n.SignAttribute != "" {
		opts = append(opts, incidence.WithSignAttribute(n.SignAttribute))
	}
	if len(n.Index) > 0 {
		opts = append(opts, incidence.WithNodeIndex(n.Index))
	}

	return opts
}

// Encode builds the graph and encodes it in one call.
func (n *Network) Encode() (*incidence.Incidence, error) {
	g, err := n.Graph()
	if err != nil {
		return nil, err
	}

	return incidence.Encode(g, n.EncodeOptions()...)
}
