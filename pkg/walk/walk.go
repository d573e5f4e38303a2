// Package walk provides position-selection policies for the incremental
// random walk over kernel structures: each step picks one position of the
// current trace to regenerate.
package walk

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/wildfunctions/covariance_trees/pkg/gen"
)

// Policy picks the next position to regenerate from a trace.
type Policy interface {
	Name() string
	Pick(tr *gen.Trace, rng *rand.Rand) gen.Position
}

var registry = map[string]func() Policy{}

// Register adds a policy constructor to the registry.
func Register(name string, constructor func() Policy) {
	registry[name] = constructor
}

// Get returns a policy by name.
func Get(name string) (Policy, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown policy: %s", name)
	}
	return ctor(), nil
}

// Names returns all registered policy names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	return names
}

func init() {
	Register("uniform", func() Policy { return &UniformPolicy{} })
	Register("leaf", func() Policy { return &LeafPolicy{} })
}

// UniformPolicy picks uniformly over every materialized position, so whole
// subtrees and single leaves are proposed with equal chance per position.
type UniformPolicy struct{}

func (p *UniformPolicy) Name() string { return "uniform" }

func (p *UniformPolicy) Pick(tr *gen.Trace, rng *rand.Rand) gen.Position {
	positions := tr.Positions()
	return positions[rng.Intn(len(positions))]
}

// LeafPolicy restricts proposals to leaf positions, leaving the tree shape
// intact except where a leaf grows into a new subtree.
type LeafPolicy struct{}

func (p *LeafPolicy) Name() string { return "leaf" }

func (p *LeafPolicy) Pick(tr *gen.Trace, rng *rand.Rand) gen.Position {
	var leaves []gen.Position
	for _, pos := range tr.Positions() {
		if tr.Nodes[pos].Size() == 1 {
			leaves = append(leaves, pos)
		}
	}
	if len(leaves) == 0 {
		return tr.Root
	}
	return leaves[rng.Intn(len(leaves))]
}
