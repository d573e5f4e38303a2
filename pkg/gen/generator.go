// Package gen implements the two-phase stochastic recursion that builds
// covariance-expression trees and the incremental regeneration of a
// previously sampled tree at a single position.
package gen

import (
	"fmt"

	"github.com/wildfunctions/covariance_trees/pkg/dist"
	"github.com/wildfunctions/covariance_trees/pkg/kernel"
	"github.com/wildfunctions/covariance_trees/pkg/prior"
)

// Generator samples covariance trees under a production profile, drawing
// entropy from a dist.Source.
type Generator struct {
	profile *prior.Profile
	src     dist.Source
}

// New returns a generator over the given profile and entropy source.
func New(profile *prior.Profile, src dist.Source) *Generator {
	return &Generator{profile: profile, src: src}
}

// Profile returns the generator's production profile.
func (g *Generator) Profile() *prior.Profile { return g.profile }

// produce chooses the node kind occupying one position. The draw is
// context-free: every position shares the same prior over kinds, and the
// choice is always resampled when a position is revisited.
func (g *Generator) produce(tr *Trace, pos Position) kernel.Kind {
	w := g.profile.Weights()
	k := kernel.Kind(g.src.Categorical(w))
	tr.record(Address{Pos: pos, Phase: PhaseProduction}, Choice{
		Type:    ChoiceKind,
		Kind:    k,
		LogProb: dist.CategoricalLogProb(w, int(k)),
	})
	return k
}

// aggregate draws any node-local parameter and assembles the concrete node
// from the already materialized children.
func (g *Generator) aggregate(tr *Trace, pos Position, k kernel.Kind, children []kernel.Node) (kernel.Node, error) {
	if len(children) != k.Arity() {
		return nil, fmt.Errorf("aggregation at position %s: kind %s expects %d children, got %d",
			pos, k, k.Arity(), len(children))
	}

	switch k {
	case kernel.KindInput, kernel.KindPlus, kernel.KindMinus, kernel.KindTimes:
		return build(pos, k, 0, children)

	case kernel.KindConstant, kernel.KindChangepoint:
		v := g.src.Normal(g.profile.ParamMean, g.profile.ParamStd)
		tr.record(Address{Pos: pos, Phase: PhaseAggregation}, Choice{
			Type:    ChoiceParam,
			Param:   v,
			LogProb: dist.NormalLogProb(g.profile.ParamMean, g.profile.ParamStd, v),
		})
		return build(pos, k, v, children)

	default:
		return nil, fmt.Errorf("aggregation at position %s: unknown kind %d", pos, k)
	}
}

// sharedInput is the one InputNode every generation hands out. The node is
// stateless and immutable, and a stable identity keeps reference-based diff
// comparisons meaningful for zero-size leaves.
var sharedInput = &kernel.InputNode{}

// build assembles a node from a kind, its parameter (ignored for
// parameterless kinds) and its children, with no random draws. Shared by
// aggregation and by the spine rebuild during regeneration.
func build(pos Position, k kernel.Kind, param float64, children []kernel.Node) (kernel.Node, error) {
	switch k {
	case kernel.KindInput:
		return sharedInput, nil
	case kernel.KindConstant:
		return &kernel.ConstantNode{Value: param}, nil
	case kernel.KindPlus, kernel.KindMinus, kernel.KindTimes:
		return kernel.NewOperator(k, children[0], children[1]), nil
	case kernel.KindChangepoint:
		return kernel.NewChangepoint(param, children[0], children[1]), nil
	default:
		return nil, fmt.Errorf("position %s: unknown kind %d", pos, k)
	}
}

// generate runs the full recursion at one position: production, depth-first
// left-to-right child generation, then aggregation.
func (g *Generator) generate(tr *Trace, pos Position) (kernel.Node, error) {
	k := g.produce(tr, pos)

	children := make([]kernel.Node, 0, k.Arity())
	for i := 0; i < k.Arity(); i++ {
		child, err := g.generate(tr, pos.Child(i))
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	node, err := g.aggregate(tr, pos, k, children)
	if err != nil {
		return nil, err
	}
	tr.Nodes[pos] = node
	return node, nil
}

// Generate runs a full generation rooted at the given position and returns
// its trace. The trace's score is the summed log-probability of every
// choice made.
func (g *Generator) Generate(root Position) (*Trace, error) {
	tr := newTrace(root)
	if _, err := g.generate(tr, root); err != nil {
		return nil, err
	}
	return tr, nil
}
