package gen

import (
	"fmt"

	"github.com/wildfunctions/covariance_trees/pkg/kernel"
)

// Regenerate resamples the subtree rooted at pos, reusing everything else
// from the old trace. It returns the new trace, the incremental log-weight
// (new subtree score minus old subtree score), the choices discarded from
// the old trace, and a per-child structural diff at pos.
//
// Choices and off-path subtrees are reused by reference; the targeted
// subtree is fully resampled (no partial reuse inside it). Ancestors of pos
// are rebuilt structurally from their recorded choices so the tree above
// pos points at the new subtree, with no resampling and no rescoring.
//
// A nil old trace is the first-ever generation: the weight is the full
// score, the discard set is empty, and the diff is the Initial marker.
func (g *Generator) Regenerate(old *Trace, pos Position) (*Trace, float64, ChoiceMap, RetDiff, error) {
	if old == nil {
		tr, err := g.Generate(pos)
		if err != nil {
			return nil, 0, nil, RetDiff{}, err
		}
		return tr, tr.Score, ChoiceMap{}, initialDiff(), nil
	}

	if _, ok := old.Nodes[pos]; !ok {
		return nil, 0, nil, RetDiff{}, fmt.Errorf("regenerate: no node at position %s", pos)
	}

	nt := newTrace(old.Root)

	// Reuse every choice outside the regenerated subtree verbatim.
	for addr, c := range old.Choices {
		if !addr.Pos.Under(pos) {
			nt.Choices[addr] = c
		}
	}
	// Reuse off-path subtrees by reference. Positions under pos are
	// regenerated; ancestors of pos are rebuilt below.
	for p, node := range old.Nodes {
		if !p.Under(pos) && !pos.Under(p) {
			nt.Nodes[p] = node
		}
	}

	if _, err := g.generate(nt, pos); err != nil {
		return nil, 0, nil, RetDiff{}, err
	}

	newSub := nt.SubtreeScore(pos)
	oldSub := old.SubtreeScore(pos)
	nt.Score = old.Score - oldSub + newSub

	if err := g.rebuildSpine(nt, pos); err != nil {
		return nil, 0, nil, RetDiff{}, err
	}

	discard := old.ChoicesUnder(pos)
	diff := childDiff(old, nt, pos)

	return nt, newSub - oldSub, discard, diff, nil
}

// rebuildSpine reassembles the ancestors of pos from their recorded
// choices, bottom-up, so each parent owns the freshly generated child.
func (g *Generator) rebuildSpine(tr *Trace, pos Position) error {
	if pos == tr.Root {
		return nil
	}
	for p := pos.Parent(); ; p = p.Parent() {
		pc, ok := tr.Choices[Address{Pos: p, Phase: PhaseProduction}]
		if !ok {
			return fmt.Errorf("regenerate: no production choice at position %s", p)
		}
		k := pc.Kind

		var param float64
		if ac, ok := tr.Choices[Address{Pos: p, Phase: PhaseAggregation}]; ok {
			param = ac.Param
		}

		children := make([]kernel.Node, 0, k.Arity())
		for i := 0; i < k.Arity(); i++ {
			child, ok := tr.Nodes[p.Child(i)]
			if !ok {
				return fmt.Errorf("regenerate: missing child %d of position %s", i, p)
			}
			children = append(children, child)
		}

		node, err := build(p, k, param, children)
		if err != nil {
			return err
		}
		tr.Nodes[p] = node

		if p == tr.Root {
			return nil
		}
	}
}

// childDiff compares the children of pos in the old and new traces by
// reference.
func childDiff(old, nt *Trace, pos Position) RetDiff {
	pc := nt.Choices[Address{Pos: pos, Phase: PhaseProduction}]
	diff := RetDiff{Children: map[int]ChildDiff{}}
	for i := 0; i < pc.Kind.Arity(); i++ {
		cp := pos.Child(i)
		if oldNode, ok := old.Nodes[cp]; ok && oldNode == nt.Nodes[cp] {
			diff.Children[i] = DiffUnchanged
		} else {
			diff.Children[i] = DiffChanged
		}
	}
	return diff
}
