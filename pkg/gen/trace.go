package gen

import (
	"sort"

	"github.com/google/uuid"

	"github.com/wildfunctions/covariance_trees/pkg/kernel"
)

// Trace is the full record of one generation: every random choice keyed by
// address, the materialized subtree at every position, and the cumulative
// log-probability of all choices. A trace is never mutated once its
// generation completes; regeneration produces a fresh trace that shares
// untouched subtrees with the old one.
type Trace struct {
	ID      uuid.UUID
	Root    Position
	Choices ChoiceMap
	Nodes   map[Position]kernel.Node
	Score   float64
}

func newTrace(root Position) *Trace {
	return &Trace{
		ID:      uuid.New(),
		Root:    root,
		Choices: ChoiceMap{},
		Nodes:   map[Position]kernel.Node{},
	}
}

// record stores one choice and folds its log-probability into the score.
func (t *Trace) record(addr Address, c Choice) {
	t.Choices[addr] = c
	t.Score += c.LogProb
}

// RootNode returns the materialized tree at the trace's root position.
func (t *Trace) RootNode() kernel.Node {
	return t.Nodes[t.Root]
}

// Positions returns every materialized position, shallow before deep,
// siblings left to right.
func (t *Trace) Positions() []Position {
	ps := make([]Position, 0, len(t.Nodes))
	for p := range t.Nodes {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool { return positionLess(ps[i], ps[j]) })
	return ps
}

// ChoicesUnder returns the choices recorded at or below pos.
func (t *Trace) ChoicesUnder(pos Position) ChoiceMap {
	m := ChoiceMap{}
	for addr, c := range t.Choices {
		if addr.Pos.Under(pos) {
			m[addr] = c
		}
	}
	return m
}

// SubtreeScore returns the summed log-probability of the choices recorded
// at or below pos.
func (t *Trace) SubtreeScore(pos Position) float64 {
	var total float64
	for addr, c := range t.Choices {
		if addr.Pos.Under(pos) {
			total += c.LogProb
		}
	}
	return total
}
