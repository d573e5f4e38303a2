package gen

import "fmt"

// Position identifies a node's location as the path of child indices from
// the generation root; the root itself is the empty path. Paths grow one
// byte per level, so depth is bounded only by memory, and they double as
// stable identifiers across regenerations: sibling order is load-bearing.
type Position string

// Child returns the position of the i-th child of p.
func (p Position) Child(i int) Position {
	return Position(append([]byte(p), byte('0'+i)))
}

// Parent returns the position of p's parent; the root is its own parent.
func (p Position) Parent() Position {
	if p == "" {
		return p
	}
	return p[:len(p)-1]
}

// Under reports whether p lies in the subtree rooted at root (a position
// is under itself).
func (p Position) Under(root Position) bool {
	return len(p) >= len(root) && p[:len(root)] == root
}

// Depth returns the number of levels between p and the generation root.
func (p Position) Depth() int {
	return len(p)
}

func (p Position) String() string {
	if p == "" {
		return "root"
	}
	return string(p)
}

// positionLess orders positions by depth, then siblings left to right.
func positionLess(a, b Position) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// Phase distinguishes the two choice points at one position.
type Phase int

const (
	PhaseProduction Phase = iota
	PhaseAggregation
)

func (p Phase) String() string {
	if p == PhaseProduction {
		return "production"
	}
	return "aggregation"
}

// Address identifies one random choice in a trace.
type Address struct {
	Pos   Position
	Phase Phase
}

func (a Address) String() string {
	return fmt.Sprintf("(%s, %s)", a.Pos, a.Phase)
}
