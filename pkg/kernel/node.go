package kernel

import "fmt"

// Kind identifies a covariance-expression node kind.
type Kind int

const (
	KindInput Kind = iota
	KindConstant
	KindPlus
	KindMinus
	KindTimes
	KindChangepoint

	numKinds
)

// Kinds returns every node kind in production order.
func Kinds() []Kind {
	return []Kind{KindInput, KindConstant, KindPlus, KindMinus, KindTimes, KindChangepoint}
}

// NumKinds is the size of the closed kind space.
const NumKinds = int(numKinds)

// Arity returns the number of children a node of this kind carries.
// The kind space is closed; an out-of-range kind is a programming error
// and panics.
func (k Kind) Arity() int {
	switch k {
	case KindInput, KindConstant:
		return 0
	case KindPlus, KindMinus, KindTimes, KindChangepoint:
		return 2
	default:
		panic(fmt.Sprintf("invalid kind %d", int(k)))
	}
}

// Operator reports whether the kind is one of the arithmetic combinators.
func (k Kind) Operator() bool {
	return k == KindPlus || k == KindMinus || k == KindTimes
}

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindConstant:
		return "constant"
	case KindPlus:
		return "plus"
	case KindMinus:
		return "minus"
	case KindTimes:
		return "times"
	case KindChangepoint:
		return "changepoint"
	default:
		return "unknown"
	}
}

// Node is the interface for all covariance-expression tree nodes.
// Nodes are immutable after construction and own their children.
type Node interface {
	Eval(x float64) float64
	Size() int
	String() string
	LaTeX() string
}

// InputNode is the identity function of the scalar input.
type InputNode struct{}

// ConstantNode is a constant covariance value drawn at creation time.
type ConstantNode struct {
	Value float64
}

// OperatorNode combines two children with an arithmetic operator
// (Op is one of KindPlus, KindMinus, KindTimes).
type OperatorNode struct {
	Op          Kind
	Left, Right Node

	size int
}

// ChangepointNode selects one of its children by comparing the input
// against Location.
type ChangepointNode struct {
	Location    float64
	Left, Right Node

	size int
}

// NewOperator builds an arithmetic combinator node, caching its subtree size.
func NewOperator(op Kind, left, right Node) *OperatorNode {
	return &OperatorNode{
		Op:    op,
		Left:  left,
		Right: right,
		size:  1 + left.Size() + right.Size(),
	}
}

// NewChangepoint builds a changepoint node, caching its subtree size.
func NewChangepoint(location float64, left, right Node) *ChangepointNode {
	return &ChangepointNode{
		Location: location,
		Left:     left,
		Right:    right,
		size:     1 + left.Size() + right.Size(),
	}
}
