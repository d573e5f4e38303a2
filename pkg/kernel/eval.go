package kernel

// Eval for InputNode returns x.
func (n *InputNode) Eval(x float64) float64 {
	return x
}

// Eval for ConstantNode returns the stored value.
func (n *ConstantNode) Eval(x float64) float64 {
	return n.Value
}

// Eval for OperatorNode evaluates both children and combines them.
func (n *OperatorNode) Eval(x float64) float64 {
	left := n.Left.Eval(x)
	right := n.Right.Eval(x)

	switch n.Op {
	case KindPlus:
		return left + right
	case KindMinus:
		return left - right
	case KindTimes:
		return left * right
	default:
		// Unreachable: constructors only accept operator kinds.
		return 0
	}
}

// Eval for ChangepointNode evaluates exactly one branch. The untaken
// branch must not be evaluated.
func (n *ChangepointNode) Eval(x float64) float64 {
	if x < n.Location {
		return n.Left.Eval(x)
	}
	return n.Right.Eval(x)
}
