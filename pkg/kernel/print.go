package kernel

import "fmt"

var operatorSymbols = map[Kind]string{
	KindPlus:  "+",
	KindMinus: "-",
	KindTimes: "*",
}

// String methods

func (n *InputNode) String() string {
	return "x"
}

func (n *ConstantNode) String() string {
	return fmt.Sprintf("%.4g", n.Value)
}

func (n *OperatorNode) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left.String(), operatorSymbols[n.Op], n.Right.String())
}

func (n *ChangepointNode) String() string {
	return fmt.Sprintf("cp(%.4g, %s, %s)", n.Location, n.Left.String(), n.Right.String())
}

// LaTeX methods

func (n *InputNode) LaTeX() string {
	return "x"
}

func (n *ConstantNode) LaTeX() string {
	return fmt.Sprintf("%.4g", n.Value)
}

func (n *OperatorNode) LaTeX() string {
	left := n.Left.LaTeX()
	right := n.Right.LaTeX()
	switch n.Op {
	case KindPlus:
		return fmt.Sprintf("{%s} + {%s}", left, right)
	case KindMinus:
		return fmt.Sprintf("{%s} - {%s}", left, right)
	case KindTimes:
		return fmt.Sprintf("{%s} \\cdot {%s}", left, right)
	default:
		return ""
	}
}

func (n *ChangepointNode) LaTeX() string {
	return fmt.Sprintf("\\mathrm{cp}_{%.4g}\\left(%s,\\; %s\\right)",
		n.Location, n.Left.LaTeX(), n.Right.LaTeX())
}
