package kernel

// Size for leaves is always 1; binary nodes return the value cached at
// construction, so every lookup is O(1).

func (n *InputNode) Size() int       { return 1 }
func (n *ConstantNode) Size() int    { return 1 }
func (n *OperatorNode) Size() int    { return n.size }
func (n *ChangepointNode) Size() int { return n.size }

// Depth returns the height of the subtree rooted at node.
func Depth(node Node) int {
	switch n := node.(type) {
	case *OperatorNode:
		return 1 + maxInt(Depth(n.Left), Depth(n.Right))
	case *ChangepointNode:
		return 1 + maxInt(Depth(n.Left), Depth(n.Right))
	default:
		return 1
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
