package kernel

import (
	"math"
	"testing"
)

func assertEval(t *testing.T, node Node, x, expected float64) {
	t.Helper()
	got := node.Eval(x)
	if math.Abs(got-expected) > 1e-12 {
		t.Errorf("Eval(%v) = %v, want %v", x, got, expected)
	}
}

// trapNode fails the test if it is ever evaluated. Used to verify that
// changepoints never touch the untaken branch.
type trapNode struct {
	t *testing.T
}

func (n *trapNode) Eval(x float64) float64 {
	n.t.Errorf("untaken branch evaluated at x=%v", x)
	return 0
}
func (n *trapNode) Size() int      { return 1 }
func (n *trapNode) String() string { return "trap" }
func (n *trapNode) LaTeX() string  { return "trap" }

func TestInputNode(t *testing.T) {
	n := &InputNode{}
	assertEval(t, n, 5, 5)
	assertEval(t, n, -2.5, -2.5)
	assertEval(t, n, 0, 0)

	if n.String() != "x" {
		t.Errorf("InputNode.String() = %q, want \"x\"", n.String())
	}
	if n.Size() != 1 {
		t.Errorf("InputNode.Size() = %d, want 1", n.Size())
	}
}

func TestConstantNode(t *testing.T) {
	c := &ConstantNode{Value: 7.25}
	assertEval(t, c, 99, 7.25)
	assertEval(t, c, -99, 7.25)

	if c.Size() != 1 {
		t.Errorf("ConstantNode.Size() = %d, want 1", c.Size())
	}
}

func TestOperatorNodes(t *testing.T) {
	x := &InputNode{}
	two := &ConstantNode{Value: 2}

	assertEval(t, NewOperator(KindPlus, x, two), 3, 5)
	assertEval(t, NewOperator(KindMinus, x, two), 5, 3)
	assertEval(t, NewOperator(KindTimes, x, two), 4, 8)
}

func TestChangepointBranching(t *testing.T) {
	left := &ConstantNode{Value: 1}
	right := &ConstantNode{Value: 2}
	cp := NewChangepoint(0.5, left, right)

	assertEval(t, cp, 0, 1)    // x < location
	assertEval(t, cp, 0.5, 2)  // x == location takes the right branch
	assertEval(t, cp, 10.0, 2) // x > location
}

func TestChangepointShortCircuit(t *testing.T) {
	// x < location: only the left branch may run.
	cp := NewChangepoint(3.0, &ConstantNode{Value: 1}, &trapNode{t: t})
	assertEval(t, cp, 0, 1)

	// x >= location: only the right branch may run.
	cp = NewChangepoint(3.0, &trapNode{t: t}, &ConstantNode{Value: 2})
	assertEval(t, cp, 3.0, 2)
	assertEval(t, cp, 100, 2)
}

func TestSizeCaching(t *testing.T) {
	// (x + 2) * cp(0, x, 5) has 7 nodes.
	tree := NewOperator(KindTimes,
		NewOperator(KindPlus, &InputNode{}, &ConstantNode{Value: 2}),
		NewChangepoint(0, &InputNode{}, &ConstantNode{Value: 5}),
	)
	if tree.Size() != 7 {
		t.Errorf("Size() = %d, want 7", tree.Size())
	}
	if got := checkSizes(t, tree); got != 7 {
		t.Errorf("live count = %d, want 7", got)
	}
	if Depth(tree) != 3 {
		t.Errorf("Depth() = %d, want 3", Depth(tree))
	}
}

// checkSizes verifies the cached-size invariant recursively and returns
// the live node count of the subtree.
func checkSizes(t *testing.T, node Node) int {
	t.Helper()
	var live int
	switch n := node.(type) {
	case *OperatorNode:
		live = 1 + checkSizes(t, n.Left) + checkSizes(t, n.Right)
	case *ChangepointNode:
		live = 1 + checkSizes(t, n.Left) + checkSizes(t, n.Right)
	default:
		live = 1
	}
	if node.Size() != live {
		t.Errorf("cached size %d != live count %d for %s", node.Size(), live, node.String())
	}
	return live
}

func TestKindArity(t *testing.T) {
	for _, k := range Kinds() {
		want := 2
		if k == KindInput || k == KindConstant {
			want = 0
		}
		if k.Arity() != want {
			t.Errorf("%s.Arity() = %d, want %d", k, k.Arity(), want)
		}
	}
	if len(Kinds()) != NumKinds {
		t.Errorf("Kinds() has %d entries, want %d", len(Kinds()), NumKinds)
	}
}

func TestKindArityInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Arity() accepted an out-of-range kind")
		}
	}()
	Kind(99).Arity()
}
