package gen

import "github.com/wildfunctions/covariance_trees/pkg/kernel"

// RootPos is the position at which complete kernels are rooted: the empty
// path.
const RootPos Position = ""

// SampleKernel generates one complete covariance kernel at the root
// position, returning the tree, its trace, and the trace's score. The same
// recursion, invoked through Generate with an explicit root, produces
// candidate replacement subtrees for the incremental path.
func (g *Generator) SampleKernel() (kernel.Node, *Trace, error) {
	tr, err := g.Generate(RootPos)
	if err != nil {
		return nil, nil, err
	}
	return tr.RootNode(), tr, nil
}
