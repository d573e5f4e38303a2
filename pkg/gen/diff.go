package gen

// ChildDiff marks what a regeneration did to one child subtree.
type ChildDiff int

const (
	// DiffInitial marks a first-ever generation, where no previous
	// subtree exists to compare against. Distinct from DiffUnchanged.
	DiffInitial ChildDiff = iota
	DiffUnchanged
	DiffChanged
)

func (d ChildDiff) String() string {
	switch d {
	case DiffInitial:
		return "initial"
	case DiffUnchanged:
		return "unchanged"
	default:
		return "changed"
	}
}

// RetDiff reports, per child index of the regenerated position, whether the
// child subtree was reused by reference or freshly produced. Consumers use
// it to skip recomputation downstream of unchanged children.
type RetDiff struct {
	Initial  bool
	Children map[int]ChildDiff
}

func initialDiff() RetDiff {
	return RetDiff{Initial: true}
}

// Child returns the diff for the i-th child, or DiffInitial for a
// first-ever generation.
func (d RetDiff) Child(i int) ChildDiff {
	if d.Initial {
		return DiffInitial
	}
	if s, ok := d.Children[i]; ok {
		return s
	}
	return DiffUnchanged
}
