package gen

import (
	"sort"

	"github.com/wildfunctions/covariance_trees/pkg/kernel"
)

// ChoiceType identifies the variant of a recorded choice.
type ChoiceType int

const (
	// ChoiceKind is the categorical node-kind draw made by production.
	ChoiceKind ChoiceType = iota
	// ChoiceParam is the real-valued parameter draw made by aggregation
	// for Constant and Changepoint nodes.
	ChoiceParam
)

// Choice records one random draw and its log-probability.
type Choice struct {
	Type    ChoiceType
	Kind    kernel.Kind // valid when Type == ChoiceKind
	Param   float64     // valid when Type == ChoiceParam
	LogProb float64
}

// ChoiceMap is an address-keyed set of recorded choices.
type ChoiceMap map[Address]Choice

// Addresses returns the map's addresses ordered by position (shallow
// before deep, siblings left to right), production before aggregation.
func (m ChoiceMap) Addresses() []Address {
	addrs := make([]Address, 0, len(m))
	for a := range m {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool {
		if addrs[i].Pos != addrs[j].Pos {
			return positionLess(addrs[i].Pos, addrs[j].Pos)
		}
		return addrs[i].Phase < addrs[j].Phase
	})
	return addrs
}

// Score returns the summed log-probability of every choice in the map.
func (m ChoiceMap) Score() float64 {
	var total float64
	for _, c := range m {
		total += c.LogProb
	}
	return total
}
