// Package prior defines named production profiles: the categorical weights
// over node kinds used by the production step, plus the distribution of
// node-local parameters drawn during aggregation.
package prior

import (
	"fmt"
	"math"

	"github.com/wildfunctions/covariance_trees/pkg/kernel"
)

// Profile holds the stochastic building blocks for one generation regime.
type Profile struct {
	name    string
	weights []float64 // indexed by kernel.Kind

	// Parameters for Constant values and Changepoint locations.
	ParamMean float64
	ParamStd  float64
}

// Name returns the profile's registry name.
func (p *Profile) Name() string { return p.name }

// Weights returns the kind weights, indexed by kernel.Kind. Callers must
// not mutate the returned slice.
func (p *Profile) Weights() []float64 { return p.weights }

// Weight returns the production weight of a single kind.
func (p *Profile) Weight(k kernel.Kind) float64 { return p.weights[k] }

var registry = map[string]func() *Profile{}

// Register adds a profile constructor to the registry. The profile's kind
// weights must cover every kind, sum to 1, and put strictly less than half
// the mass on binary kinds: the recursion branches twice per binary node,
// so binary mass >= 1/2 makes the expected tree size infinite.
func Register(name string, constructor func() *Profile) {
	p := constructor()
	if len(p.weights) != kernel.NumKinds {
		panic(fmt.Sprintf("profile %s: %d weights for %d kinds", name, len(p.weights), kernel.NumKinds))
	}
	var sum, binary float64
	for k, w := range p.weights {
		sum += w
		if kernel.Kind(k).Arity() == 2 {
			binary += w
		}
	}
	if math.Abs(sum-1) > 1e-9 {
		panic(fmt.Sprintf("profile %s: weights sum to %v, want 1", name, sum))
	}
	if binary >= 0.5 {
		panic(fmt.Sprintf("profile %s: binary-kind mass %v, want < 0.5", name, binary))
	}
	registry[name] = constructor
}

// Get returns a profile by name.
func Get(name string) (*Profile, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown profile: %s", name)
	}
	return ctor(), nil
}

// Names returns all registered profile names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	return names
}

func init() {
	// Leaves carry most of the mass so trees stay small; the remaining
	// 0.2 is split evenly over the four binary kinds.
	Register("default", func() *Profile {
		return &Profile{
			name:      "default",
			weights:   []float64{0.40, 0.40, 0.05, 0.05, 0.05, 0.05},
			ParamMean: 0,
			ParamStd:  3,
		}
	})

	// Heavier operator mass for deeper, more structured kernels, while
	// staying below the 0.5 binary-mass ceiling.
	Register("branchy", func() *Profile {
		return &Profile{
			name:      "branchy",
			weights:   []float64{0.30, 0.30, 0.08, 0.08, 0.08, 0.16},
			ParamMean: 0,
			ParamStd:  3,
		}
	})
}
