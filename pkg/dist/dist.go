// Package dist wraps the probability primitives the generator draws from:
// a categorical distribution over node kinds and a normal distribution for
// node-local parameters. Sampling goes through the Source interface so a
// test can script the exact sequence of draws.
package dist

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source produces random draws. Implementations consume entropy but have
// no other side effects.
type Source interface {
	// Categorical returns an index in [0, len(weights)) drawn with the
	// given (normalized) weights.
	Categorical(weights []float64) int
	// Normal returns a draw from Normal(mu, sigma).
	Normal(mu, sigma float64) float64
}

// RandSource is the production Source, backed by a seeded PRNG.
type RandSource struct {
	src rand.Source
}

// NewSource returns a RandSource seeded with seed.
func NewSource(seed uint64) *RandSource {
	return &RandSource{src: rand.NewSource(seed)}
}

// Categorical draws one outcome index with the given weights.
func (s *RandSource) Categorical(weights []float64) int {
	cat := distuv.NewCategorical(weights, s.src)
	return int(cat.Rand())
}

// Normal draws one value from Normal(mu, sigma).
func (s *RandSource) Normal(mu, sigma float64) float64 {
	n := distuv.Normal{Mu: mu, Sigma: sigma, Src: s.src}
	return n.Rand()
}

// CategoricalLogProb returns the log-probability of outcome k under the
// given weights.
func CategoricalLogProb(weights []float64, k int) float64 {
	cat := distuv.NewCategorical(weights, nil)
	return cat.LogProb(float64(k))
}

// NormalLogProb returns the log-density of x under Normal(mu, sigma).
func NormalLogProb(mu, sigma, x float64) float64 {
	n := distuv.Normal{Mu: mu, Sigma: sigma}
	return n.LogProb(x)
}
