// Package engine drives the sampling and regeneration-walk loops around
// the generator core.
package engine

import (
	"log/slog"
	"math"
	"time"

	"golang.org/x/exp/rand"

	"github.com/wildfunctions/covariance_trees/pkg/dist"
	"github.com/wildfunctions/covariance_trees/pkg/gen"
	"github.com/wildfunctions/covariance_trees/pkg/prior"
	"github.com/wildfunctions/covariance_trees/pkg/walk"
)

// Engine runs sampling and walk loops over one generator.
type Engine struct {
	cfg    Config
	gen    *gen.Generator
	policy walk.Policy
	rng    *rand.Rand
	log    *slog.Logger
}

// New creates an engine from the given config. A nil logger falls back to
// slog.Default.
func New(cfg Config, logger *slog.Logger) (*Engine, error) {
	p, err := prior.Get(cfg.Profile)
	if err != nil {
		return nil, err
	}
	pol, err := walk.Get(cfg.Policy)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	cfg.Seed = seed

	return &Engine{
		cfg:    cfg,
		gen:    gen.New(p, dist.NewSource(seed)),
		policy: pol,
		rng:    rand.New(rand.NewSource(seed + 1)),
		log:    logger,
	}, nil
}

// RunSample draws cfg.Samples independent kernels.
func (e *Engine) RunSample() (SampleReport, error) {
	report := SampleReport{Config: e.cfg}

	for i := 0; i < e.cfg.Samples; i++ {
		node, tr, err := e.gen.SampleKernel()
		if err != nil {
			return report, err
		}
		entry := newEntry(node, tr, e.cfg.EvalPoints)
		report.Entries = append(report.Entries, entry)

		if e.cfg.Verbose {
			e.log.Info("sampled kernel",
				"sample", i,
				"trace", tr.ID.String(),
				"score", tr.Score,
				"size", node.Size(),
				"kernel", node.String())
		}
	}
	return report, nil
}

// RunWalk generates one kernel and then runs cfg.Steps incremental steps:
// pick a position, regenerate the subtree there, and accept the proposal
// with probability min(1, exp(weight)). Rejected proposals leave the
// current trace untouched.
func (e *Engine) RunWalk() (WalkReport, error) {
	report := WalkReport{Config: e.cfg}

	tr, err := e.gen.Generate(gen.RootPos)
	if err != nil {
		return report, err
	}
	e.log.Info("walk start",
		"trace", tr.ID.String(),
		"score", tr.Score,
		"size", tr.RootNode().Size(),
		"kernel", tr.RootNode().String())

	for step := 0; step < e.cfg.Steps; step++ {
		pos := e.policy.Pick(tr, e.rng)
		next, weight, _, _, err := e.gen.Regenerate(tr, pos)
		if err != nil {
			return report, err
		}

		accepted := e.rng.Float64() < math.Exp(math.Min(0, weight))
		if accepted {
			tr = next
			report.Accepted++
		}

		if e.cfg.Verbose {
			ws := WalkStep{
				Step:     step,
				Position: pos.String(),
				Weight:   weight,
				Accepted: accepted,
				Score:    tr.Score,
				Size:     tr.RootNode().Size(),
				Kernel:   tr.RootNode().String(),
			}
			report.History = append(report.History, ws)
			e.log.Debug("walk step",
				"step", step,
				"position", pos.String(),
				"weight", weight,
				"accepted", accepted,
				"size", ws.Size)
		}
	}

	report.Steps = e.cfg.Steps
	if report.Steps > 0 {
		report.AcceptRate = float64(report.Accepted) / float64(report.Steps)
	}
	report.Final = newEntry(tr.RootNode(), tr, e.cfg.EvalPoints)

	e.log.Info("walk done",
		"steps", report.Steps,
		"accepted", report.Accepted,
		"accept_rate", report.AcceptRate,
		"final_score", tr.Score,
		"final_kernel", tr.RootNode().String())
	return report, nil
}
