package engine

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/wildfunctions/covariance_trees/pkg/gen"
	"github.com/wildfunctions/covariance_trees/pkg/kernel"
)

// SampleEntry summarizes one sampled kernel.
type SampleEntry struct {
	TraceID string    `json:"trace_id"`
	Kernel  string    `json:"kernel"`
	LaTeX   string    `json:"latex"`
	Score   float64   `json:"score"`
	Size    int       `json:"size"`
	Evals   []float64 `json:"evals,omitempty"`
}

// SampleReport summarizes a sampling run.
type SampleReport struct {
	Config  Config        `json:"config"`
	Entries []SampleEntry `json:"entries"`
}

// WalkStep records one incremental proposal.
type WalkStep struct {
	Step     int     `json:"step"`
	Position string  `json:"position"`
	Weight   float64 `json:"weight"`
	Accepted bool    `json:"accepted"`
	Score    float64 `json:"score"`
	Size     int     `json:"size"`
	Kernel   string  `json:"kernel"`
}

// WalkReport summarizes a regeneration walk.
type WalkReport struct {
	Config     Config      `json:"config"`
	Steps      int         `json:"steps"`
	Accepted   int         `json:"accepted"`
	AcceptRate float64     `json:"accept_rate"`
	Final      SampleEntry `json:"final"`
	History    []WalkStep  `json:"history,omitempty"`
}

func newEntry(node kernel.Node, tr *gen.Trace, evalPoints []float64) SampleEntry {
	entry := SampleEntry{
		TraceID: tr.ID.String(),
		Kernel:  node.String(),
		LaTeX:   node.LaTeX(),
		Score:   tr.Score,
		Size:    node.Size(),
	}
	for _, x := range evalPoints {
		entry.Evals = append(entry.Evals, node.Eval(x))
	}
	return entry
}

// WriteTextSample writes a sampling report in human-readable format.
func WriteTextSample(w io.Writer, r SampleReport) {
	for i, e := range r.Entries {
		fmt.Fprintf(w, "#%d | score %8.3f | size %2d | %s\n", i+1, e.Score, e.Size, e.Kernel)
		for j, x := range r.Config.EvalPoints {
			fmt.Fprintf(w, "     k(%g) = %g\n", x, e.Evals[j])
		}
	}
}

// WriteTextWalk writes a walk report in human-readable format.
func WriteTextWalk(w io.Writer, r WalkReport) {
	for _, s := range r.History {
		status := "reject"
		if s.Accepted {
			status = "accept"
		}
		fmt.Fprintf(w, "step %4d | pos %-6s | weight %8.3f | %s | %s\n",
			s.Step, s.Position, s.Weight, status, s.Kernel)
	}
	fmt.Fprintln(w, "========== WALK RESULT ==========")
	fmt.Fprintf(w, "Profile:   %s\n", r.Config.Profile)
	fmt.Fprintf(w, "Policy:    %s\n", r.Config.Policy)
	fmt.Fprintf(w, "Steps:     %d (accepted %d, rate %.2f)\n", r.Steps, r.Accepted, r.AcceptRate)
	fmt.Fprintf(w, "Kernel:    %s\n", r.Final.Kernel)
	fmt.Fprintf(w, "LaTeX:     %s\n", r.Final.LaTeX)
	fmt.Fprintf(w, "Score:     %.4f\n", r.Final.Score)
	fmt.Fprintf(w, "Size:      %d\n", r.Final.Size)
	fmt.Fprintln(w, "=================================")
}

// WriteJSON writes any report as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
