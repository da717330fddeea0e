// Package optim searches a grid of curve requests for the one whose sampled
// shape best matches an objective.
package optim

import (
	"context"
	"errors"
	"math"

	"github.com/san-kum/wobbly/internal/dynamo"
	"github.com/san-kum/wobbly/internal/harmonic"
	"github.com/san-kum/wobbly/internal/sample"
)

var ErrNoCandidate = errors.New("optim: no grid point could be solved")

// Objective scores sampled stats; lower is better.
type Objective func(sample.Stats) float64

type Solver interface {
	Solve(wobbles, overshoot float64) (harmonic.Params, error)
}

type GridSearch struct {
	Wobbles    []float64
	Overshoots []float64
	Points     int
}

type Candidate struct {
	Request harmonic.Request
	Params  harmonic.Params
	Stats   sample.Stats
	Score   float64
}

func NewGridSearch(wobbles, overshoots []float64) *GridSearch {
	return &GridSearch{Wobbles: wobbles, Overshoots: overshoots, Points: sample.DefaultPoints}
}

// Span returns n evenly spaced values from lo to hi inclusive.
func Span(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

// Search solves and scores every grid point. Points the solver rejects are
// skipped. Ties keep the earliest point in wobbles-major order.
func (g *GridSearch) Search(ctx context.Context, solver Solver, objective Objective) (Candidate, error) {
	n := len(g.Wobbles) * len(g.Overshoots)
	if n == 0 {
		return Candidate{}, ErrNoCandidate
	}
	points := g.Points
	if points < 2 {
		points = sample.DefaultPoints
	}

	results := make([]*Candidate, n)
	dynamo.ParallelFor(n, 1, func(start, end int) {
		for i := start; i < end; i++ {
			if ctx.Err() != nil {
				return
			}
			req := harmonic.Request{
				Wobbles:   g.Wobbles[i/len(g.Overshoots)],
				Overshoot: g.Overshoots[i%len(g.Overshoots)],
			}
			results[i] = evaluate(solver, req, points, objective)
		}
	})
	if err := ctx.Err(); err != nil {
		return Candidate{}, err
	}

	var best *Candidate
	for _, c := range results {
		if c != nil && (best == nil || c.Score < best.Score) {
			best = c
		}
	}
	if best == nil {
		return Candidate{}, ErrNoCandidate
	}
	return *best, nil
}

func evaluate(solver Solver, req harmonic.Request, points int, objective Objective) *Candidate {
	params, err := solver.Solve(req.Wobbles, req.Overshoot)
	if err != nil {
		return nil
	}
	pts, err := sample.Sample(harmonic.NewCurve(params), points)
	if err != nil {
		return nil
	}
	stats := sample.Measure(pts)
	score := objective(stats)
	if math.IsNaN(score) {
		return nil
	}
	return &Candidate{Request: req, Params: params, Stats: stats, Score: score}
}

// Target builds an objective from desired stats. Zero fields are ignored.
type Target struct {
	Settle    float64
	Crossings int
	Trough    float64
}

func (t Target) Objective() Objective {
	return func(s sample.Stats) float64 {
		score := 0.0
		if t.Settle > 0 {
			score += math.Abs(s.SettleProgress - t.Settle)
		}
		if t.Crossings > 0 {
			score += math.Abs(float64(s.Crossings - t.Crossings))
		}
		if t.Trough != 0 {
			score += math.Abs(s.Trough - t.Trough)
		}
		return score
	}
}
