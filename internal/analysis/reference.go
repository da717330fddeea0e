package analysis

import (
	"context"
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/san-kum/wobbly/internal/dynamo"
	"github.com/san-kum/wobbly/internal/harmonic"
	"github.com/san-kum/wobbly/internal/integrators"
	"github.com/san-kum/wobbly/internal/physics"
	"github.com/san-kum/wobbly/internal/sample"
)

// Report compares a reference trajectory with the closed-form curve.
type Report struct {
	Method   string  `json:"method"`
	Samples  int     `json:"samples"`
	MaxError float64 `json:"max_error"`
}

// SpringReference steps the oscillator with harmonica's analytic spring.
func SpringReference(p harmonic.Params, n int) ([]sample.Point, error) {
	if n < 2 {
		return nil, ErrTooFewPoints
	}

	osc := physics.NewOscillator(p)
	dt := 1.0 / float64(n-1)
	spring := harmonica.NewSpring(dt, osc.NaturalFrequency(), osc.DampingRatio())

	x0 := osc.InitialState()
	pos, vel := x0[0], x0[1]
	points := make([]sample.Point, n)
	points[0] = sample.Point{Progress: 0, Value: pos}
	for i := 1; i < n; i++ {
		pos, vel = spring.Update(pos, vel, osc.Rest)
		points[i] = sample.Point{Progress: float64(i) * dt, Value: pos}
	}
	return points, nil
}

// CompareSpring measures how far the harmonica spring drifts from the curve.
func CompareSpring(p harmonic.Params, n int) (Report, error) {
	points, err := SpringReference(p, n)
	if err != nil {
		return Report{}, err
	}
	return Report{Method: "harmonica", Samples: n, MaxError: maxError(p, points)}, nil
}

// CompareODE integrates the oscillator with the named integrator and measures
// its deviation from the curve.
func CompareODE(ctx context.Context, p harmonic.Params, integrator string, dt float64) (Report, error) {
	integ, err := integrators.Get(integrator)
	if err != nil {
		return Report{}, err
	}

	osc := physics.NewOscillator(p)
	cfg := dynamo.DefaultConfig()
	cfg.Dt = dt

	result, err := dynamo.New(osc, integ).Run(ctx, osc.InitialState(), cfg)
	if err != nil {
		return Report{}, err
	}

	points := make([]sample.Point, len(result.States))
	for i, x := range result.States {
		points[i] = sample.Point{Progress: result.Times[i], Value: x[0]}
	}
	return Report{Method: integrator, Samples: len(points), MaxError: maxError(p, points)}, nil
}

func maxError(p harmonic.Params, points []sample.Point) float64 {
	worst := 0.0
	for _, pt := range points {
		worst = math.Max(worst, math.Abs(pt.Value-harmonic.Evaluate(p, pt.Progress, false)))
	}
	return worst
}
