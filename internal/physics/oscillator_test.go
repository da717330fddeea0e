package physics

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/wobbly/internal/dynamo"
	"github.com/san-kum/wobbly/internal/harmonic"
	"github.com/san-kum/wobbly/internal/integrators"
)

func TestOscillatorEquilibrium(t *testing.T) {
	osc := NewOscillator(harmonic.Standard)
	dx := osc.Derive(dynamo.State{1.0, 0.0}, 0)

	if dx[0] != 0 || dx[1] != 0 {
		t.Errorf("rest position should be an equilibrium, got %v", dx)
	}
}

func TestOscillatorInitialState(t *testing.T) {
	osc := NewOscillator(harmonic.Standard)
	x0 := osc.InitialState()

	h := 1e-7
	slope := harmonic.Evaluate(harmonic.Standard, h, false) / h
	if x0[0] != 0 {
		t.Errorf("expected start at 0, got %f", x0[0])
	}
	if math.Abs(x0[1]-slope) > 1e-3 {
		t.Errorf("initial velocity %f should match curve slope %f", x0[1], slope)
	}
}

func TestOscillatorUnderdamped(t *testing.T) {
	for _, wobbles := range []float64{0, 2, 4} {
		p, err := harmonic.Solve(wobbles, 0.2)
		if err != nil {
			t.Fatalf("solve failed: %v", err)
		}
		osc := NewOscillator(p)
		if z := osc.DampingRatio(); z <= 0 || z >= 1 {
			t.Errorf("wobbles %g: expected damping ratio in (0, 1), got %f", wobbles, z)
		}
	}
}

func TestOscillatorMatchesClosedForm(t *testing.T) {
	osc := NewOscillator(harmonic.Standard)
	sim := dynamo.New(osc, integrators.NewRK4())

	result, err := sim.Run(context.Background(), osc.InitialState(), dynamo.DefaultConfig())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for i, x := range result.States {
		expected := harmonic.Evaluate(harmonic.Standard, result.Times[i], false)
		if math.Abs(x[0]-expected) > 1e-6 {
			t.Fatalf("t=%.3f: integrated %f, closed form %f", result.Times[i], x[0], expected)
		}
	}

	if result.EnergyDrift >= 0 {
		t.Errorf("damped oscillator should lose energy, drift %f", result.EnergyDrift)
	}
}
