package physics

import (
	"math"

	"github.com/san-kum/wobbly/internal/dynamo"
	"github.com/san-kum/wobbly/internal/harmonic"
)

// Oscillator is a unit-mass damped spring pulling towards Rest.
type Oscillator struct {
	Omega float64
	Gamma float64
	Rest  float64
}

func NewOscillator(p harmonic.Params) *Oscillator {
	return &Oscillator{Omega: p.Omega, Gamma: p.Gamma, Rest: 1.0}
}

func (o *Oscillator) StateDim() int { return 2 }

// Stiffness is the spring constant for unit mass.
func (o *Oscillator) Stiffness() float64 {
	return o.Omega*o.Omega + o.Gamma*o.Gamma
}

// NaturalFrequency is the undamped angular frequency.
func (o *Oscillator) NaturalFrequency() float64 {
	return math.Sqrt(o.Stiffness())
}

// DampingRatio is zeta; below 1 the spring is underdamped and wobbles.
func (o *Oscillator) DampingRatio() float64 {
	return o.Gamma / o.NaturalFrequency()
}

// InitialState starts at zero with the velocity the curve has at t = 0.
func (o *Oscillator) InitialState() dynamo.State {
	return dynamo.State{0, o.Gamma}
}

func (o *Oscillator) Derive(x dynamo.State, t float64) dynamo.State {
	pos, vel := x[0], x[1]
	acc := -2*o.Gamma*vel - o.Stiffness()*(pos-o.Rest)
	return dynamo.State{vel, acc}
}

func (o *Oscillator) Energy(x dynamo.State) float64 {
	stretch := x[0] - o.Rest
	return 0.5*x[1]*x[1] + 0.5*o.Stiffness()*stretch*stretch
}

func (o *Oscillator) GetParams() map[string]float64 {
	return map[string]float64{"omega": o.Omega, "gamma": o.Gamma, "rest": o.Rest}
}
