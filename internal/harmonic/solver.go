package harmonic

import (
	"fmt"
	"math"
	"strings"
)

const (
	DefaultStep          = 0.01
	DefaultMaxIterations = 10000
)

// Policy selects how the damping search scores a proposed gamma.
type Policy int

const (
	// PolicyConsistent scores a proposed gamma at its own first peak.
	PolicyConsistent Policy = iota
	// PolicyLegacy scores the previously accepted gamma, lagging one step
	// behind. It reproduces the published Standard constants bit for bit.
	PolicyLegacy
)

func (p Policy) String() string {
	switch p {
	case PolicyConsistent:
		return "consistent"
	case PolicyLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "consistent":
		return PolicyConsistent, nil
	case "legacy":
		return PolicyLegacy, nil
	}
	return 0, fmt.Errorf("unknown search policy: %s", s)
}

// Solver derives oscillator constants from a wobble count and an overshoot.
// The zero value is usable and behaves like DefaultSolver.
type Solver struct {
	Step          float64
	MaxIterations int
	Policy        Policy
}

func DefaultSolver() Solver {
	return Solver{
		Step:          DefaultStep,
		MaxIterations: DefaultMaxIterations,
		Policy:        PolicyConsistent,
	}
}

// Solve runs DefaultSolver.
func Solve(wobbles, overshoot float64) (Params, error) {
	return DefaultSolver().Solve(wobbles, overshoot)
}

// MustSolve is like Solve but panics on error. Use it for package-level presets.
func MustSolve(wobbles, overshoot float64) Params {
	p, err := Solve(wobbles, overshoot)
	if err != nil {
		panic(err)
	}
	return p
}

func (s Solver) Solve(wobbles, overshoot float64) (Params, error) {
	req := Request{Wobbles: wobbles, Overshoot: overshoot}
	if err := req.Validate(); err != nil {
		return Params{}, err
	}

	omega := CalculateOmega(wobbles)
	gamma, iterations, err := s.searchGamma(omega, overshoot)
	if err != nil {
		return Params{}, &SolveError{
			Wobbles:   wobbles,
			Overshoot: overshoot,
			Reason:    fmt.Sprintf("gave up after %d steps", iterations),
			Wrapped:   err,
		}
	}
	return Params{Omega: omega, Gamma: gamma}, nil
}

// CalculateOmega maps a wobble count to angular frequency so that the curve
// is at rest at t = 1. The first quarter cycle is the rise to the first peak;
// each wobble after it is half a period.
func CalculateOmega(wobbles float64) float64 {
	fullOscillations := wobbles/2.0 + 0.75
	return 2.0 * math.Pi * fullOscillations
}

// TuningTime returns the time of the first extremum after t = 0, the root of
// d/dt (1 - exp(-gamma*t) * cos(omega*t)) = 0.
func TuningTime(omega, gamma float64) float64 {
	return 2*math.Atan(omega/gamma-math.Sqrt(gamma*gamma+omega*omega)/gamma)/omega + math.Pi/omega
}

func interpolate(omega, gamma, t float64) float64 {
	return 1 - math.Exp(-gamma*t)*math.Cos(omega*t)
}

func overshootAt(omega, gamma float64) float64 {
	return interpolate(omega, gamma, TuningTime(omega, gamma)) - 1
}

// searchGamma walks gamma in fixed steps from a naive estimate and keeps the
// last value that brought the first peak closer to the wanted overshoot.
// The returned count is the number of accepted steps.
func (s Solver) searchGamma(omega, overshoot float64) (float64, int, error) {
	step := s.Step
	if step <= 0 {
		step = DefaultStep
	}
	maxIterations := s.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	// Undamped, the first peak sits half a period in.
	peakTime := math.Pi / omega
	gamma := -math.Log(overshoot) / peakTime

	// The legacy search measures the first peak from zero instead of from rest.
	measured := overshootAt(omega, gamma)
	if s.Policy == PolicyLegacy {
		measured++
	}
	deviation := math.Abs(overshoot - measured)

	// Too much overshoot means too little damping.
	sign := -1.0
	if measured > overshoot {
		sign = 1.0
	}

	for accepted := 0; ; accepted++ {
		if accepted >= maxIterations {
			return gamma, accepted, ErrNoConvergence
		}

		proposed := gamma + sign*step
		if proposed <= 0 {
			return gamma, accepted, nil
		}

		scored := proposed
		if s.Policy == PolicyLegacy {
			scored = gamma
		}

		d := math.Abs(overshoot - overshootAt(omega, scored))
		if d >= deviation {
			return gamma, accepted, nil
		}
		gamma, deviation = proposed, d
	}
}
