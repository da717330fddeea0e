package harmonic

import "math"

// Params are the physical constants of a curve. They fully determine its shape.
type Params struct {
	Omega float64 `json:"omega" yaml:"omega" toml:"omega"`
	Gamma float64 `json:"gamma" yaml:"gamma" toml:"gamma"`
}

// Valid reports whether both constants are finite and strictly positive.
func (p Params) Valid() bool {
	for _, v := range []float64{p.Omega, p.Gamma} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return false
		}
	}
	return true
}

// PeakTime is the progress at which the forward curve reaches its first extremum.
func (p Params) PeakTime() float64 {
	return TuningTime(p.Omega, p.Gamma)
}

// Overshoot is the amount by which the first peak exceeds the rest position.
func (p Params) Overshoot() float64 {
	return overshootAt(p.Omega, p.Gamma)
}

// Request is the human-facing description of a curve.
type Request struct {
	Wobbles   float64 `json:"wobbles" yaml:"wobbles" toml:"wobbles"`
	Overshoot float64 `json:"overshoot" yaml:"overshoot" toml:"overshoot"`
}

func (r Request) Validate() error {
	switch {
	case math.IsNaN(r.Wobbles) || math.IsInf(r.Wobbles, 0):
		return r.invalid("wobbles must be finite")
	case r.Wobbles < 0:
		return r.invalid("wobbles must not be negative")
	case math.IsNaN(r.Overshoot):
		return r.invalid("overshoot must be a number")
	case r.Overshoot <= 0 || r.Overshoot >= 1:
		return r.invalid("overshoot must lie strictly between 0 and 1")
	}
	return nil
}

func (r Request) invalid(reason string) error {
	return &SolveError{Wobbles: r.Wobbles, Overshoot: r.Overshoot, Reason: reason, Wrapped: ErrInvalidInput}
}
