package harmonic

// Evaluate returns the eased value at progress. A reversed curve runs time
// backwards and mirrors the output, which turns overshoot into undershoot for
// shrinking transitions. Progress outside [0, 1] extrapolates the formula.
func Evaluate(params Params, progress float64, reverse bool) float64 {
	t := progress
	if reverse {
		t = 1 - progress
	}
	raw := interpolate(params.Omega, params.Gamma, t)
	if reverse {
		return 1 - raw
	}
	return raw
}

// Curve pairs constants with a direction. It is a value: reversing returns a copy.
type Curve struct {
	Params  Params `json:"params" yaml:"params"`
	Reverse bool   `json:"reverse" yaml:"reverse"`
}

func NewCurve(params Params) Curve {
	return Curve{Params: params}
}

func (c Curve) Value(progress float64) float64 {
	return Evaluate(c.Params, progress, c.Reverse)
}

func (c Curve) Reversed() Curve {
	c.Reverse = !c.Reverse
	return c
}

// Func adapts the curve to the func(float64) float64 shape most tweening hosts take.
func (c Curve) Func() func(float64) float64 {
	return c.Value
}
