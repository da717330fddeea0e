package harmonic

import "sync"

const (
	StandardWobbles   = 2.0
	StandardOvershoot = 0.2

	// ShrinkOvershoot stands in for "no damping" since an overshoot of 1 is rejected.
	ShrinkOvershoot = 0.999

	ExpandWobbles   = 2.0
	ExpandOvershoot = 0.3

	// DurationRatio and DurationRatioReverse split a two-phase animation.
	DurationRatio        = 2.0 / 3.0
	DurationRatioReverse = 1.0 / 3.0
)

var (
	// Standard is the published parametrization for wobbles=4, overshoot=0.2
	// as produced by PolicyLegacy.
	Standard = Params{Omega: 17.27875959474386, Gamma: 9.681908518387534}

	StandardCurve   = Curve{Params: Standard}
	StandardReverse = Curve{Params: Standard, Reverse: true}
)

var (
	shrink = sync.OnceValue(func() Params { return MustSolve(0, ShrinkOvershoot) })
	expand = sync.OnceValue(func() Params { return MustSolve(ExpandWobbles, ExpandOvershoot) })
)

// Shrink is a single-overshoot curve suited to scaling an object down.
func Shrink() Params { return shrink() }

// Expand is a lively curve suited to scaling an object up.
func Expand() Params { return expand() }
