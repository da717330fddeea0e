// Package harmonic builds easing curves from a damped harmonic oscillator.
//
// A curve is the function
//
//	f(t) = 1 - exp(-gamma*t) * cos(omega*t)
//
// evaluated over normalized progress t in [0, 1]. Callers describe the curve
// with two human-meaningful numbers and let the [Solver] derive the physics:
//
//   - wobbles: how often the value passes its rest position after the first approach
//   - overshoot: how far the first peak exceeds the target, as a fraction of travel
//
// # Example
//
//	params, err := harmonic.Solve(2, 0.2)
//	if err != nil {
//		return err
//	}
//	curve := harmonic.NewCurve(params)
//	scale := curve.Value(progress)
//
// # Thread Safety
//
// [Params] and [Curve] are plain values and every function in this package is
// pure, so they are safe to share between goroutines. [Cache] memoizes solves
// behind a concurrent LRU.
package harmonic
