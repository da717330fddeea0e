// Package physics models the spring behind a harmonic easing curve.
//
// [Oscillator] implements [dynamo.System] for the damped oscillator
//
//	x'' = -2*gamma*x' - (omega^2 + gamma^2) * (x - rest)
//
// whose solution from [Oscillator.InitialState] is exactly the closed-form
// curve evaluated by package harmonic. Integrating it is a cross-check of the
// closed form and a way to drive the curve from a physics step loop.
//
// It also implements [dynamo.Hamiltonian]; the energy is not conserved since
// the system is damped, so drift is always negative.
package physics
