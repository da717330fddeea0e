// Package dynamo provides fixed-step integration primitives.
//
// The package defines the small set of types needed to integrate an ordinary
// differential equation dX/dt = f(X, t):
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems
//   - [Integrator]: numerical stepper interface
//   - [Simulator]: runs a system from an initial state over a duration
//
// # Example
//
//	osc := physics.NewOscillator(params)
//	sim := dynamo.New(osc, integrators.NewRK4())
//	result, _ := sim.Run(ctx, osc.InitialState(), dynamo.DefaultConfig())
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe because integrators keep scratch
// buffers. Build one Simulator per goroutine.
package dynamo
