package integrators

import "github.com/san-kum/wobbly/internal/dynamo"

// Euler is the explicit first-order method. It is kept as a cheap, visibly
// inaccurate baseline for the ODE comparison.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (Euler) Step(sys dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	dx := sys.Derive(x, t)
	next := x.Clone()
	for i := range next {
		next[i] += dt * dx[i]
	}
	return next
}
