package integrators

import "github.com/san-kum/wobbly/internal/dynamo"

// RK4 is the classic fourth-order Runge-Kutta method. Stage buffers are reused
// between steps, so an RK4 must not be shared between goroutines.
type RK4 struct {
	k       [4]dynamo.State
	scratch dynamo.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) resize(n int) {
	if len(r.scratch) == n {
		return
	}
	for i := range r.k {
		r.k[i] = make(dynamo.State, n)
	}
	r.scratch = make(dynamo.State, n)
}

// stage evaluates the system at x + h*k and stores the derivative in dst.
func (r *RK4) stage(sys dynamo.System, dst, x, k dynamo.State, t, h float64) {
	for i := range x {
		r.scratch[i] = x[i] + h*k[i]
	}
	copy(dst, sys.Derive(r.scratch, t+h))
}

func (r *RK4) Step(sys dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	r.resize(len(x))
	k1, k2, k3, k4 := r.k[0], r.k[1], r.k[2], r.k[3]

	copy(k1, sys.Derive(x, t))
	r.stage(sys, k2, x, k1, t, dt/2)
	r.stage(sys, k3, x, k2, t, dt/2)
	r.stage(sys, k4, x, k3, t, dt)

	next := make(dynamo.State, len(x))
	for i := range x {
		next[i] = x[i] + dt/6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return next
}
