package harmonic

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates wobbles or overshoot outside their valid range.
	ErrInvalidInput = errors.New("harmonic: invalid curve request")

	// ErrNoConvergence indicates the damping search hit its iteration cap.
	ErrNoConvergence = errors.New("harmonic: damping search did not converge")
)

// SolveError wraps an error with the request that produced it.
type SolveError struct {
	Wobbles   float64
	Overshoot float64
	Reason    string
	Wrapped   error
}

func (e *SolveError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%v (wobbles=%g, overshoot=%g)", e.Wrapped, e.Wobbles, e.Overshoot)
	}
	return fmt.Sprintf("%v: %s (wobbles=%g, overshoot=%g)", e.Wrapped, e.Reason, e.Wobbles, e.Overshoot)
}

func (e *SolveError) Unwrap() error {
	return e.Wrapped
}
