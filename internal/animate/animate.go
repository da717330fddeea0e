// Package animate describes multi-phase scale animations built from harmonic
// curves. It holds no timers; a host asks for the value at an elapsed time.
package animate

import (
	"fmt"
	"time"

	"github.com/san-kum/wobbly/internal/harmonic"
)

// Solver is satisfied by harmonic.Solver and *harmonic.Cache.
type Solver interface {
	Solve(wobbles, overshoot float64) (harmonic.Params, error)
}

type Phase struct {
	Name     string         `json:"name"`
	Curve    harmonic.Curve `json:"curve"`
	From     float64        `json:"from"`
	To       float64        `json:"to"`
	Duration time.Duration  `json:"duration"`
}

// Value interpolates From towards To along the curve. Elapsed time is
// clamped to the phase.
func (p Phase) Value(elapsed time.Duration) float64 {
	if p.Duration <= 0 {
		return p.To
	}
	progress := float64(elapsed) / float64(p.Duration)
	progress = min(max(progress, 0), 1)
	return p.From + (p.To-p.From)*p.Curve.Value(progress)
}

type Sequence struct {
	Phases []Phase `json:"phases"`
}

func (s Sequence) Duration() time.Duration {
	var total time.Duration
	for _, p := range s.Phases {
		total += p.Duration
	}
	return total
}

// PhaseAt returns the index of the phase active at elapsed and the time spent in it.
func (s Sequence) PhaseAt(elapsed time.Duration) (int, time.Duration) {
	if len(s.Phases) == 0 {
		return -1, 0
	}
	if elapsed < 0 {
		return 0, 0
	}
	for i, p := range s.Phases {
		if elapsed < p.Duration {
			return i, elapsed
		}
		elapsed -= p.Duration
	}
	last := len(s.Phases) - 1
	return last, s.Phases[last].Duration
}

func (s Sequence) Value(elapsed time.Duration) float64 {
	i, in := s.PhaseAt(elapsed)
	if i < 0 {
		return 0
	}
	return s.Phases[i].Value(in)
}

type Frame struct {
	Time  time.Duration `json:"time"`
	Phase int           `json:"phase"`
	Value float64       `json:"value"`
}

// MaxFPS is the highest frame rate with a non-zero frame interval.
const MaxFPS = int(time.Second)

// Frames samples the sequence at a fixed frame rate, always including the final instant.
func (s Sequence) Frames(fps int) ([]Frame, error) {
	if fps <= 0 || fps > MaxFPS {
		return nil, fmt.Errorf("fps must be in [1, %d], got %d", MaxFPS, fps)
	}
	total := s.Duration()
	interval := time.Second / time.Duration(fps)

	frames := make([]Frame, 0, int(total/interval)+2)
	for t := time.Duration(0); t < total; t += interval {
		i, _ := s.PhaseAt(t)
		frames = append(frames, Frame{Time: t, Phase: i, Value: s.Value(t)})
	}
	i, _ := s.PhaseAt(total)
	frames = append(frames, Frame{Time: total, Phase: i, Value: s.Value(total)})
	return frames, nil
}

func split(duration time.Duration) (time.Duration, time.Duration) {
	first := time.Duration(float64(duration) * harmonic.DurationRatioReverse)
	second := time.Duration(float64(duration) * harmonic.DurationRatio)
	return first, second
}

// Wobble swells an object to 1+overshoot, then lets it spring back to 1.
func Wobble(solver Solver, duration time.Duration, wobbles, overshoot float64) (Sequence, error) {
	settle, err := solver.Solve(wobbles, overshoot)
	if err != nil {
		return Sequence{}, fmt.Errorf("wobble: %w", err)
	}
	first, second := split(duration)
	return Sequence{Phases: []Phase{
		{Name: "swell", Curve: harmonic.NewCurve(harmonic.Shrink()), From: 1, To: 1 + overshoot, Duration: first},
		{Name: "settle", Curve: harmonic.NewCurve(settle), From: 1 + overshoot, To: 1, Duration: second},
	}}, nil
}

// SwapScale shrinks an object to nothing, then grows it back, leaving room
// for the host to swap its content between the phases.
func SwapScale(solver Solver, duration time.Duration, wobbles float64) (Sequence, error) {
	grow, err := solver.Solve(wobbles, harmonic.StandardOvershoot)
	if err != nil {
		return Sequence{}, fmt.Errorf("swap: %w", err)
	}
	first, second := split(duration)
	return Sequence{Phases: []Phase{
		{Name: "shrink", Curve: harmonic.StandardReverse, From: 1, To: 0, Duration: first},
		{Name: "grow", Curve: harmonic.NewCurve(grow), From: 0, To: 1, Duration: second},
	}}, nil
}
