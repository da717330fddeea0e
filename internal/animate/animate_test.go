package animate

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/san-kum/wobbly/internal/harmonic"
)

func apart(a, b time.Duration) bool {
	d := a - b
	return d > time.Microsecond || d < -time.Microsecond
}

func TestPhaseValue(t *testing.T) {
	p := Phase{Curve: harmonic.StandardCurve, From: 2, To: 4, Duration: time.Second}

	if v := p.Value(0); v != 2 {
		t.Errorf("expected start at 2, got %f", v)
	}
	if v := p.Value(-time.Second); v != 2 {
		t.Errorf("negative elapsed should clamp to start, got %f", v)
	}
	if v := p.Value(5 * time.Second); math.Abs(v-4) > 1e-2 {
		t.Errorf("expected end near 4, got %f", v)
	}

	instant := Phase{To: 7}
	if v := instant.Value(0); v != 7 {
		t.Errorf("zero-length phase should jump to its target, got %f", v)
	}
}

func TestWobble(t *testing.T) {
	seq, err := Wobble(harmonic.DefaultSolver(), 900*time.Millisecond, 2, 0.2)
	if err != nil {
		t.Fatalf("wobble failed: %v", err)
	}

	if len(seq.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(seq.Phases))
	}
	if apart(seq.Phases[0].Duration, 300*time.Millisecond) || apart(seq.Phases[1].Duration, 600*time.Millisecond) {
		t.Errorf("expected 300ms/600ms split, got %v/%v", seq.Phases[0].Duration, seq.Phases[1].Duration)
	}

	if v := seq.Value(0); v != 1 {
		t.Errorf("expected start at 1, got %f", v)
	}
	if v := seq.Value(seq.Phases[0].Duration); math.Abs(v-1.2) > 1e-9 {
		t.Errorf("second phase should start at 1.2, got %f", v)
	}
	if v := seq.Value(seq.Duration()); math.Abs(v-1) > 1e-2 {
		t.Errorf("expected to settle at 1, got %f", v)
	}
}

func TestWobbleInvalid(t *testing.T) {
	_, err := Wobble(harmonic.DefaultSolver(), time.Second, 2, 1.5)
	if !errors.Is(err, harmonic.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSwapScale(t *testing.T) {
	cache, err := harmonic.NewCache(4, harmonic.DefaultSolver())
	if err != nil {
		t.Fatalf("cache failed: %v", err)
	}
	seq, err := SwapScale(cache, 3*time.Second, 2)
	if err != nil {
		t.Fatalf("swap failed: %v", err)
	}

	i, _ := seq.PhaseAt(500 * time.Millisecond)
	if seq.Phases[i].Name != "shrink" {
		t.Errorf("expected shrink phase first, got %s", seq.Phases[i].Name)
	}
	if v := seq.Value(seq.Phases[0].Duration); math.Abs(v) > 1e-9 {
		t.Errorf("object should be gone between phases, got %f", v)
	}
	if v := seq.Value(seq.Duration()); math.Abs(v-1) > 1e-2 {
		t.Errorf("expected to grow back to 1, got %f", v)
	}

	// Undershoot while shrinking shows as growth past the start.
	maxShrink := 0.0
	for ms := 0; ms < 1000; ms += 10 {
		maxShrink = math.Max(maxShrink, seq.Value(time.Duration(ms)*time.Millisecond))
	}
	if maxShrink <= 1 {
		t.Errorf("reversed shrink should overshoot the start, max %f", maxShrink)
	}
}

func TestFrames(t *testing.T) {
	seq, _ := Wobble(harmonic.DefaultSolver(), time.Second, 2, 0.2)
	frames, err := seq.Frames(60)
	if err != nil {
		t.Fatalf("frames failed: %v", err)
	}

	last := frames[len(frames)-1]
	if last.Time != seq.Duration() {
		t.Errorf("last frame should land on the end, got %v", last.Time)
	}
	if last.Phase != 1 {
		t.Errorf("last frame should be in the final phase, got %d", last.Phase)
	}
	for i := 1; i < len(frames); i++ {
		if frames[i].Time <= frames[i-1].Time {
			t.Fatalf("frame %d out of order", i)
		}
	}

	for _, fps := range []int{0, -1, MaxFPS + 1, 2_000_000_000} {
		if _, err := seq.Frames(fps); err == nil {
			t.Errorf("expected error for fps %d", fps)
		}
	}
}

func TestFramesMaxFPS(t *testing.T) {
	seq := Sequence{Phases: []Phase{{Curve: harmonic.StandardCurve, From: 0, To: 1, Duration: 3 * time.Nanosecond}}}
	frames, err := seq.Frames(MaxFPS)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 4 {
		t.Errorf("expected one frame per nanosecond plus the end, got %d", len(frames))
	}
}

func TestEmptySequence(t *testing.T) {
	var seq Sequence
	if seq.Value(time.Second) != 0 || seq.Duration() != 0 {
		t.Error("empty sequence should be inert")
	}
}
