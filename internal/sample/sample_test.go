package sample

import (
	"math"
	"testing"

	"github.com/san-kum/wobbly/internal/harmonic"
)

func TestSample(t *testing.T) {
	curve := harmonic.NewCurve(harmonic.Standard)
	points, err := Sample(curve, 1001)
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}

	if len(points) != 1001 {
		t.Fatalf("expected 1001 points, got %d", len(points))
	}
	if points[0].Progress != 0 || points[len(points)-1].Progress != 1 {
		t.Errorf("expected endpoints 0 and 1, got %f and %f", points[0].Progress, points[len(points)-1].Progress)
	}
	for i, pt := range points {
		if pt.Value != curve.Value(pt.Progress) {
			t.Fatalf("point %d: value %f disagrees with curve", i, pt.Value)
		}
		if i > 0 && pt.Progress <= points[i-1].Progress {
			t.Fatalf("point %d: progress not increasing", i)
		}
	}
}

func TestSampleTooFew(t *testing.T) {
	if _, err := Sample(harmonic.StandardCurve, 1); err == nil {
		t.Error("expected error for a single point")
	}
}

func TestMeasureStandard(t *testing.T) {
	p, err := harmonic.Solve(4, 0.2)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	points, _ := Sample(harmonic.NewCurve(p), 2001)
	stats := Measure(points)

	if math.Abs(stats.Overshoot-0.2) > 5e-3 {
		t.Errorf("expected overshoot 0.2, got %f", stats.Overshoot)
	}
	if math.Abs(stats.PeakProgress-p.PeakTime()) > 1e-3 {
		t.Errorf("expected peak at %f, got %f", p.PeakTime(), stats.PeakProgress)
	}
	if stats.Crossings != 5 {
		t.Errorf("expected 5 crossings, got %d", stats.Crossings)
	}
	if stats.Trough != 0 {
		t.Errorf("forward curve should bottom out at its start, got %f", stats.Trough)
	}
	if stats.SettleProgress <= stats.PeakProgress || stats.SettleProgress >= 1 {
		t.Errorf("settle progress %f should fall between the peak and the end", stats.SettleProgress)
	}
}

func TestMeasureReverseUndershoots(t *testing.T) {
	points, _ := Sample(harmonic.StandardReverse, 2001)
	stats := Measure(points)

	if stats.Trough >= 0 {
		t.Errorf("reversed curve should dip below zero, got %f", stats.Trough)
	}
	if math.Abs(stats.Trough+0.2) > 5e-3 {
		t.Errorf("expected undershoot near -0.2, got %f", stats.Trough)
	}
}

func TestStatsAsMap(t *testing.T) {
	m := Stats{Peak: 1.2, Crossings: 3}.AsMap()
	if m["peak"] != 1.2 || m["crossings"] != 3 {
		t.Errorf("unexpected map: %v", m)
	}
}
