package metrics

import (
	"math"
	"testing"
)

func feed(m Metric, values ...float64) {
	for i, v := range values {
		m.Observe(float64(i)/float64(len(values)-1), v)
	}
}

func TestPeak(t *testing.T) {
	p := NewPeak()
	feed(p, 0, 0.8, 1.2, 0.95, 1.0)

	if p.Value() != 1.2 {
		t.Errorf("expected peak 1.2, got %f", p.Value())
	}
	if p.At() != 0.5 {
		t.Errorf("expected peak at 0.5, got %f", p.At())
	}

	p.Reset()
	feed(p, -3, -2)
	if p.Value() != -2 {
		t.Errorf("peak should work for negative values after reset, got %f", p.Value())
	}
}

func TestTrough(t *testing.T) {
	m := NewTrough()
	feed(m, 0, -0.2, 0.5, 1)
	if m.Value() != -0.2 {
		t.Errorf("expected trough -0.2, got %f", m.Value())
	}
}

func TestCrossings(t *testing.T) {
	tests := []struct {
		values   []float64
		expected float64
	}{
		{[]float64{0, 0.5, 0.9, 1.0}, 0},
		{[]float64{0, 1.2, 0.9, 1.0}, 2},
		{[]float64{0, 1.2, 0.9, 1.05, 0.98}, 4},
	}

	for _, tt := range tests {
		c := NewCrossings(1)
		feed(c, tt.values...)
		if c.Value() != tt.expected {
			t.Errorf("%v: expected %v crossings, got %v", tt.values, tt.expected, c.Value())
		}
	}
}

func TestSettle(t *testing.T) {
	s := NewSettle(1, 0.05)
	feed(s, 0, 1.2, 0.9, 1.02, 1.0)
	if math.Abs(s.Value()-0.5) > 1e-12 {
		t.Errorf("expected settle at 0.5, got %f", s.Value())
	}

	s.Reset()
	feed(s, 1, 1, 1)
	if s.Value() != 0 {
		t.Errorf("value inside band should settle at 0, got %f", s.Value())
	}
}
