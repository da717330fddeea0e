package metrics

import "math"

// Metric observes a curve one sample at a time.
type Metric interface {
	Name() string
	Observe(progress, value float64)
	Value() float64
	Reset()
}

// Peak tracks the highest value and where it happened.
type Peak struct {
	max, at float64
	seen    bool
}

func NewPeak() *Peak { return &Peak{} }

func (p *Peak) Name() string { return "peak" }

func (p *Peak) Observe(progress, value float64) {
	if !p.seen || value > p.max {
		p.max, p.at, p.seen = value, progress, true
	}
}

func (p *Peak) Value() float64 { return p.max }

// At is the progress of the peak.
func (p *Peak) At() float64 { return p.at }

func (p *Peak) Reset() { *p = Peak{} }

// Trough tracks the lowest value, the undershoot of a reversed curve.
type Trough struct {
	min  float64
	seen bool
}

func NewTrough() *Trough { return &Trough{} }

func (m *Trough) Name() string { return "trough" }

func (m *Trough) Observe(progress, value float64) {
	if !m.seen || value < m.min {
		m.min, m.seen = value, true
	}
}

func (m *Trough) Value() float64 { return m.min }

func (m *Trough) Reset() { *m = Trough{} }

// Crossings counts passes through the rest position.
type Crossings struct {
	rest  float64
	count int
	prev  float64
	armed bool
}

func NewCrossings(rest float64) *Crossings {
	return &Crossings{rest: rest}
}

func (c *Crossings) Name() string { return "crossings" }

func (c *Crossings) Observe(progress, value float64) {
	d := value - c.rest
	if d == 0 {
		return
	}
	if c.armed && math.Signbit(d) != math.Signbit(c.prev) {
		c.count++
	}
	c.prev, c.armed = d, true
}

func (c *Crossings) Value() float64 { return float64(c.count) }

func (c *Crossings) Reset() {
	c.count, c.prev, c.armed = 0, 0, false
}

// Settle reports the last progress at which the value was outside the band
// around rest. Zero means the value never left the band.
type Settle struct {
	rest, band float64
	last       float64
}

func NewSettle(rest, band float64) *Settle {
	return &Settle{rest: rest, band: band}
}

func (s *Settle) Name() string { return "settle" }

func (s *Settle) Observe(progress, value float64) {
	if math.Abs(value-s.rest) > s.band {
		s.last = progress
	}
}

func (s *Settle) Value() float64 { return s.last }

func (s *Settle) Reset() { s.last = 0 }
