// Package sample turns a curve into evenly spaced points and summarizes them.
package sample

import (
	"fmt"

	"github.com/san-kum/wobbly/internal/dynamo"
	"github.com/san-kum/wobbly/internal/harmonic"
	"github.com/san-kum/wobbly/internal/metrics"
)

const (
	DefaultPoints = 200
	SettleBand    = 0.02

	minChunk = 256
)

type Point struct {
	Progress float64 `json:"progress"`
	Value    float64 `json:"value"`
}

// Sample evaluates the curve at n evenly spaced progress values from 0 to 1 inclusive.
func Sample(curve harmonic.Curve, n int) ([]Point, error) {
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 points, got %d", n)
	}

	points := make([]Point, n)
	step := 1.0 / float64(n-1)
	dynamo.ParallelFor(n, minChunk, func(start, end int) {
		for i := start; i < end; i++ {
			p := float64(i) * step
			if i == n-1 {
				p = 1
			}
			points[i] = Point{Progress: p, Value: curve.Value(p)}
		}
	})
	return points, nil
}

func Values(points []Point) []float64 {
	vals := make([]float64, len(points))
	for i, p := range points {
		vals[i] = p.Value
	}
	return vals
}

type Stats struct {
	Peak           float64 `json:"peak"`
	PeakProgress   float64 `json:"peak_progress"`
	Overshoot      float64 `json:"overshoot"`
	Trough         float64 `json:"trough"`
	Crossings      int     `json:"crossings"`
	SettleProgress float64 `json:"settle_progress"`
}

// Measure runs the standard metrics over sampled points.
func Measure(points []Point) Stats {
	peak := metrics.NewPeak()
	trough := metrics.NewTrough()
	crossings := metrics.NewCrossings(1)
	settle := metrics.NewSettle(1, SettleBand)
	all := []metrics.Metric{peak, trough, crossings, settle}

	for _, pt := range points {
		for _, m := range all {
			m.Observe(pt.Progress, pt.Value)
		}
	}

	return Stats{
		Peak:           peak.Value(),
		PeakProgress:   peak.At(),
		Overshoot:      peak.Value() - 1,
		Trough:         trough.Value(),
		Crossings:      int(crossings.Value()),
		SettleProgress: settle.Value(),
	}
}

// AsMap flattens stats for storage alongside run metadata.
func (s Stats) AsMap() map[string]float64 {
	return map[string]float64{
		"peak":            s.Peak,
		"peak_progress":   s.PeakProgress,
		"overshoot":       s.Overshoot,
		"trough":          s.Trough,
		"crossings":       float64(s.Crossings),
		"settle_progress": s.SettleProgress,
	}
}
