package analysis

import (
	"errors"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/wobbly/internal/sample"
)

var ErrTooFewPoints = errors.New("analysis: not enough points")

// Spectrum returns FFT magnitudes of the curve's displacement from rest,
// from DC up to the Nyquist bin.
func Spectrum(points []sample.Point) ([]float64, error) {
	if len(points) < 4 {
		return nil, ErrTooFewPoints
	}

	residual := make([]float64, len(points))
	for i, p := range points {
		residual[i] = p.Value - 1
	}

	bins := fft.FFTReal(residual)
	ps := make([]float64, len(bins)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(bins[i])
	}
	return ps, nil
}

// DominantFrequency returns the strongest non-DC frequency in cycles per unit progress.
func DominantFrequency(points []sample.Point) (float64, error) {
	ps, err := Spectrum(points)
	if err != nil {
		return 0, err
	}

	best := 1
	for k := 2; k < len(ps); k++ {
		if ps[k] > ps[best] {
			best = k
		}
	}

	span := points[len(points)-1].Progress - points[0].Progress
	if span <= 0 {
		return 0, ErrTooFewPoints
	}
	// Bin k holds k cycles per sampled window.
	n := float64(len(points))
	return float64(best) * (n - 1) / (n * span), nil
}
