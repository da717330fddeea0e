package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/wobbly/internal/sample"
)

type PlotOptions struct {
	Width   int
	Height  int
	Caption string
}

func DefaultPlotOptions() PlotOptions {
	return PlotOptions{Width: 60, Height: 12}
}

// Plot renders points as an ASCII line chart. The rest line at 1 and the
// origin at 0 are always inside the vertical range.
func Plot(points []sample.Point, opts PlotOptions) string {
	if len(points) == 0 {
		return ""
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultPlotOptions()
		if opts.Width <= 0 {
			opts.Width = def.Width
		}
		if opts.Height <= 0 {
			opts.Height = def.Height
		}
	}

	lo, hi := 0.0, 1.0
	for _, pt := range points {
		lo = min(lo, pt.Value)
		hi = max(hi, pt.Value)
	}

	graphOpts := []asciigraph.Option{
		asciigraph.Width(opts.Width),
		asciigraph.Height(opts.Height),
		asciigraph.LowerBound(lo),
		asciigraph.UpperBound(hi),
		asciigraph.Precision(2),
	}
	if opts.Caption != "" {
		graphOpts = append(graphOpts, asciigraph.Caption(opts.Caption))
	}
	return asciigraph.Plot(sample.Values(points), graphOpts...)
}
