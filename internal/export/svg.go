package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/wobbly/internal/sample"
)

const DefaultStroke = "#00ff88"

// CurveToSVG draws sampled points as a path with guides at 0 (start) and 1 (rest).
func CurveToSVG(points []sample.Point, width, height int, strokeColor string) string {
	if len(points) < 2 || width <= 0 || height <= 0 {
		return ""
	}
	if strokeColor == "" {
		strokeColor = DefaultStroke
	}

	// Find bounds, always keeping the 0 and 1 guides in view.
	minX, maxX := points[0].Progress, points[0].Progress
	minY, maxY := 0.0, 1.0
	for _, p := range points {
		minX = min(minX, p.Progress)
		maxX = max(maxX, p.Progress)
		minY = min(minY, p.Value)
		maxY = max(maxY, p.Value)
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	toX := func(v float64) float64 { return (v - minX) / rangeX * float64(width) }
	toY := func(v float64) float64 { return float64(height) - (v-minY)/rangeY*float64(height) }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for _, guide := range []float64{0, 1} {
		y := toY(guide)
		sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#444466" stroke-dasharray="4 4"/>
`, y, width, y))
	}

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor))
	for i, p := range points {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", toX(p.Progress), toY(p.Value)))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", toX(p.Progress), toY(p.Value)))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
