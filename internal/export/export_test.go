package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/wobbly/internal/harmonic"
	"github.com/san-kum/wobbly/internal/sample"
)

func standardPoints(t *testing.T, n int) []sample.Point {
	t.Helper()
	points, err := sample.Sample(harmonic.StandardCurve, n)
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}
	return points
}

func TestCurveToSVG(t *testing.T) {
	svg := CurveToSVG(standardPoints(t, 50), 400, 200, "")

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Error("expected a complete svg document")
	}
	if !strings.Contains(svg, DefaultStroke) {
		t.Error("expected default stroke color")
	}
	if n := strings.Count(svg, " L"); n != 49 {
		t.Errorf("expected 49 line segments, got %d", n)
	}
	if n := strings.Count(svg, "<line"); n != 2 {
		t.Errorf("expected 2 guide lines, got %d", n)
	}
}

func TestCurveToSVGDegenerate(t *testing.T) {
	if CurveToSVG(nil, 100, 100, "red") != "" {
		t.Error("expected empty output for no points")
	}
	if CurveToSVG(standardPoints(t, 5), 0, 100, "red") != "" {
		t.Error("expected empty output for zero width")
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, standardPoints(t, 3)); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and 3 rows, got %d lines", len(lines))
	}
	if lines[0] != "progress,value" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[1] != "0.000000,0.000000" {
		t.Errorf("unexpected first row %q", lines[1])
	}
}

func TestWriteJSON(t *testing.T) {
	points := standardPoints(t, 5)
	doc := Document{
		Request: harmonic.Request{Wobbles: 4, Overshoot: 0.2},
		Curve:   harmonic.StandardCurve,
		Stats:   sample.Measure(points),
		Points:  points,
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, doc); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var decoded Document
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}
	if decoded.Curve.Params != harmonic.Standard {
		t.Errorf("expected standard params, got %+v", decoded.Curve.Params)
	}
	if len(decoded.Points) != 5 {
		t.Errorf("expected 5 points, got %d", len(decoded.Points))
	}
}
