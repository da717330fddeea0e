package viz

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/wobbly/internal/harmonic"
	"github.com/san-kum/wobbly/internal/sample"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPlot(t *testing.T) {
	points, err := sample.Sample(harmonic.StandardCurve, 100)
	if err != nil {
		t.Fatal(err)
	}

	out := Plot(points, PlotOptions{Width: 40, Height: 8, Caption: "standard"})
	if out == "" {
		t.Fatal("empty plot")
	}
	if !strings.Contains(out, "standard") {
		t.Error("caption missing")
	}
	if lines := strings.Count(out, "\n"); lines < 8 {
		t.Errorf("expected at least 8 rows, got %d", lines)
	}
}

func TestPlotEmpty(t *testing.T) {
	if out := Plot(nil, DefaultPlotOptions()); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestSparklineWidth(t *testing.T) {
	values := []float64{0, 0.5, 1, 1.2, 1}
	if got := len([]rune(Sparkline(nil, 10, 0, 1))); got != 10 {
		t.Errorf("empty sparkline width %d", got)
	}
	if out := Sparkline(values, 0, 0, 1); out != "" {
		t.Errorf("zero width should render nothing, got %q", out)
	}
	if out := Sparkline(values, 12, 0, 1.2); out == "" {
		t.Error("expected sparkline output")
	}
}

func TestGetTheme(t *testing.T) {
	if GetTheme("ocean").Name != "ocean" {
		t.Error("ocean not found")
	}
	if GetTheme("missing").Name != ThemeCyberpunk.Name {
		t.Error("unknown theme should fall back to cyberpunk")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names out of sync")
	}
	if nextTheme(Themes[len(Themes)-1]).Name != Themes[0].Name {
		t.Error("theme cycle should wrap")
	}
}

func TestTunerAdjust(t *testing.T) {
	tuner, err := NewTuner(TunerConfig{Wobbles: 2, Overshoot: 0.2, Solver: harmonic.DefaultSolver(), Points: 50})
	if err != nil {
		t.Fatal(err)
	}
	if tuner.Err() != nil {
		t.Fatal(tuner.Err())
	}
	before := tuner.Params()

	tuner.Update(key("l"))
	if tuner.wobbles != 2.5 {
		t.Errorf("wobbles = %v, want 2.5", tuner.wobbles)
	}
	if tuner.Params().Omega <= before.Omega {
		t.Error("more wobbles should raise omega")
	}

	tuner.Update(key("j"))
	tuner.Update(key("h"))
	if math.Abs(tuner.overshoot-0.15) > 1e-12 {
		t.Errorf("overshoot = %v, want 0.15", tuner.overshoot)
	}

	for i := 0; i < 10; i++ {
		tuner.Update(key("h"))
	}
	if tuner.overshoot != minOvershoot {
		t.Errorf("overshoot should clamp to %v, got %v", minOvershoot, tuner.overshoot)
	}
}

func TestTunerReverseAndPolicy(t *testing.T) {
	tuner, err := NewTuner(TunerConfig{Wobbles: 4, Overshoot: 0.2, Points: 50})
	if err != nil {
		t.Fatal(err)
	}

	tuner.Update(key("r"))
	if !tuner.reverse {
		t.Fatal("reverse not toggled")
	}
	if last := tuner.samples[len(tuner.samples)-1].Value; last != 1 {
		t.Errorf("reversed curve should end at 1, got %v", last)
	}

	tuner.Update(key("p"))
	if tuner.solver.Policy != harmonic.PolicyLegacy {
		t.Fatal("policy not cycled")
	}
	if math.Abs(tuner.Params().Gamma-harmonic.Standard.Gamma) > 1e-9 {
		t.Errorf("legacy gamma = %v, want %v", tuner.Params().Gamma, harmonic.Standard.Gamma)
	}
}

func TestTunerView(t *testing.T) {
	tuner, err := NewTuner(TunerConfig{Wobbles: 2, Overshoot: 0.2})
	if err != nil {
		t.Fatal(err)
	}
	view := tuner.View()
	for _, want := range []string{"WOBBLY", "wobbles", "overshoot", "gamma", "crossings"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	_, cmd := tuner.Update(key("q"))
	if cmd == nil {
		t.Error("q should return a quit command")
	}
}
