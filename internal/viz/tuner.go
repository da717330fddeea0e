package viz

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/wobbly/internal/harmonic"
	"github.com/san-kum/wobbly/internal/sample"
)

const (
	wobbleStep    = 0.5
	overshootStep = 0.05
	minOvershoot  = 0.01
	maxOvershoot  = 0.99
	maxWobbles    = 20
)

type TunerConfig struct {
	Wobbles   float64
	Overshoot float64
	Reverse   bool
	Solver    harmonic.Solver
	Points    int
	Theme     string
}

// Tuner is the Bubble Tea model behind RunTuner. It re-solves the curve
// every time a parameter changes.
type Tuner struct {
	wobbles, overshoot float64
	reverse            bool
	solver             harmonic.Solver
	cache              *harmonic.Cache
	points             int
	theme              Theme

	cursor  int
	params  harmonic.Params
	samples []sample.Point
	stats   sample.Stats
	err     error
	width   int
}

var tunerParams = []string{"wobbles", "overshoot"}

func NewTuner(cfg TunerConfig) (*Tuner, error) {
	if cfg.Points < 2 {
		cfg.Points = sample.DefaultPoints
	}
	t := &Tuner{
		wobbles:   cfg.Wobbles,
		overshoot: cfg.Overshoot,
		reverse:   cfg.Reverse,
		solver:    cfg.Solver,
		points:    cfg.Points,
		theme:     GetTheme(cfg.Theme),
		width:     80,
	}
	if err := t.resetCache(); err != nil {
		return nil, err
	}
	t.recompute()
	return t, nil
}

func (t *Tuner) resetCache() error {
	cache, err := harmonic.NewCache(harmonic.DefaultCacheSize, t.solver)
	if err != nil {
		return err
	}
	t.cache = cache
	return nil
}

func (t *Tuner) recompute() {
	params, err := t.cache.Solve(t.wobbles, t.overshoot)
	if err != nil {
		t.err = err
		return
	}
	curve := harmonic.Curve{Params: params, Reverse: t.reverse}
	points, err := sample.Sample(curve, t.points)
	if err != nil {
		t.err = err
		return
	}
	t.err = nil
	t.params = params
	t.samples = points
	t.stats = sample.Measure(points)
}

func (t *Tuner) Params() harmonic.Params { return t.params }

func (t *Tuner) Err() error { return t.err }

func (t *Tuner) Init() tea.Cmd { return nil }

func (t *Tuner) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return t.handleKey(msg)
	case tea.WindowSizeMsg:
		t.width = msg.Width
	}
	return t, nil
}

func (t *Tuner) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return t, tea.Quit
	case "up", "k":
		if t.cursor > 0 {
			t.cursor--
		}
	case "down", "j":
		if t.cursor < len(tunerParams)-1 {
			t.cursor++
		}
	case "left", "h":
		t.adjust(-1)
	case "right", "l":
		t.adjust(1)
	case "r":
		t.reverse = !t.reverse
		t.recompute()
	case "p":
		if t.solver.Policy == harmonic.PolicyLegacy {
			t.solver.Policy = harmonic.PolicyConsistent
		} else {
			t.solver.Policy = harmonic.PolicyLegacy
		}
		if err := t.resetCache(); err != nil {
			t.err = err
			return t, nil
		}
		t.recompute()
	case "t":
		t.theme = nextTheme(t.theme)
	}
	return t, nil
}

func (t *Tuner) adjust(dir float64) {
	switch tunerParams[t.cursor] {
	case "wobbles":
		t.wobbles = math.Max(0, math.Min(maxWobbles, t.wobbles+dir*wobbleStep))
	case "overshoot":
		// round to the step grid so repeated presses hit cache keys exactly
		v := math.Round((t.overshoot+dir*overshootStep)/overshootStep) * overshootStep
		t.overshoot = math.Max(minOvershoot, math.Min(maxOvershoot, v))
	}
	t.recompute()
}

func (t *Tuner) View() string {
	var b strings.Builder
	title := lipgloss.NewStyle().Foreground(t.theme.Secondary).Bold(true)
	cursor := lipgloss.NewStyle().Foreground(t.theme.Primary).Bold(true)
	value := lipgloss.NewStyle().Foreground(t.theme.Accent).Bold(true)
	muted := lipgloss.NewStyle().Foreground(t.theme.Muted)

	b.WriteString("\n  " + title.Render("WOBBLY") + "  " + muted.Render("damped cosine tuner") + "\n")
	b.WriteString("  " + Separator(40) + "\n\n")

	values := map[string]float64{"wobbles": t.wobbles, "overshoot": t.overshoot}
	for i, name := range tunerParams {
		line := fmt.Sprintf("%-10s %8.3f", name, values[name])
		if i == t.cursor {
			b.WriteString("  " + cursor.Render("▸ ") + value.Render(line) + "\n")
		} else {
			b.WriteString("    " + muted.Render(line) + "\n")
		}
	}
	b.WriteString(fmt.Sprintf("    %-10s %8t\n", "reverse", t.reverse))
	b.WriteString(fmt.Sprintf("    %-10s %8s\n\n", "policy", t.solver.Policy))

	if t.err != nil {
		b.WriteString("  " + ErrorText.Render(t.err.Error()) + "\n\n")
	}

	if len(t.samples) > 0 {
		width := max(20, min(t.width-16, 72))
		chart := Plot(t.samples, PlotOptions{Width: width, Height: 10})
		b.WriteString(Panel.Render(chart) + "\n")
		b.WriteString("  " + Sparkline(sample.Values(t.samples), width, t.stats.Trough, t.stats.Peak) + "\n\n")

		b.WriteString(fmt.Sprintf("  %s %s  %s %s\n",
			MetricLabel.Render("omega"), MetricValue.Render(fmt.Sprintf("%.4f", t.params.Omega)),
			MetricLabel.Render("gamma"), MetricValue.Render(fmt.Sprintf("%.4f", t.params.Gamma))))
		b.WriteString(fmt.Sprintf("  %s %s  %s %s  %s %s\n",
			MetricLabel.Render("peak"), MetricValue.Render(fmt.Sprintf("%.4f", t.stats.Peak)),
			MetricLabel.Render("crossings"), MetricValue.Render(fmt.Sprintf("%d", t.stats.Crossings)),
			MetricLabel.Render("settle"), MetricValue.Render(fmt.Sprintf("%.3f", t.stats.SettleProgress))))
	}

	b.WriteString("\n  " + KeyHint.Render("j/k select  h/l adjust  r reverse  p policy  t theme  q quit") + "\n")
	return b.String()
}

// RunTuner blocks until the user quits and returns the final constants.
func RunTuner(cfg TunerConfig) (harmonic.Params, error) {
	t, err := NewTuner(cfg)
	if err != nil {
		return harmonic.Params{}, err
	}
	final, err := tea.NewProgram(t, tea.WithAltScreen()).Run()
	if err != nil {
		return harmonic.Params{}, err
	}
	out := final.(*Tuner)
	return out.params, out.err
}
