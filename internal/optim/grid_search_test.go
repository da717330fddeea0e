package optim

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/wobbly/internal/harmonic"
	"github.com/san-kum/wobbly/internal/sample"
)

func TestSpan(t *testing.T) {
	got := Span(0, 1, 5)
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Span[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if got := Span(3, 9, 1); len(got) != 1 || got[0] != 3 {
		t.Errorf("single-point span = %v", got)
	}
}

func TestSearchCrossings(t *testing.T) {
	g := NewGridSearch(Span(0, 6, 7), []float64{0.1, 0.2})
	best, err := g.Search(context.Background(), harmonic.DefaultSolver(), Target{Crossings: 3}.Objective())
	if err != nil {
		t.Fatal(err)
	}
	if best.Request.Wobbles != 2 {
		t.Errorf("best wobbles = %v, want 2", best.Request.Wobbles)
	}
	if best.Request.Overshoot != 0.1 {
		t.Errorf("tie should keep the first overshoot, got %v", best.Request.Overshoot)
	}
	if best.Score != 0 || best.Stats.Crossings != 3 {
		t.Errorf("unexpected candidate %+v", best)
	}
}

func TestSearchSkipsUnsolvable(t *testing.T) {
	g := NewGridSearch([]float64{-1, 2}, []float64{0.2})
	best, err := g.Search(context.Background(), harmonic.DefaultSolver(), func(sample.Stats) float64 { return 0 })
	if err != nil {
		t.Fatal(err)
	}
	if best.Request.Wobbles != 2 {
		t.Errorf("expected the solvable point, got %+v", best.Request)
	}

	g = NewGridSearch([]float64{-1}, []float64{0.2})
	if _, err := g.Search(context.Background(), harmonic.DefaultSolver(), Target{}.Objective()); !errors.Is(err, ErrNoCandidate) {
		t.Errorf("expected ErrNoCandidate, got %v", err)
	}
}

func TestSearchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := NewGridSearch([]float64{1, 2}, []float64{0.2})
	if _, err := g.Search(ctx, harmonic.DefaultSolver(), Target{}.Objective()); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
