package harmonic

import "testing"

var sink float64

func BenchmarkEvaluate(b *testing.B) {
	p := Standard

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = Evaluate(p, float64(i%1000)/1000, i%2 == 0)
	}
}

func BenchmarkSolve(b *testing.B) {
	s := DefaultSolver()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := s.Solve(4, 0.2)
		if err != nil {
			b.Fatal(err)
		}
		sink = p.Gamma
	}
}

func BenchmarkCacheSolve(b *testing.B) {
	c, err := NewCache(DefaultCacheSize, DefaultSolver())
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := c.Solve(4, 0.2)
		if err != nil {
			b.Fatal(err)
		}
		sink = p.Gamma
	}
}
