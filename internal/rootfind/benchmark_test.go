package rootfind

import "testing"

// The three benchmarks share the x^2 - 4 problem so their relative cost per
// converged solve is directly comparable.

func BenchmarkNewton(b *testing.B) {
	s := Settings{Tolerance: 1e-10, MaxIterations: 50}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Newton(parabola, parabolaDeriv, 1.0, s)
	}
}

func BenchmarkSecant(b *testing.B) {
	s := Settings{Tolerance: 1e-10, MaxIterations: 50}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Secant(parabola, 1.0, 3.0, s)
	}
}

func BenchmarkBisect(b *testing.B) {
	s := Settings{Tolerance: 1e-6, MaxIterations: 100}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Bisect(parabola, 0.0, 3.0, s)
	}
}
