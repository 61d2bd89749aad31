package roots_test

import (
	"math"
	"testing"

	"github.com/kaverin/roots"
)

// benchmarkNewton runs NewtonRaphson with the given function pair and
// guess, failing the benchmark on unexpected errors.
func benchmarkNewton(b *testing.B, f, df roots.Func, x0 float64) {
	opts := roots.DefaultOptions()

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := roots.NewtonRaphson(f, df, x0, opts); err != nil {
			b.Fatalf("NewtonRaphson failed: %v", err)
		}
	}
}

// BenchmarkNewtonRaphson_Quadratic converges on x^2-2 from a good guess.
func BenchmarkNewtonRaphson_Quadratic(b *testing.B) {
	f := func(x float64) float64 { return x*x - 2 }
	df := func(x float64) float64 { return 2 * x }
	benchmarkNewton(b, f, df, 1)
}

// BenchmarkNewtonRaphson_Transcendental converges on cos(x)-x from 1.
func BenchmarkNewtonRaphson_Transcendental(b *testing.B) {
	f := func(x float64) float64 { return math.Cos(x) - x }
	df := func(x float64) float64 { return -math.Sin(x) - 1 }
	benchmarkNewton(b, f, df, 1)
}

// BenchmarkBisection_Quadratic halves [0,2] on x^2-2 to convergence.
func BenchmarkBisection_Quadratic(b *testing.B) {
	f := func(x float64) float64 { return x*x - 2 }
	opts := roots.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := roots.Bisection(f, 0, 2, opts); err != nil {
			b.Fatalf("Bisection failed: %v", err)
		}
	}
}

// BenchmarkSolve_NewtonPath measures the dispatcher when the Newton stage
// succeeds and bisection never runs.
func BenchmarkSolve_NewtonPath(b *testing.B) {
	f := func(x float64) float64 { return x*x - 2 }
	df := func(x float64) float64 { return 2 * x }
	opts := roots.DefaultSolveOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := roots.Solve(f, df, 1, 2, opts); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_FallbackPath measures the dispatcher when the Newton
// stage exhausts immediately and bisection does the work.
func BenchmarkSolve_FallbackPath(b *testing.B) {
	f := func(x float64) float64 { return x*x - 2 }
	df := func(x float64) float64 { return 2 * x }
	opts := roots.DefaultSolveOptions()
	opts.NewtonMaxIters = 0

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := roots.Solve(f, df, 5, 0, opts); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}
