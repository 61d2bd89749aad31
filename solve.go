// Package roots - unified dispatcher for the root finders.
//
// Solve is the canonical entry point: run Newton–Raphson first, escalate
// to bisection only on the explicit convergence-failure signal.
//
// Design principles:
//   - Strict sentinels: failure causes stay distinguishable end to end;
//     no fmt.Errorf where a sentinel suffices.
//   - Narrow recovery: only ErrMaxIterations from the Newton stage
//     triggers the fallback; every other error propagates unmodified.
//   - Deterministic: no retries, no randomness, no shared state.
package roots

import "errors"

// Solve finds a root of f using Newton–Raphson from x0, falling back to
// bisection over the bracket [x0, x1] when - and only when - the Newton
// stage exhausts its iteration budget.
//
// Stage routing:
//  1. NewtonRaphson(f, df, x0) with budget opts.NewtonMaxIters; on
//     success its result is returned directly and bisection never runs.
//  2. On ErrMaxIterations, Bisection(f, x0, x1) with budget
//     opts.BisectMaxIters; its result or failure is returned as-is.
//
// Any other failure of the Newton stage (ErrZeroDerivative, validation
// errors) propagates directly to the caller: a zero derivative is a fault
// of the inputs, not a convergence failure, and does not justify a
// fallback attempt.
//
// The returned root satisfies |f(root)| < opts.Eps whichever stage
// produced it.
//
// Complexity: O(NewtonMaxIters) evaluations of f and df, plus
// O(BisectMaxIters) evaluations of f if the fallback runs; O(1) space.
func Solve(f, df Func, x0, x1 float64, opts SolveOptions) (float64, error) {
	root, err := NewtonRaphson(f, df, x0, Options{Eps: opts.Eps, MaxIters: opts.NewtonMaxIters})
	if err == nil {
		return root, nil
	}
	if !errors.Is(err, ErrMaxIterations) {
		return 0, err
	}

	return Bisection(f, x0, x1, Options{Eps: opts.Eps, MaxIters: opts.BisectMaxIters})
}
