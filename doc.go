// Package roots finds roots of scalar nonlinear equations f(x) = 0 over
// the reals, with graceful escalation between methods when one fails.
//
// 🚀 What is roots?
//
//	A small, pure-Go numerical library that brings together:
//		• Newton–Raphson: derivative-based iterative refinement
//		• Bisection: bracket-halving refinement with sign checks
//		• Solve: Newton–Raphson first, bisection as an automatic fallback
//		• CheckSign: a three-way sign classifier used by the bracket logic
//
// ✨ Why choose roots?
//
//   - Beginner-friendly – minimal API, explicit tolerances and budgets
//   - Predictable failures – sentinel errors distinguish "ran out of
//     iterations" from "bad bracket" from "zero derivative"
//   - Pure Go – no cgo, no hidden deps
//   - Composable – every call is self-contained and safe to run from
//     independent goroutines
//
// Convergence is always judged on the function value: a candidate x is
// accepted once |f(x)| < Eps. The iteration budget is a logical limit,
// not a wall-clock one, and a budget of zero still evaluates exactly one
// candidate before giving up.
//
// Quick example:
//
//	f := func(x float64) float64 { return x*x - 2 }
//	df := func(x float64) float64 { return 2 * x }
//
//	root, err := roots.Solve(f, df, 1, 2, roots.DefaultSolveOptions())
//	// root ≈ 1.4142, err == nil
//
// See example_test.go for runnable examples and examples/ for complete
// scenario programs.
//
//	go get github.com/kaverin/roots
package roots
