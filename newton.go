package roots

import "math"

// NewtonRaphson solves f(x) == 0 by Newton–Raphson iteration starting
// from x0.
//
// Each step computes xNext = x - f(x)/df(x) and accepts xNext as soon as
// |f(xNext)| < opts.Eps. The tolerance is always tested on the freshly
// computed candidate, never on the pre-update iterate, so the returned
// value is guaranteed to satisfy |f(root)| < Eps. The guarantee is on the
// function value, not on the distance to the true root.
//
// The budget check fires before the counter advances: at most
// opts.MaxIters+1 updates are computed, and the first update is always
// attempted, even with MaxIters == 0.
//
// Preconditions and validation (in order):
//  1. f and df must be non-nil (ErrNilFunction).
//  2. opts.Eps must be positive and opts.MaxIters non-negative (ErrBadOptions).
//
// Errors:
//   - ErrZeroDerivative — df evaluated to exactly zero at the current
//     iterate; Solve propagates this instead of falling back.
//   - ErrMaxIterations  — budget exhausted before the tolerance was met.
//
// Complexity: O(MaxIters) evaluations of f and df, O(1) space.
func NewtonRaphson(f, df Func, x0 float64, opts Options) (float64, error) {
	if err := validateFuncs(f, df); err != nil {
		return 0, err
	}
	if err := validateOptions(opts.Eps, opts.MaxIters); err != nil {
		return 0, err
	}

	var (
		x     = x0 // current iterate
		xNext float64
		slope float64
	)
	for counter := 0; ; counter++ {
		slope = df(x)
		if slope == 0 {
			return 0, ErrZeroDerivative
		}
		xNext = x - f(x)/slope

		// Convergence is tested before the budget, so the update that
		// satisfies the tolerance is the one returned.
		if math.Abs(f(xNext)) < opts.Eps {
			return xNext, nil
		}
		if counter == opts.MaxIters {
			return 0, ErrMaxIterations
		}
		x = xNext
	}
}
