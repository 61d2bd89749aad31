package roots

import "math"

// Bisection solves f(x) == 0 by interval halving over the bracket
// [x0, x1].
//
// The endpoints must straddle a sign change: CheckSign(f(x0)) and
// CheckSign(f(x1)) must differ. The bracket is re-verified at the top of
// every pass, not only at entry, so if a computed midpoint ever collapses
// the interval to matching signs the failure is reported on the next
// pass. Endpoint signs are deliberately recomputed each pass rather than
// cached, which keeps the observable call count on f stable for callers
// that instrument it.
//
// Each pass computes the midpoint xStar = (x0+x1)/2 and accepts it as
// soon as |f(xStar)| < opts.Eps; otherwise the half-interval whose
// endpoints still differ in sign becomes the new bracket. The budget
// check fires before the counter advances, so at most opts.MaxIters+1
// midpoints are evaluated and MaxIters == 0 still evaluates exactly one.
//
// Preconditions and validation (in order):
//  1. f must be non-nil (ErrNilFunction).
//  2. opts.Eps must be positive and opts.MaxIters non-negative (ErrBadOptions).
//
// Errors:
//   - ErrInvalidBracket — the current endpoints classify to the same
//     sign class (including both Zero).
//   - ErrMaxIterations  — budget exhausted before the tolerance was met.
//
// Complexity: O(MaxIters) evaluations of f, O(1) space.
func Bisection(f Func, x0, x1 float64, opts Options) (float64, error) {
	if err := validateFuncs(f); err != nil {
		return 0, err
	}
	if err := validateOptions(opts.Eps, opts.MaxIters); err != nil {
		return 0, err
	}

	var xStar float64 // midpoint candidate
	for counter := 0; ; counter++ {
		if CheckSign(f(x0)) == CheckSign(f(x1)) {
			return 0, ErrInvalidBracket
		}

		xStar = (x0 + x1) / 2
		if math.Abs(f(xStar)) < opts.Eps {
			return xStar, nil
		}
		if counter == opts.MaxIters {
			return 0, ErrMaxIterations
		}

		// Keep the half whose endpoints still differ in sign.
		if CheckSign(f(xStar)) == CheckSign(f(x1)) {
			x1 = xStar
		} else {
			x0 = xStar
		}
	}
}
