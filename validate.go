// Package roots - validation helpers shared by the solvers.
//
// Small, deterministic, side-effect free checks; no panics on user
// input, only sentinel errors from errors.go.
package roots

import "math"

// validateFuncs rejects nil callables.
//
// Complexity: O(len(fns)).
func validateFuncs(fns ...Func) error {
	for _, fn := range fns {
		if fn == nil {
			return ErrNilFunction
		}
	}

	return nil
}

// validateOptions checks the tolerance and iteration budgets shared by
// both iterators. Eps must be strictly positive (a zero or negative
// tolerance can never be met, and a NaN tolerance compares false against
// everything); budgets must be non-negative (a negative budget would
// never equal the counter and the loop would not terminate).
//
// Complexity: O(len(budgets)).
func validateOptions(eps float64, budgets ...int) error {
	if math.IsNaN(eps) || eps <= 0 {
		return ErrBadOptions
	}
	for _, b := range budgets {
		if b < 0 {
			return ErrBadOptions
		}
	}

	return nil
}
