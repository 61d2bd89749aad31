package roots

import "errors"

// Sentinel errors returned by the solvers. Match with errors.Is.
var (
	// ErrMaxIterations indicates an iteration budget was exhausted before
	// the tolerance was met. Solve falls back from Newton–Raphson to
	// bisection on this error and no other.
	ErrMaxIterations = errors.New("roots: max iteration reached")

	// ErrInvalidBracket indicates the current bisection interval does not
	// straddle a sign change, either because the input endpoints were
	// malformed or because a computed midpoint degenerated the bracket.
	ErrInvalidBracket = errors.New("roots: interval endpoints must differ in sign")

	// ErrZeroDerivative indicates df evaluated to exactly zero at the
	// current Newton–Raphson iterate, making the update undefined.
	ErrZeroDerivative = errors.New("roots: derivative is zero at the current iterate")

	// ErrNilFunction indicates a nil Func was supplied.
	ErrNilFunction = errors.New("roots: function must be non-nil")

	// ErrBadOptions indicates a non-positive (or NaN) tolerance or a
	// negative iteration budget.
	ErrBadOptions = errors.New("roots: Eps must be positive and budgets non-negative")
)
