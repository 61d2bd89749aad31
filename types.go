package roots

// Func is a caller-supplied scalar function of one real variable.
//
// The solvers may evaluate a Func any number of times per call, including
// at points outside whatever domain the caller considers valid; no domain
// validation is performed. A Func should be deterministic and free of
// side effects: bracket signs are recomputed on every bisection pass, so
// a non-deterministic Func sees more calls than its pure counterpart.
type Func func(x float64) float64

const (
	// DefaultEps is the default tolerance on |f(x)| at an accepted root.
	DefaultEps = 1e-5

	// DefaultMaxIters is the default iteration budget per method.
	DefaultMaxIters = 20
)

// Options configures a single iterative solver call.
//
// Fields:
//   - Eps      — tolerance on the function value: a candidate x is accepted
//     as a root once |f(x)| < Eps. Must be positive.
//   - MaxIters — iteration budget, checked before each advance. A budget of
//     0 still evaluates exactly one candidate. Must be non-negative.
//
// Example:
//
//	opts := roots.DefaultOptions()
//	opts.MaxIters = 50
//	root, err := roots.Bisection(f, 0, 2, opts)
type Options struct {
	Eps      float64
	MaxIters int
}

// DefaultOptions returns the canonical solver settings:
// Eps = 1e-5, MaxIters = 20.
func DefaultOptions() Options {
	return Options{Eps: DefaultEps, MaxIters: DefaultMaxIters}
}

// SolveOptions configures the composite Solve dispatcher, which runs the
// Newton–Raphson and bisection stages under one shared tolerance but
// separate iteration budgets.
//
// Fields:
//   - Eps            — tolerance on |f(x)|, shared by both stages.
//   - NewtonMaxIters — iteration budget of the Newton–Raphson stage.
//   - BisectMaxIters — iteration budget of the bisection fallback.
type SolveOptions struct {
	Eps            float64
	NewtonMaxIters int
	BisectMaxIters int
}

// DefaultSolveOptions returns the canonical dispatcher settings:
// Eps = 1e-5 and a budget of 20 iterations per stage.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{
		Eps:            DefaultEps,
		NewtonMaxIters: DefaultMaxIters,
		BisectMaxIters: DefaultMaxIters,
	}
}
