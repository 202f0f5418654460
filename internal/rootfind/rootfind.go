// Package rootfind implements classical iterative root-finding methods for
// scalar nonlinear equations f(x) = 0: Newton-Raphson, Secant, and Bisection.
//
// The three solvers are pure functions over their inputs. They share no state
// between calls and are safe for concurrent use as long as the supplied
// evaluators are.
package rootfind

// Func evaluates a scalar function at x. Solvers may call it any number of
// times and assume it is deterministic and finite-valued over the points
// they probe.
type Func func(x float64) float64

// Settings holds the stopping configuration shared by all solvers.
type Settings struct {
	// Tolerance is the absolute-error threshold below which an iteration
	// counts as converged.
	Tolerance float64

	// MaxIterations caps the number of loop iterations. It must be positive;
	// a non-positive value fails with ErrInvalidConfiguration before any
	// computation runs.
	MaxIterations int
}

// degeneracyThreshold is the fixed magnitude below which Newton treats the
// derivative, and Secant the finite-difference denominator, as degenerate.
// It is deliberately independent of Settings.Tolerance and of the scale of
// the target function.
const degeneracyThreshold = 1e-10

// Diagnostic tags a Result that is usable but not guaranteed to satisfy the
// requested tolerance. The zero value marks a converged result.
type Diagnostic int

const (
	// DiagnosticNone marks a result that converged within tolerance.
	DiagnosticNone Diagnostic = iota

	// DiagnosticDegenerateDerivative marks a Newton run stopped because the
	// derivative magnitude fell below the degeneracy threshold.
	DiagnosticDegenerateDerivative

	// DiagnosticDegenerateSecantDenominator marks a Secant run stopped
	// because the function values at the two running estimates were too
	// close to divide by.
	DiagnosticDegenerateSecantDenominator

	// DiagnosticMaxIterations marks a run that exhausted its iteration
	// budget before the error estimate dropped below tolerance.
	DiagnosticMaxIterations
)

// String returns a stable machine-readable name, empty for DiagnosticNone.
func (d Diagnostic) String() string {
	switch d {
	case DiagnosticDegenerateDerivative:
		return "degenerate_derivative"
	case DiagnosticDegenerateSecantDenominator:
		return "degenerate_secant_denominator"
	case DiagnosticMaxIterations:
		return "max_iterations"
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler so diagnostics serialize as
// their string names.
func (d Diagnostic) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Result is the convergence record produced by every solver call.
type Result struct {
	// Root is the final estimate.
	Root float64 `json:"root"`

	// Iterations counts completed iterations. An iteration aborted by a
	// degeneracy check does not count.
	Iterations int `json:"iterations"`

	// ErrorHistory holds one error estimate per completed iteration, so its
	// length always equals Iterations. Entries are not guaranteed to
	// decrease monotonically.
	ErrorHistory []float64 `json:"error_history"`

	// Diagnostic is set when the result is best-effort rather than
	// converged.
	Diagnostic Diagnostic `json:"diagnostic,omitempty"`
}

// Converged reports whether the run stopped because the error estimate
// dropped below tolerance.
func (r *Result) Converged() bool {
	return r.Diagnostic == DiagnosticNone
}
