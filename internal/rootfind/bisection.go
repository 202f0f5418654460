package rootfind

import "math"

// Bisect finds a root of f inside the bracket [a, b] by repeated halving.
//
// The endpoints must satisfy f(a)*f(b) <= 0 (a sign change, or an exact zero
// at an endpoint); anything else fails with ErrInvalidBracket before any
// iteration runs. Every iteration appends half the current bracket width as
// its error estimate, the method's characteristic bound, and counts toward
// Iterations — unlike Newton and Secant there is no degeneracy escape hatch.
//
// The stopping condition is deliberately dual: the midpoint converges when
// either |f(c)| or the half-width drops below the tolerance. Note the two
// quantities carry different units under the one threshold.
func Bisect(f Func, a, b float64, s Settings) (*Result, error) {
	if err := checkSettings("bisect", s); err != nil {
		return nil, err
	}
	if f(a)*f(b) > 0 {
		return nil, WrapErrorf(ErrInvalidBracket,
			"f(%g) and f(%g) have the same sign", a, b).WithOperation("bisect")
	}

	res := &Result{
		ErrorHistory: make([]float64, 0, s.MaxIterations),
	}

	for i := 0; i < s.MaxIterations; i++ {
		c := (a + b) / 2
		half := (b - a) / 2
		res.ErrorHistory = append(res.ErrorHistory, half)
		res.Iterations++

		fc := f(c)
		if math.Abs(fc) < s.Tolerance || half < s.Tolerance {
			res.Root = c
			return res, nil
		}

		// On an exact zero product the bracket narrows toward a's side.
		if fc*f(a) < 0 {
			b = c
		} else {
			a = c
		}
	}

	res.Root = (a + b) / 2
	res.Diagnostic = DiagnosticMaxIterations
	return res, nil
}
