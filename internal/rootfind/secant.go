package rootfind

import "math"

// Secant finds a root of f using the secant iteration
//
//	x_{n+1} = x_n - f(x_n) * (x_n - x_{n-1}) / (f(x_n) - f(x_{n-1}))
//
// starting from the two estimates x0 and x1. No derivative is required; the
// slope is approximated from the two most recent function values. The
// estimates need not be ordered or bracket a root.
//
// Convergence is superlinear near a simple root, between Bisect's linear
// rate and Newton's quadratic one. If the denominator f(x_n) - f(x_{n-1})
// falls below the degeneracy threshold the solver stops early and returns
// the current x_n tagged DiagnosticDegenerateSecantDenominator.
func Secant(f Func, x0, x1 float64, s Settings) (*Result, error) {
	if err := checkSettings("secant", s); err != nil {
		return nil, err
	}

	res := &Result{
		Root:         x1,
		ErrorHistory: make([]float64, 0, s.MaxIterations),
	}

	for i := 0; i < s.MaxIterations; i++ {
		y0, y1 := f(x0), f(x1)
		if math.Abs(y1-y0) < degeneracyThreshold {
			// Dividing by a near-zero slope would blow the step up. The
			// aborted iteration does not count and appends no history entry.
			res.Root = x1
			res.Diagnostic = DiagnosticDegenerateSecantDenominator
			return res, nil
		}

		next := x1 - y1*(x1-x0)/(y1-y0)
		step := math.Abs(next - x1)
		res.ErrorHistory = append(res.ErrorHistory, step)
		res.Iterations++

		if step < s.Tolerance {
			res.Root = next
			return res, nil
		}
		x0, x1 = x1, next
	}

	res.Root = x1
	res.Diagnostic = DiagnosticMaxIterations
	return res, nil
}
