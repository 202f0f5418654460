package rootfind

import "math"

// Newton finds a root of f using the Newton-Raphson iteration
//
//	x_{n+1} = x_n - f(x_n)/df(x_n)
//
// starting from x0. df evaluates the derivative of f; it may be analytic or
// an approximation such as the one returned by FiniteDifference — the solver
// treats it as an opaque evaluator.
//
// Convergence is quadratic near a simple root. If the derivative magnitude
// drops below the degeneracy threshold the solver stops early and returns
// its current estimate tagged DiagnosticDegenerateDerivative; if the budget
// runs out, the last estimate is returned tagged DiagnosticMaxIterations.
// Both are usable best-effort results, not errors.
func Newton(f, df Func, x0 float64, s Settings) (*Result, error) {
	if err := checkSettings("newton", s); err != nil {
		return nil, err
	}

	x := x0
	res := &Result{
		Root:         x0,
		ErrorHistory: make([]float64, 0, s.MaxIterations),
	}

	for i := 0; i < s.MaxIterations; i++ {
		y, dy := f(x), df(x)
		if math.Abs(dy) < degeneracyThreshold {
			// The step y/dy would be numerically unreliable. The aborted
			// iteration does not count and appends no history entry.
			res.Root = x
			res.Diagnostic = DiagnosticDegenerateDerivative
			return res, nil
		}

		next := x - y/dy
		step := math.Abs(next - x)
		res.ErrorHistory = append(res.ErrorHistory, step)
		res.Iterations++

		if step < s.Tolerance {
			res.Root = next
			return res, nil
		}
		x = next
	}

	res.Root = x
	res.Diagnostic = DiagnosticMaxIterations
	return res, nil
}
