package rootfind

import "gonum.org/v1/gonum/diff/fd"

// FiniteDifference returns a numerical approximation of the derivative of f,
// for callers that have no closed form to hand Newton. It uses gonum's
// default forward-difference stencil with an automatically chosen step.
func FiniteDifference(f Func) Func {
	return func(x float64) float64 {
		return fd.Derivative(f, x, nil)
	}
}
