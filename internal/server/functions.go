package server

import (
	"math"
	"sort"

	"github.com/copyleftdev/SOLVR/internal/rootfind"
)

// TargetFunction couples a named scalar function with its analytic
// derivative when one is registered. Newton falls back to a
// finite-difference approximation otherwise.
type TargetFunction struct {
	F  rootfind.Func
	Df rootfind.Func
}

// Derivative returns the analytic derivative or a finite-difference
// approximation when none is registered.
func (t TargetFunction) Derivative() rootfind.Func {
	if t.Df != nil {
		return t.Df
	}
	return rootfind.FiniteDifference(t.F)
}

// targetFunctions is the built-in registry of solvable functions. Requests
// refer to them by name.
var targetFunctions = map[string]TargetFunction{
	"x^2-4": {
		F:  func(x float64) float64 { return x*x - 4 },
		Df: func(x float64) float64 { return 2 * x },
	},
	"x^3-2x-5": {
		F:  func(x float64) float64 { return x*x*x - 2*x - 5 },
		Df: func(x float64) float64 { return 3*x*x - 2 },
	},
	"cos(x)-x": {
		F:  func(x float64) float64 { return math.Cos(x) - x },
		Df: func(x float64) float64 { return -math.Sin(x) - 1 },
	},
	"exp(x)-2": {
		F:  func(x float64) float64 { return math.Exp(x) - 2 },
		Df: math.Exp,
	},
	"sin(x)": {
		F:  math.Sin,
		Df: math.Cos,
	},
	// No closed-form derivative registered; exercises the finite-difference
	// fallback.
	"x*sin(x)-1": {
		F: func(x float64) float64 { return x*math.Sin(x) - 1 },
	},
}

func lookupFunction(name string) (TargetFunction, bool) {
	fn, ok := targetFunctions[name]
	return fn, ok
}

func functionNames() []string {
	names := make([]string, 0, len(targetFunctions))
	for name := range targetFunctions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
