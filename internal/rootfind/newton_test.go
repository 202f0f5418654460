package rootfind

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parabola has simple roots at ±2 and a stationary point at 0.
func parabola(x float64) float64 { return x*x - 4 }

func parabolaDeriv(x float64) float64 { return 2 * x }

func TestNewtonConvergesQuadratically(t *testing.T) {
	res, err := Newton(parabola, parabolaDeriv, 1.0, Settings{
		Tolerance:     1e-10,
		MaxIterations: 50,
	})
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.InDelta(t, 2.0, res.Root, 1e-9, "should converge to the root at 2")
	assert.True(t, res.Converged())
	assert.LessOrEqual(t, res.Iterations, 6, "quadratic convergence should need only a handful of iterations")
	assert.Len(t, res.ErrorHistory, res.Iterations)
}

func TestNewtonInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		maxIter int
	}{
		{"zero budget", 0},
		{"negative budget", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Newton(parabola, parabolaDeriv, 1.0, Settings{
				Tolerance:     1e-10,
				MaxIterations: tt.maxIter,
			})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfiguration))
			assert.Nil(t, res, "no partial result on a configuration error")
		})
	}
}

func TestNewtonDegenerateDerivativeAtStart(t *testing.T) {
	// x0 = 0 sits on the stationary point of x^2 - 4, so df(x0) = 0 and the
	// very first iteration must abort before completing.
	res, err := Newton(parabola, parabolaDeriv, 0.0, Settings{
		Tolerance:     1e-10,
		MaxIterations: 50,
	})
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, DiagnosticDegenerateDerivative, res.Diagnostic)
	assert.Equal(t, 0.0, res.Root, "estimate must be returned unchanged")
	assert.Equal(t, 0, res.Iterations)
	assert.Empty(t, res.ErrorHistory)
}

func TestNewtonMaxIterations(t *testing.T) {
	// x^2 has a double root at 0, dropping Newton to linear convergence:
	// each step merely halves the estimate, so five iterations cannot reach
	// a 1e-12 tolerance from x0 = 1.
	f := func(x float64) float64 { return x * x }
	df := func(x float64) float64 { return 2 * x }

	res, err := Newton(f, df, 1.0, Settings{
		Tolerance:     1e-12,
		MaxIterations: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, DiagnosticMaxIterations, res.Diagnostic)
	assert.False(t, res.Converged())
	assert.Equal(t, 5, res.Iterations)
	assert.Len(t, res.ErrorHistory, 5)
	assert.InDelta(t, 1.0/32, res.Root, 1e-12, "each step halves the estimate")
}

func TestNewtonWithFiniteDifferenceDerivative(t *testing.T) {
	res, err := Newton(parabola, FiniteDifference(parabola), 1.0, Settings{
		Tolerance:     1e-8,
		MaxIterations: 50,
	})
	require.NoError(t, err)

	assert.True(t, res.Converged())
	assert.InDelta(t, 2.0, res.Root, 1e-6)
}
