package rootfind

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBisectConverges(t *testing.T) {
	res, err := Bisect(parabola, 0.0, 3.0, Settings{
		Tolerance:     1e-6,
		MaxIterations: 100,
	})
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.InDelta(t, 2.0, res.Root, 1e-5)
	assert.True(t, res.Converged())
	assert.Len(t, res.ErrorHistory, res.Iterations)

	// The error entries are exactly the successive bracket half-widths:
	// (b0-a0)/2^(k+1) for every index k.
	expected := 1.5
	for k, got := range res.ErrorHistory {
		assert.Equal(t, expected, got, "error history entry %d", k)
		expected /= 2
	}
}

func TestBisectExactMidpointRoot(t *testing.T) {
	// The first midpoint of [0, 4] lands exactly on the root.
	res, err := Bisect(parabola, 0.0, 4.0, Settings{
		Tolerance:     1e-6,
		MaxIterations: 100,
	})
	require.NoError(t, err)

	assert.Equal(t, 2.0, res.Root)
	assert.Equal(t, 1, res.Iterations)
	assert.True(t, res.Converged())
}

func TestBisectInvalidBracket(t *testing.T) {
	// f is positive on both endpoints, so no sign change is bracketed.
	res, err := Bisect(parabola, 3.0, 5.0, Settings{
		Tolerance:     1e-6,
		MaxIterations: 100,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidBracket))
	assert.Nil(t, res, "no iterations run on a bad bracket")
}

func TestBisectEndpointZeroIsAccepted(t *testing.T) {
	// f(2) = 0 makes the product exactly zero, which the precondition
	// allows.
	_, err := Bisect(parabola, 2.0, 5.0, Settings{
		Tolerance:     1e-6,
		MaxIterations: 10,
	})
	assert.NoError(t, err)
}

func TestBisectInvalidConfiguration(t *testing.T) {
	res, err := Bisect(parabola, 0.0, 3.0, Settings{
		Tolerance:     1e-6,
		MaxIterations: 0,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
	assert.Nil(t, res)
}

func TestBisectMaxIterations(t *testing.T) {
	// An unreachable tolerance exhausts the budget; every iteration still
	// appends its half-width entry.
	res, err := Bisect(parabola, 0.0, 3.0, Settings{
		Tolerance:     1e-30,
		MaxIterations: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, DiagnosticMaxIterations, res.Diagnostic)
	assert.False(t, res.Converged())
	assert.Equal(t, 10, res.Iterations)
	assert.Len(t, res.ErrorHistory, 10)
	assert.InDelta(t, 2.0, res.Root, 1.5/1024, "final midpoint stays inside the narrowed bracket")
}
