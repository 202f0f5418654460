package bench

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copyleftdev/SOLVR/internal/rootfind"
)

func parabolaCases() []Case {
	f := func(x float64) float64 { return x*x - 4 }
	df := func(x float64) float64 { return 2 * x }
	s := rootfind.Settings{Tolerance: 1e-10, MaxIterations: 100}

	return []Case{
		{Name: "newton", Run: func() (*rootfind.Result, error) {
			return rootfind.Newton(f, df, 1.0, s)
		}},
		{Name: "secant", Run: func() (*rootfind.Result, error) {
			return rootfind.Secant(f, 1.0, 3.0, s)
		}},
		{Name: "bisection", Run: func() (*rootfind.Result, error) {
			return rootfind.Bisect(f, 0.0, 3.0, s)
		}},
	}
}

func TestCompare(t *testing.T) {
	summaries, err := Compare(parabolaCases(), 10)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	for _, s := range summaries {
		require.NotNil(t, s.Result, "summary %s", s.Method)
		assert.True(t, s.Result.Converged(), "summary %s", s.Method)
		assert.InDelta(t, 2.0, s.Result.Root, 1e-6, "summary %s", s.Method)
		assert.Greater(t, s.AvgDuration, time.Duration(0), "summary %s", s.Method)
	}
}

func TestCompareRejectsNonPositiveRuns(t *testing.T) {
	summaries, err := Compare(parabolaCases(), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rootfind.ErrInvalidConfiguration))
	assert.Nil(t, summaries)
}

func TestCompareAbortsOnHardFailure(t *testing.T) {
	cases := []Case{
		{Name: "bad bracket", Run: func() (*rootfind.Result, error) {
			return rootfind.Bisect(func(x float64) float64 { return x*x + 1 }, 0.0, 1.0,
				rootfind.Settings{Tolerance: 1e-6, MaxIterations: 10})
		}},
	}

	summaries, err := Compare(cases, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rootfind.ErrInvalidBracket))
	assert.Nil(t, summaries)
}

func TestWriteTable(t *testing.T) {
	summaries, err := Compare(parabolaCases(), 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, summaries))

	out := buf.String()
	assert.Contains(t, out, "METHOD")
	assert.Contains(t, out, "newton")
	assert.Contains(t, out, "secant")
	assert.Contains(t, out, "bisection")
}
