// SPDX-License-Identifier: MIT

package derivative_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/derivative"
	"github.com/katalvlaran/lvnum/fn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDerivative_LinearExactForAllSchemes checks that every scheme recovers
// the slope k of f(x) = k·x + m for a range of steps.
func TestDerivative_LinearExactForAllSchemes(t *testing.T) {
	const k, m, x = 3.0, -2.0, 1.5
	f := fn.Func(func(x float64) float64 { return k*x + m })

	for _, s := range derivative.Schemes() {
		for _, h := range []float64{1e-3, 0.1, 1, 10} {
			d, err := derivative.Derivative(f, x, s, h)
			require.NoError(t, err, "scheme=%v h=%v", s, h)
			assert.InDelta(t, k, d, 1e-9, "scheme=%v h=%v", s, h)
		}
	}
}

// TestDerivative_Square checks f(x) = x² at x = 1.5: forward carries the
// exact bias h, the symmetric schemes are exact up to rounding.
func TestDerivative_Square(t *testing.T) {
	const x, h = 1.5, 1e-3
	f := fn.Func(func(x float64) float64 { return x * x })

	d, err := derivative.Derivative(f, x, derivative.Forward, h)
	require.NoError(t, err)
	assert.InDelta(t, 2*x+h, d, 1e-9, "forward bias equals h for x²")

	for _, s := range []derivative.Scheme{derivative.Central, derivative.FivePoint, derivative.Richardson} {
		d, err = derivative.Derivative(f, x, s, h)
		require.NoError(t, err)
		assert.InDelta(t, 2*x, d, 1e-9, "scheme=%v", s)
	}
}

// TestDerivative_ConvergenceOrder verifies a decreasing error over three
// halvings of h, shrinking faster for higher-order schemes.
func TestDerivative_ConvergenceOrder(t *testing.T) {
	const x = 1.0
	f := fn.Func(math.Exp)
	exact := math.Exp(x)

	cases := []struct {
		scheme   derivative.Scheme
		minRatio float64 // lower bound on err(h)/err(h/2)
	}{
		{derivative.Central, 3},
		{derivative.FivePoint, 10},
		{derivative.Richardson, 30},
	}
	for _, tc := range cases {
		samples, err := derivative.Sweep(f, x, tc.scheme, 0.8, 3)
		require.NoError(t, err)
		require.Len(t, samples, 4)

		for i := 1; i < len(samples); i++ {
			prev := math.Abs(samples[i-1].Value - exact)
			cur := math.Abs(samples[i].Value - exact)
			assert.Less(t, cur, prev, "scheme=%v step=%v", tc.scheme, samples[i].Step)
			assert.Greater(t, prev/cur, tc.minRatio, "scheme=%v step=%v", tc.scheme, samples[i].Step)
		}
	}
}

// TestDerivative_RichardsonCombinesFivePoint pins the extrapolation formula.
func TestDerivative_RichardsonCombinesFivePoint(t *testing.T) {
	const x, h = 0.7, 0.05
	f := fn.Func(math.Sin)

	fine, err := derivative.Derivative(f, x, derivative.FivePoint, h)
	require.NoError(t, err)
	coarse, err := derivative.Derivative(f, x, derivative.FivePoint, 2*h)
	require.NoError(t, err)
	rich, err := derivative.Derivative(f, x, derivative.Richardson, h)
	require.NoError(t, err)

	assert.InDelta(t, (16*fine-coarse)/15, rich, 1e-15)
	assert.InDelta(t, math.Cos(x), rich, 1e-9)
}

// TestDerivative_EvaluationCounts checks that each scheme calls f exactly
// Scheme.Evaluations() times and never caches.
func TestDerivative_EvaluationCounts(t *testing.T) {
	c := fn.NewCounter(fn.Func(math.Cos))
	for _, s := range derivative.Schemes() {
		c.Reset()
		_, err := derivative.Derivative(c, 0.3, s, 1e-2)
		require.NoError(t, err)
		assert.EqualValues(t, s.Evaluations(), c.Calls(), "scheme=%v", s)
	}
}

func TestDerivative_Errors(t *testing.T) {
	f := fn.Func(math.Sin)

	_, err := derivative.Derivative(nil, 0, derivative.Central, 1e-3)
	assert.ErrorIs(t, err, fn.ErrNilFunction)

	_, err = derivative.Derivative(f, math.NaN(), derivative.Central, 1e-3)
	assert.ErrorIs(t, err, fn.ErrNonFinite)

	for _, h := range []float64{0, -1e-3, math.NaN(), math.Inf(1)} {
		_, err = derivative.Derivative(f, 0, derivative.Central, h)
		assert.ErrorIs(t, err, derivative.ErrInvalidStep, "h=%v", h)
	}

	for _, s := range []derivative.Scheme{-1, 4, 42} {
		_, err = derivative.Derivative(f, 0, s, 1e-3)
		assert.ErrorIs(t, err, derivative.ErrUnsupportedScheme, "scheme=%d", int(s))
	}
}

func TestDerivative_UnsupportedSchemeDoesNotEvaluate(t *testing.T) {
	c := fn.NewCounter(fn.Func(math.Sin))
	_, err := derivative.Derivative(c, 0, derivative.Scheme(7), 1e-3)
	require.ErrorIs(t, err, derivative.ErrUnsupportedScheme)
	assert.Zero(t, c.Calls())
}

func TestSweep(t *testing.T) {
	f := fn.Func(math.Sin)

	samples, err := derivative.Sweep(f, 0, derivative.Forward, 1, 2)
	require.NoError(t, err)
	require.Len(t, samples, 3)
	assert.Equal(t, []float64{1, 0.5, 0.25}, []float64{samples[0].Step, samples[1].Step, samples[2].Step})

	single, err := derivative.Sweep(f, 0, derivative.Central, 0.1, 0)
	require.NoError(t, err)
	assert.Len(t, single, 1)

	_, err = derivative.Sweep(f, 0, derivative.Central, 0.1, -1)
	assert.ErrorIs(t, err, derivative.ErrInvalidSweep)

	for _, n := range []int{derivative.MaxHalvings + 1, 1 << 40, math.MaxInt} {
		_, err = derivative.Sweep(f, 0, derivative.Central, 0.1, n)
		assert.ErrorIs(t, err, derivative.ErrInvalidSweep, "halvings=%d", n)
	}

	// Within the cap the step underflows to zero before the last sample.
	_, err = derivative.Sweep(f, 0, derivative.Central, 1, derivative.MaxHalvings)
	assert.ErrorIs(t, err, derivative.ErrInvalidStep)

	_, err = derivative.Sweep(f, 0, derivative.Central, -0.1, 3)
	assert.ErrorIs(t, err, derivative.ErrInvalidStep)
}
