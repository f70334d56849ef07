// SPDX-License-Identifier: MIT

package vector_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvnum/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestDot_BothConventions(t *testing.T) {
	v, w := []float64{1, 2}, []float64{3, 4}

	byValue, err := vector.Dot(v, w, 2)
	require.NoError(t, err)

	var byRef float64
	require.NoError(t, vector.DotTo(v, w, 2, &byRef))

	assert.Equal(t, 11.0, byValue)
	assert.Equal(t, 11.0, byRef)
}

func TestDot_PrefixDimension(t *testing.T) {
	v, w := []float64{1, 2, 3}, []float64{4, 5, 6, 7}

	got, err := vector.Dot(v, w, 2)
	require.NoError(t, err)
	assert.Equal(t, 14.0, got)

	zero, err := vector.Dot(nil, nil, 0)
	require.NoError(t, err)
	assert.Zero(t, zero)
}

// TestDot_ConventionsAgreeBitwise is a randomized property check: for every
// valid input both surfaces return exactly the same float64 bits and match
// an independent implementation within rounding.
func TestDot_ConventionsAgreeBitwise(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(64) + 1
		v := make([]float64, n)
		w := make([]float64, n)
		for i := range v {
			v[i] = rng.NormFloat64() * 1e3
			w[i] = rng.NormFloat64() * 1e-3
		}
		dim := rng.Intn(n + 1)

		byValue, err := vector.Dot(v, w, dim)
		require.NoError(t, err)
		var byRef float64
		require.NoError(t, vector.DotTo(v, w, dim, &byRef))

		require.Equal(t, math.Float64bits(byValue), math.Float64bits(byRef), "trial=%d dim=%d", trial, dim)
		require.InDelta(t, floats.Dot(v[:dim], w[:dim]), byValue, 1e-9, "trial=%d dim=%d", trial, dim)
	}
}

func TestDot_Errors(t *testing.T) {
	v, w := []float64{1, 2, 3}, []float64{1, 2}

	_, err := vector.Dot(v, w, -1)
	assert.ErrorIs(t, err, vector.ErrInvalidDimension)

	_, err = vector.Dot(v, w, 3)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch, "dim exceeds len(w)")

	_, err = vector.Dot(w, v, 3)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch, "dim exceeds len(v)")

	err = vector.DotTo(v, w, 4, new(float64))
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)

	err = vector.DotTo(v, w, 2, nil)
	assert.ErrorIs(t, err, vector.ErrNilOutput)
}

func TestDotTo_LeavesOutputOnError(t *testing.T) {
	out := 7.5
	err := vector.DotTo([]float64{1}, []float64{1}, 2, &out)
	require.Error(t, err)
	assert.Equal(t, 7.5, out)
}

func TestValidateDim_Priority(t *testing.T) {
	// Negative dim wins over length checks.
	assert.ErrorIs(t, vector.ValidateDim(nil, nil, -2), vector.ErrInvalidDimension)
	assert.NoError(t, vector.ValidateDim([]float64{1}, []float64{1, 2}, 1))
	assert.ErrorIs(t, vector.ValidateDim(nil, []float64{1}, 1), vector.ErrDimensionMismatch)
}
