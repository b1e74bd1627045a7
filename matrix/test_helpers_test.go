// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the kernel tests.
//   • Force the generic fallback path without touching production code.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvalg/matrix"
	"github.com/katalvlaran/lvalg/vector"
	"github.com/stretchr/testify/require"
)

// Tolerance for floating-point comparisons in round-trip checks.
const eps = 1e-9

// hide WRAPS any Matrix to hide its concrete type from type assertions.
//
// Behavior highlights:
//   - Still satisfies Matrix, but is never *Matrix2/3/4, so every fast path
//     declines it and the generic algorithm runs.
//
// Notes:
//   - Wrap ONLY the operand you want to de-opt so path differences are isolated.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense from column-major elements or fails the test.
func MustDense(t *testing.T, r, c int, e ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c, e...)
	require.NoError(t, err)

	return m
}

// MustSquare ALLOCATES an n×n *Square or fails the test.
func MustSquare(t *testing.T, n int, e ...float64) *matrix.Square {
	t.Helper()
	m, err := matrix.NewSquare(n, e...)
	require.NoError(t, err)

	return m
}

// mustVec ALLOCATES a generic vector or fails the test.
func mustVec(t *testing.T, e ...float64) *vector.Vector {
	t.Helper()
	v, err := vector.New(e...)
	require.NoError(t, err)

	return v
}

// randElems returns n deterministic values in [-5, 5).
func randElems(seed int64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*10 - 5
	}

	return out
}

// diagDominant returns an n×n column-major buffer that is strictly diagonally
// dominant, hence invertible and well conditioned.
func diagDominant(seed int64, n int) []float64 {
	e := randElems(seed, n*n)
	for i := 0; i < n; i++ {
		e[i*n+i] += 10 * float64(n)
	}

	return e
}

// requireIdentity asserts m ≈ I within eps.
func requireIdentity(t *testing.T, m matrix.Matrix) {
	t.Helper()
	n := m.Rows()
	require.Equal(t, n, m.Cols())
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			v, err := m.At(c, r)
			require.NoError(t, err)
			want := 0.0
			if r == c {
				want = 1
			}
			require.InDelta(t, want, v, eps, "(%d,%d)", c, r)
		}
	}
}
