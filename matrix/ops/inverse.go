// Package ops provides advanced matrix operations for the lvalg/matrix package.
// Inverse computes the inverse of a square matrix by Gauss-Jordan elimination
// with partial pivoting.
package ops

import (
	"fmt"
	"math"
)

// Inverse returns A⁻¹ for a column-major n×n buffer a, or ErrSingular when an
// exactly zero pivot column is met. The input is never written.
// Blueprint:
//
//	Stage 1 (Validate): len(a) == n*n, n ≥ 1.
//	Stage 2 (Prepare): working copy W of a and inv = I.
//	Stage 3 (Execute): for each column select the largest-|.| pivot at or
//	                   below the diagonal, swap, normalize the pivot row and
//	                   clear the column above and below in both W and inv.
//	Stage 4 (Finalize): inv now holds A⁻¹.
//
// Complexity: O(n³) time, O(n²) memory.
func Inverse(n int, a []float64) ([]float64, error) {
	if n < 1 || len(a) != n*n {
		return nil, fmt.Errorf("Inverse: n=%d len=%d: %w", n, len(a), ErrShape)
	}

	w := make([]float64, len(a))
	copy(w, a)
	inv := make([]float64, n*n)
	for i := 0; i < n; i++ {
		inv[i*n+i] = 1
	}

	var (
		col, r, k, p int
		best, v      float64
		pivot, f     float64
	)
	for col = 0; col < n; col++ {
		p = col
		best = math.Abs(w[col*n+col])
		for r = col + 1; r < n; r++ {
			if v = math.Abs(w[col*n+r]); v > best {
				best, p = v, r
			}
		}
		if w[col*n+p] == ZeroPivot {
			return nil, fmt.Errorf("Inverse: column %d: %w", col, ErrSingular)
		}
		if p != col {
			swapRows(w, n, p, col)
			swapRows(inv, n, p, col)
		}

		// scale pivot row to a unit pivot
		pivot = w[col*n+col]
		for k = 0; k < n; k++ {
			w[k*n+col] /= pivot
			inv[k*n+col] /= pivot
		}

		// clear the pivot column in every other row
		for r = 0; r < n; r++ {
			if r == col {
				continue
			}
			f = w[col*n+r]
			if f == 0 {
				continue
			}
			for k = 0; k < n; k++ {
				w[k*n+r] -= f * w[k*n+col]
				inv[k*n+r] -= f * inv[k*n+col]
			}
		}
	}

	return inv, nil
}
