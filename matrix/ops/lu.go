// Package ops provides advanced matrix operations for the lvalg/matrix package.
// lu.go implements LU factorization with partial pivoting (PA = LU).
package ops

import (
	"errors"
	"fmt"
	"math"
)

// ZeroPivot is the sentinel value for an exactly singular elimination step.
const ZeroPivot = 0.0

// ErrSingular is returned when elimination meets an exactly zero pivot column.
var ErrSingular = errors.New("ops: matrix is singular")

// ErrShape is returned when len(a) != n*n or n < 1.
var ErrShape = errors.New("ops: buffer is not n×n")

// LU holds a packed factorization of a column-major n×n matrix:
// the strict lower triangle holds L (unit diagonal implied), the upper
// triangle holds U, and Perm[i] is the original row placed at row i.
type LU struct {
	N    int
	Data []float64 // packed L\U, column-major
	Perm []int
	Sign float64 // +1 or -1, parity of the row permutation
}

// Factorize computes PA = LU with partial pivoting.
// Blueprint:
//
//	Stage 1 (Validate): len(a) == n*n, n ≥ 1.
//	Stage 2 (Prepare): copy a so the caller's buffer is never written.
//	Stage 3 (Execute): for each column pick the row with the largest |a|,
//	                   swap it up, and eliminate below the diagonal.
//
// A zero pivot column does not abort: the factorization is still returned
// (U then has a zero on its diagonal) together with ErrSingular.
// Complexity: O(n³) time, O(n²) memory.
func Factorize(n int, a []float64) (*LU, error) {
	if n < 1 || len(a) != n*n {
		return nil, fmt.Errorf("Factorize: n=%d len=%d: %w", n, len(a), ErrShape)
	}

	w := make([]float64, len(a))
	copy(w, a)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	f := &LU{N: n, Data: w, Perm: perm, Sign: 1}

	var (
		col, r, k, p int
		best, v      float64
		pivot, mult  float64
		singular     bool
	)
	for col = 0; col < n; col++ {
		// pick pivot row
		p = col
		best = math.Abs(w[col*n+col])
		for r = col + 1; r < n; r++ {
			if v = math.Abs(w[col*n+r]); v > best {
				best, p = v, r
			}
		}
		if w[col*n+p] == ZeroPivot {
			singular = true
			continue
		}
		if p != col {
			swapRows(w, n, p, col)
			perm[p], perm[col] = perm[col], perm[p]
			f.Sign = -f.Sign
		}

		pivot = w[col*n+col]
		for r = col + 1; r < n; r++ {
			mult = w[col*n+r] / pivot
			w[col*n+r] = mult // store L below the diagonal
			if mult == 0 {
				continue
			}
			for k = col + 1; k < n; k++ {
				w[k*n+r] -= mult * w[k*n+col]
			}
		}
	}
	if singular {
		return f, ErrSingular
	}

	return f, nil
}

// Determinant returns sign(P)·ΠU[i,i].
func (f *LU) Determinant() float64 {
	det := f.Sign
	for i := 0; i < f.N; i++ {
		det *= f.Data[i*f.N+i]
	}

	return det
}

// Determinant computes det(a) of a column-major n×n buffer by elimination.
// An exactly singular matrix yields 0; NaN/Inf propagate.
// Complexity: O(n³).
func Determinant(n int, a []float64) (float64, error) {
	f, err := Factorize(n, a)
	if errors.Is(err, ErrSingular) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return f.Determinant(), nil
}

// swapRows exchanges rows i and j across all n columns.
func swapRows(w []float64, n, i, j int) {
	for k := 0; k < n; k++ {
		w[k*n+i], w[k*n+j] = w[k*n+j], w[k*n+i]
	}
}
