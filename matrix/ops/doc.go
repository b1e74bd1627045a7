// Package ops provides the size-agnostic elimination kernels behind the
// generic square-matrix path of the lvalg/matrix package.
//
// Every kernel works on a flat column-major n×n buffer (element (row i,
// column j) lives at j*n + i), never mutates its input, and uses partial
// pivoting. The only failure is an exactly zero pivot, reported as
// ErrSingular; tiny but non-zero pivots are accepted.
package ops
