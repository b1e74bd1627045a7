// Package matrix provides column-major real matrices with generic algorithms
// and closed-form fast paths for the 2×2, 3×3 and 4×4 cases.
//
// The matrix package provides:
//
//   - Dense: any rows×cols shape; bounds-checked At/Set(col, row), column
//     views, generic product, transpose into a new cols×rows Dense.
//   - Square: n×n; determinant by elimination with partial pivoting and
//     Gauss-Jordan inversion, both exact-zero-pivot checked.
//   - Matrix2, Matrix3, Matrix4: fixed sizes with closed-form determinant,
//     inverse and product, plus transform builders (MakeIdentity, MakeScale,
//     MakeRotation, MakeTranslation).
//
// Dual API:
//
//   - Methods mutate the receiver and return it for chaining:
//     m.MultiplyMatrices(a, b), m.Invert(), m.Transpose().
//   - Package functions never mutate their arguments and return a value of
//     the operand's own type: Transpose, Inverse, Multiply, Determinant.
//
// A fixed-size fast path runs only when both operands are the receiver's
// exact type; any other operand falls back to the inherited generic path.
// Results are the same either way.
//
// Every dimension check precedes any write, so a failed call leaves the
// receiver as it was. Errors are sentinels matched with errors.Is.
package matrix
