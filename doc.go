// Package lvalg is a small linear-algebra kernel for transform pipelines:
// vectors, column-major matrices and closed-form fast paths for the 2×2,
// 3×3 and 4×4 cases that graphics and geometry code lives on.
//
// 🚀 What is lvalg?
//
//	A focused library with one storage rule and two calling styles:
//		• Vectors: generic Vector plus Vector2/3/4 with xyzw, rgba and stpq aliases
//		• Matrices: generic Dense, Square, and Matrix2/3/4 specializations
//		• Fast paths: closed-form multiply, determinant and inverse for 2, 3, 4
//		• Fallback: LU determinant and Gauss–Jordan inverse for any other size
//		• Two APIs: mutating, chainable methods and non-mutating static helpers
//
// ✨ Why choose lvalg?
//
//   - Column-major everywhere – Elements() is ready for GPU upload
//   - Check-then-commit – a failed operation never leaves a half-written receiver
//   - Typed results – Inverse(*Matrix4) returns *Matrix4, not an interface
//
// Layout:
//
//	vector/             - Vector, Vector2/3/4 and the static vector helpers
//	matrix/             - Matrix interface, Dense, Square, Matrix2/3/4, static API
//	matrix/ops/         - elimination kernels (LU determinant, Gauss–Jordan inverse)
//	internal/workspace/ - YAML workspace of named matrices and vectors
//	cmd/lvalg/          - command-line front end over a workspace file
//
// Storage convention: element (col,row) of an r×c matrix lives at index
// col*r + row, so the 2×2 built from [1, 2, 3, 4] is
//
//	| 1  3 |
//	| 2  4 |
//
// and its determinant is -2.
//
//	go get github.com/katalvlaran/lvalg
package lvalg
