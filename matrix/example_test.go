package matrix_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvalg/matrix"
	"github.com/katalvlaran/lvalg/vector"
)

// ExampleMatrix2_Invert shows the closed-form inverse and the exact-zero rule.
func ExampleMatrix2_Invert() {
	m := matrix.NewMatrix2(1, 2, 3, 4)
	if _, err := m.Invert(); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(m)

	_, err := matrix.NewMatrix2(1, 1, 2, 2).Invert()
	fmt.Println(errors.Is(err, matrix.ErrNotInvertible))
	// Output:
	// [-2, 1.5]
	// [1, -0.5]
	// true
}

// ExampleMatrix2_MultiplyMatrices multiplies a Matrix2 by a generic Square of
// the same size; the fast path is skipped and the result is unchanged.
func ExampleMatrix2_MultiplyMatrices() {
	a := matrix.NewMatrix2(2, 3, 1, 0)
	b, _ := matrix.NewSquare(2, 1, 2, 2, 1)

	out, _ := matrix.NewMatrix2(0, 0, 0, 0).MultiplyMatrices(a, b)
	fmt.Println(out.ToArray())
	// Output:
	// [4 3 5 6]
}

// ExampleMatrix4_MakeTranslation moves a point by (1, 2, 3).
func ExampleMatrix4_MakeTranslation() {
	m := matrix.NewMatrix4(
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	).MakeTranslation(1, 2, 3)

	fmt.Println(m.TransformPoint(vector.NewVector3(1, 1, 1)))
	// Output:
	// (2, 3, 4)
}

// ExampleTranspose keeps the operand's type.
func ExampleTranspose() {
	m := matrix.NewMatrix2(1, 2, 3, 4)
	t := matrix.Transpose(m)
	fmt.Printf("%T %v\n", t, t.ToArray())
	// Output:
	// *matrix.Matrix2 [1 3 2 4]
}

// ExampleMatrix2_MakeRotation rotates (1, 0) by a quarter turn.
func ExampleMatrix2_MakeRotation() {
	m := matrix.NewMatrix2(0, 0, 0, 0).MakeRotation(math.Pi / 2)
	v := m.TransformVector(vector.NewVector2(1, 0))
	fmt.Printf("(%.0f, %.0f)\n", v.X(), v.Y())
	// Output:
	// (0, -1)
}
