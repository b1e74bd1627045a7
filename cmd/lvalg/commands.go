// SPDX-License-Identifier: MIT

package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvalg/matrix"
	"github.com/katalvlaran/lvalg/vector"
)

func shapeOf(m matrix.Matrix) string { return fmt.Sprintf("%dx%d", m.Rows(), m.Cols()) }

func kindOf(v any) string { return fmt.Sprintf("%T", v) }

func (a *app) formatFloat(v float64) string {
	if a.precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strconv.FormatFloat(v, 'f', a.precision, 64)
}

// printMatrix writes m row by row, e.g. "[1, 3]\n[2, 4]\n".
func (a *app) printMatrix(w io.Writer, m matrix.Matrix) {
	rows, cols := m.Rows(), m.Cols()
	e := m.Elements()
	parts := make([]string, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			parts[c] = a.formatFloat(e[c*rows+r])
		}
		fmt.Fprintf(w, "[%s]\n", strings.Join(parts, ", "))
	}
}

func (a *app) printVector(w io.Writer, v *vector.Vector) {
	e := v.Elements()
	parts := make([]string, len(e))
	for i, x := range e {
		parts[i] = a.formatFloat(x)
	}
	fmt.Fprintf(w, "(%s)\n", strings.Join(parts, ", "))
}

// save stores m under the --save name, if one was given, and rewrites the file.
func (a *app) save(cmd *cobra.Command, m matrix.Matrix) error {
	name, _ := cmd.Flags().GetString("save")
	if name == "" {
		return nil
	}
	err := a.ws.PutMatrix(name, m)
	if err == nil {
		err = a.ws.Save(a.file)
	}
	a.log.LogSave(cmd.Context(), a.file, name, err)

	return err
}

func (a *app) runList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	for _, name := range a.ws.MatrixNames() {
		m, _ := a.ws.Matrix(name)
		fmt.Fprintf(out, "%s\t%s\t%s\n", name, shapeOf(m), kindOf(m))
	}
	for _, name := range a.ws.VectorNames() {
		v, _ := a.ws.Vector(name)
		fmt.Fprintf(out, "%s\t%d\tvector\n", name, v.Len())
	}

	return nil
}

func (a *app) runDet(cmd *cobra.Command, args []string) error {
	log := a.log.WithOp("det")
	m, err := a.ws.Matrix(args[0])
	if err != nil {
		return err
	}
	det, err := matrix.Determinant(m)
	log.LogOp(cmd.Context(), args[0], shapeOf(m), kindOf(m), err)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.formatFloat(det))

	return nil
}

func (a *app) runInverse(cmd *cobra.Command, args []string) error {
	log := a.log.WithOp("inverse")
	m, err := a.ws.Matrix(args[0])
	if err != nil {
		return err
	}
	inv, err := invert(m)
	log.LogOp(cmd.Context(), args[0], shapeOf(m), kindOf(m), err)
	if err != nil {
		return err
	}
	a.printMatrix(cmd.OutOrStdout(), inv)

	return a.save(cmd, inv)
}

func (a *app) runTranspose(cmd *cobra.Command, args []string) error {
	log := a.log.WithOp("transpose")
	m, err := a.ws.Matrix(args[0])
	if err != nil {
		return err
	}
	t := transpose(m)
	log.LogOp(cmd.Context(), args[0], shapeOf(m), kindOf(m), nil)
	a.printMatrix(cmd.OutOrStdout(), t)

	return a.save(cmd, t)
}

func (a *app) runMultiply(cmd *cobra.Command, args []string) error {
	log := a.log.WithOp("multiply")
	x, err := a.ws.Matrix(args[0])
	if err != nil {
		return err
	}
	y, err := a.ws.Matrix(args[1])
	if err != nil {
		return err
	}
	p, err := multiply(x, y)
	log.LogOp(cmd.Context(), args[0]+"*"+args[1], shapeOf(x)+" * "+shapeOf(y), kindOf(x), err)
	if err != nil {
		return err
	}
	a.printMatrix(cmd.OutOrStdout(), p)

	return a.save(cmd, p)
}

func (a *app) runTransform(cmd *cobra.Command, args []string) error {
	log := a.log.WithOp("transform")
	m, err := a.ws.Matrix(args[0])
	if err != nil {
		return err
	}
	v, err := a.ws.Vector(args[1])
	if err != nil {
		return err
	}
	out, err := transform(m, v)
	log.LogOp(cmd.Context(), args[0], shapeOf(m), kindOf(m), err)
	if err != nil {
		return err
	}
	a.printVector(cmd.OutOrStdout(), out)

	return nil
}

// float32er is implemented by every matrix type through Dense.
type float32er interface {
	ToFloat32() []float32
}

func (a *app) runExport(cmd *cobra.Command, args []string) error {
	log := a.log.WithOp("export")
	name := args[0]

	var buf []float32
	if m, err := a.ws.Matrix(name); err == nil {
		f, ok := m.(float32er)
		if !ok {
			return fmt.Errorf("matrix %q: %s cannot export float32", name, kindOf(m))
		}
		buf = f.ToFloat32()
		log.LogOp(cmd.Context(), name, shapeOf(m), kindOf(m), nil)
	} else {
		v, verr := a.ws.Vector(name)
		if verr != nil {
			return fmt.Errorf("%w; %w", err, verr)
		}
		buf = v.ToFloat32()
		log.LogOp(cmd.Context(), name, strconv.Itoa(v.Len()), "vector", nil)
	}

	path, _ := cmd.Flags().GetString("out")
	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), buf)
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err = binary.Write(f, binary.LittleEndian, buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write export file: %w", err)
	}
	a.log.InfoContext(cmd.Context(), "buffer exported", "filename", path, "name", name, "floats", len(buf))

	return f.Close()
}

// invert returns a new inverse of the operand's own type.
func invert(m matrix.Matrix) (matrix.Matrix, error) {
	switch x := m.(type) {
	case *matrix.Matrix2:
		return unwrap(matrix.Inverse(x))
	case *matrix.Matrix3:
		return unwrap(matrix.Inverse(x))
	case *matrix.Matrix4:
		return unwrap(matrix.Inverse(x))
	case *matrix.Square:
		return unwrap(matrix.Inverse(x))
	default:
		return nil, fmt.Errorf("inverse of %s: %w", shapeOf(m), matrix.ErrNonSquare)
	}
}

// unwrap drops a typed nil on error so callers see a nil interface.
func unwrap[M matrix.Matrix](m M, err error) (matrix.Matrix, error) {
	if err != nil {
		return nil, err
	}

	return m, nil
}

// transpose returns a new transpose of the operand's TransposeType.
func transpose(m matrix.Matrix) matrix.Matrix {
	switch x := m.(type) {
	case *matrix.Matrix2:
		return matrix.Transpose(x)
	case *matrix.Matrix3:
		return matrix.Transpose(x)
	case *matrix.Matrix4:
		return matrix.Transpose(x)
	case *matrix.Square:
		return matrix.Transpose(x)
	case *matrix.Dense:
		return matrix.Transpose(x)
	default:
		d, _ := matrix.NewDense(m.Rows(), m.Cols(), m.Elements()...)
		return d.Transposed()
	}
}

// multiply computes a × b into a receiver specialized for the result shape,
// so fixed-size operands take their closed-form path.
func multiply(a, b matrix.Matrix) (matrix.Matrix, error) {
	z, err := matrix.Zeros(a.Rows(), b.Cols())
	if err != nil {
		return nil, err
	}
	dst, err := matrix.Specialize(z)
	if err != nil {
		return nil, err
	}
	switch d := dst.(type) {
	case *matrix.Matrix2:
		return unwrap(d.MultiplyMatrices(a, b))
	case *matrix.Matrix3:
		return unwrap(d.MultiplyMatrices(a, b))
	case *matrix.Matrix4:
		return unwrap(d.MultiplyMatrices(a, b))
	case *matrix.Square:
		return unwrap(d.MultiplyMatrices(a, b))
	default:
		return unwrap(matrix.Multiply(a, b))
	}
}

// transform returns m·v as a generic vector, using the fixed-size transform
// when m is a Matrix2/3/4.
func transform(m matrix.Matrix, v *vector.Vector) (*vector.Vector, error) {
	if err := matrix.ValidateVecLen(m, v.Len()); err != nil {
		return nil, err
	}
	e := v.Elements()
	switch x := m.(type) {
	case *matrix.Matrix2:
		return &x.TransformVector(vector.NewVector2(e[0], e[1])).Vector, nil
	case *matrix.Matrix3:
		return &x.TransformVector(vector.NewVector3(e[0], e[1], e[2])).Vector, nil
	case *matrix.Matrix4:
		return &x.TransformVector(vector.NewVector4(e[0], e[1], e[2], e[3])).Vector, nil
	case *matrix.Square:
		return x.Dense.TransformVector(v)
	case *matrix.Dense:
		return x.TransformVector(v)
	default:
		d, err := matrix.NewDense(m.Rows(), m.Cols(), m.Elements()...)
		if err != nil {
			return nil, err
		}
		return d.TransformVector(v)
	}
}
