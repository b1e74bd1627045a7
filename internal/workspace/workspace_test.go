// SPDX-License-Identifier: MIT
package workspace_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvalg/internal/workspace"
	"github.com/katalvlaran/lvalg/matrix"
	"github.com/katalvlaran/lvalg/vector"
	"github.com/stretchr/testify/require"
)

const sample = `
matrices:
  A: {rows: 2, cols: 2, elements: [1, 2, 3, 4]}
  R: {rows: 2, cols: 3, elements: [1, 2, 3, 4, 5, 6]}
  G: {rows: 5, cols: 5, elements: [1,0,0,0,0, 0,1,0,0,0, 0,0,1,0,0, 0,0,0,1,0, 0,0,0,0,1]}
vectors:
  v: [1, 0]
`

func TestParseSpecializes(t *testing.T) {
	w, err := workspace.Parse([]byte(sample))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "G", "R"}, w.MatrixNames())
	require.Equal(t, []string{"v"}, w.VectorNames())

	a, err := w.Matrix("A")
	require.NoError(t, err)
	m2, ok := a.(*matrix.Matrix2)
	require.True(t, ok)
	require.Equal(t, -2.0, m2.Determinant())

	g, err := w.Matrix("G")
	require.NoError(t, err)
	require.IsType(t, &matrix.Square{}, g)

	r, err := w.Matrix("R")
	require.NoError(t, err)
	require.IsType(t, &matrix.Dense{}, r)

	v, err := w.Vector("v")
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0}, v.ToArray())
}

func TestParseErrors(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"size mismatch": {"matrices: {A: {rows: 2, cols: 2, elements: [1, 2, 3]}}", matrix.ErrSizeMismatch},
		"bad shape":     {"matrices: {A: {rows: 0, cols: 2, elements: []}}", matrix.ErrBadShape},
		"empty vector":  {"vectors: {v: []}", vector.ErrBadLength},
		"duplicate":     {"matrices: {x: {rows: 1, cols: 1, elements: [1]}}\nvectors: {x: [1]}", workspace.ErrDuplicateName},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := workspace.Parse([]byte(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := workspace.Parse([]byte("matrices: {A: {rows: 1, cols: 1, elements: [1], extra: 2}}"))
	require.Error(t, err)
}

func TestEmptyDocument(t *testing.T) {
	w, err := workspace.Parse(nil)
	require.NoError(t, err)
	require.Empty(t, w.MatrixNames())

	_, err = w.Matrix("A")
	require.ErrorIs(t, err, workspace.ErrUnknownName)
	_, err = w.Vector("v")
	require.ErrorIs(t, err, workspace.ErrUnknownName)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	w, err := workspace.Parse([]byte(sample))
	require.NoError(t, err)

	inv, err := matrix.Inverse(matrix.NewMatrix2(2, 0, 0, 4))
	require.NoError(t, err)
	require.NoError(t, w.PutMatrix("Ainv", inv))

	path := filepath.Join(t.TempDir(), "ws.yaml")
	require.NoError(t, w.Save(path))

	back, err := workspace.Load(path)
	require.NoError(t, err)
	require.Equal(t, w.MatrixNames(), back.MatrixNames())

	got, err := back.Matrix("Ainv")
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 0, 0, 0.25}, got.Elements())

	_, err = workspace.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestPutMatrixCopies(t *testing.T) {
	w := workspace.New()
	src := matrix.NewMatrix2(1, 2, 3, 4)
	require.NoError(t, w.PutMatrix("A", src))
	src.Elements()[0] = 9

	got, err := w.Matrix("A")
	require.NoError(t, err)
	require.Equal(t, 1.0, got.Elements()[0])
}
