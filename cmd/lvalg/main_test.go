// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalg/internal/workspace"
	"github.com/katalvlaran/lvalg/matrix"
)

const testWorkspace = `
matrices:
  A: {rows: 2, cols: 2, elements: [1, 2, 3, 4]}
  I: {rows: 2, cols: 2, elements: [1, 0, 0, 1]}
  S: {rows: 2, cols: 2, elements: [1, 2, 2, 4]}
  R: {rows: 2, cols: 3, elements: [1, 2, 3, 4, 5, 6]}
vectors:
  v: [1, 0]
`

func writeWorkspace(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ws.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testWorkspace), 0o644))

	return path
}

func run(t *testing.T, logs io.Writer, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(logs)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestVersionNeedsNoWorkspace(t *testing.T) {
	out, err := run(t, io.Discard, "version", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, "lvalg v"+version+"\n", out)
}

func TestKernelCommands(t *testing.T) {
	path := writeWorkspace(t)

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"det", []string{"det", "A"}, "-2\n"},
		{"inverse", []string{"inverse", "A"}, "[-2, 1.5]\n[1, -0.5]\n"},
		{"transpose", []string{"transpose", "A"}, "[1, 2]\n[3, 4]\n"},
		{"transpose non-square", []string{"transpose", "R"}, "[1, 2]\n[3, 4]\n[5, 6]\n"},
		{"multiply", []string{"multiply", "A", "I"}, "[1, 3]\n[2, 4]\n"},
		{"multiply rect", []string{"multiply", "I", "R"}, "[1, 3, 5]\n[2, 4, 6]\n"},
		{"transform", []string{"transform", "A", "v"}, "(1, 2)\n"},
		{"precision", []string{"det", "A", "--precision", "2"}, "-2.00\n"},
		{"export vector", []string{"export", "v"}, "[1 0]\n"},
		{"export matrix", []string{"export", "A"}, "[1 2 3 4]\n"},
		{"list", []string{"list"}, "A\t2x2\t*matrix.Matrix2\nI\t2x2\t*matrix.Matrix2\n" +
			"R\t2x3\t*matrix.Dense\nS\t2x2\t*matrix.Matrix2\nv\t2\tvector\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, io.Discard, append(tc.args, "-f", path)...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestKernelCommandErrors(t *testing.T) {
	path := writeWorkspace(t)

	cases := []struct {
		name string
		args []string
		want error
	}{
		{"unknown matrix", []string{"det", "B"}, workspace.ErrUnknownName},
		{"unknown export", []string{"export", "nope"}, workspace.ErrUnknownName},
		{"singular", []string{"inverse", "S"}, matrix.ErrNotInvertible},
		{"non-square det", []string{"det", "R"}, matrix.ErrNonSquare},
		{"non-square inverse", []string{"inverse", "R"}, matrix.ErrNonSquare},
		{"shape mismatch", []string{"multiply", "R", "A"}, matrix.ErrIncompatibleDimensions},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, io.Discard, append(tc.args, "-f", path)...)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := run(t, io.Discard, "det", "A", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, io.Discard, "det", "A", "-f", path, "--log-format", "xml")
	require.Error(t, err)
}

func TestSaveRewritesWorkspace(t *testing.T) {
	path := writeWorkspace(t)

	var logs bytes.Buffer
	_, err := run(t, &logs, "inverse", "A", "--save", "Ainv", "-f", path, "--log-format", "json")
	require.NoError(t, err)
	require.Contains(t, logs.String(), `"msg":"result saved"`)

	ws, err := workspace.Load(path)
	require.NoError(t, err)
	inv, err := ws.Matrix("Ainv")
	require.NoError(t, err)
	require.Equal(t, []float64{-2, 1, 1.5, -0.5}, inv.Elements())

	out, err := run(t, io.Discard, "multiply", "A", "Ainv", "-f", path)
	require.NoError(t, err)
	require.Equal(t, "[1, 0]\n[0, 1]\n", out)
}

func TestExportWritesLittleEndianFloat32(t *testing.T) {
	path := writeWorkspace(t)
	dst := filepath.Join(t.TempDir(), "a.bin")

	out, err := run(t, io.Discard, "export", "A", "--out", dst, "-f", path)
	require.NoError(t, err)
	require.Empty(t, out)

	raw, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Len(t, raw, 16)

	got := make([]float32, 4)
	require.NoError(t, binary.Read(bytes.NewReader(raw), binary.LittleEndian, got))
	require.Equal(t, []float32{1, 2, 3, 4}, got)
}

func TestDebugLogsOperations(t *testing.T) {
	path := writeWorkspace(t)

	var logs bytes.Buffer
	_, err := run(t, &logs, "det", "A", "-f", path, "--log-level", "debug")
	require.NoError(t, err)
	require.True(t, strings.Contains(logs.String(), "op=det"), logs.String())
	require.Contains(t, logs.String(), "kind=*matrix.Matrix2")
}

func TestLoggerFlags(t *testing.T) {
	path := writeWorkspace(t)

	var logs bytes.Buffer
	_, err := run(t, &logs, "inverse", "S", "-f", path, "--log-format", "json")
	require.ErrorIs(t, err, matrix.ErrNotInvertible)
	require.Contains(t, logs.String(), `"level":"ERROR"`)
	require.Contains(t, logs.String(), `"msg":"operation failed"`)
	require.Contains(t, logs.String(), `"op":"inverse"`)

	logs.Reset()
	_, err = run(t, &logs, "det", "A", "-f", path, "--log-level", "warn")
	require.NoError(t, err)
	require.Empty(t, logs.String())

	_, err = run(t, io.Discard, "det", "A", "-f", path, "--log-level", "loud")
	require.ErrorContains(t, err, "invalid log level")
}
