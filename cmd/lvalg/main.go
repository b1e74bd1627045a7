// SPDX-License-Identifier: MIT

// Package main provides the lvalg CLI: determinant, inverse, transpose,
// product, vector transform and float32 export over named matrices and
// vectors stored in a YAML workspace file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvalg/internal/workspace"
)

var version = "0.1.0"

// usesWorkspace marks commands that need the workspace file loaded.
var usesWorkspace = map[string]string{"workspace": "true"}

// app carries the state shared by every command.
type app struct {
	file      string
	logLevel  string
	logFormat string
	precision int

	log *Logger
	ws  *workspace.Workspace
}

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree; logs go to logOut.
func newRootCmd(logOut io.Writer) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "lvalg",
		Short: "lvalg - linear algebra over a YAML workspace",
		Long: `lvalg evaluates matrix and vector operations on named values read
from a YAML workspace file. Elements are column-major.

  matrices:
    A: {rows: 2, cols: 2, elements: [1, 2, 3, 4]}
  vectors:
    v: [1, 0]

2×2, 3×3 and 4×4 matrices use closed-form fast paths.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(logOut, a.logFormat, a.logLevel)
			if err != nil {
				return err
			}
			a.log = log
			if cmd.Annotations["workspace"] != "true" {
				return nil
			}
			ws, err := workspace.Load(a.file)
			if err != nil {
				a.log.ErrorContext(cmd.Context(), "workspace load failed", "filename", a.file, "error", err)
				return err
			}
			a.ws = ws
			a.log.DebugContext(cmd.Context(), "workspace loaded",
				"filename", a.file,
				"matrices", len(ws.MatrixNames()),
				"vectors", len(ws.VectorNames()),
			)

			return nil
		},
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.file, "file", "f", "workspace.yaml", "Workspace YAML file")
	pf.StringVar(&a.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "text", "Log format: text or json")
	pf.IntVar(&a.precision, "precision", -1, "Digits after the decimal point (-1 = shortest exact)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lvalg v%s\n", version)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:         "list",
		Annotations: usesWorkspace,
		Short:       "List workspace entries with their shapes",
		Args:        cobra.NoArgs,
		RunE:        a.runList,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:         "det [matrix]",
		Annotations: usesWorkspace,
		Short:       "Print the determinant of a square matrix",
		Args:        cobra.ExactArgs(1),
		RunE:        a.runDet,
	})

	inverseCmd := &cobra.Command{
		Use:         "inverse [matrix]",
		Annotations: usesWorkspace,
		Short:       "Print the inverse of a square matrix",
		Args:        cobra.ExactArgs(1),
		RunE:        a.runInverse,
	}
	inverseCmd.Flags().String("save", "", "Store the result under this name and rewrite the workspace file")
	rootCmd.AddCommand(inverseCmd)

	transposeCmd := &cobra.Command{
		Use:         "transpose [matrix]",
		Annotations: usesWorkspace,
		Short:       "Print the transpose of a matrix",
		Args:        cobra.ExactArgs(1),
		RunE:        a.runTranspose,
	}
	transposeCmd.Flags().String("save", "", "Store the result under this name and rewrite the workspace file")
	rootCmd.AddCommand(transposeCmd)

	multiplyCmd := &cobra.Command{
		Use:         "multiply [a] [b]",
		Annotations: usesWorkspace,
		Short:       "Print the product a × b",
		Args:        cobra.ExactArgs(2),
		RunE:        a.runMultiply,
	}
	multiplyCmd.Flags().String("save", "", "Store the result under this name and rewrite the workspace file")
	rootCmd.AddCommand(multiplyCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:         "transform [matrix] [vector]",
		Annotations: usesWorkspace,
		Short:       "Print the vector matrix·vector",
		Args:        cobra.ExactArgs(2),
		RunE:        a.runTransform,
	})

	exportCmd := &cobra.Command{
		Use:         "export [name]",
		Annotations: usesWorkspace,
		Short:       "Export a matrix or vector as a column-major float32 buffer",
		Long:        `Export narrows a matrix or vector to float32 in column-major order, the
layout GPU uniform and storage buffers expect. Without --out the values are
printed; with --out they are written as raw little-endian bytes.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runExport,
	}
	exportCmd.Flags().String("out", "", "Write raw little-endian float32 bytes to this file")
	rootCmd.AddCommand(exportCmd)

	return rootCmd
}
