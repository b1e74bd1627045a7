// SPDX-License-Identifier: MIT

// Package workspace loads named matrices and vectors from a YAML document and
// keeps them as kernel values for the command-line tool.
//
// Document layout (elements are column-major):
//
//	matrices:
//	  A: {rows: 2, cols: 2, elements: [1, 2, 3, 4]}
//	vectors:
//	  v: [1, 0]
//
// Square matrices of size 2, 3 and 4 are specialized on load so the
// closed-form fast paths apply to them.
package workspace

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/katalvlaran/lvalg/matrix"
	"github.com/katalvlaran/lvalg/vector"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownName is returned when a lookup names no stored entry.
	ErrUnknownName = errors.New("workspace: unknown name")

	// ErrDuplicateName is returned when a name is used for both a matrix
	// and a vector.
	ErrDuplicateName = errors.New("workspace: name used twice")
)

// MatrixEntry is the YAML form of one matrix.
type MatrixEntry struct {
	Rows     int       `yaml:"rows"`
	Cols     int       `yaml:"cols"`
	Elements []float64 `yaml:"elements,flow"`
}

// Document is the YAML form of a whole workspace.
type Document struct {
	Matrices map[string]MatrixEntry `yaml:"matrices,omitempty"`
	Vectors  map[string][]float64   `yaml:"vectors,omitempty"`
}

// Workspace holds validated kernel values by name.
type Workspace struct {
	matrices map[string]matrix.Matrix
	vectors  map[string]*vector.Vector
}

// New returns an empty workspace.
func New() *Workspace {
	return &Workspace{
		matrices: make(map[string]matrix.Matrix),
		vectors:  make(map[string]*vector.Vector),
	}
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Workspace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspace file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML document and validates every entry through the
// kernel constructors. Unknown keys are rejected. An empty document yields
// an empty workspace.
func Parse(data []byte) (*Workspace, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse workspace: %w", err)
	}

	return FromDocument(doc)
}

// FromDocument converts a decoded document into kernel values.
func FromDocument(doc Document) (*Workspace, error) {
	w := New()
	for name, e := range doc.Matrices {
		d, err := matrix.NewDense(e.Rows, e.Cols, e.Elements...)
		if err != nil {
			return nil, fmt.Errorf("matrix %q: %w", name, err)
		}
		if err = w.PutMatrix(name, d); err != nil {
			return nil, err
		}
	}
	for name, e := range doc.Vectors {
		v, err := vector.New(e...)
		if err != nil {
			return nil, fmt.Errorf("vector %q: %w", name, err)
		}
		if err = w.PutVector(name, v); err != nil {
			return nil, err
		}
	}

	return w, nil
}

// PutMatrix stores a specialized copy of m under name, replacing any matrix
// of that name.
// Errors: ErrDuplicateName if a vector already uses name.
func (w *Workspace) PutMatrix(name string, m matrix.Matrix) error {
	if _, ok := w.vectors[name]; ok {
		return fmt.Errorf("matrix %q: %w", name, ErrDuplicateName)
	}
	s, err := matrix.Specialize(m)
	if err != nil {
		return fmt.Errorf("matrix %q: %w", name, err)
	}
	w.matrices[name] = s

	return nil
}

// PutVector stores a copy of v under name.
// Errors: ErrDuplicateName if a matrix already uses name.
func (w *Workspace) PutVector(name string, v *vector.Vector) error {
	if _, ok := w.matrices[name]; ok {
		return fmt.Errorf("vector %q: %w", name, ErrDuplicateName)
	}
	w.vectors[name] = v.Clone()

	return nil
}

// Matrix returns the matrix stored under name.
func (w *Workspace) Matrix(name string) (matrix.Matrix, error) {
	m, ok := w.matrices[name]
	if !ok {
		return nil, fmt.Errorf("matrix %q: %w", name, ErrUnknownName)
	}

	return m, nil
}

// Vector returns the vector stored under name.
func (w *Workspace) Vector(name string) (*vector.Vector, error) {
	v, ok := w.vectors[name]
	if !ok {
		return nil, fmt.Errorf("vector %q: %w", name, ErrUnknownName)
	}

	return v, nil
}

// MatrixNames returns the stored matrix names in sorted order.
func (w *Workspace) MatrixNames() []string { return sortedKeys(w.matrices) }

// VectorNames returns the stored vector names in sorted order.
func (w *Workspace) VectorNames() []string { return sortedKeys(w.vectors) }

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Document returns the YAML form of w.
func (w *Workspace) Document() Document {
	doc := Document{}
	if len(w.matrices) > 0 {
		doc.Matrices = make(map[string]MatrixEntry, len(w.matrices))
		for name, m := range w.matrices {
			e := make([]float64, len(m.Elements()))
			copy(e, m.Elements())
			doc.Matrices[name] = MatrixEntry{Rows: m.Rows(), Cols: m.Cols(), Elements: e}
		}
	}
	if len(w.vectors) > 0 {
		doc.Vectors = make(map[string][]float64, len(w.vectors))
		for name, v := range w.vectors {
			doc.Vectors[name] = v.ToArray()
		}
	}

	return doc
}

// Marshal encodes w as YAML.
func (w *Workspace) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(w.Document()); err != nil {
		return nil, fmt.Errorf("failed to encode workspace: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode workspace: %w", err)
	}

	return buf.Bytes(), nil
}

// Save writes w to path as YAML.
func (w *Workspace) Save(path string) error {
	data, err := w.Marshal()
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write workspace file: %w", err)
	}

	return nil
}
