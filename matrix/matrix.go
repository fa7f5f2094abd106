package matrix

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/katalvlaran/lvgrid/numeric"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a dense row-major grid of E values.
//   - rows, cols hold the dimensions; rows > 0 implies cols > 0.
//   - data is a flat buffer of length rows*cols (offset = r*cols + c).
//
// A Matrix exclusively owns data: Clone deep-copies it and Slice returns an
// independent copy.
type Matrix[E any] struct {
	rows, cols int // row and column counts (>= 0)
	data       []E // contiguous row-major storage (len == rows*cols)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[int])(nil)

// New creates a rows×cols matrix with every cell set to value.
// It panics if rows > 0 and cols == 0, or if a dimension is negative:
// build a matrix column by column by building it row by row and
// transposing or rotating it afterwards.
//
// Complexity: O(rows*cols).
func New[E any](rows, cols int, value E) *Matrix[E] {
	if rows < 0 || cols < 0 {
		panic(panicNegativeShape)
	}
	if rows > 0 && cols == 0 {
		panic(panicEmptyRows)
	}
	data := make([]E, rows*cols)
	for i := range data {
		data[i] = value
	}

	return &Matrix[E]{rows: rows, cols: cols, data: data}
}

// NewSquare creates a size×size matrix with every cell set to value.
func NewSquare[E any](size int, value E) *Matrix[E] {
	return New(size, size, value)
}

// FromSlice builds a rows×cols matrix that takes ownership of values.
//
// Errors:
//   - ErrEmptyRow if rows > 0 and cols == 0.
//   - ErrWrongLength if len(values) != rows*cols or a dimension is negative.
//
// Complexity: O(1); values is not copied.
func FromSlice[E any](rows, cols int, values []E) (*Matrix[E], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf("FromSlice", ErrWrongLength)
	}
	if rows > 0 && cols == 0 {
		return nil, matrixErrorf("FromSlice", ErrEmptyRow)
	}
	if len(values) != rows*cols {
		return nil, matrixErrorf("FromSlice",
			fmt.Errorf("got %d values for %dx%d: %w", len(values), rows, cols, ErrWrongLength))
	}

	return &Matrix[E]{rows: rows, cols: cols, data: values}, nil
}

// SquareFromSlice builds a square matrix from values, whose length must be
// a perfect square. The side is computed with an exact integer square root.
// Returns ErrWrongLength otherwise.
func SquareFromSlice[E any](values []E) (*Matrix[E], error) {
	size, ok := numeric.ExactSqrt(len(values))
	if !ok {
		return nil, matrixErrorf("SquareFromSlice",
			fmt.Errorf("%d values is not a perfect square: %w", len(values), ErrWrongLength))
	}

	return FromSlice(size, size, values)
}

// FromRows builds a matrix from a slice of rows. The first row fixes the
// column count and every other row must match it, else ErrWrongLength.
// No rows at all yields a 0×0 matrix. An empty first row yields ErrEmptyRow.
// Rows are copied.
//
// Complexity: O(rows*cols).
func FromRows[E any](rows [][]E) (*Matrix[E], error) {
	if len(rows) == 0 {
		return &Matrix[E]{}, nil
	}
	cols := len(rows[0])
	data := make([]E, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf("FromRows",
				fmt.Errorf("row %d has %d elements, want %d: %w", i, len(row), cols, ErrWrongLength))
		}
		data = append(data, row...)
	}

	return FromSlice(len(rows), cols, data)
}

// FromRowSeq is the lazy form of FromRows: each inner sequence is one row.
// Consumption stops at the first row of the wrong length.
func FromRowSeq[E any](rows iter.Seq[iter.Seq[E]]) (*Matrix[E], error) {
	var (
		data  []E
		n     int
		cols  int
		start int
	)
	for row := range rows {
		start = len(data)
		data = slices.AppendSeq(data, row)
		width := len(data) - start
		if n == 0 {
			cols = width
		} else if width != cols {
			return nil, matrixErrorf("FromRowSeq",
				fmt.Errorf("row %d has %d elements, want %d: %w", n, width, cols, ErrWrongLength))
		}
		n++
	}
	if n == 0 {
		return &Matrix[E]{}, nil
	}

	return FromSlice(n, cols, data)
}

// NewEmpty returns a 0-row matrix that remembers cols. Grow it with Extend.
func NewEmpty[E any](cols int) *Matrix[E] {
	if cols < 0 {
		panic(panicNegativeShape)
	}

	return &Matrix[E]{cols: cols}
}

// Extend appends one full row to m.
// Returns ErrEmptyRow for an empty row and ErrWrongLength if len(row)
// differs from Cols(); m is left untouched on error.
//
// Complexity: amortized O(len(row)).
func (m *Matrix[E]) Extend(row []E) error {
	if len(row) == 0 {
		return matrixErrorf("Extend", ErrEmptyRow)
	}
	if len(row) != m.cols {
		return matrixErrorf("Extend",
			fmt.Errorf("row has %d elements, want %d: %w", len(row), m.cols, ErrWrongLength))
	}
	m.data = append(m.data, row...)
	m.rows++

	return nil
}

// Fill sets every cell to value.
func (m *Matrix[E]) Fill(value E) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Clone returns a deep copy of m.
// Complexity: O(rows*cols).
func (m *Matrix[E]) Clone() *Matrix[E] {
	return &Matrix[E]{rows: m.rows, cols: m.cols, data: slices.Clone(m.data)}
}

// Equal reports whether a and b have the same shape and contents.
func Equal[E comparable](a, b *Matrix[E]) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.rows == b.rows && a.cols == b.cols && slices.Equal(a.data, b.data)
}

// Rows returns the number of rows.
func (m *Matrix[E]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[E]) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m *Matrix[E]) Shape() (int, int) { return m.rows, m.cols }

// Len returns the number of cells, rows*cols.
func (m *Matrix[E]) Len() int { return len(m.data) }

// IsEmpty reports whether m has no rows.
func (m *Matrix[E]) IsEmpty() bool { return m.rows == 0 }

// IsSquare reports whether rows == cols.
func (m *Matrix[E]) IsSquare() bool { return m.rows == m.cols }

// Data returns the row-major backing store itself, not a copy.
// Writes through it are visible in m; the slice is only valid until the
// next Extend.
func (m *Matrix[E]) Data() []E { return m.data }

// String renders one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
func (m *Matrix[E]) String() string {
	var sb strings.Builder
	for r := 0; r < m.rows; r++ {
		sb.WriteString(_fmtRowOpen)
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprint(&sb, m.data[r*m.cols+c])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
