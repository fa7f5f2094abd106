package matrix

import "github.com/katalvlaran/lvgrid/numeric"

// Map returns a matrix of the same shape whose cells are fn applied to the
// cells of m, in row-major order. m is not modified.
//
// Complexity: O(rows*cols) calls to fn.
func Map[E, O any](m *Matrix[E], fn func(E) O) *Matrix[O] {
	data := make([]O, len(m.data))
	for i, v := range m.data {
		data[i] = fn(v)
	}

	return &Matrix[O]{rows: m.rows, cols: m.cols, data: data}
}

// Apply replaces every cell in place with fn(r, c, value), row-major.
func (m *Matrix[E]) Apply(fn func(r, c int, v E) E) {
	for i, v := range m.data {
		m.data[i] = fn(i/m.cols, i%m.cols, v)
	}
}

// Neg returns the element-wise negation of m.
func Neg[E numeric.Signed](m *Matrix[E]) *Matrix[E] {
	return Map(m, func(v E) E { return -v })
}
