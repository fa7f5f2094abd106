package matrix

import "fmt"

// Range is a half-open interval [Start, End) of row or column indices.
type Range struct {
	Start, End int
}

// Len returns End - Start.
func (r Range) Len() int { return r.End - r.Start }

// Idx returns the flat offset of (r, c).
// It panics if the coordinates do not designate a cell.
func (m *Matrix[E]) Idx(r, c int) int {
	if r < 0 || r >= m.rows {
		panic(fmt.Sprintf(panicRowAccess, r, m.rows-1))
	}
	if c < 0 || c >= m.cols {
		panic(fmt.Sprintf(panicColAccess, c, m.cols-1))
	}

	return m.IdxUnchecked(r, c)
}

// IdxUnchecked returns r*Cols()+c without validation.
// The caller must already know that (r, c) lies inside m: outside of it the
// result is an offset into another cell or beyond the store.
func (m *Matrix[E]) IdxUnchecked(r, c int) int {
	return r*m.cols + c
}

// At returns the value at (r, c). It panics on out-of-range coordinates;
// use Get when the coordinates are not known to be valid.
// Complexity: O(1).
func (m *Matrix[E]) At(r, c int) E {
	return m.data[m.Idx(r, c)]
}

// Set writes v at (r, c). It panics on out-of-range coordinates.
// Complexity: O(1).
func (m *Matrix[E]) Set(r, c int, v E) {
	m.data[m.Idx(r, c)] = v
}

// Get returns the value at (r, c) and true, or the zero value and false
// when (r, c) is outside m. It never panics.
func (m *Matrix[E]) Get(r, c int) (E, bool) {
	if !m.WithinBounds(r, c) {
		var zero E

		return zero, false
	}

	return m.data[m.IdxUnchecked(r, c)], true
}

// GetPtr returns a pointer to the cell at (r, c), or nil when (r, c) is
// outside m. The pointer is invalidated by Extend.
func (m *Matrix[E]) GetPtr(r, c int) *E {
	if !m.WithinBounds(r, c) {
		return nil
	}

	return &m.data[m.IdxUnchecked(r, c)]
}

// WithinBounds reports whether (r, c) designates a cell of m.
func (m *Matrix[E]) WithinBounds(r, c int) bool {
	return r >= 0 && r < m.rows && c >= 0 && c < m.cols
}

// Slice copies the sub-matrix rows × cols into a new, independent matrix.
//
// Errors:
//   - ErrWrongIndex if a range ends past the matrix, starts below zero or
//     has Start > End.
//   - ErrEmptyRow if the result would have rows but no columns.
//
// Complexity: O(rows.Len()*cols.Len()).
func (m *Matrix[E]) Slice(rows, cols Range) (*Matrix[E], error) {
	if !validRange(rows, m.rows) || !validRange(cols, m.cols) {
		return nil, matrixErrorf("Slice",
			fmt.Errorf("rows %v cols %v of %dx%d: %w", rows, cols, m.rows, m.cols, ErrWrongIndex))
	}
	height, width := rows.Len(), cols.Len()
	data := make([]E, 0, height*width)
	for r := rows.Start; r < rows.End; r++ {
		off := r * m.cols
		data = append(data, m.data[off+cols.Start:off+cols.End]...)
	}

	return FromSlice(height, width, data)
}

// validRange reports whether rg lies inside [0, limit].
func validRange(rg Range, limit int) bool {
	return rg.Start >= 0 && rg.Start <= rg.End && rg.End <= limit
}

// SetSlice overwrites the region of m starting at pos with other.
// Whatever part of other falls outside m is dropped: SetSlice never fails
// and never grows m. A pos outside m writes nothing.
//
// Complexity: O(copied cells).
func (m *Matrix[E]) SetSlice(pos Cell, other *Matrix[E]) {
	if pos.Row < 0 || pos.Col < 0 || pos.Row >= m.rows || pos.Col >= m.cols {
		return
	}
	height := min(m.rows-pos.Row, other.rows)
	width := min(m.cols-pos.Col, other.cols)
	for r := 0; r < height; r++ {
		dst := (pos.Row+r)*m.cols + pos.Col
		src := r * other.cols
		copy(m.data[dst:dst+width], other.data[src:src+width])
	}
}
