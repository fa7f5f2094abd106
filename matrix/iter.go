package matrix

import "iter"

// RowViews yields each row index with a view of that row in the backing
// store. Views alias m (writes go through) and are capped so appending to
// one never clobbers the next row. They are invalidated by Extend.
func (m *Matrix[E]) RowViews() iter.Seq2[int, []E] {
	return func(yield func(int, []E) bool) {
		for r := 0; r < m.rows; r++ {
			lo, hi := r*m.cols, (r+1)*m.cols
			if !yield(r, m.data[lo:hi:hi]) {
				return
			}
		}
	}
}

// Values yields every cell value, row-major.
func (m *Matrix[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, v := range m.data {
			if !yield(v) {
				return
			}
		}
	}
}

// All yields every cell with its value, row-major.
func (m *Matrix[E]) All() iter.Seq2[Cell, E] {
	return func(yield func(Cell, E) bool) {
		for i, v := range m.data {
			if !yield(Cell{Row: i / m.cols, Col: i % m.cols}, v) {
				return
			}
		}
	}
}

// Indices yields every cell coordinate, row-major. The dimensions are
// captured at call time, so rows added later are not visited.
func (m *Matrix[E]) Indices() iter.Seq[Cell] {
	rows, cols := m.rows, m.cols

	return func(yield func(Cell) bool) {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if !yield(Cell{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}
