package matrix

import "slices"

// quarterTurns normalises a rotation count to 0..3.
func quarterTurns(times int) int {
	return ((times % 4) + 4) % 4
}

// FlipLR reverses every row in place (mirror around the vertical axis).
// Complexity: O(rows*cols), O(1) extra memory.
func (m *Matrix[E]) FlipLR() {
	for r := 0; r < m.rows; r++ {
		slices.Reverse(m.data[r*m.cols : (r+1)*m.cols])
	}
}

// FlipUD swaps row r with row rows-1-r in place (mirror around the
// horizontal axis). The middle row of an odd count stays put.
// Complexity: O(rows*cols), O(1) extra memory.
func (m *Matrix[E]) FlipUD() {
	for r := 0; r < m.rows/2; r++ {
		for c := 0; c < m.cols; c++ {
			i, j := r*m.cols+c, (m.rows-1-r)*m.cols+c
			m.data[i], m.data[j] = m.data[j], m.data[i]
		}
	}
}

// FlippedLR returns a copy of m flipped around the vertical axis.
func (m *Matrix[E]) FlippedLR() *Matrix[E] {
	cp := m.Clone()
	cp.FlipLR()

	return cp
}

// FlippedUD returns a copy of m flipped around the horizontal axis.
func (m *Matrix[E]) FlippedUD() *Matrix[E] {
	cp := m.Clone()
	cp.FlipUD()

	return cp
}

// Transposed returns a cols×rows copy of m where cell (c, r) holds m's (r, c).
// It panics if m has zero rows but some columns, since the result would have
// rows without columns.
//
// Complexity: O(rows*cols).
func (m *Matrix[E]) Transposed() *Matrix[E] {
	if m.rows == 0 && m.cols != 0 {
		panic(panicTransposeEmptyRows)
	}
	data := make([]E, 0, len(m.data))
	for c := 0; c < m.cols; c++ {
		for r := 0; r < m.rows; r++ {
			data = append(data, m.data[r*m.cols+c])
		}
	}

	return &Matrix[E]{rows: m.cols, cols: m.rows, data: data}
}

// RotateCW rotates a square matrix clockwise by times quarter-turns, in
// place. times is taken modulo 4; negative values turn counter-clockwise.
// It panics if m is not square.
//
// A quarter-turn moves every cell along a 4-cycle
//
//	i1 … i2      i4 … i1
//	…  …  …  =>  …  …  …
//	i4 … i3      i3 … i2
//
// realised with three swaps; a half-turn reverses the store.
//
// Complexity: O(n²) time, O(1) extra memory.
func (m *Matrix[E]) RotateCW(times int) {
	if m.rows != m.cols {
		panic(panicRotateNonSquare)
	}
	switch turns := quarterTurns(times); turns {
	case 0:
	case 2:
		slices.Reverse(m.data)
	default:
		n := m.cols
		d := m.data
		for r := 0; r < m.rows/2; r++ {
			for c := 0; c < (m.cols+1)/2; c++ {
				i1 := r*n + c
				i2 := c*n + n - 1 - r
				i3 := (n-1-r)*n + n - 1 - c
				i4 := (n-1-c)*n + r
				if turns == 1 {
					d[i1], d[i2] = d[i2], d[i1]
					d[i1], d[i4] = d[i4], d[i1]
					d[i3], d[i4] = d[i4], d[i3]
				} else {
					// i1 … i2      i2 … i3
					// …  …  …  =>  …  …  …
					// i4 … i3      i1 … i4
					d[i3], d[i4] = d[i4], d[i3]
					d[i1], d[i4] = d[i4], d[i1]
					d[i1], d[i2] = d[i2], d[i1]
				}
			}
		}
	}
}

// RotateCCW rotates a square matrix counter-clockwise by times
// quarter-turns, in place. It panics if m is not square.
func (m *Matrix[E]) RotateCCW(times int) {
	m.RotateCW(4 - quarterTurns(times))
}

// RotatedCW returns a copy of m rotated clockwise by times quarter-turns.
// Any shape is accepted: a non-square quarter-turn is a transpose followed by
// a left-right flip, three quarters a transpose followed by an up-down flip,
// and a half-turn a reversal of the store.
func (m *Matrix[E]) RotatedCW(times int) *Matrix[E] {
	if m.IsSquare() {
		cp := m.Clone()
		cp.RotateCW(times)

		return cp
	}
	switch quarterTurns(times) {
	case 0:
		return m.Clone()
	case 1:
		cp := m.Transposed()
		cp.FlipLR()

		return cp
	case 2:
		cp := m.Clone()
		slices.Reverse(cp.data)

		return cp
	default:
		cp := m.Transposed()
		cp.FlipUD()

		return cp
	}
}

// RotatedCCW returns a copy of m rotated counter-clockwise by times quarter-turns.
func (m *Matrix[E]) RotatedCCW(times int) *Matrix[E] {
	return m.RotatedCW(4 - quarterTurns(times))
}
