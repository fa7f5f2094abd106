package matrix_test

import "github.com/katalvlaran/lvgrid/matrix"

// seq returns a rows×cols matrix holding 1..rows*cols row-major.
func seq(rows, cols int) *matrix.Matrix[int] {
	values := make([]int, rows*cols)
	for i := range values {
		values[i] = i + 1
	}
	m, err := matrix.FromSlice(rows, cols, values)
	if err != nil {
		panic(err)
	}

	return m
}

// rotateCWNaive rotates one quarter-turn clockwise through a second buffer.
func rotateCWNaive(m *matrix.Matrix[int]) *matrix.Matrix[int] {
	rows, cols := m.Shape()
	out := matrix.New(cols, rows, 0)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out.Set(c, rows-1-r, m.At(r, c))
		}
	}

	return out
}
