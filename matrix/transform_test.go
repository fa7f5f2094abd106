package matrix_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/lvgrid/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateCW3x3(t *testing.T) {
	m, err := matrix.SquareFromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)
	m.RotateCW(1)
	assert.Equal(t, []int{7, 4, 1, 8, 5, 2, 9, 6, 3}, m.Data())

	m.RotateCW(1)
	assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1}, m.Data())

	m.RotateCW(1)
	assert.Equal(t, []int{3, 6, 9, 2, 5, 8, 1, 4, 7}, m.Data())
}

// TestRotateCWMatchesNaive checks every quarter-turn count against a
// buffer-based rotation for even and odd sides.
func TestRotateCWMatchesNaive(t *testing.T) {
	for n := 0; n <= 7; n++ {
		want := seq(n, n)
		for k := 1; k <= 8; k++ {
			want = rotateCWNaive(want)
			got := seq(n, n)
			got.RotateCW(k)
			require.True(t, matrix.Equal(want, got), "n=%d k=%d\nwant:\n%sgot:\n%s", n, k, want, got)
		}
	}
}

func TestRotateCCW(t *testing.T) {
	m := seq(4, 4)
	m.RotateCCW(1)
	want := seq(4, 4)
	want.RotateCW(3)
	assert.True(t, matrix.Equal(want, m))

	m = seq(3, 3)
	m.RotateCCW(1)
	assert.Equal(t, []int{3, 6, 9, 2, 5, 8, 1, 4, 7}, m.Data())

	m = seq(3, 3)
	m.RotateCCW(4)
	assert.True(t, matrix.Equal(seq(3, 3), m))
}

func TestRotateNegativeTimes(t *testing.T) {
	a, b := seq(5, 5), seq(5, 5)
	a.RotateCW(-1)
	b.RotateCCW(1)
	assert.True(t, matrix.Equal(a, b))

	a, b = seq(5, 5), seq(5, 5)
	a.RotateCW(-6)
	b.RotateCW(2)
	assert.True(t, matrix.Equal(a, b))
}

func TestRotateNonSquarePanics(t *testing.T) {
	m := seq(2, 3)
	assert.PanicsWithValue(t, "matrix: attempt to rotate a non-square matrix", func() { m.RotateCW(1) })
	assert.Panics(t, func() { m.RotateCCW(2) })
	// even a no-op turn checks the shape
	assert.Panics(t, func() { m.RotateCW(0) })
}

func TestFlips(t *testing.T) {
	m := seq(3, 2)
	m.FlipLR()
	assert.Equal(t, "[2, 1]\n[4, 3]\n[6, 5]\n", m.String())

	m = seq(3, 2)
	m.FlipUD()
	assert.Equal(t, "[5, 6]\n[3, 4]\n[1, 2]\n", m.String())

	m = seq(2, 3)
	m.FlipUD()
	assert.Equal(t, "[4, 5, 6]\n[1, 2, 3]\n", m.String())

	orig := seq(3, 3)
	lr := orig.FlippedLR()
	ud := orig.FlippedUD()
	assert.Equal(t, []int{3, 2, 1, 6, 5, 4, 9, 8, 7}, lr.Data())
	assert.Equal(t, []int{7, 8, 9, 4, 5, 6, 1, 2, 3}, ud.Data())
	assert.True(t, matrix.Equal(seq(3, 3), orig), "copying flips leave the source alone")
}

func TestTransposed(t *testing.T) {
	m := seq(2, 3)
	tr := m.Transposed()
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())
	assert.Equal(t, "[1, 4]\n[2, 5]\n[3, 6]\n", tr.String())
	for c, v := range m.All() {
		assert.Equal(t, v, tr.At(c.Col, c.Row))
	}

	// 0x0 transposes to 0x0
	z := matrix.New(0, 0, 0).Transposed()
	assert.True(t, z.IsEmpty())

	assert.PanicsWithValue(t, "matrix: this operation would create a matrix with empty rows", func() {
		matrix.NewEmpty[int](3).Transposed()
	})
}

func TestRotatedNonSquare(t *testing.T) {
	m := seq(2, 3)

	cw1 := m.RotatedCW(1)
	assert.Equal(t, "[4, 1]\n[5, 2]\n[6, 3]\n", cw1.String())
	assert.True(t, matrix.Equal(rotateCWNaive(m), cw1))

	cw2 := m.RotatedCW(2)
	assert.Equal(t, "[6, 5, 4]\n[3, 2, 1]\n", cw2.String())

	cw3 := m.RotatedCW(3)
	assert.Equal(t, "[3, 6]\n[2, 5]\n[1, 4]\n", cw3.String())

	assert.True(t, matrix.Equal(m, m.RotatedCW(4)))
	assert.True(t, matrix.Equal(cw3, m.RotatedCCW(1)))
	assert.True(t, matrix.Equal(cw1, m.RotatedCCW(3)))
	assert.True(t, matrix.Equal(seq(2, 3), m), "source untouched")
}

func TestRotatedSquareUsesInPlacePath(t *testing.T) {
	m := seq(4, 4)
	for k := 0; k < 4; k++ {
		want := m.Clone()
		want.RotateCW(k)
		assert.True(t, matrix.Equal(want, m.RotatedCW(k)), "k=%d", k)
	}
	rev := slices.Clone(m.Data())
	slices.Reverse(rev)
	assert.Equal(t, rev, m.RotatedCCW(2).Data())
}
