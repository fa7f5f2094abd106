package matrix_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvgrid/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// islands is a map where '#' is land.
var islands = matrix.MustOf(
	[]rune("##..#"),
	[]rune("#...#"),
	[]rune("..#.."),
	[]rune("....#"),
)

func land(m *matrix.Matrix[rune]) func(matrix.Cell) bool {
	return func(c matrix.Cell) bool { return m.At(c.Row, c.Col) == '#' }
}

func TestBFSReachable(t *testing.T) {
	got := islands.BFSReachable(matrix.Cell{Row: 0, Col: 0}, false, land(islands))
	assert.Equal(t, cells([2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0}), got)

	got = islands.BFSReachable(matrix.Cell{Row: 1, Col: 0}, true, land(islands))
	assert.Equal(t, cells([2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0}), got, "(2,2) is two steps away")

	got = islands.BFSReachable(matrix.Cell{Row: 2, Col: 2}, true, land(islands))
	assert.Equal(t, cells([2]int{2, 2}), got)

	got = islands.BFSReachable(matrix.Cell{Row: 0, Col: 4}, true, land(islands))
	assert.Equal(t, cells([2]int{0, 4}, [2]int{1, 4}), got)
}

func TestReachableIncludesStart(t *testing.T) {
	never := func(matrix.Cell) bool { return false }
	start := matrix.Cell{Row: 0, Col: 2} // water

	assert.Equal(t, []matrix.Cell{start}, islands.BFSReachable(start, true, never))
	assert.Equal(t, []matrix.Cell{start}, islands.DFSReachable(start, true, never))

	// water from (0,2) is connected to most of the map
	water := func(c matrix.Cell) bool { return islands.At(c.Row, c.Col) == '.' }
	got := islands.BFSReachable(start, false, water)
	assert.Contains(t, got, matrix.Cell{Row: 3, Col: 0})
	assert.NotContains(t, got, matrix.Cell{Row: 2, Col: 2})
}

func TestReachableFloodFill(t *testing.T) {
	m := matrix.New(20, 30, 0)
	all := func(matrix.Cell) bool { return true }
	got := m.DFSReachable(matrix.Cell{Row: 10, Col: 10}, false, all)
	assert.Len(t, got, 600)
	assert.Equal(t, matrix.Cell{}, got[0])
	assert.Equal(t, matrix.Cell{Row: 19, Col: 29}, got[599])
}

func TestBFSAndDFSAgree(t *testing.T) {
	starts := []matrix.Cell{{Row: 0, Col: 0}, {Row: 2, Col: 2}, {Row: 3, Col: 0}, {Row: 0, Col: 4}}
	for _, s := range starts {
		for _, diag := range []bool{false, true} {
			b := islands.BFSReachable(s, diag, land(islands))
			d := islands.DFSReachable(s, diag, land(islands))
			assert.Equal(t, b, d, "start %v diagonals %v", s, diag)
		}
	}
}

func TestReachableDeprecatedAlias(t *testing.T) {
	s := matrix.Cell{Row: 0, Col: 0}
	//nolint:staticcheck // alias kept for existing callers
	assert.Equal(t, islands.BFSReachable(s, true, land(islands)), islands.Reachable(s, true, land(islands)))
}

func TestReachableContextCanceled(t *testing.T) {
	m := matrix.New(10, 10, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	all := func(matrix.Cell) bool { return true }
	bfsGot, err := m.BFSReachableContext(ctx, matrix.Cell{}, true, all)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []matrix.Cell{{}}, bfsGot, "only the seeded start is known")

	dfsGot, err := m.DFSReachableContext(ctx, matrix.Cell{}, true, all)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, bfsGot, dfsGot)

	got, err := m.DFSReachableContext(context.Background(), matrix.Cell{}, true, all)
	require.NoError(t, err)
	assert.Len(t, got, 100)
}
