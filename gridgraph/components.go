package gridgraph

import "github.com/katalvlaran/lvgrid/matrix"

// ConnectedComponents finds all contiguous regions (“islands”) of land
// cells according to the configured connectivity.
// Components are listed in row-major order of their first cell, and each
// component's cells are row-major.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]matrix.Cell {
	seen := matrix.New(gg.Rows(), gg.Cols(), false)
	var comps [][]matrix.Cell

	for c := range gg.grid.Indices() {
		if !gg.IsLand(c) || seen.At(c.Row, c.Col) {
			continue
		}
		comp := gg.grid.BFSReachable(c, gg.conn.diagonals(), gg.IsLand)
		for _, x := range comp {
			seen.Set(x.Row, x.Col, true)
		}
		comps = append(comps, comp)
	}
	gg.logger.Debug("gridgraph: components", "count", len(comps))

	return comps
}
