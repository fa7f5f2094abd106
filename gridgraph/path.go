package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvgrid/dijkstra"
	"github.com/katalvlaran/lvgrid/matrix"
)

// ShortestPath finds the cheapest walk over land from `from` to `to`, where
// stepping into a cell costs that cell's value (negative values cost
// nothing). The start cell is free.
// Returns the path (both endpoints included) and its cost.
//
// Errors:
//   - ErrCellOutOfRange if an endpoint is outside the grid.
//   - ErrNoPath if an endpoint is water or no land route exists.
//
// Complexity: O(W·H·d·log(W·H)).
func (gg *GridGraph) ShortestPath(from, to matrix.Cell) ([]matrix.Cell, int, error) {
	if !gg.InBounds(from) || !gg.InBounds(to) {
		return nil, 0, fmt.Errorf("%w: %v -> %v", ErrCellOutOfRange, from, to)
	}
	if !gg.IsLand(from) || !gg.IsLand(to) {
		return nil, 0, fmt.Errorf("%w: endpoint on water", ErrNoPath)
	}

	successors := func(c matrix.Cell) []dijkstra.Successor[matrix.Cell, int] {
		nbs := gg.Neighbors(c)
		out := make([]dijkstra.Successor[matrix.Cell, int], 0, len(nbs))
		for _, n := range nbs {
			if v, _ := gg.Value(n); v >= gg.landThreshold {
				out = append(out, dijkstra.Successor[matrix.Cell, int]{Node: n, Cost: max(v, 0)})
			}
		}

		return out
	}
	path, cost, ok := dijkstra.Search(from, successors,
		func(c matrix.Cell) bool { return c == to },
		dijkstra.WithLogger[int](gg.logger),
	)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %v -> %v", ErrNoPath, from, to)
	}

	return path, cost, nil
}
