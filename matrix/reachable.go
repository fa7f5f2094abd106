package matrix

import (
	"context"
	"maps"
	"slices"

	"github.com/katalvlaran/lvgrid/bfs"
	"github.com/katalvlaran/lvgrid/dfs"
)

// expandFunc builds the traversal expansion: the neighbours of a cell that
// satisfy pred.
func (m *Matrix[E]) expandFunc(diagonals bool, pred func(Cell) bool) func(Cell) []Cell {
	return func(c Cell) []Cell {
		nbs := m.Neighbours(c, diagonals)
		out := nbs[:0]
		for _, n := range nbs {
			if pred(n) {
				out = append(out, n)
			}
		}

		return out
	}
}

// sortedCells returns the keys of set in row-major order.
func sortedCells[V any](set map[Cell]V) []Cell {
	return slices.SortedFunc(maps.Keys(set), func(a, b Cell) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
}

// BFSReachable returns, in row-major order, every cell reachable from start
// through neighbours (diagonals included or not) for which pred holds.
// start itself is always part of the result, whether or not pred accepts
// it. This is a breadth-first flood fill; DFSReachable returns the same set.
//
// Complexity: O(rows*cols) calls to pred at most.
func (m *Matrix[E]) BFSReachable(start Cell, diagonals bool, pred func(Cell) bool) []Cell {
	cells, _ := m.BFSReachableContext(context.Background(), start, diagonals, pred)

	return cells
}

// BFSReachableContext is BFSReachable with cancellation. On cancellation
// it returns the cells discovered so far and ctx.Err().
func (m *Matrix[E]) BFSReachableContext(ctx context.Context, start Cell, diagonals bool, pred func(Cell) bool) ([]Cell, error) {
	res, err := bfs.Reach(start, m.expandFunc(diagonals, pred), bfs.WithContext[Cell](ctx))
	if res == nil {
		return nil, err
	}

	return sortedCells(res.Depth), err
}

// DFSReachable is the depth-first twin of BFSReachable: same set, same
// row-major ordering of the result; only the exploration order differs.
func (m *Matrix[E]) DFSReachable(start Cell, diagonals bool, pred func(Cell) bool) []Cell {
	cells, _ := m.DFSReachableContext(context.Background(), start, diagonals, pred)

	return cells
}

// DFSReachableContext is DFSReachable with cancellation.
func (m *Matrix[E]) DFSReachableContext(ctx context.Context, start Cell, diagonals bool, pred func(Cell) bool) ([]Cell, error) {
	res, err := dfs.Reach(start, m.expandFunc(diagonals, pred), dfs.WithContext[Cell](ctx))
	if res == nil {
		return nil, err
	}

	return sortedCells(res.Visited), err
}

// Reachable forwards to BFSReachable.
//
// Deprecated: use BFSReachable or DFSReachable.
func (m *Matrix[E]) Reachable(start Cell, diagonals bool, pred func(Cell) bool) []Cell {
	return m.BFSReachable(start, diagonals, pred)
}
