// Package gridgraph provides utilities to treat a grid of integer cell
// values as a graph. Cells with value < LandThreshold are “water”; cells
// with value ≥ LandThreshold are “land”.
package gridgraph

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/lvgrid/matrix"
)

// New constructs a GridGraph over a copy of m.
// Returns ErrEmptyGrid if m is nil or has no rows or no columns.
// Complexity: O(W×H) time and memory.
func New(m *matrix.Matrix[int], opts GridOptions) (*GridGraph, error) {
	if m == nil || m.IsEmpty() || m.Cols() == 0 {
		return nil, ErrEmptyGrid
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &GridGraph{
		grid:          m.Clone(),
		conn:          opts.Conn,
		landThreshold: opts.LandThreshold,
		logger:        logger,
	}, nil
}

// From2D builds a GridGraph from row slices with the default land threshold
// and the given connectivity.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular (also matching matrix.ErrWrongLength) if row lengths differ.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	m, err := matrix.FromRows(values)
	if err != nil {
		if errors.Is(err, matrix.ErrWrongLength) {
			return nil, fmt.Errorf("%w: %w", ErrNonRectangular, err)
		}

		return nil, err
	}
	opts := DefaultGridOptions()
	opts.Conn = conn

	return New(m, opts)
}

// Rows returns the grid height.
func (gg *GridGraph) Rows() int { return gg.grid.Rows() }

// Cols returns the grid width.
func (gg *GridGraph) Cols() int { return gg.grid.Cols() }

// Conn returns the configured connectivity.
func (gg *GridGraph) Conn() Connectivity { return gg.conn }

// Grid returns a copy of the underlying values.
func (gg *GridGraph) Grid() *matrix.Matrix[int] { return gg.grid.Clone() }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c matrix.Cell) bool {
	return gg.grid.WithinBounds(c.Row, c.Col)
}

// Value returns the value stored at c, or false outside the grid.
func (gg *GridGraph) Value(c matrix.Cell) (int, bool) {
	return gg.grid.Get(c.Row, c.Col)
}

// IsLand reports whether c is inside the grid and at least LandThreshold.
func (gg *GridGraph) IsLand(c matrix.Cell) bool {
	v, ok := gg.grid.Get(c.Row, c.Col)

	return ok && v >= gg.landThreshold
}

// Neighbors returns the in-grid neighbors of c under the configured
// connectivity, row-major.
func (gg *GridGraph) Neighbors(c matrix.Cell) []matrix.Cell {
	return gg.grid.Neighbours(c, gg.conn.diagonals())
}
