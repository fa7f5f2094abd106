package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrComponentIndex indicates a requested component index is invalid.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no path exists between the requested endpoints.
	ErrNoPath = errors.New("gridgraph: no path between specified endpoints")
	// ErrCellOutOfRange indicates a cell outside the grid was requested.
	ErrCellOutOfRange = errors.New("gridgraph: cell out of range")
)
