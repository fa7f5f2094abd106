// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/lvgrid.
package gridgraph

import (
	"github.com/charmbracelet/log"
	"github.com/katalvlaran/lvgrid/matrix"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// diagonals reports whether c includes diagonal neighbors.
func (c Connectivity) diagonals() bool { return c == Conn8 }

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Logger receives debug records from searches; nil means log.Default().
	Logger *log.Logger
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are land), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
		Logger:        log.Default(),
	}
}

// GridGraph treats an integer grid as a graph. It is immutable once built:
// the grid is copied on construction and Grid returns a copy.
type GridGraph struct {
	grid          *matrix.Matrix[int]
	conn          Connectivity
	landThreshold int
	logger        *log.Logger
}
