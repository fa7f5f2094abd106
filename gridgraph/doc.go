// Package gridgraph treats a matrix.Matrix[int] of cell values as a graph,
// enabling component analysis, minimal-cost “island” expansions and
// weighted routing.
//
// What:
//
//   - GridGraph wraps a rectangular integer grid with a tunable LandThreshold.
//   - Identifies connected components (“islands”) of cells with value ≥ LandThreshold.
//   - Computes minimal conversions (0-1 BFS) to connect two islands.
//   - Finds cheapest land routes where entering a cell costs its value.
//
// Why:
//
//   - Game maps: contiguous land detection, optimal bridging.
//   - Resource planning: connect facilities with minimal upgrades.
//   - Terrain navigation: cheapest walk across weighted ground.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ExpandIsland:        O(W×H×d), Memory: O(W×H).
//   - ShortestPath:        O(W×H×d×log(W×H)), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.Logger: debug sink forwarded to the search engines.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no path exists between the requested endpoints.
//   - ErrCellOutOfRange: a requested cell is outside the grid.
package gridgraph
