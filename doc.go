// Package lvgrid is an in-memory toolkit for dense two-dimensional grids:
// a generic container plus the traversal and search engines that work on it.
//
// What is in the box?
//
//	matrix/     Matrix[E]: construction, bounds-checked access, slicing,
//	             flips, transposition, quarter-turn rotations, neighbours,
//	             directional walks and BFS/DFS reachability
//	numeric/    exact integer square root and numeric constraints
//	bfs/        breadth-first traversal over any comparable node type
//	dfs/        depth-first traversal and topological sort
//	dijkstra/   generic cheapest-path search (Search, All, Partial)
//	gridgraph/  land/water analysis: components, island bridging, routes
//	dtw/        Dynamic Time Warping on a Matrix[float64] cost table
//	gridfile/   YAML and TOML grid documents
//
// Graphs are never materialized. Engines take a function returning the
// successors of a node, so a grid cell, a puzzle state or an adjacency
// list entry are explored the same way:
//
//	m := matrix.MustOf(
//	    []int{1, 1, 0},
//	    []int{0, 1, 0},
//	)
//	region := m.BFSReachable(matrix.Cell{}, false, func(c matrix.Cell) bool {
//	    return m.At(c.Row, c.Col) == 1
//	})
//	// region == [{0 0} {0 1} {1 1}]
//
// Engines log through github.com/charmbracelet/log at debug level only and
// accept a custom *log.Logger via their WithLogger options.
//
//	go get github.com/katalvlaran/lvgrid
package lvgrid
