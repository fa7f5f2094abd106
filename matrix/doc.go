// Package matrix provides Matrix[E], a dense two-dimensional grid of any
// element type, together with the geometric transforms and grid-walking
// operations built on top of it.
//
// The package provides:
//
//   - Construction and validation: New, NewSquare, FromSlice, SquareFromSlice,
//     FromRows, FromRowSeq, NewEmpty + Extend, and the literal helpers Of,
//     MustOf, Parse and ParseInts.
//   - Checked and trusted indexing: At/Set panic on a bad coordinate,
//     Get/GetPtr/WithinBounds never do, IdxUnchecked skips validation for
//     hot paths whose bounds are already proven.
//   - Sub-regions: Slice copies a rectangle out, SetSlice clips and writes
//     one back in.
//   - Geometry: FlipLR, FlipUD, Transposed and quarter-turn rotations.
//     Square rotation runs in place with O(1) extra memory.
//   - Adjacency: Neighbours (4- or 8-connected), MoveInDirection and the lazy
//     InDirection ray, with a catalog of named Directions.
//   - Reachability: BFSReachable / DFSReachable flood fills driven by a
//     predicate over cells, delegated to the bfs and dfs engines.
//
// Storage is a single row-major slice: cell (r, c) lives at offset
// r*Cols()+c and len(Data()) == Rows()*Cols() at all times. A matrix with
// rows must have columns; a 0-row matrix may remember any column count and
// is grown one row at a time with Extend.
//
// Errors:
//
//   - ErrEmptyRow     a row (or the whole shape) would have zero columns.
//   - ErrWrongIndex   a Slice range exceeds the matrix.
//   - ErrWrongLength  an element count does not match the declared shape.
//
// Contract violations (out-of-range At/Set, New with rows but no columns,
// rotating a non-square matrix in place, transposing a rows>0/cols==0
// shape) panic.
//
// Matrices are not safe for concurrent mutation. Row views returned by
// RowViews alias the backing store and are invalidated by Extend.
package matrix
