// Package dtw computes Dynamic Time Warping (DTW) distances between
// numeric series, with an optional alignment path.
//
// DTW finds the best match between two sequences by warping the time axis
// to minimize cumulative distance. The accumulated-cost table is a
// matrix.Matrix[float64] with one extra leading row and column:
//
//	D[0][0] = 0, D[i][0] = D[0][j] = +Inf
//	D[i][j] = |a[i-1]-b[j-1]| + min(D[i-1][j]+p, D[i][j-1]+p, D[i-1][j-1])
//
// where p is the slope penalty charged for non-diagonal steps.
//
// Memory modes:
//   - FullMatrix keeps the whole (n+1)×(m+1) table and can recover the path.
//   - TwoRows keeps a 2×(m+1) table; distance only.
//
// The alignment path is a list of matrix.Cell{Row: i, Col: j} pairing a[i]
// with b[j], from (0,0) to (n-1,m-1). Ties during backtracking prefer the
// diagonal step, then the step in a, then the step in b.
//
// Complexity: O(n·m) time; O(n·m) or O(m) memory.
package dtw
