package dtw

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/lvgrid/matrix"
)

// backSteps are the predecessors tried while backtracking, in tie order.
var backSteps = [...]matrix.Direction{matrix.NorthWest, matrix.North, matrix.West}

// DTW computes the Dynamic Time Warping distance between a and b.
// A nil opts means DefaultOptions(). The path is nil unless
// opts.ReturnPath is set, and also nil when no alignment fits the window
// (the distance is then +Inf).
func DTW(a, b []float64, opts *Options) (float64, []matrix.Cell, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
		if o.Logger == nil {
			o.Logger = log.Default()
		}
	}
	if len(a) == 0 || len(b) == 0 {
		return 0, nil, ErrEmptyInput
	}
	if err := o.validate(); err != nil {
		return 0, nil, err
	}

	var (
		dist float64
		path []matrix.Cell
	)
	if o.MemoryMode == TwoRows {
		dist = twoRows(a, b, &o)
	} else {
		dp := fill(a, b, &o)
		dist = dp.At(len(a), len(b))
		if o.ReturnPath && !math.IsInf(dist, 1) {
			path = backtrack(dp, a, b, o.SlopePenalty)
		}
	}
	o.Logger.Debug("dtw: computed", "n", len(a), "m", len(b), "mode", o.MemoryMode, "distance", dist, "path", len(path))

	return dist, path, nil
}

// CostMatrix returns the n×m accumulated-cost table of a against b:
// cell (i, j) holds the DTW distance of a[:i+1] and b[:j+1].
// Cells outside the window hold +Inf. MemoryMode and ReturnPath are ignored.
func CostMatrix(a, b []float64, opts *Options) (*matrix.Matrix[float64], error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	o.MemoryMode, o.ReturnPath = FullMatrix, false
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	return fill(a, b, &o).Slice(
		matrix.Range{Start: 1, End: len(a) + 1},
		matrix.Range{Start: 1, End: len(b) + 1},
	)
}

// outside reports whether (i, j), 1-based, lies outside the band.
func outside(i, j, window int) bool {
	if window < 0 {
		return false
	}
	d := i - j
	if d < 0 {
		d = -d
	}

	return d > window
}

func fill(a, b []float64, o *Options) *matrix.Matrix[float64] {
	n, m := len(a), len(b)
	dp := matrix.New(n+1, m+1, math.Inf(1))
	dp.Set(0, 0, 0)
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if outside(i, j, o.Window) {
				continue
			}
			best := min(
				dp.At(i-1, j)+o.SlopePenalty,
				dp.At(i, j-1)+o.SlopePenalty,
				dp.At(i-1, j-1),
			)
			dp.Set(i, j, math.Abs(a[i-1]-b[j-1])+best)
		}
	}

	return dp
}

// twoRows is fill restricted to a 2×(m+1) rolling table.
func twoRows(a, b []float64, o *Options) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	dp := matrix.New(2, m+1, inf)
	dp.Set(0, 0, 0)
	for i := 1; i <= n; i++ {
		curr, prev := i%2, (i-1)%2
		dp.Set(curr, 0, inf)
		for j := 1; j <= m; j++ {
			if outside(i, j, o.Window) {
				dp.Set(curr, j, inf)
				continue
			}
			best := min(
				dp.At(prev, j)+o.SlopePenalty,
				dp.At(curr, j-1)+o.SlopePenalty,
				dp.At(prev, j-1),
			)
			dp.Set(curr, j, math.Abs(a[i-1]-b[j-1])+best)
		}
	}

	return dp.At(n%2, m)
}

// backtrack walks from (n, m) to (1, 1) over the filled table, picking the
// predecessor the cell's value was derived from.
func backtrack(dp *matrix.Matrix[float64], a, b []float64, penalty float64) []matrix.Cell {
	at := matrix.Cell{Row: len(a), Col: len(b)}
	path := []matrix.Cell{{Row: at.Row - 1, Col: at.Col - 1}}
	for at.Row > 1 || at.Col > 1 {
		var (
			next matrix.Cell
			best = math.Inf(1)
		)
		for _, d := range backSteps {
			c := at.Add(d)
			v := dp.At(c.Row, c.Col)
			if d != matrix.NorthWest {
				v += penalty
			}
			if v < best {
				next, best = c, v
			}
		}
		at = next
		path = append(path, matrix.Cell{Row: at.Row - 1, Col: at.Col - 1})
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}
