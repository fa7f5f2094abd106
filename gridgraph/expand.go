package gridgraph

import (
	"container/list"
	"fmt"
	"math"

	"github.com/katalvlaran/lvgrid/matrix"
)

// ExpandIsland finds a minimum‐conversion path of “water” cells to connect
// any cell of component srcComp to any cell of component dstComp, as
// numbered by ConnectedComponents. Each water‐cell conversion costs 1.
// Returns the path (including the start and end land cells) and the total
// conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi‐source 0–1‐BFS from all srcComp cells:
//     • Moving into a land cell   → cost 0
//     • Moving into a water cell  → cost 1
//  3. Stop when any dstComp cell is reached.
//  4. Reconstruct path via predecessors.
//
// Complexity: O(W·H·d).
// Memory:     O(W·H) for distance and prev pointers.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) ([]matrix.Cell, int, error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, fmt.Errorf("%w: %d/%d of %d", ErrComponentIndex, srcComp, dstComp, len(comps))
	}
	isDst := matrix.New(gg.Rows(), gg.Cols(), false)
	for _, c := range comps[dstComp] {
		isDst.Set(c.Row, c.Col, true)
	}

	dist := matrix.New(gg.Rows(), gg.Cols(), math.MaxInt)
	prev := matrix.New(gg.Rows(), gg.Cols(), matrix.Cell{Row: -1, Col: -1})

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, c := range comps[srcComp] {
		dist.Set(c.Row, c.Col, 0)
		dq.PushFront(c)
	}

	target, found := matrix.Cell{}, false
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(matrix.Cell)
		if isDst.At(u.Row, u.Col) {
			target, found = u, true
			break
		}
		du := dist.At(u.Row, u.Col)
		for _, v := range gg.Neighbors(u) {
			step := 0
			if !gg.IsLand(v) {
				step = 1
			}
			nd := du + step
			if nd < dist.At(v.Row, v.Col) {
				dist.Set(v.Row, v.Col, nd)
				prev.Set(v.Row, v.Col, u)
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if !found {
		return nil, 0, ErrNoPath
	}
	// Reconstruct path
	var path []matrix.Cell
	for at := target; at.Row >= 0; at = prev.At(at.Row, at.Col) {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	cost := dist.At(target.Row, target.Col)
	gg.logger.Debug("gridgraph: island expanded", "src", srcComp, "dst", dstComp, "cost", cost, "len", len(path))

	return path, cost, nil
}
