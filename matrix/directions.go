package matrix

import "iter"

// Cell addresses one element of a Matrix by row and column.
type Cell struct {
	Row, Col int
}

// Add returns the cell reached from c by one step of d.
// The result may lie outside any matrix.
func (c Cell) Add(d Direction) Cell {
	return Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Less orders cells row-major.
func (c Cell) Less(o Cell) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}

	return c.Col < o.Col
}

// Direction is a signed (row, column) step. Steps longer than one cell are
// allowed, e.g. {2, 1} moves like a chess knight. The zero Direction is not
// a valid step.
type Direction struct {
	Row, Col int
}

// IsZero reports whether d is the invalid (0, 0) step.
func (d Direction) IsZero() bool { return d.Row == 0 && d.Col == 0 }

// Named unit directions. North is towards row 0, West towards column 0.
var (
	North     = Direction{Row: -1, Col: 0}
	South     = Direction{Row: 1, Col: 0}
	East      = Direction{Row: 0, Col: 1}
	West      = Direction{Row: 0, Col: -1}
	NorthEast = Direction{Row: -1, Col: 1}
	NorthWest = Direction{Row: -1, Col: -1}
	SouthEast = Direction{Row: 1, Col: 1}
	SouthWest = Direction{Row: 1, Col: -1}
)

// Directions4 lists the four cardinal directions, clockwise from East.
var Directions4 = [4]Direction{East, South, West, North}

// Directions8 lists all eight directions, clockwise from NorthEast.
var Directions8 = [8]Direction{NorthEast, East, SouthEast, South, SouthWest, West, NorthWest, North}

// Neighbours returns the cells adjacent to c, row-major over the 3×3 block
// centred on c and clipped to m. Without diagonals only cells sharing a row
// or a column with c are kept. A c outside m has no neighbours.
// The result is a snapshot: later growth of m does not change it.
//
// Complexity: O(1).
func (m *Matrix[E]) Neighbours(c Cell, diagonals bool) []Cell {
	if !m.WithinBounds(c.Row, c.Col) {
		return nil
	}
	out := make([]Cell, 0, 8)
	for r := max(c.Row-1, 0); r < min(m.rows, c.Row+2); r++ {
		for cc := max(c.Col-1, 0); cc < min(m.cols, c.Col+2); cc++ {
			if r == c.Row && cc == c.Col {
				continue
			}
			if !diagonals && r != c.Row && cc != c.Col {
				continue
			}
			out = append(out, Cell{Row: r, Col: cc})
		}
	}

	return out
}

// MoveInDirection returns the cell one step of d away from c and true, or
// false if c is outside m, d is zero, or the destination is outside m.
func (m *Matrix[E]) MoveInDirection(c Cell, d Direction) (Cell, bool) {
	return moveInDirection(c, d, m.rows, m.cols)
}

// moveInDirection steps within a rows×cols frame.
func moveInDirection(c Cell, d Direction, rows, cols int) (Cell, bool) {
	inside := func(p Cell) bool { return p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols }
	if !inside(c) || d.IsZero() {
		return Cell{}, false
	}
	next := c.Add(d)
	if !inside(next) {
		return Cell{}, false
	}

	return next, true
}

// InDirection yields the successive cells reached from c by repeated steps
// of d until the edge of m, c excluded. The dimensions are captured when
// InDirection is called.
//
//	m := matrix.NewSquare(8, '.')
//	for c := range m.InDirection(matrix.Cell{1, 1}, matrix.Direction{2, 1}) {
//	    // {3 2}, {5 3}, {7 4}
//	}
func (m *Matrix[E]) InDirection(c Cell, d Direction) iter.Seq[Cell] {
	rows, cols := m.rows, m.cols

	return func(yield func(Cell) bool) {
		cur := c
		for {
			next, ok := moveInDirection(cur, d, rows, cols)
			if !ok || !yield(next) {
				return
			}
			cur = next
		}
	}
}
