// Package board implements the fixed-size puzzle grid: hard-drop placement
// of block shapes and full-row clearing. It has no notion of turns, score or
// quiz questions; the engine package sequences those.
package board

// Board dimensions. They never change.
const (
	Rows = 20
	Cols = 10
)

// Board is a grid of occupied/empty cells indexed as Board[row][col].
// Row 0 is the top. Being an array, a Board is copied by assignment.
type Board [Rows][Cols]bool

// Cell is a board coordinate.
type Cell struct {
	Row, Col int
}

// New returns an empty board.
func New() Board {
	return Board{}
}

// inBounds reports whether (row, col) lies on the board.
func inBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Occupied reports whether the cell is occupied.
// Out-of-bounds coordinates are treated as empty.
func (b *Board) Occupied(row, col int) bool {
	if !inBounds(row, col) {
		return false
	}
	return b[row][col]
}

// Set marks a cell occupied or empty. Out-of-bounds writes are ignored.
func (b *Board) Set(row, col int, occupied bool) {
	if inBounds(row, col) {
		b[row][col] = occupied
	}
}

// fits reports whether the shape, with its top edge at row and its left edge
// at col, covers only empty in-bounds cells. Empty shape cells never collide.
func (b *Board) fits(s Shape, row, col int) bool {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if !s.Filled(x, y) {
				continue
			}
			r, c := row+y, col+x
			if r >= Rows {
				return false
			}
			// Columns outside the board are not tested; stamping drops them.
			if c < 0 || c >= Cols {
				continue
			}
			if b[r][c] {
				return false
			}
		}
	}
	return true
}

// Drop returns the row at which the shape's top edge comes to rest when
// hard-dropped from row 0 at column pos. The shape keeps falling while the
// next row down fits; the result is never negative.
func (b *Board) Drop(s Shape, pos int) int {
	row := 0
	for row+s.Height() < Rows && b.fits(s, row+1, pos) {
		row++
	}
	return row
}

// stamp writes the occupied shape cells into the board with the top edge at
// row. Cells that fall outside the board are silently dropped.
func (b *Board) stamp(s Shape, row, col int) {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Filled(x, y) {
				b.Set(row+y, col+x, true)
			}
		}
	}
}

// Place hard-drops the shape at column pos, stamps it and clears full rows.
// Returns the number of rows cleared.
func (b *Board) Place(s Shape, pos int) int {
	b.stamp(s, b.Drop(s, pos), pos)
	return b.ClearFullLines()
}

// rowFull reports whether a row has no empty cell.
func rowFull(row [Cols]bool) bool {
	for _, c := range row {
		if !c {
			return false
		}
	}
	return true
}

// ClearFullLines removes every full row, shifts the remaining rows down
// with their order preserved and fills the top with empty rows.
// Returns the number of rows removed.
func (b *Board) ClearFullLines() int {
	var kept Board
	write := Rows - 1
	for r := Rows - 1; r >= 0; r-- {
		if rowFull(b[r]) {
			continue
		}
		kept[write] = b[r]
		write--
	}
	cleared := write + 1
	*b = kept
	return cleared
}

// TopRowOccupied reports whether any cell of row 0 is occupied.
func (b *Board) TopRowOccupied() bool {
	for _, c := range b[0] {
		if c {
			return true
		}
	}
	return false
}

// FilledCount returns the number of occupied cells.
func (b *Board) FilledCount() int {
	n := 0
	for r := range Rows {
		for c := range Cols {
			if b[r][c] {
				n++
			}
		}
	}
	return n
}

// Height returns the number of rows from the highest occupied row to the
// bottom, or 0 for an empty board.
func (b *Board) Height() int {
	for r := range Rows {
		for c := range Cols {
			if b[r][c] {
				return Rows - r
			}
		}
	}
	return 0
}

// Preview returns the cells a non-destructive overlay of the shape covers
// when drawn over the top rows at column pos. Cells already occupied on the
// board are excluded so the overlay never hides the stack.
func (b *Board) Preview(s Shape, pos int) []Cell {
	var cells []Cell
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if !s.Filled(x, y) {
				continue
			}
			r, c := y, pos+x
			if !inBounds(r, c) || b[r][c] {
				continue
			}
			cells = append(cells, Cell{Row: r, Col: c})
		}
	}
	return cells
}

// String renders the board as rows of '#' and '.', top row first.
func (b *Board) String() string {
	buf := make([]byte, 0, Rows*(Cols+1))
	for r := range Rows {
		if r > 0 {
			buf = append(buf, '\n')
		}
		for c := range Cols {
			if b[r][c] {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}
