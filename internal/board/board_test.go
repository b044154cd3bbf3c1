package board

import (
	"math/rand"
	"testing"
)

// fillRow occupies every cell of a row except the listed holes.
func fillRow(b *Board, row int, holes ...int) {
	for c := range Cols {
		b[row][c] = true
	}
	for _, h := range holes {
		b[row][h] = false
	}
}

func TestShapeDimensions(t *testing.T) {
	tests := []struct {
		kind   Kind
		width  int
		height int
		filled int
	}{
		{KindI, 4, 1, 4},
		{KindO, 2, 2, 4},
		{KindT, 3, 2, 4},
		{KindS, 3, 2, 4},
		{KindZ, 3, 2, 4},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			s := ShapeOf(tc.kind)
			if s.Width() != tc.width || s.Height() != tc.height {
				t.Errorf("size = %dx%d, want %dx%d", s.Width(), s.Height(), tc.width, tc.height)
			}
			n := 0
			for y := 0; y < s.Height(); y++ {
				for x := 0; x < s.Width(); x++ {
					if s.Filled(x, y) {
						n++
					}
				}
			}
			if n != tc.filled {
				t.Errorf("filled cells = %d, want %d", n, tc.filled)
			}
		})
	}
}

func TestShapeOfUnknownKindPanics(t *testing.T) {
	for _, k := range []Kind{KindI - 1, KindZ + 1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("ShapeOf(%d) should panic", k)
				}
			}()
			ShapeOf(k)
		}()
	}
}

func TestRandomShapeCoversAllKinds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := make(map[Kind]bool)
	for i := 0; i < 500; i++ {
		seen[RandomShape(rng).Kind()] = true
	}
	if len(seen) != 5 {
		t.Errorf("expected all 5 kinds, saw %d", len(seen))
	}
}

func TestDropIOnEmptyBoard(t *testing.T) {
	b := New()
	s := ShapeOf(KindI)

	if row := b.Drop(s, 3); row != Rows-1 {
		t.Fatalf("Drop() = %d, want %d", row, Rows-1)
	}

	cleared := b.Place(s, 3)
	if cleared != 0 {
		t.Errorf("Place() cleared %d lines, want 0", cleared)
	}
	for c := range Cols {
		want := c >= 3 && c <= 6
		if b[Rows-1][c] != want {
			t.Errorf("bottom row col %d = %v, want %v", c, b[Rows-1][c], want)
		}
	}
	if b.FilledCount() != 4 {
		t.Errorf("FilledCount() = %d, want 4", b.FilledCount())
	}
}

func TestDropStopsOnStack(t *testing.T) {
	b := New()
	b[Rows-1][4] = true

	// O at col 4 lands on top of the single block.
	s := ShapeOf(KindO)
	if row := b.Drop(s, 4); row != Rows-3 {
		t.Errorf("Drop() = %d, want %d", row, Rows-3)
	}
}

func TestDropEmptyShapeCellsDoNotBlock(t *testing.T) {
	b := New()
	// Z is [[0,1,1],[1,1,0]]; its empty bottom-right cell may sit over a block.
	b[Rows-1][2] = true

	s := ShapeOf(KindZ)
	if row := b.Drop(s, 0); row != Rows-2 {
		t.Fatalf("Drop() = %d, want %d", row, Rows-2)
	}

	if cleared := b.Place(s, 0); cleared != 0 {
		t.Errorf("Place() cleared %d rows, want 0", cleared)
	}
	want := []Cell{{Rows - 2, 1}, {Rows - 2, 2}, {Rows - 1, 0}, {Rows - 1, 1}, {Rows - 1, 2}}
	for _, c := range want {
		if !b.Occupied(c.Row, c.Col) {
			t.Errorf("cell (%d,%d) should be occupied", c.Row, c.Col)
		}
	}
	if got := b.FilledCount(); got != len(want) {
		t.Errorf("FilledCount() = %d, want %d", got, len(want))
	}
}

func TestDropOverhang(t *testing.T) {
	b := New()
	// S is [[1,1,0],[0,1,1]]: its lower-left cell is empty.
	b[Rows-1][0] = true

	s := ShapeOf(KindS)
	row := b.Drop(s, 0)
	// The bottom row of S covers cols 1-2 which are free, so it reaches the floor.
	if row != Rows-2 {
		t.Errorf("Drop() = %d, want %d", row, Rows-2)
	}
	b.Place(s, 0)
	if !b[Rows-2][0] || !b[Rows-2][1] || !b[Rows-1][1] || !b[Rows-1][2] {
		t.Errorf("S not stamped where expected:\n%s", b.String())
	}
}

func TestDropOnFullColumnRestsAtTop(t *testing.T) {
	b := New()
	for r := 1; r < Rows; r++ {
		b[r][5] = true
	}
	s := ShapeOf(KindO)
	if row := b.Drop(s, 4); row != 0 {
		t.Errorf("Drop() = %d, want 0", row)
	}
	b.Place(s, 4)
	if !b.TopRowOccupied() {
		t.Error("top row should be occupied after stacking to the ceiling")
	}
}

func TestPlaceClearsBottomRow(t *testing.T) {
	b := New()
	fillRow(&b, Rows-1, 3, 4, 5, 6)
	b[Rows-2][0] = true
	b[Rows-3][9] = true
	before := b

	cleared := b.Place(ShapeOf(KindI), 3)
	if cleared != 1 {
		t.Fatalf("Place() cleared %d, want 1", cleared)
	}

	for c := range Cols {
		if b[0][c] {
			t.Errorf("row 0 col %d should be empty", c)
		}
	}
	// Every other row shifted down by one.
	for r := 1; r < Rows; r++ {
		if b[r] != before[r-1] {
			t.Errorf("row %d = %v, want former row %d %v", r, b[r], r-1, before[r-1])
		}
	}
}

func TestClearFullLines(t *testing.T) {
	tests := []struct {
		name    string
		full    []int
		marker  map[int]int // row -> col of a lone marker block
		cleared int
	}{
		{name: "no full rows", full: nil, marker: map[int]int{19: 2}, cleared: 0},
		{name: "single bottom row", full: []int{19}, marker: map[int]int{18: 1}, cleared: 1},
		{name: "two separated rows", full: []int{19, 17}, marker: map[int]int{18: 3, 16: 7}, cleared: 2},
		{name: "four stacked rows", full: []int{16, 17, 18, 19}, marker: map[int]int{15: 0}, cleared: 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := New()
			for _, r := range tc.full {
				fillRow(&b, r)
			}
			for r, c := range tc.marker {
				b[r][c] = true
			}

			// Surviving rows top-down, as they should appear after the clear.
			var survivors [][Cols]bool
			for r := range Rows {
				if !rowFull(b[r]) {
					survivors = append(survivors, b[r])
				}
			}

			got := b.ClearFullLines()
			if got != tc.cleared {
				t.Fatalf("ClearFullLines() = %d, want %d", got, tc.cleared)
			}
			if len(b) != Rows {
				t.Fatalf("row count = %d, want %d", len(b), Rows)
			}
			for r := 0; r < tc.cleared; r++ {
				if b[r] != ([Cols]bool{}) {
					t.Errorf("row %d should be empty after clear", r)
				}
			}
			for i, row := range survivors {
				if b[tc.cleared+i] != row {
					t.Errorf("row %d out of order after clear", tc.cleared+i)
				}
			}
		})
	}
}

func TestPlaceNeverWritesOutsideOrClearsCells(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	b := New()

	for i := 0; i < 300; i++ {
		s := RandomShape(rng)
		pos := rng.Intn(Cols - s.Width() + 1)
		before := b
		beforeCount := b.FilledCount()

		cleared := b.Place(s, pos)
		if cleared == 0 {
			for r := range Rows {
				for c := range Cols {
					if before[r][c] && !b[r][c] {
						t.Fatalf("step %d: cell (%d,%d) was cleared without a line clear", i, r, c)
					}
				}
			}
			if b.FilledCount() > beforeCount+4 {
				t.Fatalf("step %d: more than 4 cells added", i)
			}
		}
		if b.TopRowOccupied() {
			b = New()
		}
	}
}

func TestPreviewSkipsOccupied(t *testing.T) {
	b := New()
	b[0][5] = true

	cells := b.Preview(ShapeOf(KindI), 4)
	if len(cells) != 3 {
		t.Fatalf("Preview() returned %d cells, want 3", len(cells))
	}
	for _, c := range cells {
		if c.Row != 0 || c.Col == 5 {
			t.Errorf("unexpected preview cell %+v", c)
		}
	}
	if b.FilledCount() != 1 {
		t.Error("Preview() must not modify the board")
	}
}

func TestBoardHeightAndString(t *testing.T) {
	b := New()
	if b.Height() != 0 {
		t.Errorf("Height() = %d, want 0", b.Height())
	}
	b[Rows-3][0] = true
	if b.Height() != 3 {
		t.Errorf("Height() = %d, want 3", b.Height())
	}

	s := b.String()
	if len(s) != Rows*(Cols+1)-1 {
		t.Errorf("String() length = %d, want %d", len(s), Rows*(Cols+1)-1)
	}
}

func TestOutOfBoundsAccess(t *testing.T) {
	b := New()
	b.Set(-1, 0, true)
	b.Set(0, Cols, true)
	b.Set(Rows, 0, true)
	if b.FilledCount() != 0 {
		t.Error("out-of-bounds Set should be ignored")
	}
	if b.Occupied(-1, -1) {
		t.Error("out-of-bounds Occupied should be false")
	}
}
