package board

import (
	"fmt"
	"math/rand"
)

// Kind identifies one of the block shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
)

// String returns the single-letter name of the shape kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Shape is an immutable rectangular matrix of occupied cells.
// Width and height are always derived from the matrix.
type Shape struct {
	kind  Kind
	cells [][]bool
}

// shapes lists the five block shapes in kind order.
var shapes = []Shape{
	newShape(KindI, [][]int{{1, 1, 1, 1}}),
	newShape(KindO, [][]int{{1, 1}, {1, 1}}),
	newShape(KindT, [][]int{{0, 1, 0}, {1, 1, 1}}),
	newShape(KindS, [][]int{{1, 1, 0}, {0, 1, 1}}),
	newShape(KindZ, [][]int{{0, 1, 1}, {1, 1, 0}}),
}

func newShape(kind Kind, m [][]int) Shape {
	cells := make([][]bool, len(m))
	for y, row := range m {
		cells[y] = make([]bool, len(row))
		for x, v := range row {
			cells[y][x] = v == 1
		}
	}
	return Shape{kind: kind, cells: cells}
}

// ShapeOf returns the shape for the given kind. It panics on unknown kinds.
func ShapeOf(k Kind) Shape {
	if k < KindI || k > KindZ {
		panic(fmt.Sprintf("board: unknown shape kind %d", int(k)))
	}
	return shapes[k]
}

// AllShapes returns every shape in kind order.
func AllShapes() []Shape {
	out := make([]Shape, len(shapes))
	copy(out, shapes)
	return out
}

// RandomShape picks a shape uniformly at random.
func RandomShape(rng *rand.Rand) Shape {
	return shapes[rng.Intn(len(shapes))]
}

// Kind returns the shape kind.
func (s Shape) Kind() Kind {
	return s.kind
}

// Width returns the number of columns in the shape matrix.
func (s Shape) Width() int {
	if len(s.cells) == 0 {
		return 0
	}
	return len(s.cells[0])
}

// Height returns the number of rows in the shape matrix.
func (s Shape) Height() int {
	return len(s.cells)
}

// Filled reports whether the shape occupies the cell at (x, y).
// Out-of-range coordinates are empty.
func (s Shape) Filled(x, y int) bool {
	if y < 0 || y >= len(s.cells) || x < 0 || x >= len(s.cells[y]) {
		return false
	}
	return s.cells[y][x]
}

// Rows renders the shape matrix as 0/1 rows, mainly for tests and debugging.
func (s Shape) Rows() [][]int {
	out := make([][]int, len(s.cells))
	for y, row := range s.cells {
		out[y] = make([]int, len(row))
		for x, v := range row {
			if v {
				out[y][x] = 1
			}
		}
	}
	return out
}
