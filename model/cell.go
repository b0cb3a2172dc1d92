package model

import (
	"fmt"
	"math"
)

// Cell identifies a lattice point. Two cells are the same iff both coordinates match.
type Cell struct {
	X, Y int64
}

// C is shorthand for Cell{X: x, Y: y}
func C(x, y int64) Cell {
	return Cell{X: x, Y: y}
}

// String returns the cell in (x,y) form
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Offset returns the cell shifted by (dx, dy). It panics if a coordinate would overflow.
func (c Cell) Offset(dx, dy int64) Cell {
	return Cell{X: addChecked(c.X, dx), Y: addChecked(c.Y, dy)}
}

func addChecked(a, b int64) int64 {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		panic(fmt.Sprintf("model: coordinate overflow: %d%+d", a, b))
	}
	return a + b
}

// WithNeighbors returns the cell itself plus its 8 Moore neighbors
func WithNeighbors(c Cell) LiveSet {
	block := make([]Cell, 0, 9)
	for dy := int64(-1); dy <= 1; dy++ {
		for dx := int64(-1); dx <= 1; dx++ {
			block = append(block, c.Offset(dx, dy))
		}
	}
	return NewLiveSet(block...)
}

// NeighborPositions returns the 8 Moore neighbors of a cell, excluding the cell itself
func NeighborPositions(c Cell) LiveSet {
	return WithNeighbors(c).Difference(NewLiveSet(c))
}
