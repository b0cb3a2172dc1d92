package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
)

// World holds the live cells of one generation. Worlds are never modified in place;
// Step and Forward return new values, so a World can be shared freely.
type World struct {
	cells LiveSet
}

// NewWorld creates a world whose live cells are exactly the given set
func NewWorld(cells LiveSet) World {
	return World{cells: cells}
}

// NewWorldFromCells is NewWorld(NewLiveSet(cells...))
func NewWorldFromCells(cells ...Cell) World {
	return NewWorld(NewLiveSet(cells...))
}

// Cells returns the live cells of this generation
func (w World) Cells() LiveSet {
	return w.cells
}

// Population returns the number of live cells
func (w World) Population() int {
	return w.cells.Size()
}

// Step computes the next generation
func (w World) Step() World {
	deceased := Deceased(w.cells)
	newborns := Newborns(w.cells)
	return World{cells: w.cells.Difference(deceased).Union(newborns)}
}

// Forward applies Step n times in sequence. Forward(0) returns w unchanged.
func (w World) Forward(n uint) World {
	for range n {
		w = w.Step()
	}
	return w
}

// Equal reports whether both worlds have the same live cells
func (w World) Equal(other World) bool {
	return w.cells.Equal(other.cells)
}

// Bounds is the inclusive bounding box of a set of cells
type Bounds struct {
	MinX, MaxX, MinY, MaxY int64
}

// Width returns the number of columns covered
func (b Bounds) Width() int64 {
	return b.MaxX - b.MinX + 1
}

// Height returns the number of rows covered
func (b Bounds) Height() int64 {
	return b.MaxY - b.MinY + 1
}

// Bounds returns the bounding box of the live cells; ok is false for an empty world
func (w World) Bounds() (b Bounds, ok bool) {
	w.cells.Each(func(c Cell) {
		if !ok {
			b = Bounds{MinX: c.X, MaxX: c.X, MinY: c.Y, MaxY: c.Y}
			ok = true
			return
		}
		b.MinX = min(b.MinX, c.X)
		b.MaxX = max(b.MaxX, c.X)
		b.MinY = min(b.MinY, c.Y)
		b.MaxY = max(b.MaxY, c.Y)
	})
	return
}

// Fingerprint returns an MD5 hash of the live cells, independent of iteration order
func (w World) Fingerprint() string {
	h := md5.New()
	var buf [16]byte
	for _, c := range w.cells.Cells() {
		binary.LittleEndian.PutUint64(buf[:8], uint64(c.X))
		binary.LittleEndian.PutUint64(buf[8:], uint64(c.Y))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String returns a debug form listing the population and the live cells
func (w World) String() string {
	return fmt.Sprintf("World{population: %d, cells: %s}", w.Population(), w.cells)
}
