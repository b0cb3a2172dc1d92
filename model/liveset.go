package model

import (
	"slices"
	"strings"

	"github.com/benbjohnson/immutable"
)

// cellHasher hashes cells structurally for the persistent set
type cellHasher struct{}

// Hash mixes both coordinates with the splitmix64 finalizer
func (cellHasher) Hash(c Cell) uint32 {
	h := uint64(c.X)*0x9e3779b97f4a7c15 ^ uint64(c.Y)
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	return uint32(h ^ h>>32)
}

func (cellHasher) Equal(a, b Cell) bool {
	return a == b
}

// LiveSet is a persistent set of live cells. Every operation returns a new set and
// leaves its inputs untouched; unchanged structure is shared between versions.
// The zero value is the empty set.
type LiveSet struct {
	set *immutable.Set[Cell]
}

// NewLiveSet builds a set from the given cells, dropping duplicates
func NewLiveSet(cells ...Cell) LiveSet {
	s := immutable.NewSet[Cell](cellHasher{}, cells...)
	return LiveSet{set: &s}
}

func (s LiveSet) inner() immutable.Set[Cell] {
	if s.set == nil {
		return immutable.NewSet[Cell](cellHasher{})
	}
	return *s.set
}

// Contains reports whether c is in the set
func (s LiveSet) Contains(c Cell) bool {
	if s.set == nil {
		return false
	}
	return s.set.Has(c)
}

// Size returns the number of cells in the set
func (s LiveSet) Size() int {
	if s.set == nil {
		return 0
	}
	return s.set.Len()
}

// Empty reports whether the set has no members
func (s LiveSet) Empty() bool {
	return s.Size() == 0
}

// Add returns a set that also contains c
func (s LiveSet) Add(c Cell) LiveSet {
	next := s.inner().Add(c)
	return LiveSet{set: &next}
}

// Each calls fn for every cell in unspecified order
func (s LiveSet) Each(fn func(Cell)) {
	if s.set == nil {
		return
	}
	itr := s.set.Iterator()
	for !itr.Done() {
		c, ok := itr.Next()
		if !ok {
			break
		}
		fn(c)
	}
}

// Union returns all cells in either s or other
func (s LiveSet) Union(other LiveSet) LiveSet {
	// grow the larger set so fewer nodes get copied
	big, small := s, other
	if small.Size() > big.Size() {
		big, small = small, big
	}
	if small.Empty() {
		return big
	}
	out := big.inner()
	small.Each(func(c Cell) {
		out = out.Add(c)
	})
	return LiveSet{set: &out}
}

// Intersection returns all cells in both s and other
func (s LiveSet) Intersection(other LiveSet) LiveSet {
	probe, against := s, other
	if probe.Size() > against.Size() {
		probe, against = against, probe
	}
	var cells []Cell
	probe.Each(func(c Cell) {
		if against.Contains(c) {
			cells = append(cells, c)
		}
	})
	return NewLiveSet(cells...)
}

// Difference returns the cells of s that are not in other
func (s LiveSet) Difference(other LiveSet) LiveSet {
	if s.Empty() || other.Empty() {
		return s
	}
	out := s.inner()
	other.Each(func(c Cell) {
		out = out.Delete(c)
	})
	return LiveSet{set: &out}
}

// Equal reports whether both sets have exactly the same members
func (s LiveSet) Equal(other LiveSet) bool {
	if s.Size() != other.Size() {
		return false
	}
	equal := true
	s.Each(func(c Cell) {
		if equal && !other.Contains(c) {
			equal = false
		}
	})
	return equal
}

// Cells returns the members ordered by row (Y) then column (X)
func (s LiveSet) Cells() []Cell {
	cells := make([]Cell, 0, s.Size())
	s.Each(func(c Cell) {
		cells = append(cells, c)
	})
	slices.SortFunc(cells, compareCells)
	return cells
}

func compareCells(a, b Cell) int {
	switch {
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	}
	return 0
}

// String returns the set in {(x,y), ...} form
func (s LiveSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, c := range s.Cells() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}
	b.WriteByte('}')
	return b.String()
}
