package model

import "github.com/sheikhrachel/sparse-gol/rules"

// Candidates returns every cell that is alive or adjacent to a live cell. Any cell
// outside this set has no live neighbors and stays dead.
func Candidates(live LiveSet) LiveSet {
	var cells []Cell
	live.Each(func(c Cell) {
		WithNeighbors(c).Each(func(n Cell) {
			cells = append(cells, n)
		})
	})
	return NewLiveSet(cells...)
}

// NeighborCount counts the live cells among c's 8 neighbors; c itself is not counted
func NeighborCount(live LiveSet, c Cell) int {
	return live.Intersection(NeighborPositions(c)).Size()
}

// Deceased returns the live cells that die this tick from under- or overpopulation
func Deceased(live LiveSet) LiveSet {
	var dying []Cell
	live.Each(func(c Cell) {
		if rules.Dies(NeighborCount(live, c)) {
			dying = append(dying, c)
		}
	})
	return NewLiveSet(dying...)
}

// Newborns returns the dead candidate cells that come alive this tick
func Newborns(live LiveSet) LiveSet {
	var born []Cell
	Candidates(live).Difference(live).Each(func(c Cell) {
		if rules.IsBorn(NeighborCount(live, c)) {
			born = append(born, c)
		}
	})
	return NewLiveSet(born...)
}
