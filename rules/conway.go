package rules

const (
	// UnderpopulationLimit is the fewest live neighbors a live cell needs to survive.
	UnderpopulationLimit = 2
	// OverpopulationLimit is the most live neighbors a live cell can have and survive.
	OverpopulationLimit = 3
	// BirthCount is the exact number of live neighbors that brings a dead cell to life.
	BirthCount = 3
)

// Dies reports whether a live cell with the given neighbor count dies this tick.
func Dies(neighbors int) bool {
	return neighbors < UnderpopulationLimit || neighbors > OverpopulationLimit
}

// IsBorn reports whether a dead cell with the given neighbor count comes alive this tick.
func IsBorn(neighbors int) bool {
	return neighbors == BirthCount
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors in [2,3]) || (!alive && neighbors == 3)
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return !Dies(neighbors)
	}
	return IsBorn(neighbors)
}
