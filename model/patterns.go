package model

import (
	"math/rand/v2"
	"slices"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned when a pattern name is not in the catalogue
var ErrUnknownPattern = errors.New("unknown pattern")

var patterns = map[string][]Cell{
	"glider":      {C(0, 0), C(1, 0), C(2, 0), C(2, 1), C(1, 2)},
	"blinker":     {C(-1, 0), C(0, 0), C(1, 0)},
	"block":       {C(0, 0), C(1, 0), C(0, 1), C(1, 1)},
	"beehive":     {C(1, 0), C(2, 0), C(0, 1), C(3, 1), C(1, 2), C(2, 2)},
	"toad":        {C(1, 0), C(2, 0), C(3, 0), C(0, 1), C(1, 1), C(2, 1)},
	"beacon":      {C(0, 0), C(1, 0), C(0, 1), C(3, 2), C(2, 3), C(3, 3)},
	"r-pentomino": {C(1, 0), C(2, 0), C(0, 1), C(1, 1), C(1, 2)},
}

// PatternNames returns the catalogue names in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// PatternByName returns the live cells of a named pattern anchored near the origin
func PatternByName(name string) (LiveSet, error) {
	cells, ok := patterns[name]
	if !ok {
		return LiveSet{}, errors.Wrapf(ErrUnknownPattern, "[PatternByName] %q", name)
	}
	return NewLiveSet(cells...), nil
}

// Translate shifts every cell in the set by (dx, dy)
func Translate(s LiveSet, dx, dy int64) LiveSet {
	cells := make([]Cell, 0, s.Size())
	s.Each(func(c Cell) {
		cells = append(cells, c.Offset(dx, dy))
	})
	return NewLiveSet(cells...)
}

// RandomSoup fills a width x height area at the origin with live cells at the given
// density. The same seed always yields the same soup.
func RandomSoup(seed int64, width, height int, density float64) LiveSet {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	var cells []Cell
	for y := range height {
		for x := range width {
			if rng.Float64() < density {
				cells = append(cells, C(int64(x), int64(y)))
			}
		}
	}
	return NewLiveSet(cells...)
}
