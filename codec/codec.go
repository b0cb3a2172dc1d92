// Package codec converts between flat coordinate arrays and live-cell sets.
//
// The flat encoding alternates coordinates: [x0, y0, x1, y1, ...]. Even indices hold
// x values, odd indices hold y values, and the i-th x pairs with the i-th y.
package codec

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-gol/model"
)

// ErrInvalidInput is returned when a flat coordinate array cannot be paired up
var ErrInvalidInput = errors.New("invalid input")

// Decode builds a live set from alternating x,y coordinates. An odd-length array has an
// x without its y and is rejected rather than truncated. Repeated pairs collapse.
func Decode(coords []int64) (model.LiveSet, error) {
	if len(coords)%2 != 0 {
		return model.LiveSet{}, errors.Wrapf(ErrInvalidInput,
			"[Decode] %d x values but %d y values", (len(coords)+1)/2, len(coords)/2)
	}

	cells := make([]model.Cell, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		cells = append(cells, model.C(coords[i], coords[i+1]))
	}
	return model.NewLiveSet(cells...), nil
}

// Encode flattens a live set into alternating x,y coordinates, ordered by row then column
func Encode(s model.LiveSet) []int64 {
	coords := make([]int64, 0, 2*s.Size())
	for _, c := range s.Cells() {
		coords = append(coords, c.X, c.Y)
	}
	return coords
}

// Evolve decodes coords, advances the world by steps generations and encodes the result
func Evolve(coords []int64, steps uint) ([]int64, error) {
	cells, err := Decode(coords)
	if err != nil {
		return nil, errors.Wrap(err, "[Evolve] failed to decode coordinates")
	}
	return Encode(model.NewWorld(cells).Forward(steps).Cells()), nil
}
