package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepBlinker(t *testing.T) {
	w := NewWorld(blinker)

	next := w.Step()
	assert.True(t, next.Cells().Equal(NewLiveSet(C(0, 1), C(0, 0), C(0, -1))))
	assert.True(t, next.Step().Equal(w))

	// the original world is unchanged
	assert.True(t, w.Cells().Equal(blinker))
}

func TestStepBlockForms(t *testing.T) {
	w := NewWorldFromCells(C(0, 0), C(0, 1), C(1, 0))
	block := NewWorldFromCells(C(0, 0), C(0, 1), C(1, 0), C(1, 1))

	assert.True(t, w.Step().Equal(block))
	assert.True(t, block.Step().Equal(block))
	assert.True(t, block.Forward(10).Equal(block))
}

func TestEmptyWorldIsFixedPoint(t *testing.T) {
	var w World
	assert.True(t, w.Step().Cells().Empty())
	assert.True(t, NewWorld(NewLiveSet()).Forward(5).Cells().Empty())
}

func TestForward(t *testing.T) {
	tests := []struct {
		name  string
		start LiveSet
		steps uint
		want  LiveSet
	}{
		{"identity", glider, 0, glider},
		{"blinker after 12", blinker, 12, blinker},
		{"glider after 3", glider, 3, NewLiveSet(C(2, 0), C(3, 0), C(1, 1), C(1, -1), C(2, -1))},
		{"glider after 4 translates", glider, 4, Translate(glider, 1, -1)},
		{"glider after 1000", glider, 1000, Translate(glider, 250, -250)},
		{"lone cell dies", NewLiveSet(C(3, 3)), 1, NewLiveSet()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewWorld(tt.start).Forward(tt.steps)
			assert.True(t, got.Cells().Equal(tt.want), "got %v, want %v", got.Cells(), tt.want)
		})
	}
}

func TestForwardComposes(t *testing.T) {
	start := NewWorld(RandomSoup(42, 10, 10, 0.35))
	for _, split := range [][2]uint{{0, 7}, {3, 4}, {7, 0}, {5, 2}} {
		a, b := split[0], split[1]
		assert.True(t, start.Forward(a+b).Equal(start.Forward(a).Forward(b)), "a=%d b=%d", a, b)
	}
}

func TestBoundsAndFingerprint(t *testing.T) {
	_, ok := World{}.Bounds()
	assert.False(t, ok)

	b, ok := NewWorld(glider).Bounds()
	require.True(t, ok)
	assert.Equal(t, Bounds{MinX: 0, MaxX: 2, MinY: 0, MaxY: 2}, b)
	assert.Equal(t, int64(3), b.Width())
	assert.Equal(t, int64(3), b.Height())

	// fingerprints depend only on membership
	a := NewWorldFromCells(C(1, 0), C(0, 0))
	c := NewWorldFromCells(C(0, 0), C(1, 0))
	assert.Equal(t, a.Fingerprint(), c.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), NewWorld(blinker).Fingerprint())
}

func TestWorldString(t *testing.T) {
	assert.Equal(t, "World{population: 3, cells: {(-1,0), (0,0), (1,0)}}", NewWorld(blinker).String())
}
