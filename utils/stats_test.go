package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(10, 100)
	assert.Equal(t, uint(10), s.TotalGenerations)
	assert.Equal(t, 100.0, s.AveragePopulation)

	s.Update(10, 200)
	assert.Equal(t, uint(20), s.TotalGenerations)
	assert.Equal(t, 2, s.Worlds)
	assert.InDelta(t, 110.0, s.AveragePopulation, 1e-9)
	assert.Greater(t, s.GenerationsPerSecond, 0.0)
}
