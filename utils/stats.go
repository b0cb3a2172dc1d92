package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     uint
	Worlds               int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update folds in one finished world that ran the given number of generations
func (s *Stats) Update(generations uint, population int) {
	s.TotalGenerations += generations
	s.Worlds++

	// Simple moving average for population
	if s.Worlds == 1 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}

	if elapsed := time.Since(s.StartTime); elapsed > 0 {
		s.GenerationsPerSecond = float64(s.TotalGenerations) / elapsed.Seconds()
	}
}

// Elapsed returns the time since the stats were created
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}
