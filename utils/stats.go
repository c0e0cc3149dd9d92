package utils

import (
	"fmt"
	"time"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	LastPopulation       int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.LastPopulation = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if generation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Summary formats the stats for the shutdown message
func (s *Stats) Summary() string {
	return fmt.Sprintf("reached step %d in %.1f seconds, %.1f gen/sec, %.1f avg population, %d alive at exit",
		s.TotalGenerations, time.Since(s.StartTime).Seconds(),
		s.GenerationsPerSecond, s.AveragePopulation, s.LastPopulation)
}
