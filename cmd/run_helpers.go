package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/sparse-gol/model"
	"github.com/sheikhrachel/sparse-gol/utils"
)

// initializeWorlds builds the initial world for every configured pattern
func initializeWorlds(config utils.Config) ([]model.World, error) {
	worlds := make([]model.World, 0, len(config.Patterns))
	for _, p := range config.Patterns {
		w, err := p.Build()
		if err != nil {
			return nil, err
		}
		logrus.Debugf("initialized %q with %d live cells", p.Name, w.Population())
		worlds = append(worlds, w)
	}
	return worlds, nil
}

// displayRunInfo shows what is about to run
func displayRunInfo(cmd *cobra.Command, config utils.Config, worlds []model.World) {
	population := 0
	for _, w := range worlds {
		population += w.Population()
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Worlds: %d | Steps: %d | Initial living cells: %d\n\n",
		len(worlds), config.Steps, population)
}

// classifyWorld steps past the final generation to tell apart still lifes, oscillators
// and worlds that are still changing
func classifyWorld(w model.World, depth int) string {
	if w.Population() == 0 {
		return "Extinct"
	}

	history := model.NewHistory(depth)
	history.Record(w)
	for range max(depth, 1) {
		w = w.Step()
		switch period := history.Period(w); {
		case period == 1:
			return "Still life"
		case period > 1:
			return fmt.Sprintf("Oscillating (period %d)", period)
		}
		history.Record(w)
	}
	return "Active"
}

// displayWorldStatus shows the final state of one world
func displayWorldStatus(cmd *cobra.Command, name string, generation uint, w model.World, status string) {
	boundingInfo := ""
	if b, ok := w.Bounds(); ok {
		boundingInfo = fmt.Sprintf(" | Bounding box: %dx%d at (%d,%d)", b.Width(), b.Height(), b.MinX, b.MinY)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: Gen: %d | Living: %d | Status: %s%s\n",
		name, generation, w.Population(), status, boundingInfo)
}

// displayRunStats shows throughput across the whole run
func displayRunStats(cmd *cobra.Command, stats *utils.Stats) {
	fmt.Fprintf(cmd.OutOrStdout(), "\nPerformance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.3fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Elapsed().Seconds())
}
