package cmd

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/sparse-gol/model"
	"github.com/sheikhrachel/sparse-gol/utils"
)

var (
	configPath  string // YAML run configuration
	runSteps    uint   // Overrides the configured step count when set
	parallelism int    // Overrides the configured worker count when set
)

// runCmd evolves every configured pattern concurrently and reports on each
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Evolve the patterns listed in a YAML config",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadRunConfig(cmd)
		if err != nil {
			return err
		}

		worlds, err := initializeWorlds(config)
		if err != nil {
			return err
		}
		displayRunInfo(cmd, config, worlds)

		stats := utils.NewStats()
		results, err := model.ForwardAll(cmd.Context(), worlds, config.Steps, config.Parallelism)
		if err != nil {
			return errors.Wrap(err, "[run] simulation interrupted")
		}

		for i, w := range results {
			stats.Update(config.Steps, w.Population())
			displayWorldStatus(cmd, config.Patterns[i].Name, config.Steps, w, classifyWorld(w, config.HistoryDepth))
		}
		displayRunStats(cmd, stats)

		logrus.Info("Simulation complete.")
		return nil
	},
}

func loadRunConfig(cmd *cobra.Command) (utils.Config, error) {
	config := utils.DefaultConfig()
	if configPath != "" {
		var err error
		if config, err = utils.LoadConfig(configPath); err != nil {
			return config, err
		}
	} else {
		logrus.Info("Using default configuration (no --config given)")
	}

	if cmd.Flags().Changed("steps") {
		config.Steps = runSteps
	}
	if cmd.Flags().Changed("parallelism") {
		config.Parallelism = parallelism
	}
	return config, nil
}

func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML run configuration")
	runCmd.Flags().UintVar(&runSteps, "steps", 0, "Generations to advance (overrides config)")
	runCmd.Flags().IntVar(&parallelism, "parallelism", 0, "Worlds evolved at once, 0 for one per CPU (overrides config)")
}
