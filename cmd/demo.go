package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/sparse-gol/model"
)

var (
	demoPattern string // Catalogue pattern to start from
	demoSteps   uint   // Generations to advance
)

// demoCmd prints a pattern before and after a fixed number of generations
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a pattern forward and print the first and last generations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cells, err := model.PatternByName(demoPattern)
		if err != nil {
			return err
		}

		world0 := model.NewWorld(cells)
		logrus.Debugf("demo: pattern=%s steps=%d", demoPattern, demoSteps)
		printGeneration(cmd, 0, world0)

		world1 := world0.Forward(demoSteps)
		printGeneration(cmd, demoSteps, world1)
		return nil
	},
}

func printGeneration(cmd *cobra.Command, generation uint, w model.World) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Gen: %d | %v\n", generation, w)
	renderer := &model.TerminalRenderer{Out: out}
	if err := renderer.Display(w); err != nil {
		logrus.Warnf("demo: failed to render generation %d: %v", generation, err)
	}
	fmt.Fprintln(out)
}

func init() {
	demoCmd.Flags().StringVar(&demoPattern, "pattern", "glider", "Starting pattern")
	demoCmd.Flags().UintVar(&demoSteps, "steps", 1000, "Generations to advance")
}
