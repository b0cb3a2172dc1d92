package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/sparse-gol/codec"
)

var (
	evolveCoords string // Flat x,y coordinate list
	evolveSteps  uint   // Generations to advance
)

// evolveCmd exposes codec.Evolve on the command line
var evolveCmd = &cobra.Command{
	Use:   "evolve",
	Short: "Evolve a flat x,y coordinate list and print the resulting list",
	Example: `  sparse-gol evolve --coords=-1,0,0,0,1,0 --steps 1
  0,-1,0,0,0,1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		coords, err := parseCoords(evolveCoords)
		if err != nil {
			return err
		}
		result, err := codec.Evolve(coords, evolveSteps)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), joinCoords(result))
		return nil
	},
}

func parseCoords(raw string) ([]int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	coords := make([]int64, 0, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "[parseCoords] coordinate %d", i)
		}
		coords = append(coords, v)
	}
	return coords, nil
}

func joinCoords(coords []int64) string {
	parts := make([]string, len(coords))
	for i, v := range coords {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ",")
}

func init() {
	evolveCmd.Flags().StringVar(&evolveCoords, "coords", "", "Comma-separated alternating x,y coordinates")
	evolveCmd.Flags().UintVar(&evolveSteps, "steps", 1, "Generations to advance")
}
