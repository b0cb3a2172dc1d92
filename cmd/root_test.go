package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/sparse-gol/codec"
	"github.com/sheikhrachel/sparse-gol/model"
)

// execute runs the root command with args and returns everything written to stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{"--log=error"}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestEvolveCommand(t *testing.T) {
	out, err := execute(t, "evolve", "--coords=-1,0,0,0,1,0", "--steps", "1")
	require.NoError(t, err)
	assert.Equal(t, "0,-1,0,0,0,1\n", out)
}

func TestEvolveCommandRejectsOddCoords(t *testing.T) {
	_, err := execute(t, "evolve", "--coords=1,2,3", "--steps", "1")
	assert.True(t, errors.Is(err, codec.ErrInvalidInput))

	_, err = execute(t, "evolve", "--coords=1,x", "--steps", "1")
	assert.Error(t, err)
}

func TestDemoCommand(t *testing.T) {
	out, err := execute(t, "demo", "--pattern", "blinker", "--steps", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Gen: 0 | World{population: 3, cells: {(-1,0), (0,0), (1,0)}}")
	assert.Contains(t, out, "Gen: 2 | World{population: 3, cells: {(-1,0), (0,0), (1,0)}}")
	assert.Contains(t, out, "██████\n")
}

func TestDemoCommandUnknownPattern(t *testing.T) {
	_, err := execute(t, "demo", "--pattern", "nope", "--steps", "1")
	assert.True(t, errors.Is(err, model.ErrUnknownPattern))
}

func TestRunCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
steps: 5
patterns:
  - name: spinner
    pattern: blinker
  - name: square
    pattern: block
  - name: traveller
    pattern: glider
  - name: loner
    cells: [[4, 4]]
`), 0o644))

	out, err := execute(t, "run", "--config", path, "--steps", "12", "--parallelism", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Worlds: 4 | Steps: 12 | Initial living cells: 13")
	assert.Contains(t, out, "spinner: Gen: 12 | Living: 3 | Status: Oscillating (period 2)")
	assert.Contains(t, out, "square: Gen: 12 | Living: 4 | Status: Still life")
	assert.Contains(t, out, "traveller: Gen: 12 | Living: 5 | Status: Active | Bounding box: 3x3 at (3,-3)")
	assert.Contains(t, out, "loner: Gen: 12 | Living: 0 | Status: Extinct")
	assert.Contains(t, out, "Performance:")
}

func TestRunCommandBadConfig(t *testing.T) {
	_, err := execute(t, "run", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "--steps", "1")
	assert.Error(t, err)
}

func TestClassifyWorld(t *testing.T) {
	glider, err := model.PatternByName("glider")
	require.NoError(t, err)
	toad, err := model.PatternByName("toad")
	require.NoError(t, err)

	assert.Equal(t, "Extinct", classifyWorld(model.World{}, 5))
	assert.Equal(t, "Oscillating (period 2)", classifyWorld(model.NewWorld(toad), 5))
	assert.Equal(t, "Active", classifyWorld(model.NewWorld(glider), 5))
	assert.Equal(t, "Still life", classifyWorld(model.NewWorldFromCells(model.C(0, 0), model.C(1, 0), model.C(0, 1), model.C(1, 1)), 0))
}
