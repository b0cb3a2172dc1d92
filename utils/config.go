package utils

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/sparse-gol/model"
)

// ErrInvalidConfig is returned when a run configuration fails validation
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for a batch run
type Config struct {
	Steps        uint            `yaml:"steps"`
	Parallelism  int             `yaml:"parallelism"`
	HistoryDepth int             `yaml:"history_depth"`
	Patterns     []PatternConfig `yaml:"patterns"`
}

// PatternConfig describes one initial world. Exactly one of Pattern, Cells or Soup is set.
type PatternConfig struct {
	Name    string      `yaml:"name"`
	Pattern string      `yaml:"pattern"`
	Cells   [][]int64   `yaml:"cells"`
	Soup    *SoupConfig `yaml:"soup"`
	OffsetX int64       `yaml:"offset_x"`
	OffsetY int64       `yaml:"offset_y"`
}

// SoupConfig describes a seeded random area of live cells
type SoupConfig struct {
	Seed    int64   `yaml:"seed"`
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Density float64 `yaml:"density"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Steps:        1000,
		Parallelism:  0, // one worker per CPU
		HistoryDepth: model.DefaultHistoryDepth,
		Patterns: []PatternConfig{
			{Name: "glider", Pattern: "glider"},
		},
	}
}

// LoadConfig loads configuration from a YAML file. Unknown fields are rejected.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err = decoder.Decode(&config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}
	return config, nil
}

// Validate checks that every pattern entry can be turned into a world
func (c Config) Validate() error {
	if len(c.Patterns) == 0 {
		return errors.Wrap(ErrInvalidConfig, "no patterns configured")
	}
	for i, p := range c.Patterns {
		sources := 0
		if p.Pattern != "" {
			sources++
		}
		if len(p.Cells) > 0 {
			sources++
		}
		if p.Soup != nil {
			sources++
		}
		if sources != 1 {
			return errors.Wrapf(ErrInvalidConfig,
				"pattern %d (%s): exactly one of pattern, cells or soup must be set", i, p.Name)
		}
		for j, cell := range p.Cells {
			if len(cell) != 2 {
				return errors.Wrapf(ErrInvalidConfig,
					"pattern %d (%s): cell %d has %d coordinates, want 2", i, p.Name, j, len(cell))
			}
		}
		if p.Soup != nil && (p.Soup.Density < 0 || p.Soup.Density > 1) {
			return errors.Wrapf(ErrInvalidConfig,
				"pattern %d (%s): soup density %v outside [0,1]", i, p.Name, p.Soup.Density)
		}
	}
	return nil
}

// Build returns the initial world described by the pattern entry
func (p PatternConfig) Build() (model.World, error) {
	var cells model.LiveSet
	switch {
	case p.Pattern != "":
		var err error
		if cells, err = model.PatternByName(p.Pattern); err != nil {
			return model.World{}, errors.Wrapf(err, "[Build] pattern entry %q", p.Name)
		}
	case p.Soup != nil:
		cells = model.RandomSoup(p.Soup.Seed, p.Soup.Width, p.Soup.Height, p.Soup.Density)
	default:
		list := make([]model.Cell, 0, len(p.Cells))
		for _, xy := range p.Cells {
			if len(xy) != 2 {
				return model.World{}, errors.Wrapf(ErrInvalidConfig, "[Build] pattern entry %q: bad cell %v", p.Name, xy)
			}
			list = append(list, model.C(xy[0], xy[1]))
		}
		cells = model.NewLiveSet(list...)
	}
	return model.NewWorld(model.Translate(cells, p.OffsetX, p.OffsetY)), nil
}
