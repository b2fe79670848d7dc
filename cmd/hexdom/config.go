package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/npillmayer/hexdom"
	"github.com/npillmayer/hexdom/hexgrid"
	"gopkg.in/yaml.v3"
)

var errConfig = errors.New("invalid configuration")

// yamlConfig is the layout of a scene file.
type yamlConfig struct {
	Grid struct {
		Rings   *int     `yaml:"rings"`
		Spacing *float64 `yaml:"spacing"`
	} `yaml:"grid"`
	Seeds struct {
		Count     *int         `yaml:"count"`
		Positions [][2]float64 `yaml:"positions"`
		Hexes     [][2]int     `yaml:"hexes"`
	} `yaml:"seeds"`
	Analysis struct {
		MaxSteps  *int     `yaml:"max_steps"`
		Spokes    *bool    `yaml:"spokes"`
		Threshold *float64 `yaml:"threshold"`
	} `yaml:"analysis"`
	Trace *string `yaml:"trace"`
}

// settings holds everything a run needs. Flags override the scene file,
// which overrides the defaults.
type settings struct {
	Rings     int
	Spacing   float64
	SeedCount int
	Seeds     []hexdom.Pair   // explicit seed positions, if any
	SeedHexes []hexgrid.Axial // seeds at hex centres, if any
	MaxSteps  int
	Spokes    bool
	Threshold float64
	Trace     string
}

func defaultSettings() settings {
	return settings{
		Rings:     10,
		Spacing:   1,
		SeedCount: 10,
		Threshold: 0.8,
		Trace:     "error",
	}
}

func loadConfig(path string) (yamlConfig, error) {
	var dto yamlConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return dto, fmt.Errorf("load config: %w", err)
	}
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return dto, fmt.Errorf("load config %s: %w: %v", path, errConfig, err)
	}
	return dto, nil
}

// apply overlays the values present in a scene file.
func (s *settings) apply(dto yamlConfig) {
	if dto.Grid.Rings != nil {
		s.Rings = *dto.Grid.Rings
	}
	if dto.Grid.Spacing != nil {
		s.Spacing = *dto.Grid.Spacing
	}
	if dto.Seeds.Count != nil {
		s.SeedCount = *dto.Seeds.Count
	}
	for _, p := range dto.Seeds.Positions {
		s.Seeds = append(s.Seeds, hexdom.P(p[0], p[1]))
	}
	for _, h := range dto.Seeds.Hexes {
		s.SeedHexes = append(s.SeedHexes, hexgrid.Axial{Q: h[0], R: h[1]})
	}
	if dto.Analysis.MaxSteps != nil {
		s.MaxSteps = *dto.Analysis.MaxSteps
	}
	if dto.Analysis.Spokes != nil {
		s.Spokes = *dto.Analysis.Spokes
	}
	if dto.Analysis.Threshold != nil {
		s.Threshold = *dto.Analysis.Threshold
	}
	if dto.Trace != nil {
		s.Trace = *dto.Trace
	}
}

func (s settings) validate() error {
	switch {
	case s.Rings < 1:
		return fmt.Errorf("%w: rings = %d", errConfig, s.Rings)
	case len(s.Seeds) == 0 && len(s.SeedHexes) == 0 && s.SeedCount < 2:
		return fmt.Errorf("%w: need at least 2 seeds, have %d", errConfig, s.SeedCount)
	case s.Threshold < 0 || s.Threshold > 1:
		return fmt.Errorf("%w: threshold %g not in [0,1]", errConfig, s.Threshold)
	}
	return nil
}
