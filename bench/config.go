package bench

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Config.Validate and LoadConfig.
var ErrInvalidConfig = errors.New("bench: invalid config")

// Defaults of the initial-solution benchmark.
const (
	DefaultVertices = 10
	DefaultRuns     = 10
	DefaultCycle    = 20
)

// GraphConfig shapes the random network built for every run.
// Zero MaxDegree means Vertices/3 (at least 1); zero MaxWeight means Cycle-1
// (at least MinWeight).
type GraphConfig struct {
	MinDegree int `yaml:"min_degree"`
	MaxDegree int `yaml:"max_degree"`
	MinWeight int `yaml:"min_weight"`
	MaxWeight int `yaml:"max_weight"`
}

// LocalSearchConfig enables an optional refinement phase after construction.
// The search stops after MaxIterations iterations or, when MaxStall > 0,
// after MaxStall consecutive non-improving iterations, whichever comes first.
type LocalSearchConfig struct {
	Enabled       bool `yaml:"enabled"`
	Perturbations int  `yaml:"perturbations"`
	MaxIterations int  `yaml:"max_iterations"`
	MaxStall      int  `yaml:"max_stall"`
}

// Config describes one benchmark experiment.
type Config struct {
	Vertices int   `yaml:"vertices"`
	Runs     int   `yaml:"runs"`
	Cycle    int   `yaml:"cycle"`
	Seed     int64 `yaml:"seed"`     // 0 = pick one at start
	Parallel int   `yaml:"parallel"` // concurrent runs

	TuplesPerIteration int `yaml:"tuples_per_iteration"`

	Graph       GraphConfig       `yaml:"graph"`
	LocalSearch LocalSearchConfig `yaml:"local_search"`
}

// DefaultConfig returns the stock experiment: 10 runs on 10-light networks
// with a 20-tick cycle, no refinement.
func DefaultConfig() Config {
	return Config{
		Vertices:           DefaultVertices,
		Runs:               DefaultRuns,
		Cycle:              DefaultCycle,
		Parallel:           1,
		TuplesPerIteration: 1,
		Graph: GraphConfig{
			MinDegree: 1,
			MinWeight: 1,
		},
		LocalSearch: LocalSearchConfig{
			Perturbations: 5,
			MaxIterations: 1000,
			MaxStall:      100,
		},
	}
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
// Keys absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfig: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("LoadConfig: parse %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}

	return cfg, nil
}

// Validate checks ranges. It does not modify cfg.
func (c Config) Validate() error {
	switch {
	case c.Vertices < 2:
		return fmt.Errorf("vertices=%d, need at least 2: %w", c.Vertices, ErrInvalidConfig)
	case c.Runs < 1:
		return fmt.Errorf("runs=%d: %w", c.Runs, ErrInvalidConfig)
	case c.Cycle < 1:
		return fmt.Errorf("cycle=%d: %w", c.Cycle, ErrInvalidConfig)
	case c.Parallel < 1:
		return fmt.Errorf("parallel=%d: %w", c.Parallel, ErrInvalidConfig)
	case c.TuplesPerIteration < 1:
		return fmt.Errorf("tuples_per_iteration=%d: %w", c.TuplesPerIteration, ErrInvalidConfig)
	}

	minDeg, maxDeg := c.degreeRange()
	if minDeg < 1 || minDeg > maxDeg || maxDeg > c.Vertices-1 {
		return fmt.Errorf("degree range [%d,%d] for %d vertices: %w", minDeg, maxDeg, c.Vertices, ErrInvalidConfig)
	}
	minW, maxW := c.weightRange()
	if minW < 0 || maxW < minW {
		return fmt.Errorf("weight range [%d,%d]: %w", minW, maxW, ErrInvalidConfig)
	}

	if c.LocalSearch.Enabled {
		ls := c.LocalSearch
		if ls.Perturbations < 1 {
			return fmt.Errorf("local_search.perturbations=%d: %w", ls.Perturbations, ErrInvalidConfig)
		}
		if ls.MaxIterations < 1 {
			return fmt.Errorf("local_search.max_iterations=%d: %w", ls.MaxIterations, ErrInvalidConfig)
		}
		if ls.MaxStall < 0 {
			return fmt.Errorf("local_search.max_stall=%d: %w", ls.MaxStall, ErrInvalidConfig)
		}
	}

	return nil
}

// degreeRange resolves the zero-value defaults of GraphConfig.
func (c Config) degreeRange() (int, int) {
	maxDeg := c.Graph.MaxDegree
	if maxDeg == 0 {
		maxDeg = max(1, c.Vertices/3)
	}
	return c.Graph.MinDegree, maxDeg
}

func (c Config) weightRange() (int, int) {
	maxW := c.Graph.MaxWeight
	if maxW == 0 {
		maxW = max(c.Graph.MinWeight, c.Cycle-1)
	}
	return c.Graph.MinWeight, maxW
}
