package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all parameters for a sampling or walk run.
type Config struct {
	Profile    string    `yaml:"profile" json:"profile"`
	Seed       uint64    `yaml:"seed" json:"seed"` // 0 = time-based
	Samples    int       `yaml:"samples" json:"samples"`
	Steps      int       `yaml:"steps" json:"steps"`
	Policy     string    `yaml:"policy" json:"policy"`
	EvalPoints []float64 `yaml:"eval_points" json:"eval_points"`
	Format     string    `yaml:"format" json:"format"` // "text" or "json"
	Verbose    bool      `yaml:"verbose" json:"verbose"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Profile:    "default",
		Seed:       0,
		Samples:    10,
		Steps:      100,
		Policy:     "uniform",
		EvalPoints: []float64{-1, 0, 1},
		Format:     "text",
		Verbose:    false,
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
