package framework

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the run configuration. It may be changed at any point before the
// report is rendered; the runner and reporter read it at each decision point
// rather than snapshotting it.
type Config struct {
	// AllowEmptyTests makes a run with zero executed tests count as a
	// success. By default an empty run fails, because a silently-empty run
	// is indistinguishable from a broken harness.
	AllowEmptyTests bool `yaml:"allowEmptyTests"`

	// ASCIICheckmarks selects [OK]/[FAIL] markers instead of the symbolic
	// checkmarks. On by default for terminal compatibility.
	ASCIICheckmarks bool `yaml:"asciiCheckmarks"`

	// ShowPerformance prints per-test and aggregate elapsed time.
	ShowPerformance bool `yaml:"showPerformance"`

	// Verbose announces each test name before it runs.
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the defaults: ASCII checkmarks and performance
// timing on, verbose mode off, empty runs failing.
func DefaultConfig() Config {
	return Config{
		ASCIICheckmarks: true,
		ShowPerformance: true,
	}
}

// LoadConfigFile reads a YAML run configuration, applying it over the
// defaults so absent keys keep their default values.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), err
	}
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return c, nil
}

func (c Config) successMark() string {
	if c.ASCIICheckmarks {
		return "[OK]"
	}
	return "✓"
}

func (c Config) failMark() string {
	if c.ASCIICheckmarks {
		return "[FAIL]"
	}
	return "✗"
}
