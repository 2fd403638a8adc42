// Package runconfig loads the optional YAML run-configuration file
// for the two CLIs, following eval_harness/spec.go's LoadSpec shape:
// yaml.Unmarshal followed by explicit required-field validation,
// rather than a generic config framework.
package runconfig

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the optional run-configuration file accepted by
// -config on both cmd/generate-test-code and cmd/evaluate-predictions.
// CLI flags always override a loaded Config's values; zero-valued
// fields here mean "use the flag default", not "force zero".
type Config struct {
	Workers         int     `yaml:"workers"`
	TimeoutSeconds  float64 `yaml:"timeout_seconds"`
	FloatPrecision  float64 `yaml:"float_precision"`
	DoublePrecision float64 `yaml:"double_precision"`
	OutputDir       string  `yaml:"output_dir"`
}

// Timeout returns TimeoutSeconds as a time.Duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds * float64(time.Second))
}

// Load reads and validates a Config from a YAML file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("runconfig: reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("runconfig: parsing %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("runconfig: %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must not be negative, got %v", c.TimeoutSeconds)
	}
	if c.FloatPrecision < 0 || c.DoublePrecision < 0 {
		return fmt.Errorf("precision overrides must not be negative")
	}
	return nil
}
