package newton

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultBufferSize is the default signal history capacity
	DefaultBufferSize = 25
	// DefaultEvasionFactor is the default evasive jump magnitude
	DefaultEvasionFactor = 2.4
	// DefaultDissipationThreshold is the default field dissipation sensitivity
	DefaultDissipationThreshold = 0.6
)

// Config is Engine configuration.
// All tunables are fixed at construction time.
type Config struct {
	// BufferSize is the capacity of the signal history window
	BufferSize int `yaml:"buffer_size"`
	// EvasionFactor scales the evasive jump away from the closest threat
	EvasionFactor float64 `yaml:"evasion_factor"`
	// DissipationThreshold is the field dissipation sensitivity.
	// It is parsed and validated but not applied by the current weighting.
	DissipationThreshold float64 `yaml:"dissipation_threshold"`
}

// DefaultConfig returns Config with default tunables.
func DefaultConfig() Config {
	return Config{
		BufferSize:           DefaultBufferSize,
		EvasionFactor:        DefaultEvasionFactor,
		DissipationThreshold: DefaultDissipationThreshold,
	}
}

// Validate validates the configuration.
// It returns error if either of the tunables is invalid.
func (c Config) Validate() error {
	if c.BufferSize <= 0 {
		return fmt.Errorf("invalid buffer size: %d", c.BufferSize)
	}

	if c.EvasionFactor < 0 {
		return fmt.Errorf("invalid evasion factor: %v", c.EvasionFactor)
	}

	if c.DissipationThreshold < 0 {
		return fmt.Errorf("invalid dissipation threshold: %v", c.DissipationThreshold)
	}

	return nil
}

// LoadConfig reads Config from the YAML file at the given path.
// Tunables missing from the file keep their default values.
// It returns error if the file can not be read, parsed or validated.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %v", path, err)
	}

	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %v", path, err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %v", path, err)
	}

	return c, nil
}
