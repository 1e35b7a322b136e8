package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnginesConfig represents the overall configuration for all engines.
type EnginesConfig struct {
	DefaultEngine string                  `yaml:"default_engine"`
	Engines       map[string]EngineConfig `yaml:"engines"`
}

// EngineConfig represents configuration for a single engine.
type EngineConfig struct {
	Type     string         `yaml:"type"`
	Enabled  bool           `yaml:"enabled"`
	Settings EngineSettings `yaml:"settings,omitempty"`
}

// EngineSettings carries the engine-specific knobs. Unused fields are left
// at their zero value and the engine applies its own defaults.
type EngineSettings struct {
	BaseURL    string        `yaml:"base_url,omitempty"`
	Language   string        `yaml:"language,omitempty"`
	BatchSize  int           `yaml:"batch_size,omitempty"`
	TimeoutSec int           `yaml:"timeout_sec,omitempty"`
	Model      string        `yaml:"model,omitempty"`
	timeout    time.Duration // derived
}

// Timeout returns the configured request timeout, or zero when unset.
func (s EngineSettings) Timeout() time.Duration {
	return s.timeout
}

// LoadEnginesConfig loads engine configuration from a YAML file.
func LoadEnginesConfig(configPath string) (*EnginesConfig, error) {
	// Expand environment variables in path
	configPath = os.ExpandEnv(configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config EnginesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config.setDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func (c *EnginesConfig) setDefaults() {
	if c.DefaultEngine == "" && len(c.Engines) == 1 {
		for name := range c.Engines {
			c.DefaultEngine = name
		}
	}
	for name, engine := range c.Engines {
		if engine.Type == "" {
			engine.Type = name
		}
		if engine.Settings.TimeoutSec > 0 {
			engine.Settings.timeout = time.Duration(engine.Settings.TimeoutSec) * time.Second
		}
		c.Engines[name] = engine
	}
}

// Validate checks the configuration for internal consistency.
func (c *EnginesConfig) Validate() error {
	if len(c.Engines) == 0 {
		return fmt.Errorf("no engines configured")
	}
	if c.DefaultEngine == "" {
		return fmt.Errorf("default_engine is required when more than one engine is configured")
	}
	engine, ok := c.Engines[c.DefaultEngine]
	if !ok {
		return fmt.Errorf("default_engine %q is not configured", c.DefaultEngine)
	}
	if !engine.Enabled {
		return fmt.Errorf("default_engine %q is disabled", c.DefaultEngine)
	}
	return nil
}
