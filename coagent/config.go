package coagent

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailored-agentic-units/coagent/session"
)

// Config holds Runtime initialization parameters.
type Config struct {
	// Observer names a registered observer ("noop", "slog", or custom).
	Observer string         `json:"observer,omitempty"`
	Session  session.Config `json:"session"`
}

// DefaultConfig logs through slog and lets sessions share that observer.
func DefaultConfig() Config {
	return Config{
		Observer: "slog",
		Session:  session.DefaultConfig(),
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Observer != "" {
		c.Observer = source.Observer
	}
	c.Session.Merge(&source.Session)
}

// LoadConfig reads a JSON config file and merges it over DefaultConfig.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
