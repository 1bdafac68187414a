package session

import (
	"fmt"

	"github.com/tailored-agentic-units/coagent/observability"
)

// Config holds session controller parameters.
type Config struct {
	// Observer names a registered observer for session diagnostics. Empty
	// inherits the caller's observer.
	Observer string `json:"observer,omitempty"`
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Observer != "" {
		c.Observer = source.Observer
	}
}

// ResolveObserver returns the observer named by the config, or fallback when
// the config names none.
func (c *Config) ResolveObserver(fallback observability.Observer) (observability.Observer, error) {
	if c.Observer == "" {
		return observability.OrNoOp(fallback), nil
	}
	obs, err := observability.GetObserver(c.Observer)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session observer: %w", err)
	}
	return obs, nil
}
