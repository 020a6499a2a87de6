package allocator

import (
	"fmt"

	"github.com/talentgrid/allocator/service/coordinator"
	"github.com/talentgrid/allocator/service/engine"
)

// Config is a serialisable representation of the allocator configuration. It
// can be populated from JSON or YAML; the zero value is useful, all nested
// fields inherit their package defaults.

type Config struct {
	Engine      EngineConfig      `json:"engine" yaml:"engine"`
	Coordinator CoordinatorConfig `json:"coordinator" yaml:"coordinator"`
}

type EngineConfig struct {
	// DisplayCap bounds the ranked candidate list; zero inherits the package
	// default, negative disables capping.
	DisplayCap int `json:"displayCap,omitempty" yaml:"displayCap,omitempty"`
}

type CoordinatorConfig struct {
	Retry coordinator.Retry `json:"retry" yaml:"retry"`
}

// DefaultConfig returns a Config populated with the same defaults the
// constructors use. Callers may modify the returned struct before passing it
// to New via WithConfig.
func DefaultConfig() *Config {
	return &Config{
		Engine:      EngineConfig{DisplayCap: engine.DefaultDisplayCap},
		Coordinator: CoordinatorConfig{Retry: *coordinator.DefaultRetry()},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Coordinator.Retry.MaxRetries < 0 {
		return fmt.Errorf("coordinator.retry.maxRetries must be >= 0")
	}
	if c.Coordinator.Retry.Delay < 0 {
		return fmt.Errorf("coordinator.retry.delay must be >= 0")
	}
	switch c.Coordinator.Retry.Type {
	case "", coordinator.RetryNone, coordinator.RetryFixed, coordinator.RetryExponential:
	default:
		return fmt.Errorf("coordinator.retry.type: unknown type %q", c.Coordinator.Retry.Type)
	}
	return nil
}
