package config

// #region imports
import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/haldenlab/focusloop/go-engine/internal/attention"
	"github.com/haldenlab/focusloop/go-engine/internal/behavior"
	"github.com/haldenlab/focusloop/go-engine/internal/decision"
	"github.com/haldenlab/focusloop/go-engine/internal/habit"
)

// #endregion

// #region engine-config

// EngineConfig bundles every component's tuning constants. Thresholds here
// are hand-tuned heuristics, not invariants — operators may override any of
// them from a YAML file.
type EngineConfig struct {
	Behavior  behavior.Config  `yaml:"behavior"`
	Decision  decision.Config  `yaml:"decision"`
	Attention attention.Config `yaml:"attention"`
	Habit     habit.Config     `yaml:"habit"`

	// Strict promotes invariant violations from clamp-and-log to panic.
	// Meant for development; leave off in production.
	Strict bool `yaml:"strict"`
}

// Default composes every component's defaults. Strict mode follows the
// ENGINE_STRICT environment variable.
func Default() EngineConfig {
	return EngineConfig{
		Behavior:  behavior.DefaultConfig(),
		Decision:  decision.DefaultConfig(),
		Attention: attention.DefaultConfig(),
		Habit:     habit.DefaultConfig(),
		Strict:    os.Getenv("ENGINE_STRICT") == "true",
	}
}

// #endregion

// #region load

// Load reads a YAML tuning file over the defaults. A missing path returns
// the defaults unchanged.
func Load(path string) (EngineConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return EngineConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EngineConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// #endregion

// #region env

// EnvOr returns the environment variable's value, or fallback when unset.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion
