package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultComposesComponentDefaults(t *testing.T) {
	cfg := Default()

	require.Equal(t, 7, cfg.Behavior.CooldownDays)
	require.NotZero(t, cfg.Decision.HardBlockBand)
	require.NotZero(t, cfg.Attention.HistoryCap)
	require.Equal(t, 25, cfg.Habit.QualifyingMinutes)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverridesOnlyNamedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
habit:
  qualifying_minutes: 40
strict: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 40, cfg.Habit.QualifyingMinutes)
	require.True(t, cfg.Strict)
	// Untouched sections keep defaults.
	require.Equal(t, Default().Decision, cfg.Decision)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedYAMLErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("behavior: [not a map"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvOr(t *testing.T) {
	t.Setenv("FOCUSLOOP_TEST_KEY", "set")
	require.Equal(t, "set", EnvOr("FOCUSLOOP_TEST_KEY", "fallback"))
	require.Equal(t, "fallback", EnvOr("FOCUSLOOP_UNSET_KEY", "fallback"))
}
