package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadUserConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadUserConfig(filepath.Join(t.TempDir(), ".vitrine", "config.json"))
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Theme)
	assert.True(t, cfg.WatchEnabled())
	assert.False(t, cfg.ReducedMotion)
}

func TestLoadUserConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"dark","reduced_motion":true,"watch":false}`), 0o644))

	cfg, err := LoadUserConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.True(t, cfg.ReducedMotion)
	assert.False(t, cfg.WatchEnabled())
}

func TestLoadUserConfigRejectsBadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"sepia"}`), 0o644))

	_, err := LoadUserConfig(path)
	assert.Error(t, err)
}

func TestLoadUserConfigRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{theme:`), 0o644))

	_, err := LoadUserConfig(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("VITRINE_DARK_MODE", "1")
	t.Setenv("VITRINE_REDUCED_MOTION", "1")
	t.Setenv("VITRINE_NO_WATCH", "1")

	cfg, err := LoadUserConfig(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.True(t, cfg.ReducedMotion)
	assert.False(t, cfg.WatchEnabled())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".vitrine", "config.json")
	cfg := DefaultUserConfig()
	cfg.Theme = "light"
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadUserConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "light", loaded.Theme)
}
