package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfig(t *testing.T) func() {
	// save original values
	origConfigDir := configDir
	origConfigFile := configFile

	// create temp directory
	tmpDir, err := os.MkdirTemp("", "plotthemes_config_test_*")
	require.NoError(t, err)

	configDir = tmpDir
	configFile = filepath.Join(tmpDir, "config.yaml")

	return func() {
		os.RemoveAll(tmpDir)
		configDir = origConfigDir
		configFile = origConfigFile
	}
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "", cfg.ThemeName) // empty until set
	assert.Equal(t, filepath.Join(configDir, "themes"), cfg.ThemesDir)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_Default(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	// should return default values when no config file exists
	assert.Equal(t, "", cfg.ThemeName)
	assert.Equal(t, filepath.Join(configDir, "themes"), cfg.ThemesDir)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, ConfigExists())
}

func TestSaveAndLoadConfig(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	// create config
	cfg := &Config{
		ThemeName: "mpl-themes-blue",
		ThemesDir: filepath.Join(configDir, "mine"),
		LogLevel:  "debug",
	}

	err := SaveConfig(cfg)
	require.NoError(t, err)
	assert.True(t, ConfigExists())

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, cfg.ThemeName, loaded.ThemeName)
	assert.Equal(t, cfg.ThemesDir, loaded.ThemesDir)
	assert.Equal(t, cfg.LogLevel, loaded.LogLevel)
}

func TestSaveConfig_CreatesDirectory(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	// remove the config directory
	os.RemoveAll(configDir)

	cfg := GetDefaultConfig()
	err := SaveConfig(cfg)
	require.NoError(t, err)

	// verify directory was created
	info, err := os.Stat(configDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestUpdateTheme(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	// save initial config
	cfg := GetDefaultConfig()
	cfg.LogLevel = "info"
	err := SaveConfig(cfg)
	require.NoError(t, err)

	// update theme
	err = UpdateTheme("mpl-themes-green")
	require.NoError(t, err)

	// verify update, other fields kept
	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "mpl-themes-green", loaded.ThemeName)
	assert.Equal(t, "info", loaded.LogLevel)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	require.NoError(t, SaveConfig(&Config{ThemeName: "mpl-themes-blue", LogLevel: "warn"}))
	t.Setenv("PLOTTHEMES_THEME_NAME", "mpl-themes-green")
	t.Setenv("PLOTTHEMES_LOG_LEVEL", "debug")

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "mpl-themes-green", loaded.ThemeName)
	assert.Equal(t, "debug", loaded.LogLevel)
}

func TestLoadConfig_EmptyFieldsGetDefaults(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	require.NoError(t, SaveConfig(&Config{ThemeName: "mpl-themes-blue"}))

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(configDir, "themes"), loaded.ThemesDir)
	assert.Equal(t, "warn", loaded.LogLevel)
}
