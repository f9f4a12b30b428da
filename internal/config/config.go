package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	EnvPrefix = "PLOTTHEMES"

	keyThemeName = "theme_name"
	keyThemesDir = "themes_dir"
	keyLogLevel  = "log_level"

	defaultLogLevel = "warn"
)

type Config struct {
	ThemeName string `mapstructure:"theme_name"`
	ThemesDir string `mapstructure:"themes_dir"`
	LogLevel  string `mapstructure:"log_level"`
}

var (
	configDir  string
	configFile string
)

func init() {
	// get home dir
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}

	configDir = filepath.Join(homeDir, ".plotthemes")
	configFile = filepath.Join(configDir, "config.yaml")
}

func GetConfigDir() string {
	return configDir
}

func GetConfigFile() string {
	return configFile
}

func ConfigExists() bool {
	_, err := os.Stat(configFile)
	return err == nil
}

func EnsureConfigDir() error {
	return os.MkdirAll(configDir, 0755)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")

	def := GetDefaultConfig()
	v.SetDefault(keyThemeName, def.ThemeName)
	v.SetDefault(keyThemesDir, def.ThemesDir)
	v.SetDefault(keyLogLevel, def.LogLevel)

	// PLOTTHEMES_THEME_NAME etc. override the file
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// loads config from file, then environment
func LoadConfig() (*Config, error) {
	v := newViper()

	if ConfigExists() {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.ThemesDir == "" {
		cfg.ThemesDir = filepath.Join(configDir, "themes")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	return &cfg, nil
}

// saves config to file
func SaveConfig(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set(keyThemeName, cfg.ThemeName)
	v.Set(keyThemesDir, cfg.ThemesDir)
	v.Set(keyLogLevel, cfg.LogLevel)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// returns default config
func GetDefaultConfig() *Config {
	return &Config{
		ThemeName: "",
		ThemesDir: filepath.Join(configDir, "themes"),
		LogLevel:  defaultLogLevel,
	}
}

// updates theme in config file
func UpdateTheme(themeName string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ThemeName = themeName
	return SaveConfig(cfg)
}
