package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds defaults for maze generation and rendering, loaded from a
// TOML file. Command-line flags override config values, which override the
// built-in defaults.
type Config struct {
	Generate GenerateConfig `toml:"generate"`
	Render   RenderConfig   `toml:"render"`
	Cache    CacheConfig    `toml:"cache"`
}

// GenerateConfig holds carving defaults.
type GenerateConfig struct {
	Rows      int    `toml:"rows"`
	Cols      int    `toml:"cols"`
	Algorithm string `toml:"algorithm"`
}

// RenderConfig holds rendering defaults.
type RenderConfig struct {
	CellSize    int    `toml:"cell_size"`
	BorderWidth int    `toml:"border_width"`
	CellWidth   int    `toml:"cell_width"`
	Wall        string `toml:"wall"`
	Background  string `toml:"background"`
}

// CacheConfig holds artifact cache settings.
type CacheConfig struct {
	RedisAddr string `toml:"redis_addr"`
	TTLHours  int    `toml:"ttl_hours"`
}

// defaultConfig returns the built-in defaults used when no config file exists.
func defaultConfig() *Config {
	return &Config{
		Generate: GenerateConfig{
			Rows:      10,
			Cols:      10,
			Algorithm: "backtracker",
		},
	}
}

// LoadConfig reads the first config file found, searching mazekit.toml in
// the working directory, then ~/.config/mazekit/mazekit.toml. Missing files
// and parse errors fall back to the defaults; a broken config should not
// make the CLI unusable.
func LoadConfig() *Config {
	cfg := defaultConfig()
	for _, path := range configPaths() {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return defaultConfig()
		}
		return cfg
	}
	return cfg
}

// configPaths returns candidate config file locations in search order.
func configPaths() []string {
	paths := []string{appName + ".toml"}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return append(paths, filepath.Join(configHome, appName, appName+".toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, appName+".toml"))
	}
	return paths
}
