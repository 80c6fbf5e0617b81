package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the user-level defaults read from ~/.chargify/cfg.toml.
// CLI flags and --config files always win over these values.
type Config struct {
	Subdomain string `toml:"subdomain"`
	APIKey    string `toml:"api_key"`
	SiteKey   string `toml:"site_key"`
	Family    string `toml:"family"`
}

// Load reads config from ~/.chargify/cfg.toml. A missing file is not an
// error; it yields an empty config.
func Load() (*Config, error) {
	path := Path()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Path returns the path to the user config file.
func Path() string {
	return filepath.Join(os.Getenv("HOME"), ".chargify", "cfg.toml")
}
