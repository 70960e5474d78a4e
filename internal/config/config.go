package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is the application config file. Command-line flags take precedence.
type Config struct {
	Vault   string `toml:"vault"`   // vault directory
	Storage string `toml:"storage"` // data.json path, .db path or "postgres"
	Debug   bool   `toml:"debug"`
}

// LoadOrCreate reads the config at path, writing an empty one if it is missing.
func LoadOrCreate(path string) (Config, error) {
	cfg := Config{}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.Vault = ExpandHome(cfg.Vault)
	cfg.Storage = ExpandHome(cfg.Storage)
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ExpandHome replaces a leading "~" with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
