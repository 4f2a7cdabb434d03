package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"quick-init/internal/logger"
)

// ErrInvalidConfig is wrapped by every error caused by a config file that exists
// but cannot be read or parsed. Such a file is never overwritten.
var ErrInvalidConfig = errors.New("invalid configuration")

// LoadOrInit reads the config file at path.
// If the file does not exist, the default configuration is written there
// (creating parent directories) and returned.
// If the file exists but cannot be read or parsed, an error wrapping
// ErrInvalidConfig is returned and the file is left untouched.
func LoadOrInit(path string) (*Config, error) {
	f, err := formatFor(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info("[INFO] No config file found, creating default config at %s\n", path)
		cfg := Default()
		if err := Save(path, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrInvalidConfig, path, err)
	}

	var cfg Config
	unknown, err := decode(f, raw, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrInvalidConfig, path, err)
	}
	for _, key := range unknown {
		logger.Warn("[WARN] Ignoring unknown config key %q in %s\n", key, path)
	}

	logger.Debug("[DEBUG] Loaded config from %s: %+v\n", path, cfg)
	return &cfg, nil
}

// Save writes cfg to path in the format implied by its extension,
// creating any missing parent directories.
func Save(path string, cfg *Config) error {
	data, err := Marshal(path, cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	logger.Debug("[DEBUG] Writing config to %s:\n%s\n", path, string(data))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}
