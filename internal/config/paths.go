package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "QUICK_INIT_CONFIG"

// appDir is the directory created under the user's config directory.
const appDir = "quick-init"

// configFileName is the default config file inside appDir.
const configFileName = "config.toml"

// DefaultPath returns the config file path: $QUICK_INIT_CONFIG if set, otherwise
// config.toml inside the platform's per-user config directory
// (~/.config/quick-init on Linux, ~/Library/Application Support/quick-init on macOS,
// %AppData%\quick-init on Windows).
func DefaultPath() (string, error) {
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		return envPath, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config directory: %w", err)
	}
	return filepath.Join(dir, appDir, configFileName), nil
}
