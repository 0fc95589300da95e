package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config path constants used by the CLI and loaders.
const (
	ConfigDirName  = ".prepdeck"
	ConfigFileName = "config.yml"
	appDirName     = "prepdeck"
)

// ConfigPath returns the full config file path under a root directory.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigDirName, ConfigFileName)
}

// DefaultStateDir returns the per-user state directory. It falls back to a
// hidden directory in the working directory when the user config dir is
// unknown.
func DefaultStateDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ConfigDirName
	}
	return filepath.Join(base, appDirName)
}

// FindConfigPath searches upward from a directory for a config file. It
// returns os.ErrNotExist wrapped in the error when no config exists, which
// callers treat as "run with defaults".
func FindConfigPath(startDir string) (string, error) {
	dir := strings.TrimSpace(startDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	dir = abs

	for {
		configPath := filepath.Join(dir, ConfigDirName, ConfigFileName)
		info, err := os.Stat(configPath)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("config path %q is a directory", configPath)
			}
			return configPath, nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat config path %q: %w", configPath, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found in %s or parent directories: %w",
				filepath.Join(ConfigDirName, ConfigFileName), abs, os.ErrNotExist)
		}
		dir = parent
	}
}
