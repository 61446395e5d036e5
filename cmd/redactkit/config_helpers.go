package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/suryansh-23/redactkit/internal/config"
)

// configEnv names the environment variable that points at a config file.
const configEnv = "REDACTKIT_CONFIG"

// resolveConfigPath picks the config file location. The --config flag wins
// over $REDACTKIT_CONFIG, which wins over the per-user default. A leading
// "~/" is expanded against the home directory.
func resolveConfigPath(flagValue string) (string, error) {
	for _, candidate := range []string{flagValue, os.Getenv(configEnv)} {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		return expandHome(candidate)
	}
	path, err := config.DefaultPath()
	if err != nil {
		return "", fmt.Errorf("locate default config (set --config or $%s): %w", configEnv, err)
	}
	return path, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// configFileExists reports whether path names a regular file.
func configFileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
