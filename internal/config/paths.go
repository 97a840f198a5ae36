package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for sprout.
type Paths struct {
	// ConfigFile is the path to the config file (~/.sprout/config.yaml).
	ConfigFile string

	// HomeDir is the sprout home directory (~/.sprout).
	HomeDir string
}

// DefaultPaths returns the default paths for sprout.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	sproutHome := filepath.Join(homeDir, ".sprout")

	return &Paths{
		ConfigFile: filepath.Join(sproutHome, "config.yaml"),
		HomeDir:    sproutHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If SPROUT_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("SPROUT_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// EnsureHomeDir creates the sprout home directory if it doesn't exist.
func EnsureHomeDir() (string, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.HomeDir, os.MkdirAll(paths.HomeDir, 0o755)
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username form is not supported, return as-is
	return path, nil
}
