package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "shades"
	databaseName = "shades.sqlite"
	pebbleDir    = "pebble"
	lockName     = "browse.lock"
	profileDir   = "profile"

	dirPerm  = 0o755
	filePerm = 0o644
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
	CacheHome  string
}

// GetXDGDirs returns the XDG Base Directory paths for shades:
// - $XDG_CONFIG_HOME/shades (default: ~/.config/shades)
// - $XDG_DATA_HOME/shades (default: ~/.local/share/shades)
// - $XDG_STATE_HOME/shades (default: ~/.local/state/shades)
// - $XDG_CACHE_HOME/shades (default: ~/.cache/shades)
func GetXDGDirs() (*XDGDirs, error) {
	// Development mode keeps everything under ./.dev
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{
			ConfigHome: devDir,
			DataHome:   devDir,
			StateHome:  devDir,
			CacheHome:  devDir,
		}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return &XDGDirs{
		ConfigHome: xdgDir("XDG_CONFIG_HOME", homeDir, ".config"),
		DataHome:   xdgDir("XDG_DATA_HOME", homeDir, ".local", "share"),
		StateHome:  xdgDir("XDG_STATE_HOME", homeDir, ".local", "state"),
		CacheHome:  xdgDir("XDG_CACHE_HOME", homeDir, ".cache"),
	}, nil
}

func xdgDir(env, home string, fallback ...string) string {
	base := os.Getenv(env)
	if base == "" {
		base = filepath.Join(append([]string{home}, fallback...)...)
	}
	return filepath.Join(base, appName)
}

// GetConfigDir returns the XDG config directory for shades.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// GetStoragePath returns the default store location for backend.
func GetStoragePath(backend StorageBackend) (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	if backend == StoragePebble {
		return filepath.Join(dirs.DataHome, pebbleDir), nil
	}
	return filepath.Join(dirs.DataHome, databaseName), nil
}

// GetLockFile returns the single-instance lock used by browse.
func GetLockFile() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.StateHome, lockName), nil
}

// GetProfileDir returns the browser profile directory used by browse.
func GetProfileDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.DataHome, profileDir), nil
}

// EnsureDirectories creates the XDG directories if they don't exist.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return err
	}

	for _, dir := range []string{dirs.ConfigHome, dirs.DataHome, dirs.StateHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	return nil
}
