package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	path      string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager reading
// $XDG_CONFIG_HOME/shades/config.toml and SHADES_* environment variables.
func NewManager() (*Manager, error) {
	path, err := GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config file: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	// SHADES_STORAGE_BACKEND, SHADES_BROWSER_HEADLESS, ...
	v.SetEnvPrefix("SHADES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shorter names shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", "SHADES_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind SHADES_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "SHADES_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind SHADES_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		path:      path,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Path returns the configuration file path.
func (m *Manager) Path() string {
	return m.path
}

// Load loads the configuration from file and environment variables.
// A missing file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.build()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.path, err)
	}

	if err := m.createDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create default config at %s: %w", m.path, err)
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read newly created config file: %w", err)
	}
	return nil
}

func (m *Manager) createDefaultConfig() error {
	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), m.path); err != nil {
		return err
	}
	return WriteSchemaFile(dir)
}

// build unmarshals, fills derived values, normalizes and validates.
// Must be called with the lock held.
func (m *Manager) build() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches", m.path, err)
	}

	normalizeConfig(config)

	if err := ensureStoragePath(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func ensureStoragePath(config *Config) error {
	if config.Storage.Path != "" {
		return nil
	}
	path, err := GetStoragePath(config.Storage.Backend)
	if err != nil {
		return fmt.Errorf("failed to get storage path: %w", err)
	}
	config.Storage.Path = path
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "warning" {
		config.Logging.Level = "warn"
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = "console"
	}

	switch StorageBackend(strings.ToLower(string(config.Storage.Backend))) {
	case StoragePebble:
		config.Storage.Backend = StoragePebble
	case "", StorageSQLite:
		config.Storage.Backend = StorageSQLite
	}
	if config.Storage.PollIntervalMs == 0 {
		config.Storage.PollIntervalMs = defaultPollIntervalMs
	}

	kb := &config.Keybindings
	kb.ToggleExtension = strings.ToLower(strings.TrimSpace(kb.ToggleExtension))
	kb.ToggleFilter = strings.ToLower(strings.TrimSpace(kb.ToggleFilter))
	kb.ToggleInvert = strings.ToLower(strings.TrimSpace(kb.ToggleInvert))
	kb.InvertFilter = strings.TrimSpace(kb.InvertFilter)

	config.Browser.RemoteURL = strings.TrimSpace(config.Browser.RemoteURL)
	if config.Browser.StartURLs == nil {
		config.Browser.StartURLs = []string{}
	}
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Browser.StartURLs = append([]string(nil), m.config.Browser.StartURLs...)
	configCopy.Browser.RestrictedSchemes = append([]string(nil), m.config.Browser.RestrictedSchemes...)
	return &configCopy
}

// Save validates cfg and writes it to the config file.
// A running Watch picks the change up through fsnotify.
func (m *Manager) Save(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := WriteConfigOrdered(cfg, m.path); err != nil {
		return err
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to re-read config after save: %w", err)
	}
	config, err := m.build()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()
	m.setLoggingDefaults(defaults)
	m.setStorageDefaults(defaults)
	m.setBrowserDefaults(defaults)
	m.setKeybindingDefaults(defaults)
	m.viper.SetDefault("appearance.accent", defaults.Appearance.Accent)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

func (m *Manager) setStorageDefaults(defaults *Config) {
	m.viper.SetDefault("storage.backend", string(defaults.Storage.Backend))
	m.viper.SetDefault("storage.path", defaults.Storage.Path)
	m.viper.SetDefault("storage.poll_interval_ms", defaults.Storage.PollIntervalMs)
}

func (m *Manager) setBrowserDefaults(defaults *Config) {
	m.viper.SetDefault("browser.headless", defaults.Browser.Headless)
	m.viper.SetDefault("browser.remote_url", defaults.Browser.RemoteURL)
	m.viper.SetDefault("browser.bin", defaults.Browser.Bin)
	m.viper.SetDefault("browser.start_urls", defaults.Browser.StartURLs)
	m.viper.SetDefault("browser.restricted_schemes", defaults.Browser.RestrictedSchemes)
}

func (m *Manager) setKeybindingDefaults(defaults *Config) {
	m.viper.SetDefault("keybindings.toggle_extension", defaults.Keybindings.ToggleExtension)
	m.viper.SetDefault("keybindings.toggle_filter", defaults.Keybindings.ToggleFilter)
	m.viper.SetDefault("keybindings.toggle_invert", defaults.Keybindings.ToggleInvert)
	m.viper.SetDefault("keybindings.invert_filter", defaults.Keybindings.InvertFilter)
}
