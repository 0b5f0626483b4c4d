package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateXDG points every XDG directory into a temp dir.
func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))
	return root
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "sqlite", mgr.viper.GetString("storage.backend"))
	assert.Equal(t, 500, mgr.viper.GetInt("storage.poll_interval_ms"))
	assert.Equal(t, "alt+shift+f", mgr.viper.GetString("keybindings.toggle_filter"))
	assert.Equal(t, "solar-eclipse", mgr.viper.GetString("keybindings.invert_filter"))
	assert.Contains(t, mgr.viper.GetStringSlice("browser.restricted_schemes"), "chrome://")
}

func TestLoad_CreatesDefaultConfig(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, filepath.Join(root, "config", "shades", "config.toml"), mgr.Path())
	assert.FileExists(t, mgr.Path())
	assert.FileExists(t, filepath.Join(root, "config", "shades", SchemaFileName))

	cfg := mgr.Get()
	assert.Equal(t, StorageSQLite, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(root, "data", "shades", "shades.sqlite"), cfg.Storage.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.DirExists(t, filepath.Join(root, "state", "shades"))
}

func TestLoad_ReadsFileAndEnv(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "config", "shades")
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[storage]
backend = "PEBBLE"

[keybindings]
toggle_filter = " Ctrl+Shift+Y "
`), filePerm))
	t.Setenv("SHADES_LOG_LEVEL", "debug")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, StoragePebble, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(root, "data", "shades", "pebble"), cfg.Storage.Path)
	assert.Equal(t, "ctrl+shift+y", cfg.Keybindings.ToggleFilter)
	assert.Equal(t, "alt+shift+e", cfg.Keybindings.ToggleExtension)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_RejectsInvalidFile(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "config", "shades")
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[appearance]
accent = "pink"
`), filePerm))

	mgr, err := NewManager()
	require.NoError(t, err)
	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "appearance.accent")
}

func TestSave_RoundTrip(t *testing.T) {
	isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Appearance.Accent = "#336699"
	cfg.Browser.StartURLs = []string{"https://example.com"}
	require.NoError(t, mgr.Save(cfg))

	reloaded, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, "#336699", reloaded.Get().Appearance.Accent)
	assert.Equal(t, []string{"https://example.com"}, reloaded.Get().Browser.StartURLs)

	bad := mgr.Get()
	bad.Storage.Backend = "redis"
	assert.Error(t, mgr.Save(bad))
	assert.Equal(t, StorageSQLite, mgr.Get().Storage.Backend)
}

func TestGet_ReturnsCopy(t *testing.T) {
	mgr := &Manager{config: DefaultConfig()}
	cfg := mgr.Get()
	cfg.Browser.RestrictedSchemes[0] = "mutated"
	assert.NotEqual(t, "mutated", mgr.Get().Browser.RestrictedSchemes[0])
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = " WARNING "
	cfg.Logging.Format = ""
	cfg.Storage.Backend = ""
	cfg.Storage.PollIntervalMs = 0
	cfg.Browser.StartURLs = nil

	normalizeConfig(cfg)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, StorageSQLite, cfg.Storage.Backend)
	assert.Equal(t, defaultPollIntervalMs, cfg.Storage.PollIntervalMs)
	assert.NotNil(t, cfg.Browser.StartURLs)
}
