package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig_CollectsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"
	cfg.Storage.Backend = "redis"
	cfg.Storage.PollIntervalMs = 1
	cfg.Browser.RemoteURL = "not a url"
	cfg.Keybindings.ToggleFilter = "shift+f"
	cfg.Keybindings.InvertFilter = "sepia"

	err := validateConfig(cfg)
	require.Error(t, err)
	for _, field := range []string{
		"logging.level",
		"storage.backend",
		"storage.poll_interval_ms",
		"browser.remote_url",
		"keybindings.toggle_filter",
		"keybindings.invert_filter",
	} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestValidateKeybindings_Duplicate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keybindings.ToggleInvert = "shift+alt+f"

	errs := validateKeybindings(cfg)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "alt+shift+f")
}

func TestValidateKeybindings_EmptyDisablesShortcut(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keybindings.ToggleExtension = ""
	assert.Empty(t, validateKeybindings(cfg))
}
