package config

import (
	"github.com/bnema/shades/internal/domain/entity"
	domainurl "github.com/bnema/shades/internal/domain/url"
)

const (
	defaultPollIntervalMs = 500
	defaultAccent         = "#e06c9f"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Storage: StorageConfig{
			Backend:        StorageSQLite,
			PollIntervalMs: defaultPollIntervalMs,
		},
		Browser: BrowserConfig{
			Headless:          false,
			StartURLs:         []string{},
			RestrictedSchemes: append([]string(nil), domainurl.DefaultRestrictedSchemes...),
		},
		Keybindings: KeybindingsConfig{
			ToggleExtension: "alt+shift+e",
			ToggleFilter:    "alt+shift+f",
			ToggleInvert:    "alt+shift+i",
			InvertFilter:    string(entity.FilterSolarEclipse),
		},
		Appearance: AppearanceConfig{
			Accent: defaultAccent,
		},
	}
}
