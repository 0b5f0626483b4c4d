package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/bnema/shades/internal/domain/entity"
	"github.com/bnema/shades/internal/domain/shortcut"
	"github.com/bnema/shades/internal/logging"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// validateConfig collects every problem so the user can fix them in one pass.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateStorage(config)...)
	validationErrors = append(validationErrors, validateBrowser(config)...)
	validationErrors = append(validationErrors, validateKeybindings(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, ok := logging.LookupLevel(config.Logging.Level); !ok {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level %q must be one of trace, debug, info, warn, error, disabled", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format %q must be console or json", config.Logging.Format))
	}
	return validationErrors
}

func validateStorage(config *Config) []string {
	var validationErrors []string
	switch config.Storage.Backend {
	case StorageSQLite, StoragePebble:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("storage.backend %q must be sqlite or pebble", config.Storage.Backend))
	}
	if config.Storage.PollIntervalMs < 10 {
		validationErrors = append(validationErrors, "storage.poll_interval_ms must be at least 10")
	}
	return validationErrors
}

func validateBrowser(config *Config) []string {
	var validationErrors []string
	if config.Browser.RemoteURL != "" {
		u, err := url.Parse(config.Browser.RemoteURL)
		if err != nil || u.Host == "" {
			validationErrors = append(validationErrors,
				fmt.Sprintf("browser.remote_url %q must be an absolute URL", config.Browser.RemoteURL))
		}
	}
	for _, scheme := range config.Browser.RestrictedSchemes {
		if strings.TrimSpace(scheme) == "" {
			validationErrors = append(validationErrors, "browser.restricted_schemes must not contain empty entries")
			break
		}
	}
	return validationErrors
}

func validateKeybindings(config *Config) []string {
	var validationErrors []string
	seen := make(map[string]string, 3)
	for name, accel := range map[string]string{
		"toggle_extension": config.Keybindings.ToggleExtension,
		"toggle_filter":    config.Keybindings.ToggleFilter,
		"toggle_invert":    config.Keybindings.ToggleInvert,
	} {
		if accel == "" {
			continue
		}
		acc, err := shortcut.Parse(accel)
		if err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("keybindings.%s: %v", name, err))
			continue
		}
		if other, dup := seen[acc.String()]; dup {
			validationErrors = append(validationErrors,
				fmt.Sprintf("keybindings.%s and keybindings.%s both use %s", other, name, acc))
		}
		seen[acc.String()] = name
	}

	if config.Keybindings.InvertFilter != "" {
		if _, ok := entity.LookupFilter(entity.FilterID(config.Keybindings.InvertFilter)); !ok {
			validationErrors = append(validationErrors,
				fmt.Sprintf("keybindings.invert_filter %q is not a known filter", config.Keybindings.InvertFilter))
		}
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	if !hexColor.MatchString(config.Appearance.Accent) {
		return []string{fmt.Sprintf("appearance.accent %q must be a #rrggbb color", config.Appearance.Accent)}
	}
	return nil
}
