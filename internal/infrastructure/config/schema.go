package config

// Config represents the complete configuration for shades.
type Config struct {
	// Logging controls log verbosity and output format.
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	// Storage selects where filter settings are persisted.
	Storage StorageConfig `mapstructure:"storage" toml:"storage" json:"storage"`
	// Browser controls the Chromium instance driven by `shades browse`.
	Browser BrowserConfig `mapstructure:"browser" toml:"browser" json:"browser"`
	// Keybindings maps page shortcuts to commands.
	Keybindings KeybindingsConfig `mapstructure:"keybindings" toml:"keybindings" json:"keybindings"`
	// Appearance styles the terminal interface.
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// StorageBackend selects the key-value store implementation.
type StorageBackend string

const (
	// StorageSQLite is shared by every shades process on the machine.
	StorageSQLite StorageBackend = "sqlite"
	// StoragePebble is a single-process store.
	StoragePebble StorageBackend = "pebble"
)

// StorageConfig holds settings store options.
type StorageConfig struct {
	Backend StorageBackend `mapstructure:"backend" toml:"backend" json:"backend" jsonschema:"enum=sqlite,enum=pebble"`
	// Path is the database file (sqlite) or directory (pebble). Empty uses the XDG data dir.
	Path string `mapstructure:"path" toml:"path" json:"path,omitempty"`
	// PollIntervalMs is how often the sqlite changelog is checked for writes from other processes.
	PollIntervalMs int `mapstructure:"poll_interval_ms" toml:"poll_interval_ms" json:"poll_interval_ms" jsonschema:"minimum=10"`
}

// BrowserConfig controls the browser host.
type BrowserConfig struct {
	Headless bool `mapstructure:"headless" toml:"headless" json:"headless"`
	// RemoteURL attaches to an already running browser (DevTools websocket URL)
	// instead of launching one.
	RemoteURL string `mapstructure:"remote_url" toml:"remote_url" json:"remote_url,omitempty"`
	// Bin overrides the browser executable used when launching.
	Bin string `mapstructure:"bin" toml:"bin" json:"bin,omitempty"`
	// StartURLs are opened when browse starts without arguments.
	StartURLs []string `mapstructure:"start_urls" toml:"start_urls" json:"start_urls"`
	// RestrictedSchemes lists URL prefixes where no filter is ever pushed.
	RestrictedSchemes []string `mapstructure:"restricted_schemes" toml:"restricted_schemes" json:"restricted_schemes"`
}

// KeybindingsConfig holds page shortcut accelerators such as "alt+shift+f".
type KeybindingsConfig struct {
	ToggleExtension string `mapstructure:"toggle_extension" toml:"toggle_extension" json:"toggle_extension"`
	ToggleFilter    string `mapstructure:"toggle_filter" toml:"toggle_filter" json:"toggle_filter"`
	ToggleInvert    string `mapstructure:"toggle_invert" toml:"toggle_invert" json:"toggle_invert"`
	// InvertFilter is the filter toggled by toggle_invert.
	InvertFilter string `mapstructure:"invert_filter" toml:"invert_filter" json:"invert_filter"`
}

// AppearanceConfig styles the TUI.
type AppearanceConfig struct {
	// Accent is a hex color used for highlights.
	Accent string `mapstructure:"accent" toml:"accent" json:"accent" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
}
