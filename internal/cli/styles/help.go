package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}

// PopupKeyMap defines keybindings for the filter list.
type PopupKeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Apply        key.Binding
	SetDefault   key.Binding
	ClearDefault key.Binding
	Remove       key.Binding
	Toggle       key.Binding
	Settings     key.Binding
	Websites     key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PopupKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Apply, k.SetDefault, k.Settings, k.Websites, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k PopupKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Apply},
		{k.SetDefault, k.ClearDefault, k.Remove},
		{k.Toggle, k.Settings, k.Websites},
		{k.Help, k.Quit},
	}
}

// DefaultPopupKeyMap returns the default filter list keybindings.
func DefaultPopupKeyMap() PopupKeyMap {
	return PopupKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		SetDefault: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "set default"),
		),
		ClearDefault: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "clear default"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove site filter"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "enable/disable"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Websites: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "websites"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SettingsKeyMap defines keybindings for the settings editor.
type SettingsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Decrease key.Binding
	Increase key.Binding
	Check    key.Binding
	Save     key.Binding
	Back     key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k SettingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Decrease, k.Increase, k.Check, k.Save, k.Back}
}

// FullHelp returns keybindings for expanded help.
func (k SettingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, k.ShortHelp()}
}

// DefaultSettingsKeyMap returns the default settings editor keybindings.
func DefaultSettingsKeyMap() SettingsKeyMap {
	return SettingsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "decrease"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "increase"),
		),
		Check: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		Save: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

// WebsitesKeyMap defines keybindings for the manage-websites view.
type WebsitesKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Search key.Binding
	Delete key.Binding
	Cycle  key.Binding
	Back   key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k WebsitesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Cycle, k.Delete, k.Back}
}

// FullHelp returns keybindings for expanded help.
func (k WebsitesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, k.ShortHelp()}
}

// DefaultWebsitesKeyMap returns the default manage-websites keybindings.
func DefaultWebsitesKeyMap() WebsitesKeyMap {
	return WebsitesKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cycle filter"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}
