// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/shades/internal/infrastructure/config"
)

const defaultAccent = "#e06c9f"

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	// Pre-built styles
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
	ListItemDesc     lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	Box       lipgloss.Style
	BoxHeader lipgloss.Style
}

// NewTheme creates a dark Theme using the configured accent color.
func NewTheme(cfg *config.Config) *Theme {
	accent := defaultAccent
	if cfg != nil && cfg.Appearance.Accent != "" {
		accent = cfg.Appearance.Accent
	}
	return NewThemeWithAccent(accent)
}

// NewThemeWithAccent creates the dark Theme around accent.
func NewThemeWithAccent(accent string) *Theme {
	t := &Theme{
		Background:     lipgloss.Color("#0a0a0b"),
		Surface:        lipgloss.Color("#1a1a1b"),
		SurfaceVariant: lipgloss.Color("#2d2d2d"),
		Text:           lipgloss.Color("#ffffff"),
		Muted:          lipgloss.Color("#909090"),
		Accent:         lipgloss.Color(accent),
		Border:         lipgloss.Color("#333333"),

		Error:   lipgloss.Color("#ef4444"),
		Warning: lipgloss.Color("#f59e0b"),
		Success: lipgloss.Color("#4ade80"),
	}

	t.buildStyles()
	return t
}

func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	t.ListItem = lipgloss.NewStyle().
		Foreground(t.Text).
		PaddingLeft(2)

	t.ListItemSelected = lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.SurfaceVariant).
		PaddingLeft(2).
		Bold(true)

	t.ListItemDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Badge = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1)

	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.SurfaceVariant).
		Padding(0, 1)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.BoxHeader = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border).
		MarginBottom(1)
}
