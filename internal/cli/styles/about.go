package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/shades/internal/domain/build"
)

// AboutRenderer renders build info next to a small logo.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders build info with the logo on the left.
func (r *AboutRenderer) Render(info build.Info) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, r.renderLogo(), "   ", r.renderInfoLines(info))
}

func (r *AboutRenderer) renderLogo() string {
	logoStyle := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true)

	logo := `▄█████
██
▀████▄
    ██
█████▀`

	return logoStyle.MarginTop(1).MarginLeft(2).Render(logo)
}

func (r *AboutRenderer) renderInfoLines(info build.Info) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight

	row := func(k, v string) string {
		return fmt.Sprintf("%s %s", keyStyle.Render(fmt.Sprintf("%-8s", k)), valStyle.Render(v))
	}

	lines := []string{
		row("Version", info.Version),
		row("Commit", info.Commit),
		row("Built", info.BuildDate),
		row("Go", info.GoVersion),
		"",
		keyStyle.Render(build.RepoURL()),
		fmt.Sprintf("%s %s", keyStyle.Render("Made by"), valStyle.Render(strings.Join(build.Contributors(), ", "))),
	}

	return strings.Join(lines, "\n")
}
