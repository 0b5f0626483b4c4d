package styles

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/shades/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// WebsiteTableColumns returns columns for the per-site assignment table.
func WebsiteTableColumns() []table.Column {
	return []table.Column{
		{Title: "Domain", Width: 32},
		{Title: "Filter", Width: 16},
		{Title: "Settings", Width: 28},
		{Title: "Updated", Width: 16},
	}
}

// FilterTableColumns returns columns for the filter catalog table.
func FilterTableColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 16},
		{Title: "Name", Width: 16},
		{Title: "Description", Width: 34},
		{Title: "Settings", Width: 30},
	}
}

// WebsiteRow converts one assignment to a table row.
func WebsiteRow(domain string, wf entity.WebsiteFilter) table.Row {
	return table.Row{domain, wf.FilterID.DisplayName(), SettingsSummary(wf.FilterID, wf.Settings), RelativeTime(wf.UpdatedAt)}
}

// FilterRow converts one catalog row to a table row.
func FilterRow(f entity.Filter) table.Row {
	return table.Row{string(f.ID), f.Name, f.Description, SettingsSummary(f.ID, f.DefaultSettings())}
}

// SettingsSummary renders settings in schema order, e.g. "intensity 40, excludeImages on".
func SettingsSummary(id entity.FilterID, settings entity.FilterSettings) string {
	f, ok := entity.LookupFilter(id)
	if !ok {
		return "-"
	}
	out := ""
	for _, spec := range f.Schema {
		if out != "" {
			out += ", "
		}
		out += spec.Key + " " + FormatSetting(spec, settings)
	}
	return out
}

// FormatSetting renders one setting value, falling back to its schema default.
func FormatSetting(spec entity.SettingSpec, settings entity.FilterSettings) string {
	switch spec.Type {
	case entity.SettingTypeCheckbox:
		v, ok := settings[spec.Key].(bool)
		if !ok {
			v, _ = spec.Default.(bool)
		}
		if v {
			return "on"
		}
		return "off"
	default:
		v, ok := settings.Number(spec.Key)
		if !ok {
			v, _ = spec.Default.(float64)
		}
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return fmt.Sprintf("%.1f", v)
	}
}
