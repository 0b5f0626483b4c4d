package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/shades/internal/application/usecase"
	"github.com/bnema/shades/internal/cli/styles"
	"github.com/bnema/shades/internal/domain/entity"
)

func (m PopupModel) updateWebsites(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			m.searching = false
			m.search.Blur()
			return m, nil
		}
		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != before {
			m.siteCursor = 0
			return m, tea.Batch(cmd, m.loadSites())
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.siteKeys.Back):
		m.view = viewFilters
		m.status, m.err = "", nil
	case key.Matches(msg, m.siteKeys.Search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, m.siteKeys.Up):
		if m.siteCursor > 0 {
			m.siteCursor--
		}
	case key.Matches(msg, m.siteKeys.Down):
		if m.siteCursor < len(m.sites)-1 {
			m.siteCursor++
		}
	case key.Matches(msg, m.siteKeys.Delete):
		site, ok := m.selectedSite()
		if !ok {
			return m, nil
		}
		return m, m.action(func(ctx context.Context) (string, error) {
			return fmt.Sprintf("filter removed from %s", site.Domain), m.manager.RemoveFilter(ctx, site.Domain)
		})
	case key.Matches(msg, m.siteKeys.Cycle):
		site, ok := m.selectedSite()
		if !ok {
			return m, nil
		}
		next := m.nextOption(site.Filter.FilterID)
		return m, m.action(func(ctx context.Context) (string, error) {
			if _, err := m.manager.ApplyFilter(ctx, site.Domain, next); err != nil {
				return "", err
			}
			return fmt.Sprintf("%s applied to %s", next.DisplayName(), site.Domain), nil
		})
	}
	return m, nil
}

func (m PopupModel) selectedSite() (usecase.WebsiteEntry, bool) {
	if m.siteCursor < 0 || m.siteCursor >= len(m.sites) {
		return usecase.WebsiteEntry{}, false
	}
	return m.sites[m.siteCursor], true
}

// nextOption cycles through the catalog, then none.
func (m PopupModel) nextOption(id entity.FilterID) entity.FilterID {
	i := m.optionIndex(id)
	if m.options[i] != id {
		return m.options[1]
	}
	return m.options[(i+1)%len(m.options)]
}

func (m PopupModel) renderWebsites() string {
	var b strings.Builder
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	if len(m.sites) == 0 {
		b.WriteString(m.theme.Subtle.Render("  No websites configured"))
		b.WriteString("\n")
		return b.String()
	}

	for i, site := range m.sites {
		line := fmt.Sprintf("%-30s %s  %s  %s",
			site.Domain,
			m.theme.FilterBadge(site.Filter.FilterID),
			m.theme.ListItemDesc.Render(styles.SettingsSummary(site.Filter.FilterID, site.Filter.Settings)),
			m.theme.ListItemDesc.Render(styles.RelativeTime(site.Filter.UpdatedAt)),
		)
		if i == m.siteCursor {
			b.WriteString(m.theme.ListItemSelected.Render("> " + line))
		} else {
			b.WriteString(m.theme.ListItem.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
