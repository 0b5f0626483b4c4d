// Package model holds the bubbletea models behind the shades TUI.
package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/shades/internal/application/usecase"
	"github.com/bnema/shades/internal/cli/styles"
	"github.com/bnema/shades/internal/domain/entity"
	domainurl "github.com/bnema/shades/internal/domain/url"
	"github.com/bnema/shades/internal/logging"
)

// FilterManager is the configuration surface driven by the popup.
type FilterManager interface {
	State(ctx context.Context, domain string) (*usecase.FilterState, error)
	ApplyFilter(ctx context.Context, domain string, id entity.FilterID) (*entity.WebsiteFilter, error)
	RemoveFilter(ctx context.Context, domain string) error
	SaveSettings(ctx context.Context, domain string, settings entity.FilterSettings) (*entity.WebsiteFilter, error)
	SetDefault(ctx context.Context, id entity.FilterID, settings entity.FilterSettings) (*entity.DefaultFilter, error)
	ClearDefault(ctx context.Context) error
	SaveDefaultSettings(ctx context.Context, settings entity.FilterSettings) (*entity.DefaultFilter, error)
	ToggleExtension(ctx context.Context) (bool, error)
	ListWebsites(ctx context.Context, query string) ([]usecase.WebsiteEntry, error)
}

var errNoSite = errors.New("no site selected")

type popupView int

const (
	viewFilters popupView = iota
	viewSettings
	viewWebsites
)

// PopupModel lists the filters for one site and edits the stored settings.
type PopupModel struct {
	ctx     context.Context
	manager FilterManager
	changes <-chan entity.SettingsChange
	theme   *styles.Theme
	domain  string

	keys     styles.PopupKeyMap
	editKeys styles.SettingsKeyMap
	siteKeys styles.WebsitesKeyMap
	help     help.Model

	view    popupView
	options []entity.FilterID
	cursor  int
	placed  bool
	state   *usecase.FilterState
	status  string
	err     error

	editor settingsEditor

	search     textinput.Model
	searching  bool
	sites      []usecase.WebsiteEntry
	siteCursor int
}

// NewPopupModel creates the popup for site, which may be a URL, a domain or empty.
// changes may be nil; when set, the model reloads after every store write.
func NewPopupModel(
	ctx context.Context,
	theme *styles.Theme,
	manager FilterManager,
	changes <-chan entity.SettingsChange,
	site string,
) PopupModel {
	options := make([]entity.FilterID, 0, len(entity.Catalog())+1)
	options = append(options, entity.FilterNone)
	for _, f := range entity.Catalog() {
		options = append(options, f.ID)
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search websites"
	search.Cursor.SetMode(cursor.CursorStatic)

	return PopupModel{
		ctx:      ctx,
		manager:  manager,
		changes:  changes,
		theme:    theme,
		domain:   domainurl.DomainKeyFromInput(site),
		keys:     styles.DefaultPopupKeyMap(),
		editKeys: styles.DefaultSettingsKeyMap(),
		siteKeys: styles.DefaultWebsitesKeyMap(),
		help:     styles.NewStyledHelp(theme),
		options:  options,
		search:   search,
	}
}

type popupStateMsg struct {
	state *usecase.FilterState
	err   error
}

type popupSitesMsg struct {
	sites []usecase.WebsiteEntry
	err   error
}

type popupActionMsg struct {
	status string
	err    error
}

type popupChangedMsg struct {
	closed bool
}

// Init implements tea.Model.
func (m PopupModel) Init() tea.Cmd {
	return tea.Batch(m.loadState(), m.waitForChange())
}

func (m PopupModel) loadState() tea.Cmd {
	return func() tea.Msg {
		state, err := m.manager.State(m.ctx, m.domain)
		return popupStateMsg{state: state, err: err}
	}
}

func (m PopupModel) loadSites() tea.Cmd {
	query := m.search.Value()
	return func() tea.Msg {
		sites, err := m.manager.ListWebsites(m.ctx, query)
		return popupSitesMsg{sites: sites, err: err}
	}
}

func (m PopupModel) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		_, ok := <-ch
		return popupChangedMsg{closed: !ok}
	}
}

// action runs fn and reports its status line.
func (m PopupModel) action(fn func(ctx context.Context) (string, error)) tea.Cmd {
	return func() tea.Msg {
		status, err := fn(m.ctx)
		return popupActionMsg{status: status, err: err}
	}
}

// Update implements tea.Model.
func (m PopupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case popupStateMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.state = msg.state
		if !m.placed {
			m.cursor = m.optionIndex(msg.state.ActiveFilter())
			m.placed = true
		}
		return m, nil
	case popupSitesMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.sites = msg.sites
		if m.siteCursor >= len(m.sites) {
			m.siteCursor = max(len(m.sites)-1, 0)
		}
		return m, nil
	case popupActionMsg:
		m.status, m.err = msg.status, msg.err
		if msg.err != nil {
			logging.FromContext(m.ctx).Debug().Err(msg.err).Msg("popup action failed")
		}
		return m, m.reload()
	case popupChangedMsg:
		if msg.closed {
			return m, nil
		}
		return m, tea.Batch(m.reload(), m.waitForChange())
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch m.view {
		case viewSettings:
			return m.updateSettings(msg)
		case viewWebsites:
			return m.updateWebsites(msg)
		default:
			return m.updateFilters(msg)
		}
	}
	return m, nil
}

func (m PopupModel) reload() tea.Cmd {
	if m.view == viewWebsites {
		return tea.Batch(m.loadState(), m.loadSites())
	}
	return m.loadState()
}

func (m PopupModel) optionIndex(id entity.FilterID) int {
	for i, o := range m.options {
		if o == id {
			return i
		}
	}
	return 0
}

func (m PopupModel) selected() entity.FilterID {
	return m.options[m.cursor]
}

func (m PopupModel) updateFilters(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Apply):
		id, domain := m.selected(), m.domain
		return m, m.action(func(ctx context.Context) (string, error) {
			if domain == "" {
				return "", errNoSite
			}
			if _, err := m.manager.ApplyFilter(ctx, domain, id); err != nil {
				return "", err
			}
			return fmt.Sprintf("%s applied to %s", id.DisplayName(), domain), nil
		})
	case key.Matches(msg, m.keys.SetDefault):
		id := m.selected()
		return m, m.action(func(ctx context.Context) (string, error) {
			if id.IsNone() {
				return "default cleared", m.manager.ClearDefault(ctx)
			}
			if _, err := m.manager.SetDefault(ctx, id, nil); err != nil {
				return "", err
			}
			return fmt.Sprintf("default set to %s", id.DisplayName()), nil
		})
	case key.Matches(msg, m.keys.ClearDefault):
		return m, m.action(func(ctx context.Context) (string, error) {
			return "default cleared", m.manager.ClearDefault(ctx)
		})
	case key.Matches(msg, m.keys.Remove):
		domain := m.domain
		return m, m.action(func(ctx context.Context) (string, error) {
			if domain == "" {
				return "", errNoSite
			}
			return fmt.Sprintf("filter removed from %s", domain), m.manager.RemoveFilter(ctx, domain)
		})
	case key.Matches(msg, m.keys.Toggle):
		return m, m.action(func(ctx context.Context) (string, error) {
			disabled, err := m.manager.ToggleExtension(ctx)
			if err != nil {
				return "", err
			}
			if disabled {
				return "shades disabled", nil
			}
			return "shades enabled", nil
		})
	case key.Matches(msg, m.keys.Settings):
		return m.openSettings(), nil
	case key.Matches(msg, m.keys.Websites):
		m.view = viewWebsites
		m.status, m.err = "", nil
		return m, m.loadSites()
	}
	return m, nil
}

// View implements tea.Model.
func (m PopupModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.view {
	case viewSettings:
		b.WriteString(m.renderSettings())
		b.WriteString("\n")
		b.WriteString(m.help.View(m.editKeys))
	case viewWebsites:
		b.WriteString(m.renderWebsites())
		b.WriteString("\n")
		b.WriteString(m.help.View(m.siteKeys))
	default:
		b.WriteString(m.renderFilters())
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys))
	}

	if line := m.renderStatus(); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
	}
	return b.String()
}

func (m PopupModel) renderHeader() string {
	site := m.domain
	if site == "" {
		site = m.theme.Subtle.Render("no site")
	}
	disabled := m.state != nil && m.state.Disabled
	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.theme.Highlight.Render("shades"), "  ",
		m.theme.Title.Render(site), "  ",
		m.theme.StateBadge(disabled),
	)
}

func (m PopupModel) renderFilters() string {
	var b strings.Builder
	for i, id := range m.options {
		line := id.DisplayName()
		if f, ok := entity.LookupFilter(id); ok {
			line += "  " + m.theme.ListItemDesc.Render(f.Description)
		}
		if m.isActive(id) {
			line += " " + m.theme.ActiveBadge()
		}
		if m.state != nil && m.state.Default != nil && m.state.Default.FilterID == id {
			line += " " + m.theme.DefaultBadge()
		}

		if i == m.cursor {
			b.WriteString(m.theme.ListItemSelected.Render("> " + line))
		} else {
			b.WriteString(m.theme.ListItem.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// isActive reports whether id is what the site currently renders,
// including an explicit none.
func (m PopupModel) isActive(id entity.FilterID) bool {
	if m.state == nil || m.domain == "" {
		return false
	}
	switch m.state.Decision.Kind {
	case entity.DecisionActive:
		return m.state.Decision.FilterID == id
	case entity.DecisionExplicitNone:
		return id.IsNone()
	default:
		return false
	}
}

func (m PopupModel) renderStatus() string {
	switch {
	case m.err != nil:
		return m.theme.ErrorStyle.Render(m.err.Error())
	case m.status != "":
		return m.theme.SuccessStyle.Render(m.status)
	default:
		return ""
	}
}
