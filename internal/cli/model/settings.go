package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/shades/internal/cli/styles"
	"github.com/bnema/shades/internal/domain/entity"
)

const (
	sliderWidth = 20
	sliderSteps = 5
)

var errNothingToEdit = errors.New("no filter to edit")

// settingsEditor edits either the site's assignment or the global default.
type settingsEditor struct {
	site     bool
	filterID entity.FilterID
	specs    []entity.SettingSpec
	values   entity.FilterSettings
	cursor   int
}

func (m PopupModel) openSettings() PopupModel {
	m.status, m.err = "", nil
	if m.state == nil {
		return m
	}

	id, values := m.state.EditableSettings()
	f, ok := entity.LookupFilter(id)
	if !ok {
		m.err = errNothingToEdit
		return m
	}

	m.editor = settingsEditor{
		site:     m.state.Assignment != nil,
		filterID: id,
		specs:    f.Schema,
		values:   values.Clone(),
	}
	m.view = viewSettings
	return m
}

func (m PopupModel) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ed := &m.editor
	switch {
	case key.Matches(msg, m.editKeys.Back):
		m.view = viewFilters
	case key.Matches(msg, m.editKeys.Up):
		if ed.cursor > 0 {
			ed.cursor--
		}
	case key.Matches(msg, m.editKeys.Down):
		if ed.cursor < len(ed.specs)-1 {
			ed.cursor++
		}
	case key.Matches(msg, m.editKeys.Decrease):
		ed.adjust(-1)
	case key.Matches(msg, m.editKeys.Increase):
		ed.adjust(1)
	case key.Matches(msg, m.editKeys.Check):
		ed.toggle()
	case key.Matches(msg, m.editKeys.Save):
		m.view = viewFilters
		return m, m.saveSettings(*ed)
	}
	return m, nil
}

func (m PopupModel) saveSettings(ed settingsEditor) tea.Cmd {
	domain := m.domain
	values := ed.values.Clone()
	return m.action(func(ctx context.Context) (string, error) {
		if ed.site {
			if _, err := m.manager.SaveSettings(ctx, domain, values); err != nil {
				return "", err
			}
			return fmt.Sprintf("%s settings saved for %s", ed.filterID.DisplayName(), domain), nil
		}
		if _, err := m.manager.SaveDefaultSettings(ctx, values); err != nil {
			return "", err
		}
		return fmt.Sprintf("default %s settings saved", ed.filterID.DisplayName()), nil
	})
}

func (e *settingsEditor) current() (entity.SettingSpec, bool) {
	if e.cursor < 0 || e.cursor >= len(e.specs) {
		return entity.SettingSpec{}, false
	}
	return e.specs[e.cursor], true
}

// adjust moves the selected slider by dir steps.
func (e *settingsEditor) adjust(dir int) {
	spec, ok := e.current()
	if !ok || spec.Type != entity.SettingTypeSlider {
		return
	}
	v, _ := e.values.Number(spec.Key)
	v += float64(dir) * spec.Step * sliderSteps
	if v < spec.Min {
		v = spec.Min
	}
	if v > spec.Max {
		v = spec.Max
	}
	e.values[spec.Key] = v
}

func (e *settingsEditor) toggle() {
	spec, ok := e.current()
	if !ok || spec.Type != entity.SettingTypeCheckbox {
		return
	}
	e.values[spec.Key] = !e.values.Bool(spec.Key)
}

func (m PopupModel) renderSettings() string {
	ed := m.editor
	target := "default"
	if ed.site {
		target = m.domain
	}

	var b strings.Builder
	b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf("%s settings (%s)", ed.filterID.DisplayName(), target)))
	b.WriteString("\n\n")

	for i, spec := range ed.specs {
		line := fmt.Sprintf("%-26s %s", spec.Label, m.renderControl(spec, ed.values))
		if i == ed.cursor {
			b.WriteString(m.theme.ListItemSelected.Render("> " + line))
		} else {
			b.WriteString(m.theme.ListItem.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m PopupModel) renderControl(spec entity.SettingSpec, values entity.FilterSettings) string {
	if spec.Type == entity.SettingTypeCheckbox {
		if values.Bool(spec.Key) {
			return "[x]"
		}
		return "[ ]"
	}

	v, _ := values.Number(spec.Key)
	filled := 0
	if spec.Max > spec.Min {
		filled = int((v - spec.Min) / (spec.Max - spec.Min) * sliderWidth)
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", sliderWidth-filled)
	return m.theme.Highlight.Render(bar) + " " + styles.FormatSetting(spec, values)
}
