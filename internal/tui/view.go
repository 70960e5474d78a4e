package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/dayplanner/internal/errors"
	"github.com/julianstephens/dayplanner/internal/panel"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateEdit:
		content = m.form.View()
	default:
		content = m.viewFields()
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Day Planner Settings"),
		content,
		m.viewMessages(),
		m.help.View(m.keys),
	)
	return docStyle.Render(ui)
}

func (m Model) viewFields() string {
	fields := m.panel.Render()
	rows := make([]string, 0, len(fields)+1)
	for i, f := range fields {
		cursor := "  "
		label := labelStyle.Render(f.Name)
		if i == m.cursor {
			cursor = "> "
			label = selectedLabelStyle.Render(f.Name)
		}
		rows = append(rows, cursor+label+" "+valueStyle.Render(displayValue(f)))
	}

	if f := m.selected(); f.Desc != "" {
		desc := descStyle
		if m.width > 8 {
			desc = desc.Width(m.width - 8)
		}
		rows = append(rows, desc.Render(f.Desc))
	}
	return strings.Join(rows, "\n")
}

// displayValue renders a value the way its control would show it
func displayValue(f panel.Field) string {
	switch f.Kind {
	case panel.KindToggle:
		if f.Value == "true" {
			return "On"
		}
		return "Off"
	case panel.KindSlider:
		return fmt.Sprintf("%s (%d-%d)", f.Value, f.Min, f.Max)
	case panel.KindDropdown:
		if label := f.OptionLabel(f.Value); label != "" {
			return label
		}
	}
	if f.Value == "" && f.Placeholder != "" {
		return "(" + f.Placeholder + ")"
	}
	return f.Value
}

func (m Model) viewMessages() string {
	var lines []string
	if msg := m.panel.Error(); msg != "" {
		lines = append(lines, warningStyle.Render(errors.FormatWarning(msg)))
	}
	if m.formErr != "" {
		lines = append(lines, dangerStyle.Render(m.formErr))
	}
	if m.saveErr != "" {
		lines = append(lines, dangerStyle.Render(m.saveErr))
	}
	if len(lines) == 0 {
		return ""
	}
	return "\n" + strings.Join(lines, "\n")
}
