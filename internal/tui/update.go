package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dayplanner/internal/panel"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case SaveFailedMsg:
		m.saveErr = fmt.Sprintf("Failed to save %s: %v", msg.Key, msg.Err)
		return m, nil
	}

	if m.state == StateEdit {
		return m.updateEdit(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	fieldCount := len(m.panel.Render())
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < fieldCount-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Back):
		// Dismiss the folder warning; only the host clears it
		m.panel.ClearError()
		m.formErr = ""
		m.saveErr = ""
	case key.Matches(keyMsg, m.keys.Toggle):
		f := m.selected()
		if f.Kind != panel.KindToggle {
			return m, nil
		}
		current, _ := strconv.ParseBool(f.Value)
		m.apply(f.Key, strconv.FormatBool(!current))
	case key.Matches(keyMsg, m.keys.Edit):
		m.edit = newFieldEdit(m.selected())
		m.form = newFieldForm(m.edit, m.suggestions(m.edit.field))
		m.formErr = ""
		m.state = StateEdit
		return m, m.form.Init()
	}
	return m, nil
}

func (m Model) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEsc:
			m.closeForm()
			return m, nil
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.commit()
		m.closeForm()
	case huh.StateAborted:
		m.closeForm()
	}
	return m, cmd
}

// commit hands the edited value to the panel. Like any change event it only
// fires when the value actually changed.
func (m *Model) commit() {
	if m.edit == nil {
		return
	}
	raw := m.edit.raw()
	if raw == m.edit.field.Value {
		return
	}
	m.apply(m.edit.field.Key, raw)
}

func (m *Model) apply(key, raw string) {
	if err := m.panel.Apply(key, raw); err != nil {
		m.formErr = err.Error()
		return
	}
	m.formErr = ""
}

func (m *Model) closeForm() {
	m.form = nil
	m.edit = nil
	m.state = StateView
}
