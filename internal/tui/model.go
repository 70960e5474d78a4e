// Package tui hosts the settings panel in the terminal. Each field opens a
// one-field huh form built from the panel's field description; a submitted
// value goes through the panel's control layer and is saved from there.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dayplanner/internal/panel"
	"github.com/julianstephens/dayplanner/internal/vault"
)

type SessionState int

const (
	StateView SessionState = iota
	StateEdit
)

// SaveFailedMsg reports a background save that did not reach storage
type SaveFailedMsg struct {
	Key string
	Err error
}

// fieldEdit is the form model for the field being edited
type fieldEdit struct {
	field panel.Field
	text  string
	on    bool
}

type Model struct {
	panel *panel.Panel
	vault *vault.DirIndex // nil without a vault: no suggestions

	state    SessionState
	keys     KeyMap
	help     help.Model
	cursor   int
	form     *huh.Form
	edit     *fieldEdit
	formErr  string
	saveErr  string
	width    int
	height   int
	quitting bool
}

func NewModel(p *panel.Panel, idx *vault.DirIndex) Model {
	return Model{
		panel: p,
		vault: idx,
		state: StateView,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) selected() panel.Field {
	fields := m.panel.Render()
	if m.cursor < 0 || m.cursor >= len(fields) {
		return panel.Field{}
	}
	return fields[m.cursor]
}
