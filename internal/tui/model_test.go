package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/dayplanner/internal/constants"
	"github.com/julianstephens/dayplanner/internal/models"
	"github.com/julianstephens/dayplanner/internal/panel"
	"github.com/julianstephens/dayplanner/internal/vault"
)

type memStore struct {
	mu    sync.Mutex
	saves []models.Settings
}

func (s *memStore) SaveSettings(settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves = append(s.saves, settings)
	return nil
}

func setupModel(t *testing.T) (Model, *panel.Panel, *memStore) {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "Planner"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Template.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	idx := vault.NewDirIndex(dir)
	if err := idx.Refresh(); err != nil {
		t.Fatal(err)
	}

	settings := models.DefaultSettings()
	store := &memStore{}
	p := panel.New(&settings, store, idx)
	return NewModel(p, idx), p, store
}

func cursorTo(t *testing.T, m Model, key string) Model {
	t.Helper()
	for i, f := range m.panel.Render() {
		if f.Key == key {
			m.cursor = i
			return m
		}
	}
	t.Fatalf("no field %q", key)
	return m
}

func press(m Model, msg tea.KeyMsg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestToggleKeyFlipsAndSaves(t *testing.T) {
	m, p, store := setupModel(t)
	m = cursorTo(t, m, constants.SettingMermaid)

	m = press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	p.Flush()

	if !p.Settings().Mermaid {
		t.Error("expected mermaid to be on")
	}
	if len(store.saves) != 1 || !store.saves[0].Mermaid {
		t.Errorf("expected one save with mermaid on, got %+v", store.saves)
	}
}

func TestToggleKeyIgnoresOtherFields(t *testing.T) {
	m, p, store := setupModel(t)
	m = cursorTo(t, m, constants.SettingBreakLabel)

	press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	p.Flush()

	if len(store.saves) != 0 {
		t.Errorf("expected no saves, got %d", len(store.saves))
	}
}

func TestCursorBounds(t *testing.T) {
	m, _, _ := setupModel(t)

	m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor moved above the first field: %d", m.cursor)
	}
	for i := 0; i < 20; i++ {
		m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(constants.SettingKeys)-1 {
		t.Errorf("cursor = %d, want last field", m.cursor)
	}
}

func TestEditOpensFormAndEscCancels(t *testing.T) {
	m, _, store := setupModel(t)
	m = cursorTo(t, m, constants.SettingCustomFolder)

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != StateEdit || m.form == nil {
		t.Fatal("expected the edit form to open")
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != StateView || m.form != nil {
		t.Error("expected esc to close the form")
	}
	if len(store.saves) != 0 {
		t.Error("cancelled edit was saved")
	}
}

func TestCommitMissingFolderShowsWarning(t *testing.T) {
	m, p, store := setupModel(t)
	m = cursorTo(t, m, constants.SettingCustomFolder)
	m.edit = newFieldEdit(m.selected())
	m.edit.text = "NonexistentFolder"

	m.commit()
	p.Flush()

	if p.Error() != constants.FolderNotFoundMessage {
		t.Errorf("panel error = %q", p.Error())
	}
	if len(store.saves) != 1 || store.saves[0].CustomFolder != "NonexistentFolder" {
		t.Errorf("expected the folder to be saved, got %+v", store.saves)
	}
	if !strings.Contains(m.View(), "Folder not found in vault") {
		t.Error("warning is not rendered")
	}

	// Esc dismisses the warning
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if p.Error() != "" {
		t.Errorf("expected the warning to be cleared, got %q", p.Error())
	}
}

func TestCommitSkipsUnchangedValue(t *testing.T) {
	m, p, store := setupModel(t)
	m = cursorTo(t, m, constants.SettingEndLabel)
	m.edit = newFieldEdit(m.selected())

	m.commit()
	p.Flush()

	if len(store.saves) != 0 {
		t.Errorf("unchanged value was saved %d times", len(store.saves))
	}
}

func TestCommitZoomFromSlider(t *testing.T) {
	m, p, _ := setupModel(t)
	m = cursorTo(t, m, constants.SettingTimelineZoomLevel)
	m.edit = newFieldEdit(m.selected())
	m.edit.text = "5"

	m.commit()
	p.Flush()

	if p.Settings().TimelineZoomLevel != 5 {
		t.Errorf("zoom = %d, want 5", p.Settings().TimelineZoomLevel)
	}
}

func TestSaveFailedMsgIsShown(t *testing.T) {
	m, _, _ := setupModel(t)

	next, _ := m.Update(SaveFailedMsg{Key: constants.SettingMermaid, Err: errors.New("disk full")})
	m = next.(Model)

	if !strings.Contains(m.View(), "disk full") {
		t.Error("save failure is not rendered")
	}
}

func TestSliderOptions(t *testing.T) {
	f := panel.Field{Kind: panel.KindSlider, Min: 1, Max: 5, Step: 1}
	opts := sliderOptions(f)
	if len(opts) != 5 {
		t.Fatalf("expected 5 positions, got %d", len(opts))
	}
	if opts[0].Value != "1" || opts[4].Value != "5" {
		t.Errorf("unexpected slider range: %s..%s", opts[0].Value, opts[4].Value)
	}
}

func TestSuggestions(t *testing.T) {
	m, _, _ := setupModel(t)

	folders := m.suggestions(panel.Field{Suggest: panel.SuggestFolders})
	found := false
	for _, f := range folders {
		if f == "Planner" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected Planner in folder suggestions, got %v", folders)
	}

	notes := m.suggestions(panel.Field{Suggest: panel.SuggestFiles})
	if len(notes) != 1 || notes[0] != "Template.md" {
		t.Errorf("unexpected note suggestions: %v", notes)
	}

	m.vault = nil
	if got := m.suggestions(panel.Field{Suggest: panel.SuggestFolders}); got != nil {
		t.Errorf("expected no suggestions without a vault, got %v", got)
	}
}

func TestDisplayValue(t *testing.T) {
	tests := []struct {
		field    panel.Field
		expected string
	}{
		{panel.Field{Kind: panel.KindToggle, Value: "true"}, "On"},
		{panel.Field{Kind: panel.KindToggle, Value: "false"}, "Off"},
		{panel.Field{Kind: panel.KindSlider, Value: "4", Min: 1, Max: 5}, "4 (1-5)"},
		{panel.Field{Kind: panel.KindDropdown, Value: "File", Options: []panel.Option{{Value: "File", Label: "File mode"}}}, "File mode"},
		{panel.Field{Kind: panel.KindSearch, Placeholder: "Folder"}, "(Folder)"},
		{panel.Field{Kind: panel.KindText, Value: "BREAK"}, "BREAK"},
	}

	for _, tt := range tests {
		if got := displayValue(tt.field); got != tt.expected {
			t.Errorf("displayValue(%+v) = %q, want %q", tt.field, got, tt.expected)
		}
	}
}
