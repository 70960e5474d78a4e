package tui

import (
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dayplanner/internal/panel"
)

// suggestions lists the vault entries a search field offers
func (m Model) suggestions(f panel.Field) []string {
	if m.vault == nil {
		return nil
	}
	switch f.Suggest {
	case panel.SuggestFiles:
		return m.vault.Notes()
	case panel.SuggestFolders:
		return m.vault.Folders()
	default:
		return nil
	}
}

func newFieldEdit(f panel.Field) *fieldEdit {
	e := &fieldEdit{field: f, text: f.Value}
	if f.Kind == panel.KindToggle {
		e.on, _ = strconv.ParseBool(f.Value)
	}
	return e
}

// raw is the edited value in the form the panel's control layer accepts
func (e *fieldEdit) raw() string {
	if e.field.Kind == panel.KindToggle {
		return strconv.FormatBool(e.on)
	}
	return e.text
}

// sliderOptions enumerates the slider positions. huh has no slider control.
func sliderOptions(f panel.Field) []huh.Option[string] {
	step := f.Step
	if step <= 0 {
		step = 1
	}
	var opts []huh.Option[string]
	for v := f.Min; v <= f.Max; v += step {
		s := strconv.Itoa(v)
		opts = append(opts, huh.NewOption(s, s))
	}
	return opts
}

func dropdownOptions(f panel.Field) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(f.Options))
	for _, o := range f.Options {
		opts = append(opts, huh.NewOption(o.Label, o.Value))
	}
	return opts
}

// newFieldForm builds a single-field form for e
func newFieldForm(e *fieldEdit, suggestions []string) *huh.Form {
	f := e.field

	var field huh.Field
	switch f.Kind {
	case panel.KindDropdown:
		field = huh.NewSelect[string]().
			Title(f.Name).
			Description(f.Desc).
			Options(dropdownOptions(f)...).
			Height(12).
			Value(&e.text)
	case panel.KindSlider:
		field = huh.NewSelect[string]().
			Title(f.Name).
			Description(f.Desc).
			Options(sliderOptions(f)...).
			Value(&e.text)
	case panel.KindToggle:
		field = huh.NewConfirm().
			Title(f.Name).
			Description(f.Desc).
			Affirmative("On").
			Negative("Off").
			Value(&e.on)
	case panel.KindSearch:
		field = huh.NewInput().
			Title(f.Name).
			Description(f.Desc).
			Placeholder(f.Placeholder).
			Suggestions(suggestions).
			Value(&e.text)
	default:
		field = huh.NewInput().
			Title(f.Name).
			Description(f.Desc).
			Value(&e.text)
	}

	return huh.NewForm(huh.NewGroup(field)).WithShowHelp(true)
}
