package panel

import (
	"strconv"
	"strings"

	"github.com/julianstephens/dayplanner/internal/constants"
	"github.com/julianstephens/dayplanner/internal/models"
)

// Kind is the control a field is edited with
type Kind int

const (
	KindDropdown Kind = iota
	KindSearch
	KindText
	KindToggle
	KindSlider
)

func (k Kind) String() string {
	switch k {
	case KindDropdown:
		return "dropdown"
	case KindSearch:
		return "search"
	case KindText:
		return "text"
	case KindToggle:
		return "toggle"
	case KindSlider:
		return "slider"
	default:
		return "unknown"
	}
}

// Suggest names the vault entries a search field offers while typing
type Suggest int

const (
	SuggestNone Suggest = iota
	SuggestFiles
	SuggestFolders
)

// Option is one dropdown entry
type Option struct {
	Value string
	Label string
}

// Field describes one rendered setting and its current value
type Field struct {
	Key         string
	Name        string
	Desc        string
	Kind        Kind
	Value       string
	Options     []Option // dropdown only
	Min         int      // slider only
	Max         int
	Step        int
	Placeholder string  // search only
	Suggest     Suggest // search only
}

// OptionLabel returns the label for value, or "" when value is not an option
func (f Field) OptionLabel(value string) string {
	for _, o := range f.Options {
		if o.Value == value {
			return o.Label
		}
	}
	return ""
}

// ModeDescription is the help text shown under the mode dropdown
func ModeDescription() string {
	return strings.Join([]string{
		"Choose between 2 modes to use the Day Planner plugin:",
		"File mode",
		"Plugin automatically generates day planner notes for each day within a Day Planners folder.",
		"Command mode",
		"Command used to insert a Day Planner for today within the current note.",
		"plugin README: " + constants.DocsURL,
	}, "\n")
}

func modeOptions() []Option {
	opts := make([]Option, 0, len(models.Modes))
	for _, m := range models.Modes {
		opts = append(opts, Option{Value: m.String(), Label: m.Label()})
	}
	return opts
}

func dateFormatOptions() []Option {
	opts := make([]Option, 0, len(models.DateFormats))
	for _, f := range models.DateFormats {
		opts = append(opts, Option{Value: string(f), Label: string(f)})
	}
	return opts
}

func iconOptions() []Option {
	opts := make([]Option, 0, len(constants.Icons))
	for _, icon := range constants.Icons {
		opts = append(opts, Option{Value: icon, Label: icon})
	}
	return opts
}

// Render describes every field with its current value, in display order.
func (p *Panel) Render() []Field {
	s := p.settings
	return []Field{
		{
			Key:     constants.SettingMode,
			Name:    "Day Planner Mode",
			Desc:    ModeDescription(),
			Kind:    KindDropdown,
			Value:   s.Mode.OrDefault().String(),
			Options: modeOptions(),
		},
		{
			Key:         constants.SettingNoteTemplate,
			Name:        "Day Planner Template",
			Desc:        "Choose the file to use as a template.",
			Kind:        KindSearch,
			Value:       s.NoteTemplate,
			Placeholder: "Template",
			Suggest:     SuggestFiles,
		},
		{
			Key:         constants.SettingCustomFolder,
			Name:        "Planner Folder",
			Desc:        "Folder where auto-created notes will be saved",
			Kind:        KindSearch,
			Value:       s.CustomFolder,
			Placeholder: "Folder",
			Suggest:     SuggestFolders,
		},
		{
			Key:   constants.SettingFileNamePrefix,
			Name:  "Custom File Prefix",
			Desc:  "The prefix for your planner note file names",
			Kind:  KindText,
			Value: s.FileNamePrefix,
		},
		{
			Key:     constants.SettingFileNameDateFormat,
			Name:    "File name Date Format",
			Desc:    "The date format for your planner note file names",
			Kind:    KindDropdown,
			Value:   string(s.FileNameDateFormat),
			Options: dateFormatOptions(),
		},
		toggle(constants.SettingCompletePastItems, "Complete past planner items",
			"The plugin will automatically mark checkboxes for tasks and breaks in the past as complete",
			s.CompletePastItems),
		toggle(constants.SettingMermaid, "Mermaid Gantt",
			"Include a mermaid gantt chart generated for the day planner",
			s.Mermaid),
		toggle(constants.SettingCircularProgress, "Status Bar - Circular Progress",
			"Display a circular progress bar in the status bar",
			s.CircularProgress),
		toggle(constants.SettingNowAndNextInStatusBar, "Status Bar - Now and Next",
			"Display now and next tasks in the status bar",
			s.NowAndNextInStatusBar),
		toggle(constants.SettingShowTaskNotification, "Task Notification",
			"Display a notification when a new task is started",
			s.ShowTaskNotification),
		{
			Key:   constants.SettingTimelineZoomLevel,
			Name:  "Timeline Zoom Level",
			Desc:  "The zoom level to display the timeline. The higher the number, the more vertical space each task will take up.",
			Kind:  KindSlider,
			Value: strconv.Itoa(s.TimelineZoomLevel),
			Min:   constants.MinTimelineZoomLevel,
			Max:   constants.MaxTimelineZoomLevel,
			Step:  constants.TimelineZoomLevelStep,
		},
		{
			Key:     constants.SettingTimelineIcon,
			Name:    "Timeline Icon",
			Desc:    "The icon of the timeline pane. Reopen timeline pane or restart obsidian to see the change.",
			Kind:    KindDropdown,
			Value:   s.TimelineIcon,
			Options: iconOptions(),
		},
		{
			Key:   constants.SettingBreakLabel,
			Name:  "BREAK task label",
			Desc:  "Use this label to mark break between tasks.",
			Kind:  KindText,
			Value: s.BreakLabel,
		},
		{
			Key:   constants.SettingEndLabel,
			Name:  "END task label",
			Desc:  "Use this label to mark the end of all tasks.",
			Kind:  KindText,
			Value: s.EndLabel,
		},
	}
}

func toggle(key, name, desc string, value bool) Field {
	return Field{
		Key:   key,
		Name:  name,
		Desc:  desc,
		Kind:  KindToggle,
		Value: strconv.FormatBool(value),
	}
}

// Field returns the rendered field for key
func (p *Panel) Field(key string) (Field, bool) {
	for _, f := range p.Render() {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}
