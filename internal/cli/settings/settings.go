package settings

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/dayplanner/internal/cli"
	"github.com/julianstephens/dayplanner/internal/constants"
	"github.com/julianstephens/dayplanner/internal/errors"
	"github.com/julianstephens/dayplanner/internal/panel"
)

var (
	nameStyle  = lipgloss.NewStyle().Bold(true).Width(34)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Mode                  *string `help:"Day Planner mode (File or Command)."`
	Template              *string `help:"Template note path, relative to the vault."`
	Folder                *string `help:"Folder for auto-created planner notes."`
	Prefix                *string `help:"File name prefix for planner notes."`
	DateFormat            *string `help:"File name date format (MM-DD-YYYY, DD-MM-YYYY or YYYYMMDD)."`
	CompletePastItems     *bool   `help:"Mark past tasks and breaks as complete."`
	Mermaid               *bool   `help:"Include a mermaid gantt chart."`
	CircularProgress      *bool   `help:"Show a circular progress bar in the status bar."`
	NowAndNextInStatusBar *bool   `name:"now-and-next" help:"Show now and next tasks in the status bar."`
	ShowTaskNotification  *bool   `name:"task-notification" help:"Notify when a new task starts."`
	ZoomLevel             *int    `help:"Timeline zoom level (1-5)."`
	TimelineIcon          *string `help:"Timeline pane icon."`
	BreakLabel            *string `help:"Label marking a break between tasks."`
	EndLabel              *string `help:"Label marking the end of all tasks."`
}

// changes returns the requested edits keyed by setting, as raw control input
func (c *SettingsCmd) changes() map[string]string {
	out := map[string]string{}
	str := func(key string, v *string) {
		if v != nil {
			out[key] = *v
		}
	}
	boolean := func(key string, v *bool) {
		if v != nil {
			out[key] = strconv.FormatBool(*v)
		}
	}

	str(constants.SettingMode, c.Mode)
	str(constants.SettingNoteTemplate, c.Template)
	str(constants.SettingCustomFolder, c.Folder)
	str(constants.SettingFileNamePrefix, c.Prefix)
	str(constants.SettingFileNameDateFormat, c.DateFormat)
	boolean(constants.SettingCompletePastItems, c.CompletePastItems)
	boolean(constants.SettingMermaid, c.Mermaid)
	boolean(constants.SettingCircularProgress, c.CircularProgress)
	boolean(constants.SettingNowAndNextInStatusBar, c.NowAndNextInStatusBar)
	boolean(constants.SettingShowTaskNotification, c.ShowTaskNotification)
	if c.ZoomLevel != nil {
		out[constants.SettingTimelineZoomLevel] = strconv.Itoa(*c.ZoomLevel)
	}
	str(constants.SettingTimelineIcon, c.TimelineIcon)
	str(constants.SettingBreakLabel, c.BreakLabel)
	str(constants.SettingEndLabel, c.EndLabel)
	return out
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	p, err := ctx.NewPanel()
	if err != nil {
		return err
	}

	if c.List {
		printFields(p)
		return nil
	}

	changes := c.changes()
	if len(changes) == 0 {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	var mu sync.Mutex
	var failed []string
	p.OnSaveError(func(key string, err error) {
		mu.Lock()
		defer mu.Unlock()
		failed = append(failed, key)
	})

	// Refuse the whole set before anything is written
	for _, key := range constants.SettingKeys {
		if raw, ok := changes[key]; ok {
			if err := p.Check(key, raw); err != nil {
				return err
			}
		}
	}

	// Apply in display order so the folder warning reflects the final state
	for _, key := range constants.SettingKeys {
		raw, ok := changes[key]
		if !ok {
			continue
		}
		if err := p.Apply(key, raw); err != nil {
			p.Flush()
			return err
		}
	}
	p.Flush()

	if msg := p.Error(); msg != "" {
		fmt.Println(errorStyle.Render(errors.FormatWarning(msg)))
	}
	if len(failed) > 0 {
		return fmt.Errorf("failed to save settings (%d of %d saves failed), see the log for details", len(failed), len(changes))
	}

	fmt.Println("Settings updated successfully.")
	return nil
}

func printFields(p *panel.Panel) {
	fmt.Println("Current Settings:")
	for _, f := range p.Render() {
		value := f.Value
		if label := f.OptionLabel(value); label != "" && label != value {
			value = label
		}
		if value == "" {
			value = "(empty)"
		}
		fmt.Printf("  %s %s\n", nameStyle.Render(f.Name), valueStyle.Render(value))
	}
	if msg := p.ValidateFolder(p.Settings().CustomFolder); msg != "" {
		fmt.Println()
		fmt.Println(errorStyle.Render(errors.FormatWarning(msg)))
	}
}
