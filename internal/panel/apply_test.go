package panel

import (
	"testing"

	"github.com/julianstephens/dayplanner/internal/constants"
	"github.com/julianstephens/dayplanner/internal/models"
)

func TestApply(t *testing.T) {
	tests := []struct {
		key   string
		raw   string
		check func(models.Settings) bool
	}{
		{constants.SettingMode, "Command mode", func(s models.Settings) bool { return s.Mode == models.ModeCommand }},
		{constants.SettingMode, "File", func(s models.Settings) bool { return s.Mode == models.ModeFile }},
		{constants.SettingNoteTemplate, "Templates/Daily.md", func(s models.Settings) bool { return s.NoteTemplate == "Templates/Daily.md" }},
		{constants.SettingFileNameDateFormat, "MM-DD-YYYY", func(s models.Settings) bool { return s.FileNameDateFormat == models.DateFormatMonthFirst }},
		{constants.SettingCompletePastItems, "true", func(s models.Settings) bool { return s.CompletePastItems }},
		{constants.SettingCircularProgress, "1", func(s models.Settings) bool { return s.CircularProgress }},
		{constants.SettingNowAndNextInStatusBar, "true", func(s models.Settings) bool { return s.NowAndNextInStatusBar }},
		{constants.SettingShowTaskNotification, "true", func(s models.Settings) bool { return s.ShowTaskNotification }},
		{constants.SettingMermaid, "true", func(s models.Settings) bool { return s.Mermaid }},
		{constants.SettingTimelineIcon, "clock", func(s models.Settings) bool { return s.TimelineIcon == "clock" }},
		{constants.SettingBreakLabel, "", func(s models.Settings) bool { return s.BreakLabel == "" }},
		{constants.SettingEndLabel, "FIN", func(s models.Settings) bool { return s.EndLabel == "FIN" }},
		{constants.SettingFileNamePrefix, "Plan-", func(s models.Settings) bool { return s.FileNamePrefix == "Plan-" }},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.raw, func(t *testing.T) {
			p, _, store := setupPanel(t)
			if err := p.Apply(tt.key, tt.raw); err != nil {
				t.Fatalf("Apply() failed: %v", err)
			}
			p.Flush()
			if !tt.check(store.last(t)) {
				t.Errorf("persisted record did not reflect %s=%q: %+v", tt.key, tt.raw, store.last(t))
			}
		})
	}
}

func TestApply_FolderIsAdvisory(t *testing.T) {
	p, _, store := setupPanel(t)

	if err := p.Apply(constants.SettingCustomFolder, "NonexistentFolder"); err != nil {
		t.Fatalf("Apply() should not fail for a missing folder: %v", err)
	}
	p.Flush()
	if p.Error() != constants.FolderNotFoundMessage {
		t.Errorf("Error() = %q", p.Error())
	}
	if store.last(t).CustomFolder != "NonexistentFolder" {
		t.Error("folder was not persisted")
	}
}

func TestApply_RejectsWhatControlsCannotProduce(t *testing.T) {
	tests := []struct {
		key string
		raw string
	}{
		{constants.SettingMode, "Calendar mode"},
		{constants.SettingFileNameDateFormat, "YYYMMDD"},
		{constants.SettingMermaid, "yes please"},
		{constants.SettingTimelineZoomLevel, "0"},
		{constants.SettingTimelineZoomLevel, "6"},
		{constants.SettingTimelineZoomLevel, "four"},
		{constants.SettingTimelineIcon, "not-an-icon"},
		{"startHour", "6"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.raw, func(t *testing.T) {
			p, settings, store := setupPanel(t)
			before := *settings
			if err := p.Apply(tt.key, tt.raw); err == nil {
				t.Errorf("Apply(%q, %q) should fail", tt.key, tt.raw)
			}
			p.Flush()
			if *settings != before {
				t.Errorf("record changed after rejected input: %+v", *settings)
			}
			if store.count() != 0 {
				t.Errorf("rejected input was saved")
			}
		})
	}
}

func TestCheck(t *testing.T) {
	p, settings, store := setupPanel(t)
	before := *settings

	if err := p.Check(constants.SettingMermaid, "true"); err != nil {
		t.Errorf("Check() rejected a toggle value: %v", err)
	}
	if err := p.Check(constants.SettingTimelineZoomLevel, "9"); err == nil {
		t.Error("Check() accepted zoom level 9")
	}
	if err := p.Check(constants.SettingCustomFolder, "NonexistentFolder"); err != nil {
		t.Errorf("Check() rejected an advisory folder: %v", err)
	}
	p.Flush()

	if *settings != before {
		t.Errorf("Check() changed the record: %+v", *settings)
	}
	if store.count() != 0 {
		t.Error("Check() saved the record")
	}
	if p.Error() != "" {
		t.Errorf("Check() set the folder warning: %q", p.Error())
	}
}

func TestParseZoomLevelBounds(t *testing.T) {
	for _, raw := range []string{"1", "2", "3", "4", "5"} {
		if _, err := ParseZoomLevel(raw); err != nil {
			t.Errorf("ParseZoomLevel(%q) failed: %v", raw, err)
		}
	}
	for _, raw := range []string{"0", "6", "-1", "2.5"} {
		if _, err := ParseZoomLevel(raw); err == nil {
			t.Errorf("ParseZoomLevel(%q) should fail", raw)
		}
	}
}
