package models

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/julianstephens/dayplanner/internal/constants"
)

// ParseSettingsJSON decodes a data.json document over the defaults. Keys that are
// missing keep their default; keys that are present keep their value, including
// empty strings and false.
func ParseSettingsJSON(data []byte) (Settings, error) {
	settings := DefaultSettings()
	if len(data) == 0 {
		return settings, nil
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}

// MapToSettings converts key/value rows to a Settings record, starting from the defaults.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := DefaultSettings()

	for key, value := range data {
		switch key {
		case constants.SettingMode:
			n, err := strconv.Atoi(value)
			if err != nil {
				// Names are accepted for hand-edited rows
				m, perr := ParseMode(value)
				if perr != nil {
					settings.Mode = ModeUnknown
					continue
				}
				settings.Mode = m
				continue
			}
			settings.Mode = Mode(n)
		case constants.SettingNoteTemplate:
			settings.NoteTemplate = value
		case constants.SettingCustomFolder:
			settings.CustomFolder = value
		case constants.SettingFileNamePrefix:
			settings.FileNamePrefix = value
		case constants.SettingFileNameDateFormat:
			settings.FileNameDateFormat = DateFormat(value)
		case constants.SettingCompletePastItems:
			settings.CompletePastItems = value == "true"
		case constants.SettingMermaid:
			settings.Mermaid = value == "true"
		case constants.SettingCircularProgress:
			settings.CircularProgress = value == "true"
		case constants.SettingNowAndNextInStatusBar:
			settings.NowAndNextInStatusBar = value == "true"
		case constants.SettingShowTaskNotification:
			settings.ShowTaskNotification = value == "true"
		case constants.SettingTimelineZoomLevel:
			n, err := strconv.Atoi(value)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing %s: %w", key, err)
			}
			settings.TimelineZoomLevel = n
		case constants.SettingTimelineIcon:
			settings.TimelineIcon = value
		case constants.SettingBreakLabel:
			settings.BreakLabel = value
		case constants.SettingEndLabel:
			settings.EndLabel = value
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings record to key/value rows.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingMode:                  strconv.Itoa(int(settings.Mode)),
		constants.SettingNoteTemplate:          settings.NoteTemplate,
		constants.SettingCustomFolder:          settings.CustomFolder,
		constants.SettingFileNamePrefix:        settings.FileNamePrefix,
		constants.SettingFileNameDateFormat:    string(settings.FileNameDateFormat),
		constants.SettingCompletePastItems:     strconv.FormatBool(settings.CompletePastItems),
		constants.SettingMermaid:               strconv.FormatBool(settings.Mermaid),
		constants.SettingCircularProgress:      strconv.FormatBool(settings.CircularProgress),
		constants.SettingNowAndNextInStatusBar: strconv.FormatBool(settings.NowAndNextInStatusBar),
		constants.SettingShowTaskNotification:  strconv.FormatBool(settings.ShowTaskNotification),
		constants.SettingTimelineZoomLevel:     strconv.Itoa(settings.TimelineZoomLevel),
		constants.SettingTimelineIcon:          settings.TimelineIcon,
		constants.SettingBreakLabel:            settings.BreakLabel,
		constants.SettingEndLabel:              settings.EndLabel,
	}
}
