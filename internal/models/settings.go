package models

import (
	"github.com/julianstephens/dayplanner/internal/constants"
)

// Settings is the plugin settings record. JSON keys match the host's data.json.
type Settings struct {
	Mode                  Mode       `json:"mode"`                  // File or Command mode
	NoteTemplate          string     `json:"noteTemplate"`          // vault path of the template note
	CustomFolder          string     `json:"customFolder"`          // folder planner notes are created in
	FileNamePrefix        string     `json:"fileNamePrefix"`        // prefix for planner note file names
	FileNameDateFormat    DateFormat `json:"fileNameDateFormat"`    // date part of planner note file names
	CompletePastItems     bool       `json:"completePastItems"`     // tick past tasks and breaks automatically
	Mermaid               bool       `json:"mermaid"`               // include a mermaid gantt chart
	CircularProgress      bool       `json:"circularProgress"`      // status bar circular progress
	NowAndNextInStatusBar bool       `json:"nowAndNextInStatusBar"` // status bar now/next tasks
	ShowTaskNotification  bool       `json:"showTaskNotification"`  // notify when a task starts
	TimelineZoomLevel     int        `json:"timelineZoomLevel"`     // 1 to 5
	TimelineIcon          string     `json:"timelineIcon"`          // icon id from constants.Icons
	BreakLabel            string     `json:"breakLabel"`            // label marking a break
	EndLabel              string     `json:"endLabel"`              // label marking the end of the day
}

// DefaultSettings returns a complete record holding every documented default.
func DefaultSettings() Settings {
	return Settings{
		Mode:                  ModeFile,
		NoteTemplate:          constants.DefaultNoteTemplate,
		CustomFolder:          constants.DefaultCustomFolder,
		FileNamePrefix:        constants.DefaultFileNamePrefix,
		FileNameDateFormat:    DateFormat(constants.DefaultFileNameDateFormat),
		CompletePastItems:     constants.DefaultCompletePastItems,
		Mermaid:               constants.DefaultMermaid,
		CircularProgress:      constants.DefaultCircularProgress,
		NowAndNextInStatusBar: constants.DefaultNowAndNextInStatusBar,
		ShowTaskNotification:  constants.DefaultShowTaskNotification,
		TimelineZoomLevel:     constants.DefaultTimelineZoomLevel,
		TimelineIcon:          constants.DefaultTimelineIcon,
		BreakLabel:            constants.DefaultBreakLabel,
		EndLabel:              constants.DefaultEndLabel,
	}
}
