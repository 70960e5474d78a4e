package constants

const (
	// Setting keys, as stored in data.json and the key/value tables
	SettingMode                  = "mode"
	SettingNoteTemplate          = "noteTemplate"
	SettingCustomFolder          = "customFolder"
	SettingFileNamePrefix        = "fileNamePrefix"
	SettingFileNameDateFormat    = "fileNameDateFormat"
	SettingCompletePastItems     = "completePastItems"
	SettingMermaid               = "mermaid"
	SettingCircularProgress      = "circularProgress"
	SettingNowAndNextInStatusBar = "nowAndNextInStatusBar"
	SettingShowTaskNotification  = "showTaskNotification"
	SettingTimelineZoomLevel     = "timelineZoomLevel"
	SettingTimelineIcon          = "timelineIcon"
	SettingBreakLabel            = "breakLabel"
	SettingEndLabel              = "endLabel"

	// Default Settings Values
	DefaultNoteTemplate          = ""
	DefaultCustomFolder          = ""
	DefaultFileNamePrefix        = "Day Planner-"
	DefaultFileNameDateFormat    = "YYYYMMDD"
	DefaultCompletePastItems     = false
	DefaultMermaid               = false
	DefaultCircularProgress      = false
	DefaultNowAndNextInStatusBar = false
	DefaultShowTaskNotification  = false
	DefaultTimelineZoomLevel     = 4
	DefaultTimelineIcon          = "calendar-with-checkmark"
	DefaultBreakLabel            = "BREAK"
	DefaultEndLabel              = "END"

	// DefaultPlannerFolder is used for notes when no custom folder is set
	DefaultPlannerFolder = "Day Planners"

	// Zoom slider limits
	MinTimelineZoomLevel  = 1
	MaxTimelineZoomLevel  = 5
	TimelineZoomLevelStep = 1

	// FolderNotFoundMessage is the advisory message for an unknown custom folder
	FolderNotFoundMessage = "Folder not found in vault"
)

// SettingKeys lists every setting key in display order
var SettingKeys = []string{
	SettingMode,
	SettingNoteTemplate,
	SettingCustomFolder,
	SettingFileNamePrefix,
	SettingFileNameDateFormat,
	SettingCompletePastItems,
	SettingMermaid,
	SettingCircularProgress,
	SettingNowAndNextInStatusBar,
	SettingShowTaskNotification,
	SettingTimelineZoomLevel,
	SettingTimelineIcon,
	SettingBreakLabel,
	SettingEndLabel,
}
