package constants

const (
	AppName            = "dayplanner"
	DefaultKeyringUser = "database-connection"
	DefaultConfigDir   = "~/.config/dayplanner"
	ConfigFileName     = "config.toml"
	Version            = "v0.3.0"

	// PluginID is the host plugin folder under <vault>/.obsidian/plugins
	PluginID = "obsidian-day-planner"

	// PluginDataFile is the file the host keeps plugin settings in
	PluginDataFile = "data.json"

	// HostConfigDir is the host's per-vault configuration directory
	HostConfigDir = ".obsidian"

	// HostProcessName is matched against running process names by doctor
	HostProcessName = "obsidian"

	// DateFormat is the standard date format used for CLI input (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// NoteExtension is appended to planner note file names
	NoteExtension = ".md"

	// DocsURL is linked from the mode description
	DocsURL = "https://github.com/lynchjames/obsidian-day-planner/blob/main/README.md"

	// EnvPostgresConnection overrides the connection string when set
	EnvPostgresConnection = "DAYPLANNER_DB_CONNECTION"
)
