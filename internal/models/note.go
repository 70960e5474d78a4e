package models

import (
	"path"
	"strings"
	"time"

	"github.com/julianstephens/dayplanner/internal/constants"
)

// PlannerFolder returns the vault folder planner notes are created in.
func (s Settings) PlannerFolder() string {
	folder := strings.Trim(s.CustomFolder, "/")
	if folder == "" {
		return constants.DefaultPlannerFolder
	}
	return folder
}

// NoteFileName returns the planner note file name for the given day.
func (s Settings) NoteFileName(day time.Time) string {
	return s.FileNamePrefix + s.FileNameDateFormat.Format(day) + constants.NoteExtension
}

// NotePath returns the vault path of the planner note for the given day.
func (s Settings) NotePath(day time.Time) string {
	return path.Join(s.PlannerFolder(), s.NoteFileName(day))
}
