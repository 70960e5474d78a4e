package models

import (
	"encoding/json"
	"fmt"
)

// Mode selects how planner notes are created. The host stores it as a number.
type Mode int

const (
	// ModeFile generates a planner note per day inside the planner folder
	ModeFile Mode = iota
	// ModeCommand inserts a planner into the current note on demand
	ModeCommand
)

// ModeUnknown marks a stored value that is neither File nor Command
const ModeUnknown Mode = -1

// Modes lists the valid modes in display order
var Modes = []Mode{ModeFile, ModeCommand}

func (m Mode) String() string {
	switch m {
	case ModeFile:
		return "File"
	case ModeCommand:
		return "Command"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Label is the text shown in the mode dropdown
func (m Mode) Label() string {
	return m.OrDefault().String() + " mode"
}

// Valid reports whether m is one of the two modes
func (m Mode) Valid() bool {
	return m == ModeFile || m == ModeCommand
}

// OrDefault returns m, or ModeFile when m is not recognised
func (m Mode) OrDefault() Mode {
	if m.Valid() {
		return m
	}
	return ModeFile
}

// ParseMode accepts a mode name ("File", "Command") or a display label ("File mode").
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if s == m.String() || s == m.Label() {
			return m, nil
		}
	}
	return ModeUnknown, fmt.Errorf("invalid mode: %q", s)
}

func (m Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(m))
}

// UnmarshalJSON accepts the numeric form the host writes and, for hand-edited
// files, a mode name. Anything else decodes to ModeUnknown rather than failing
// so that the rest of the record still loads.
func (m *Mode) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*m = Mode(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := ParseMode(s)
		if err != nil {
			*m = ModeUnknown
			return nil
		}
		*m = parsed
		return nil
	}
	*m = ModeUnknown
	return nil
}
