package panel

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/dayplanner/internal/constants"
	"github.com/julianstephens/dayplanner/internal/models"
)

// Apply is the control layer for text-driven hosts such as the CLI. It accepts
// only what the field's control could produce (a listed dropdown option, a
// slider position, true/false for a toggle) and then calls the field's setter.
func (p *Panel) Apply(key, raw string) error {
	set, err := p.parse(key, raw)
	if err != nil {
		return err
	}
	set()
	return nil
}

// Check reports whether Apply would accept raw for key, without touching the
// record. Hosts applying several edits at once check them all first.
func (p *Panel) Check(key, raw string) error {
	_, err := p.parse(key, raw)
	return err
}

// parse turns raw control input into a call to the field's setter
func (p *Panel) parse(key, raw string) (func(), error) {
	switch key {
	case constants.SettingMode:
		mode, err := models.ParseMode(raw)
		if err != nil {
			return nil, err
		}
		return func() { p.SetMode(mode) }, nil
	case constants.SettingNoteTemplate:
		return func() { p.SetNoteTemplate(raw) }, nil
	case constants.SettingCustomFolder:
		return func() { p.SetCustomFolder(raw) }, nil
	case constants.SettingFileNamePrefix:
		return func() { p.SetFileNamePrefix(raw) }, nil
	case constants.SettingFileNameDateFormat:
		format, err := models.ParseDateFormat(raw)
		if err != nil {
			return nil, err
		}
		return func() { p.SetFileNameDateFormat(format) }, nil
	case constants.SettingCompletePastItems,
		constants.SettingMermaid,
		constants.SettingCircularProgress,
		constants.SettingNowAndNextInStatusBar,
		constants.SettingShowTaskNotification:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %q is not true or false", key, raw)
		}
		return func() { p.setToggle(key, v) }, nil
	case constants.SettingTimelineZoomLevel:
		level, err := ParseZoomLevel(raw)
		if err != nil {
			return nil, err
		}
		return func() { p.SetTimelineZoomLevel(level) }, nil
	case constants.SettingTimelineIcon:
		if !constants.IsKnownIcon(raw) {
			return nil, fmt.Errorf("unknown timeline icon: %q", raw)
		}
		return func() { p.SetTimelineIcon(raw) }, nil
	case constants.SettingBreakLabel:
		return func() { p.SetBreakLabel(raw) }, nil
	case constants.SettingEndLabel:
		return func() { p.SetEndLabel(raw) }, nil
	}
	return nil, fmt.Errorf("unknown setting: %q", key)
}

func (p *Panel) setToggle(key string, v bool) {
	switch key {
	case constants.SettingCompletePastItems:
		p.SetCompletePastItems(v)
	case constants.SettingMermaid:
		p.SetMermaid(v)
	case constants.SettingCircularProgress:
		p.SetCircularProgress(v)
	case constants.SettingNowAndNextInStatusBar:
		p.SetNowAndNextInStatusBar(v)
	case constants.SettingShowTaskNotification:
		p.SetShowTaskNotification(v)
	}
}

// ParseZoomLevel accepts the positions the zoom slider can take
func ParseZoomLevel(raw string) (int, error) {
	level, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid zoom level %q: %w", raw, err)
	}
	if level < constants.MinTimelineZoomLevel || level > constants.MaxTimelineZoomLevel ||
		(level-constants.MinTimelineZoomLevel)%constants.TimelineZoomLevelStep != 0 {
		return 0, fmt.Errorf("zoom level must be between %d and %d", constants.MinTimelineZoomLevel, constants.MaxTimelineZoomLevel)
	}
	return level, nil
}
