// Package panel is the Day Planner settings panel: a fixed list of fields bound
// to the settings record. Every change is written to the record and then saved
// through the host without waiting for the result.
package panel

import (
	"sync"

	"github.com/google/uuid"

	"github.com/julianstephens/dayplanner/internal/constants"
	"github.com/julianstephens/dayplanner/internal/logger"
	"github.com/julianstephens/dayplanner/internal/models"
	"github.com/julianstephens/dayplanner/internal/vault"
)

// Persister is the host's save capability. storage.Provider satisfies it.
type Persister interface {
	SaveSettings(models.Settings) error
}

// Panel edits a settings record owned by the host. It is not safe for
// concurrent use: setters are expected to run on one goroutine (the UI loop),
// while saves run in the background.
type Panel struct {
	settings *models.Settings
	store    Persister
	index    vault.FileIndex

	err         string
	onSaveError func(key string, err error)
	pending     sync.WaitGroup

	// seq numbers snapshots in submit order. written is the newest snapshot
	// that reached the store; older snapshots are dropped once it is set.
	seq     uint64
	writeMu sync.Mutex
	written uint64
}

// New creates a panel over settings. Saves go to store; folder validation
// queries index.
func New(settings *models.Settings, store Persister, index vault.FileIndex) *Panel {
	return &Panel{
		settings: settings,
		store:    store,
		index:    index,
	}
}

// OnSaveError registers a callback for failed saves. It runs on the save
// goroutine. Failures are logged either way.
func (p *Panel) OnSaveError(fn func(key string, err error)) {
	p.onSaveError = fn
}

// Settings returns a copy of the record as currently edited
func (p *Panel) Settings() models.Settings {
	return *p.settings
}

// Error returns the last folder validation message, or ""
func (p *Panel) Error() string {
	return p.err
}

// ClearError resets the validation message. No setter calls it.
func (p *Panel) ClearError() {
	p.err = ""
}

// ValidateFolder returns "" when folder is empty, the vault root, or an
// existing folder, and constants.FolderNotFoundMessage otherwise.
func (p *Panel) ValidateFolder(folder string) string {
	return ValidateFolder(p.index, folder)
}

// ValidateFolder checks folder against index. See Panel.ValidateFolder.
func ValidateFolder(index vault.FileIndex, folder string) string {
	if folder == "" || folder == "/" {
		return ""
	}
	if index == nil {
		return constants.FolderNotFoundMessage
	}
	f, ok := index.GetAbstractFileByPath(vault.NormalizePath(folder))
	if !ok || !f.Folder {
		return constants.FolderNotFoundMessage
	}
	return ""
}

// Flush blocks until every save submitted so far has finished
func (p *Panel) Flush() {
	p.pending.Wait()
}

// save submits a snapshot of the whole record and returns immediately.
// Saves run one at a time and a snapshot older than the last written one is
// skipped, so the store always ends with the newest record that saved.
func (p *Panel) save(key string) {
	p.seq++
	seq := p.seq
	snapshot := *p.settings
	id := uuid.NewString()
	onErr := p.onSaveError

	p.pending.Add(1)
	go func() {
		defer p.pending.Done()
		if err := p.write(seq, snapshot); err != nil {
			logger.Error("Failed to save settings", "save_id", id, "field", key, "error", err)
			if onErr != nil {
				onErr(key, err)
			}
			return
		}
		logger.Debug("Settings save finished", "save_id", id, "field", key, "seq", seq)
	}()
}

// write stores snapshot unless a newer one has already been written
func (p *Panel) write(seq uint64, snapshot models.Settings) error {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()
	if seq <= p.written {
		logger.Debug("Skipped stale settings snapshot", "seq", seq, "written", p.written)
		return nil
	}
	if err := p.store.SaveSettings(snapshot); err != nil {
		return err
	}
	p.written = seq
	return nil
}

func (p *Panel) SetMode(mode models.Mode) {
	p.settings.Mode = mode
	p.save(constants.SettingMode)
}

func (p *Panel) SetNoteTemplate(path string) {
	p.settings.NoteTemplate = path
	p.save(constants.SettingNoteTemplate)
}

// SetCustomFolder validates folder first. An unknown folder only sets the
// panel error; the value is written and saved regardless.
func (p *Panel) SetCustomFolder(folder string) {
	p.err = p.ValidateFolder(folder)
	p.settings.CustomFolder = folder
	p.save(constants.SettingCustomFolder)
}

func (p *Panel) SetFileNamePrefix(prefix string) {
	p.settings.FileNamePrefix = prefix
	p.save(constants.SettingFileNamePrefix)
}

func (p *Panel) SetFileNameDateFormat(format models.DateFormat) {
	p.settings.FileNameDateFormat = format
	p.save(constants.SettingFileNameDateFormat)
}

func (p *Panel) SetCompletePastItems(v bool) {
	p.settings.CompletePastItems = v
	p.save(constants.SettingCompletePastItems)
}

func (p *Panel) SetMermaid(v bool) {
	p.settings.Mermaid = v
	p.save(constants.SettingMermaid)
}

func (p *Panel) SetCircularProgress(v bool) {
	p.settings.CircularProgress = v
	p.save(constants.SettingCircularProgress)
}

func (p *Panel) SetNowAndNextInStatusBar(v bool) {
	p.settings.NowAndNextInStatusBar = v
	p.save(constants.SettingNowAndNextInStatusBar)
}

func (p *Panel) SetShowTaskNotification(v bool) {
	p.settings.ShowTaskNotification = v
	p.save(constants.SettingShowTaskNotification)
}

// SetTimelineZoomLevel does not range-check; the slider bounds the value.
func (p *Panel) SetTimelineZoomLevel(level int) {
	p.settings.TimelineZoomLevel = level
	p.save(constants.SettingTimelineZoomLevel)
}

func (p *Panel) SetTimelineIcon(icon string) {
	p.settings.TimelineIcon = icon
	p.save(constants.SettingTimelineIcon)
}

func (p *Panel) SetBreakLabel(label string) {
	p.settings.BreakLabel = label
	p.save(constants.SettingBreakLabel)
}

func (p *Panel) SetEndLabel(label string) {
	p.settings.EndLabel = label
	p.save(constants.SettingEndLabel)
}
