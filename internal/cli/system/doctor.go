package system

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/dayplanner/internal/cli"
	"github.com/julianstephens/dayplanner/internal/constants"
	"github.com/julianstephens/dayplanner/internal/keyring"
	"github.com/julianstephens/dayplanner/internal/models"
	"github.com/julianstephens/dayplanner/internal/panel"
	"github.com/julianstephens/dayplanner/internal/storage"
	"github.com/julianstephens/dayplanner/internal/vault"
)

var processesFunc = ps.Processes

type DoctorCmd struct{}

// errSkipped marks a check that could not run because an earlier one failed
var errSkipped = errors.New("skipped")

type checkLevel int

const (
	levelFail checkLevel = iota
	levelWarn
)

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	report := func(name string, level checkLevel, err error) {
		switch {
		case err == nil:
			fmt.Printf("✓ %s: OK\n", name)
		case errors.Is(err, errSkipped):
			fmt.Printf("⊘ %s: SKIPPED (%v)\n", name, strings.TrimPrefix(err.Error(), errSkipped.Error()+": "))
		case level == levelWarn:
			fmt.Printf("⚠ %s: WARNING\n", name)
			fmt.Printf("   %v\n", err)
		default:
			fmt.Printf("❌ %s: FAIL\n", name)
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	settings, loadErr := checkStorage(ctx)
	report("Settings storage", levelFail, loadErr)

	if loadErr != nil {
		report("Settings values", levelFail, fmt.Errorf("%w: storage not readable", errSkipped))
	} else {
		report("Settings values", levelFail, checkSettingsValues(settings))
	}

	index, vaultErr := checkVault(ctx)
	report("Vault index", levelWarn, vaultErr)

	switch {
	case loadErr != nil:
		report("Planner folder", levelWarn, fmt.Errorf("%w: storage not readable", errSkipped))
		report("Template note", levelWarn, fmt.Errorf("%w: storage not readable", errSkipped))
	case vaultErr != nil:
		report("Planner folder", levelWarn, fmt.Errorf("%w: vault not indexed", errSkipped))
		report("Template note", levelWarn, fmt.Errorf("%w: vault not indexed", errSkipped))
	default:
		report("Planner folder", levelWarn, checkPlannerFolder(index, settings))
		report("Template note", levelWarn, checkTemplate(index, settings))
	}

	report("Backups present", levelWarn, checkBackupsPresent(ctx))
	report("Obsidian not running", levelWarn, checkHostProcess(ctx))
	report("OS keyring", levelWarn, checkKeyring())

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStorage(ctx *cli.Context) (models.Settings, error) {
	if ctx.Store == nil {
		return models.Settings{}, cli.ErrNoStorage
	}
	settings, err := ctx.LoadSettings()
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to load settings from %s: %w", maskPassword(ctx.Store.GetConfigPath()), err)
	}
	return settings, nil
}

// checkSettingsValues reports values no control could have produced, which
// points at a hand-edited or foreign data file
func checkSettingsValues(s models.Settings) error {
	var problems []string
	if !s.Mode.Valid() {
		problems = append(problems, fmt.Sprintf("unknown mode %d (shown as %s)", int(s.Mode), s.Mode.Label()))
	}
	if !s.FileNameDateFormat.Valid() {
		problems = append(problems, fmt.Sprintf("unknown date format %q", s.FileNameDateFormat))
	}
	if s.TimelineZoomLevel < constants.MinTimelineZoomLevel || s.TimelineZoomLevel > constants.MaxTimelineZoomLevel {
		problems = append(problems, fmt.Sprintf("timeline zoom level %d outside %d-%d",
			s.TimelineZoomLevel, constants.MinTimelineZoomLevel, constants.MaxTimelineZoomLevel))
	}
	if !constants.IsKnownIcon(s.TimelineIcon) {
		problems = append(problems, fmt.Sprintf("unknown timeline icon %q", s.TimelineIcon))
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func checkVault(ctx *cli.Context) (vault.FileIndex, error) {
	if ctx.Vault == nil {
		return nil, fmt.Errorf("%w: no vault configured", errSkipped)
	}
	if err := ctx.Vault.Refresh(); err != nil {
		return nil, err
	}
	return ctx.Vault, nil
}

func checkPlannerFolder(index vault.FileIndex, s models.Settings) error {
	if msg := panel.ValidateFolder(index, s.CustomFolder); msg != "" {
		return fmt.Errorf("%s: %q", msg, s.CustomFolder)
	}
	// The default folder is created by the plugin on first use
	if s.CustomFolder == "" || s.CustomFolder == "/" {
		if _, ok := index.GetAbstractFileByPath(constants.DefaultPlannerFolder); !ok {
			return fmt.Errorf("default folder %q does not exist yet; it is created on first use", constants.DefaultPlannerFolder)
		}
	}
	return nil
}

func checkTemplate(index vault.FileIndex, s models.Settings) error {
	if s.NoteTemplate == "" {
		return nil
	}
	f, ok := index.GetAbstractFileByPath(vault.NormalizePath(s.NoteTemplate))
	if !ok || f.Folder {
		return fmt.Errorf("template note not found in vault: %q", s.NoteTemplate)
	}
	return nil
}

// checkHostProcess warns when Obsidian is running against a data.json store:
// the plugin keeps its own copy in memory and overwrites the file on its next save.
func checkHostProcess(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*storage.JSONStore); !ok {
		return nil
	}
	procs, err := processesFunc()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}
	for _, proc := range procs {
		name := strings.ToLower(strings.TrimSuffix(filepath.Base(proc.Executable()), ".exe"))
		if name == constants.HostProcessName {
			return fmt.Errorf("the Obsidian app is running (pid %d); reload the plugin after editing settings here", proc.Pid())
		}
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if ctx.Store == nil {
		return fmt.Errorf("%w: no storage", errSkipped)
	}
	mgr, err := ctx.BackupManager()
	if errors.Is(err, cli.ErrNoFileBackups) {
		return fmt.Errorf("%w: storage is not a file", errSkipped)
	}
	if err != nil {
		return err
	}
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'dayplanner backup create'")
	}
	return nil
}

func checkKeyring() error {
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}
	return nil
}
