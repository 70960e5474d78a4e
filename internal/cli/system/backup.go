package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dayplanner/internal/backup"
	"github.com/julianstephens/dayplanner/internal/cli"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr, err := ctx.BackupManager()
	if err != nil {
		return err
	}
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	fmt.Printf("✓ Backup created: %s\n", filepath.Base(backupPath))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr, err := ctx.BackupManager()
	if err != nil {
		return err
	}
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		fmt.Printf("Backups are stored in: %s\n", mgr.GetBackupDir())
		return nil
	}

	fmt.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), backup.MaxBackups)
	for _, b := range backups {
		fmt.Printf("  %s  %s  (%.1f KB)\n",
			b.Timestamp.Format("2006-01-02 15:04:05"),
			filepath.Base(b.Path),
			float64(b.Size)/1024.0)
	}
	fmt.Printf("\nBackup directory: %s\n", mgr.GetBackupDir())
	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
	Yes        bool   `help:"Restore without asking for confirmation." short:"y"`
}

// resolve finds the backup as given, or by name in the backup directory
func (c *BackupRestoreCmd) resolve(mgr *backup.Manager) (string, error) {
	if _, err := os.Stat(c.BackupFile); err == nil {
		return filepath.Abs(c.BackupFile)
	}
	if !filepath.IsAbs(c.BackupFile) {
		candidate := filepath.Join(mgr.GetBackupDir(), c.BackupFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("backup file not found: tried %s and %s", c.BackupFile, mgr.GetBackupDir())
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr, err := ctx.BackupManager()
	if err != nil {
		return err
	}
	backupPath, err := c.resolve(mgr)
	if err != nil {
		return err
	}

	if !c.Yes {
		confirmed := false
		err := huh.NewConfirm().
			Title("Replace current settings with " + filepath.Base(backupPath) + "?").
			Description("Close Obsidian first: the plugin overwrites data.json with its own copy.\nThe current settings are backed up before restoring.").
			Affirmative("Restore").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println("Restore cancelled.")
				return nil
			}
			return err
		}
		if !confirmed {
			fmt.Println("Restore cancelled.")
			return nil
		}
	}

	if err := ctx.Store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close storage: %v\n", err)
	}

	previous, err := mgr.RestoreBackup(backupPath)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}
	if previous != "" {
		fmt.Printf("Backed up current settings to: %s\n", filepath.Base(previous))
	}
	fmt.Printf("✓ Restored settings from: %s\n", filepath.Base(backupPath))
	return nil
}

type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
	List    BackupListCmd    `cmd:"" help:"List available backups."`
	Restore BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
}
