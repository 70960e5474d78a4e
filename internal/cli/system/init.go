package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/dayplanner/internal/cli"
	"github.com/julianstephens/dayplanner/internal/models"
)

type InitCmd struct {
	Force bool `help:"Reset existing settings to their defaults (a backup is taken first)."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := backupBeforeReset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Init keeps an existing record; --force overwrites it. Unknown keys in
	// data.json belong to the plugin and survive either way.
	if c.Force {
		if err := ctx.Store.SaveSettings(models.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to reset settings: %w", err)
		}
		fmt.Println("Settings reset to defaults.")
	}

	fmt.Printf("Initialized dayplanner storage at: %s\n", maskPassword(ctx.Store.GetConfigPath()))
	return nil
}

func backupBeforeReset(ctx *cli.Context) error {
	mgr, err := ctx.BackupManager()
	if errors.Is(err, cli.ErrNoFileBackups) {
		return nil
	}
	if err != nil {
		return err
	}
	if _, err := os.Stat(ctx.Store.GetConfigPath()); os.IsNotExist(err) {
		return nil
	}
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		return fmt.Errorf("failed to back up settings before reset: %w", err)
	}
	fmt.Printf("Backed up existing settings to: %s\n", filepath.Base(backupPath))
	return nil
}
