package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/dayplanner/internal/cli"
	"github.com/julianstephens/dayplanner/internal/constants"
	"github.com/julianstephens/dayplanner/internal/models"
)

// NoteCmd prints where file mode puts the planner note for a day
type NoteCmd struct {
	Date     string `help:"Day to resolve (YYYY-MM-DD). Defaults to today."`
	Absolute bool   `help:"Print the path on disk instead of the vault path."`
}

func (c *NoteCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.LoadSettings()
	if err != nil {
		return err
	}

	day := time.Now()
	if c.Date != "" {
		day, err = time.ParseInLocation(constants.DateFormat, c.Date, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", c.Date, err)
		}
	}

	if settings.Mode.OrDefault() != models.ModeFile {
		fmt.Fprintln(os.Stderr, "Note: planner notes are only created automatically in File mode.")
	}

	path := settings.NotePath(day)
	if c.Absolute {
		if ctx.Vault == nil {
			return cli.ErrNoVault
		}
		path = filepath.Join(ctx.Vault.Root(), filepath.FromSlash(path))
	}
	fmt.Println(path)
	return nil
}
