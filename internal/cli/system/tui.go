package system

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/dayplanner/internal/cli"
	"github.com/julianstephens/dayplanner/internal/logger"
	"github.com/julianstephens/dayplanner/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	p, idx, err := ctx.OpenPanel()
	if err != nil {
		return err
	}
	// Saves still in flight when the form closes must land before exit
	defer p.Flush()

	model := tui.NewModel(p, idx)
	program := tea.NewProgram(model, tea.WithAltScreen())

	p.OnSaveError(func(key string, err error) {
		program.Send(tui.SaveFailedMsg{Key: key, Err: err})
	})

	if idx != nil {
		watchCtx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			if err := idx.Watch(watchCtx); err != nil {
				logger.Warn("Vault watcher stopped", "error", err)
			}
		}()
	}

	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
