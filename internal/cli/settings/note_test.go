package settings

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/dayplanner/internal/cli"
	"github.com/julianstephens/dayplanner/internal/storage"
)

func TestNoteCmd(t *testing.T) {
	ctx := setupJSONContext(t)

	tests := []struct {
		name    string
		cmd     NoteCmd
		wantErr bool
	}{
		{"today", NoteCmd{}, false},
		{"explicit date", NoteCmd{Date: "2024-03-05"}, false},
		{"absolute", NoteCmd{Date: "2024-03-05", Absolute: true}, false},
		{"bad date", NoteCmd{Date: "03/05/2024"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Run(ctx)
			if (err != nil) != tt.wantErr {
				t.Errorf("NoteCmd.Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNoteCmd_AbsoluteNeedsVault(t *testing.T) {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "data.json"))
	ctx := &cli.Context{Store: store}

	cmd := &NoteCmd{Date: "2024-03-05", Absolute: true}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected an error without a vault")
	}
}
