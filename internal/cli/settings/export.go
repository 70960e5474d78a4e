package settings

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/dayplanner/internal/cli"
	"github.com/julianstephens/dayplanner/internal/models"
)

type ExportCmd struct {
	Format string `help:"Output format." enum:"json,yaml,toml" default:"json"`
	Output string `help:"Write to this file instead of stdout." short:"o" type:"path"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.LoadSettings()
	if err != nil {
		return err
	}

	data, err := Encode(settings, c.Format)
	if err != nil {
		return err
	}

	if c.Output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", c.Output, err)
	}
	if err := writeAndClose(f, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Output, err)
	}
	return nil
}

// writeAndClose writes data and reports a failed close as well, since that
// is where a buffered write can first fail.
func writeAndClose(w io.WriteCloser, data []byte) error {
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// Encode renders the record in format. JSON is the plugin's data.json shape;
// YAML and TOML use the same keys as strings for readability.
func Encode(settings models.Settings, format string) ([]byte, error) {
	switch format {
	case "json", "":
		data, err := json.MarshalIndent(settings, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode settings: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml":
		return yaml.Marshal(exportView(settings))
	case "toml":
		return toml.Marshal(exportView(settings))
	default:
		return nil, fmt.Errorf("unsupported export format: %q", format)
	}
}

// exportRecord is the record with the mode spelled out
type exportRecord struct {
	Mode                  string `yaml:"mode" toml:"mode"`
	NoteTemplate          string `yaml:"noteTemplate" toml:"noteTemplate"`
	CustomFolder          string `yaml:"customFolder" toml:"customFolder"`
	FileNamePrefix        string `yaml:"fileNamePrefix" toml:"fileNamePrefix"`
	FileNameDateFormat    string `yaml:"fileNameDateFormat" toml:"fileNameDateFormat"`
	CompletePastItems     bool   `yaml:"completePastItems" toml:"completePastItems"`
	Mermaid               bool   `yaml:"mermaid" toml:"mermaid"`
	CircularProgress      bool   `yaml:"circularProgress" toml:"circularProgress"`
	NowAndNextInStatusBar bool   `yaml:"nowAndNextInStatusBar" toml:"nowAndNextInStatusBar"`
	ShowTaskNotification  bool   `yaml:"showTaskNotification" toml:"showTaskNotification"`
	TimelineZoomLevel     int    `yaml:"timelineZoomLevel" toml:"timelineZoomLevel"`
	TimelineIcon          string `yaml:"timelineIcon" toml:"timelineIcon"`
	BreakLabel            string `yaml:"breakLabel" toml:"breakLabel"`
	EndLabel              string `yaml:"endLabel" toml:"endLabel"`
}

func exportView(s models.Settings) exportRecord {
	return exportRecord{
		Mode:                  s.Mode.OrDefault().String(),
		NoteTemplate:          s.NoteTemplate,
		CustomFolder:          s.CustomFolder,
		FileNamePrefix:        s.FileNamePrefix,
		FileNameDateFormat:    string(s.FileNameDateFormat),
		CompletePastItems:     s.CompletePastItems,
		Mermaid:               s.Mermaid,
		CircularProgress:      s.CircularProgress,
		NowAndNextInStatusBar: s.NowAndNextInStatusBar,
		ShowTaskNotification:  s.ShowTaskNotification,
		TimelineZoomLevel:     s.TimelineZoomLevel,
		TimelineIcon:          s.TimelineIcon,
		BreakLabel:            s.BreakLabel,
		EndLabel:              s.EndLabel,
	}
}
