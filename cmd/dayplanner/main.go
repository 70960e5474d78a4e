package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/dayplanner/internal/cli"
	"github.com/julianstephens/dayplanner/internal/cli/settings"
	"github.com/julianstephens/dayplanner/internal/cli/system"
	"github.com/julianstephens/dayplanner/internal/config"
	"github.com/julianstephens/dayplanner/internal/constants"
	"github.com/julianstephens/dayplanner/internal/errors"
	"github.com/julianstephens/dayplanner/internal/logger"
	"github.com/julianstephens/dayplanner/internal/vault"
)

var CLI struct {
	Version    kong.VersionFlag
	Vault      string `help:"Obsidian vault directory." type:"path"`
	Config     string `help:"Settings storage: a data.json path, an SQLite .db path, a PostgreSQL connection string, or 'postgres' to use the keyring. Defaults to the plugin's data.json in the vault. PostgreSQL connection strings must NOT embed a password."`
	ConfigFile string `help:"Application config file." type:"path" default:"${config_file}"`
	Debug      bool   `help:"Enable debug logging to stderr."`

	Init     system.InitCmd       `cmd:"" help:"Initialize settings storage with defaults."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive settings panel." default:"1"`
	Settings settings.SettingsCmd `cmd:"" help:"List or change settings."`
	Note     settings.NoteCmd     `cmd:"" help:"Print the planner note path for a day."`
	Export   settings.ExportCmd   `cmd:"" help:"Export settings as JSON, YAML or TOML."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Backup   system.BackupCmd     `cmd:"" help:"Manage settings backups."`
	Keyring  system.KeyringCmd    `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
}

// firstSet returns the first non-empty value; flags win over the config file
func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Settings panel for the Obsidian Day Planner plugin"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_file": filepath.Join(constants.DefaultConfigDir, constants.ConfigFileName),
		},
	)

	configFile := config.ExpandHome(CLI.ConfigFile)
	cfg, err := config.LoadOrCreate(configFile)
	if err != nil {
		errors.Fatal(err)
	}

	debug := CLI.Debug || cfg.Debug
	if err := logger.Init(logger.Config{Debug: debug, ConfigDir: filepath.Dir(configFile)}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}

	vaultDir := config.ExpandHome(firstSet(CLI.Vault, cfg.Vault))
	appCtx := &cli.Context{Debug: debug, ConfigDir: filepath.Dir(configFile)}
	if vaultDir != "" {
		appCtx.Vault = vault.NewDirIndex(vaultDir)
	}

	// Keyring commands manage credentials and never touch settings storage
	if !strings.HasPrefix(ctx.Command(), "keyring") {
		store, err := cli.OpenStore(firstSet(CLI.Config, cfg.Storage), vaultDir)
		if err != nil {
			errors.Fatal(err)
		}
		appCtx.Store = store
		logger.Debug("Using settings storage", "command", ctx.Command())
	}

	err = ctx.Run(appCtx)
	if appCtx.Store != nil {
		if closeErr := appCtx.Store.Close(); closeErr != nil {
			logger.Warn("Failed to close storage", "error", closeErr)
		}
	}
	errors.Fatal(err)
}
