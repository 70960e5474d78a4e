package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/julianstephens/dayplanner/internal/backup"
	"github.com/julianstephens/dayplanner/internal/constants"
	"github.com/julianstephens/dayplanner/internal/keyring"
	"github.com/julianstephens/dayplanner/internal/logger"
	"github.com/julianstephens/dayplanner/internal/models"
	"github.com/julianstephens/dayplanner/internal/panel"
	"github.com/julianstephens/dayplanner/internal/storage"
	"github.com/julianstephens/dayplanner/internal/storage/postgres"
	"github.com/julianstephens/dayplanner/internal/storage/sqlite"
	"github.com/julianstephens/dayplanner/internal/vault"
)

// PostgresKeyword selects PostgreSQL with the connection string taken from
// the environment or the OS keyring.
const PostgresKeyword = "postgres"

var (
	ErrNoStorage = errors.New("no settings storage configured: pass --vault or --config")
	ErrNoVault   = errors.New("no vault configured: pass --vault or set it in the config file")
	// ErrNoFileBackups is returned for stores that are not a single file
	ErrNoFileBackups = errors.New("backups are only supported for data.json and SQLite storage")
)

type Context struct {
	Store     storage.Provider
	Vault     *vault.DirIndex // nil when no vault is configured
	ConfigDir string          // application config dir; backups live under it
	Debug     bool
}

// PluginDataPath is where the plugin keeps its data.json inside a vault
func PluginDataPath(vaultDir string) string {
	return filepath.Join(vaultDir, constants.HostConfigDir, "plugins", constants.PluginID, constants.PluginDataFile)
}

// OpenStore picks a storage provider for location:
//   - "" uses the plugin's data.json inside vaultDir
//   - "postgres" resolves a connection string from the environment or keyring
//   - a PostgreSQL URL or DSN, which must not embed a password
//   - a path ending in .json, otherwise an SQLite database file
func OpenStore(location, vaultDir string) (storage.Provider, error) {
	switch {
	case location == "":
		if vaultDir == "" {
			return nil, ErrNoStorage
		}
		return storage.NewJSONStore(PluginDataPath(vaultDir)), nil
	case location == PostgresKeyword:
		connStr, source, ok := keyring.ResolveConnectionString()
		if !ok {
			return nil, fmt.Errorf("no PostgreSQL connection string found: set %s or run 'dayplanner keyring set'", constants.EnvPostgresConnection)
		}
		logger.Debug("Using PostgreSQL connection string", "source", source)
		return postgres.New(connStr), nil
	case postgres.IsConnString(location):
		if _, err := postgres.ValidateConnString(location); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("%w: store it with 'dayplanner keyring set', export %s, or use .pgpass", err, constants.EnvPostgresConnection)
			}
			return nil, err
		}
		return postgres.New(location), nil
	case strings.HasSuffix(strings.ToLower(location), ".json"):
		return storage.NewJSONStore(location), nil
	default:
		return sqlite.NewStore(location), nil
	}
}

// LoadSettings loads the store and returns the record with defaults filled in
func (c *Context) LoadSettings() (models.Settings, error) {
	if err := c.Store.Load(); err != nil {
		return models.Settings{}, err
	}
	settings, err := c.Store.GetSettings()
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// refreshedVault re-indexes the vault, returning nil when there is none or
// it cannot be read. Without a vault every non-root folder fails validation,
// so a missing vault is only logged.
func (c *Context) refreshedVault() *vault.DirIndex {
	if c.Vault == nil {
		logger.Warn("No vault configured; folder validation is unavailable")
		return nil
	}
	if err := c.Vault.Refresh(); err != nil {
		logger.Warn("Failed to index vault", "root", c.Vault.Root(), "error", err)
		return nil
	}
	return c.Vault
}

// NewPanel loads the record and opens a settings panel over it
func (c *Context) NewPanel() (*panel.Panel, error) {
	p, _, err := c.OpenPanel()
	return p, err
}

// OpenPanel is NewPanel that also returns the vault index the panel
// validates against, nil when the vault is missing or failed to index.
// Hosts offering path suggestions use it so suggestions and validation agree.
func (c *Context) OpenPanel() (*panel.Panel, *vault.DirIndex, error) {
	settings, err := c.LoadSettings()
	if err != nil {
		return nil, nil, err
	}
	idx := c.refreshedVault()
	if idx == nil {
		return panel.New(&settings, c.Store, nil), nil, nil
	}
	return panel.New(&settings, c.Store, idx), idx, nil
}

// BackupManager returns the backup manager for the settings file. Backups go
// under the config dir so that they stay out of the vault.
func (c *Context) BackupManager() (*backup.Manager, error) {
	if _, ok := c.Store.(*postgres.Store); ok {
		return nil, ErrNoFileBackups
	}
	path := c.Store.GetConfigPath()
	dir := filepath.Join(filepath.Dir(path), backup.BackupDirName)
	if c.ConfigDir != "" {
		dir = filepath.Join(c.ConfigDir, backup.BackupDirName)
	}
	return backup.NewManager(path, dir), nil
}
