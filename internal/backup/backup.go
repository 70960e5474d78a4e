// Package backup keeps timestamped copies of a file-backed settings store
// (the plugin's data.json or an SQLite database) outside the vault.
package backup

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/dayplanner/internal/logger"

	_ "modernc.org/sqlite"
)

const (
	// MaxBackups is the number of backups kept per settings file
	MaxBackups = 10
	// BackupDirName is the directory under the app config dir holding backups
	BackupDirName = "backups"

	timestampLayout = "20060102-150405"
)

// BackupInfo describes one backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64

	seq int // collision counter within the same second
}

// Manager backs up a single settings file
type Manager struct {
	path      string
	backupDir string
}

// NewManager manages backups of path, stored in backupDir
func NewManager(path, backupDir string) *Manager {
	return &Manager{
		path:      path,
		backupDir: backupDir,
	}
}

func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// isSQLite reports whether the managed file is a database rather than JSON
func (m *Manager) isSQLite() bool {
	return !strings.EqualFold(filepath.Ext(m.path), ".json")
}

// prefix is the backup name prefix: the settings file name without extension
func (m *Manager) prefix() string {
	base := filepath.Base(m.path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "-"
}

func (m *Manager) ext() string {
	return filepath.Ext(m.path)
}

// CreateBackup copies the settings file into the backup directory and prunes
// old backups beyond MaxBackups.
func (m *Manager) CreateBackup() (string, error) {
	path, err := m.createBackup()
	if err != nil {
		return "", err
	}
	if err := m.rotateBackups(); err != nil {
		logger.Warn("Failed to rotate old backups", "error", err)
	}
	return path, nil
}

func (m *Manager) createBackup() (string, error) {
	if _, err := os.Stat(m.path); os.IsNotExist(err) {
		return "", fmt.Errorf("settings file does not exist: %s", m.path)
	}
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	dest, err := m.nextBackupPath(time.Now())
	if err != nil {
		return "", err
	}

	if m.isSQLite() {
		err = backupDatabase(m.path, dest)
	} else {
		err = backupJSON(m.path, dest)
	}
	if err != nil {
		return "", fmt.Errorf("failed to back up %s: %w", m.path, err)
	}
	logger.Debug("Backup created", "source", m.path, "backup", dest)
	return dest, nil
}

// nextBackupPath names a backup for now, adding a counter on collision
func (m *Manager) nextBackupPath(now time.Time) (string, error) {
	stamp := now.Format(timestampLayout)
	name := m.prefix() + stamp + m.ext()
	for i := 1; ; i++ {
		path := filepath.Join(m.backupDir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		if i > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		name = fmt.Sprintf("%s%s-%d%s", m.prefix(), stamp, i, m.ext())
	}
}

// backupDatabase uses VACUUM INTO for a consistent copy, falling back to a
// plain file copy on SQLite builds without it.
func backupDatabase(src, dest string) error {
	db, err := sql.Open("sqlite", src+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := verifyDatabase(db); err != nil {
		return err
	}
	if _, err := db.Exec("VACUUM INTO ?", dest); err != nil {
		return copyFile(src, dest)
	}
	return nil
}

func backupJSON(src, dest string) error {
	if err := verifyJSON(src); err != nil {
		return err
	}
	return copyFile(src, dest)
}

func verifyDatabase(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("database appears to be corrupted: %w", err)
	}
	return nil
}

func verifyJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("settings file is not a JSON object: %w", err)
	}
	return nil
}

// verifyBackup checks that path holds a usable copy of the settings file
func (m *Manager) verifyBackup(path string) error {
	if !m.isSQLite() {
		return verifyJSON(path)
	}
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return err
	}
	defer db.Close()
	return verifyDatabase(db)
}

// ListBackups returns the backups of the managed file, newest first
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []BackupInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ts, seq, ok := m.parseName(entry.Name())
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Path:      filepath.Join(m.backupDir, entry.Name()),
			Timestamp: ts,
			Size:      info.Size(),
			seq:       seq,
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].seq > backups[j].seq
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// parseName extracts the timestamp from "<prefix><stamp>[-<n>]<ext>"
func (m *Manager) parseName(name string) (time.Time, int, bool) {
	if !strings.HasPrefix(name, m.prefix()) || !strings.HasSuffix(name, m.ext()) {
		return time.Time{}, 0, false
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, m.prefix()), m.ext())
	seq := 0
	if len(stamp) > len(timestampLayout) {
		counter := stamp[len(timestampLayout):]
		if !strings.HasPrefix(counter, "-") {
			return time.Time{}, 0, false
		}
		n, err := strconv.Atoi(counter[1:])
		if err != nil {
			return time.Time{}, 0, false
		}
		seq = n
		stamp = stamp[:len(timestampLayout)]
	}
	ts, err := time.ParseInLocation(timestampLayout, stamp, time.Local)
	if err != nil {
		return time.Time{}, 0, false
	}
	return ts, seq, true
}

func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// RestoreBackup replaces the settings file with backupPath. The current file
// is backed up first and the replacement is an atomic rename.
func (m *Manager) RestoreBackup(backupPath string) (string, error) {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return "", fmt.Errorf("backup file does not exist: %s", backupPath)
	}
	if err := m.verifyBackup(backupPath); err != nil {
		return "", fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	var previous string
	if _, err := os.Stat(m.path); err == nil {
		// Not rotated, so the backup being restored cannot be pruned here
		previous, err = m.createBackup()
		if err != nil {
			return "", fmt.Errorf("failed to back up current settings before restore: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0755); err != nil {
		return "", fmt.Errorf("failed to create settings directory: %w", err)
	}
	tempPath := m.path + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return "", fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tempPath, m.path); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			logger.Warn("Failed to remove temporary file", "path", tempPath, "error", removeErr)
		}
		return "", fmt.Errorf("failed to restore settings: %w", err)
	}
	return previous, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(in); err != nil {
		return err
	}
	return out.Sync()
}
