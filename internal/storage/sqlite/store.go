package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/dayplanner/internal/models"
	"github.com/julianstephens/dayplanner/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

func (s *Store) Init() error {
	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Seed defaults on a fresh database
	empty, err := s.isEmpty()
	if err != nil {
		return err
	}
	if empty {
		if err := s.SaveSettings(models.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return storage.ErrNotInitialized
	}

	if err := s.open(); err != nil {
		return err
	}

	exists, err := s.tableExists("settings")
	if err != nil {
		s.Close()
		return fmt.Errorf("failed to inspect database: %w", err)
	}
	if !exists {
		s.Close()
		return storage.ErrNotInitialized
	}
	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *Store) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// Saves arrive from several goroutines; sqlite allows a single writer
	db.SetMaxOpenConns(1)
	s.db = db
	return nil
}

// tableExists checks if a table exists in the SQLite database.
func (s *Store) tableExists(tableName string) (bool, error) {
	var count int
	row := s.db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name COLLATE NOCASE = ?", tableName)
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) isEmpty() (bool, error) {
	var count int
	if err := s.db.QueryRow("SELECT count(*) FROM settings").Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count settings: %w", err)
	}
	return count == 0, nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}
