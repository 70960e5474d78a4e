package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	pq "github.com/lib/pq"

	"github.com/julianstephens/dayplanner/internal/constants"
	"github.com/julianstephens/dayplanner/internal/logger"
	"github.com/julianstephens/dayplanner/internal/models"
	"github.com/julianstephens/dayplanner/internal/storage"
)

type Store struct {
	connStr string
	db      *sql.DB
}

var (
	ErrInvalidConnectionString = errors.New("invalid PostgreSQL connection string")
	ErrEmbeddedCredentials     = errors.New("connection string must not contain a password")
)

// IsConnString reports whether s looks like a PostgreSQL URL or DSN rather than a file path
func IsConnString(s string) bool {
	return strings.HasPrefix(s, "postgres://") ||
		strings.HasPrefix(s, "postgresql://") ||
		strings.Contains(s, "host=")
}

func New(connStr string) *Store {
	s := &Store{
		connStr: connStr,
	}
	s.ensureSearchPath()
	return s
}

// ensureSearchPath pins the connection to the application schema unless the
// caller already chose one.
func (s *Store) ensureSearchPath() {
	if strings.HasPrefix(s.connStr, "postgres://") || strings.HasPrefix(s.connStr, "postgresql://") {
		u, err := url.Parse(s.connStr)
		if err != nil {
			logger.Warn("Failed to parse Postgres connection string", "error", err)
			return
		}
		q := u.Query()
		if q.Get("search_path") == "" {
			q.Set("search_path", constants.AppName)
			u.RawQuery = q.Encode()
			s.connStr = u.String()
		}
		return
	}
	if !hasParam(s.connStr, "search_path") {
		s.connStr = strings.TrimSpace(s.connStr) + " search_path=" + constants.AppName
	}
}

// hasParam reports whether a URL or DSN connection string sets key (case-insensitive)
func hasParam(connStr, key string) bool {
	if u, err := url.Parse(connStr); err == nil && u.Scheme != "" {
		for k := range u.Query() {
			if strings.EqualFold(k, key) {
				return true
			}
		}
	}
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], key) {
			return true
		}
	}
	return false
}

// ValidateConnString checks that connStr is a well-formed PostgreSQL URI or DSN
// and that it carries no password.
func ValidateConnString(connStr string) (bool, error) {
	if strings.TrimSpace(connStr) == "" {
		return false, fmt.Errorf("%w: connection string cannot be empty", ErrInvalidConnectionString)
	}

	if _, err := pq.NewConnector(connStr); err != nil {
		return false, fmt.Errorf("%w: invalid connection string format: %v", ErrInvalidConnectionString, err)
	}

	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		parsedURL, err := url.Parse(connStr)
		if err != nil {
			return false, fmt.Errorf("%w: failed to parse connection URL: %v", ErrInvalidConnectionString, err)
		}
		if _, isSet := parsedURL.User.Password(); isSet {
			return false, ErrEmbeddedCredentials
		}
		if parsedURL.Host == "" && parsedURL.User == nil && (parsedURL.Path == "" || parsedURL.Path == "/") {
			return false, fmt.Errorf("%w: connection URL is incomplete", ErrInvalidConnectionString)
		}
		return true, nil
	}

	for _, pair := range strings.Fields(connStr) {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) == 2 && strings.EqualFold(strings.TrimSpace(parts[0]), "password") {
			return false, ErrEmbeddedCredentials
		}
	}
	return true, nil
}

func (s *Store) Init() error {
	if err := s.open(); err != nil {
		return err
	}

	if _, err := s.db.Exec("CREATE SCHEMA IF NOT EXISTS " + constants.AppName); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS settings (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`); err != nil {
		return fmt.Errorf("failed to create settings table: %w", err)
	}

	var count int
	if err := s.db.QueryRow("SELECT count(*) FROM settings").Scan(&count); err != nil {
		return fmt.Errorf("failed to count settings: %w", err)
	}
	if count == 0 {
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
	if err := s.open(); err != nil {
		return err
	}

	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = $1 AND table_name = 'settings'
		)`, constants.AppName).Scan(&exists)
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

func (s *Store) open() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		if strings.Contains(err.Error(), "SSL is not enabled on the server") && !hasParam(s.connStr, "sslmode") {
			return fmt.Errorf("failed to connect to database: %w (hint: try adding ?sslmode=disable to your connection string)", err)
		}
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	s.db = db
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

func (s *Store) GetConfigPath() string {
	// Return a non-sensitive identifier instead of the full connection string
	return "postgresql"
}
