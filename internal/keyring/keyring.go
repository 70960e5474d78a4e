package keyring

import (
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/dayplanner/internal/constants"
)

var (
	// ErrNotFound is returned when no credentials are found in the keyring
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetConnectionString retrieves the database connection string from the OS keyring.
func GetConnectionString() (string, error) {
	connStr, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return connStr, nil
}

// SetConnectionString stores the database connection string in the OS keyring.
func SetConnectionString(connStr string) error {
	if connStr == "" {
		return errors.New("connection string cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, connStr); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

// DeleteConnectionString removes the database connection string from the OS keyring.
func DeleteConnectionString() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// IsAvailable is a best-effort check that the OS keyring can be read.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}

// ResolveConnectionString picks the connection string to use for PostgreSQL:
// the environment override first, then the keyring. ok is false when neither
// holds one.
func ResolveConnectionString() (connStr string, source string, ok bool) {
	if env := os.Getenv(constants.EnvPostgresConnection); env != "" {
		return env, "environment", true
	}
	stored, err := GetConnectionString()
	if err != nil {
		return "", "", false
	}
	return stored, "keyring", true
}
