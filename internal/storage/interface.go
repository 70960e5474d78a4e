package storage

import (
	"errors"

	"github.com/julianstephens/dayplanner/internal/models"
)

// ErrNotInitialized is returned by Load when the backing store does not exist yet
var ErrNotInitialized = errors.New("storage not initialized, run 'dayplanner init' first")

// Provider persists the settings record
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Utils
	GetConfigPath() string
}
