package sqlite

import (
	"fmt"

	"github.com/julianstephens/dayplanner/internal/constants"
	"github.com/julianstephens/dayplanner/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	if s.db == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	data := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		data[key] = value
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	return models.MapToSettings(data)
}

func (s *Store) SaveSettings(settings models.Settings) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	values := models.SettingsToMap(settings)
	for _, key := range constants.SettingKeys {
		if _, err := stmt.Exec(key, values[key]); err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}
	}

	return tx.Commit()
}
