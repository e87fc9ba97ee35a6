package db

import (
	"database/sql"
	"fmt"
)

// SettingSelectedInstance caches the last selected instance id so the UI can
// show a selection before the backend connection is up.
const SettingSelectedInstance = "selected_instance"

// SetSetting stores a key/value setting.
func (d *DB) SetSetting(key, value string) error {
	_, err := d.Exec(`
        INSERT INTO settings (key, value, updated_at)
        VALUES (?, ?, CURRENT_TIMESTAMP)
        ON CONFLICT(key) DO UPDATE SET
            value = excluded.value,
            updated_at = CURRENT_TIMESTAMP
    `, key, value)
	if err != nil {
		return fmt.Errorf("saving setting %s: %w", key, err)
	}
	return nil
}

// GetSetting retrieves a setting value, or "" if unset.
func (d *DB) GetSetting(key string) (string, error) {
	var value string
	err := d.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("getting setting %s: %w", key, err)
	}
	return value, nil
}

// DeleteSetting removes a setting.
func (d *DB) DeleteSetting(key string) error {
	_, err := d.Exec("DELETE FROM settings WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("deleting setting %s: %w", key, err)
	}
	return nil
}
