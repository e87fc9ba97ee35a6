package db

import (
	"fmt"
	"time"
)

// NotificationRecord is a row from notification_history.
type NotificationRecord struct {
	ID        int64
	Level     string
	Title     string
	Message   string
	CreatedAt time.Time
}

// RecordNotification appends a notification to the persistent history.
// Implements notify.Recorder.
func (d *DB) RecordNotification(level, title, message string) error {
	_, err := d.Exec(`
        INSERT INTO notification_history (level, title, message)
        VALUES (?, ?, ?)
    `, level, title, message)
	if err != nil {
		return fmt.Errorf("recording notification: %w", err)
	}
	return nil
}

// ListNotifications returns the most recent notifications, newest first.
func (d *DB) ListNotifications(limit int) ([]NotificationRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := d.Query(`
        SELECT id, level, title, message, created_at
        FROM notification_history
        ORDER BY id DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	var records []NotificationRecord
	for rows.Next() {
		var r NotificationRecord
		if err := rows.Scan(&r.ID, &r.Level, &r.Title, &r.Message, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
