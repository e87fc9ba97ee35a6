package db

import (
	"database/sql"
	"fmt"
	"time"
)

// StoredAccount is the locally cached signed-in profile.
type StoredAccount struct {
	UUID      string
	Username  string
	UpdatedAt time.Time
}

// SaveAccount saves or replaces the signed-in account. The launcher keeps
// at most one account, so saving clears any previous row.
func (d *DB) SaveAccount(uuid, username string) error {
	tx, err := d.Begin()
	if err != nil {
		return fmt.Errorf("saving account: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM accounts"); err != nil {
		return fmt.Errorf("clearing accounts: %w", err)
	}
	if _, err := tx.Exec(`
        INSERT INTO accounts (uuid, username, updated_at)
        VALUES (?, ?, CURRENT_TIMESTAMP)
    `, uuid, username); err != nil {
		return fmt.Errorf("saving account: %w", err)
	}

	return tx.Commit()
}

// GetAccount retrieves the signed-in account, or nil if none is stored.
func (d *DB) GetAccount() (*StoredAccount, error) {
	var account StoredAccount
	err := d.QueryRow(`
        SELECT uuid, username, updated_at
        FROM accounts
        LIMIT 1
    `).Scan(&account.UUID, &account.Username, &account.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}
	return &account, nil
}

// DeleteAccount removes the stored account (sign-out).
func (d *DB) DeleteAccount() error {
	_, err := d.Exec("DELETE FROM accounts")
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}
	return nil
}
