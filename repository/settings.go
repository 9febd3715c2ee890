package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/rashedkhan/hisab/model"
)

type SettingsRepoMysql struct {
	db *sql.DB
}

func NewSettingsRepoMysql(db *sql.DB) *SettingsRepoMysql {
	return &SettingsRepoMysql{db: db}
}

// Get returns the single settings row, creating it with column defaults on
// first access.
func (s *SettingsRepoMysql) Get() (*model.Settings, error) {
	settings, err := s.find()
	if err == nil {
		return settings, nil
	}
	if err != model.ErrNotFound {
		return nil, err
	}

	statement := "INSERT INTO settings() VALUES()"
	if _, err := s.db.Exec(statement); err != nil {
		return nil, err
	}
	return s.find()
}

func (s *SettingsRepoMysql) Update(update *model.SettingsUpdate) (*model.Settings, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}

	if update.HeaderLogoURL != "" {
		settings.HeaderLogoURL = update.HeaderLogoURL
	}
	if update.AppName != "" {
		settings.AppName = update.AppName
	}

	statement := "UPDATE settings SET header_logo_url = ?, app_name = ? WHERE id = ?"
	if _, err := s.db.Exec(statement, settings.HeaderLogoURL, settings.AppName, settings.ID); err != nil {
		return nil, err
	}
	return settings, nil
}

// Cleanup is the administrative bulk reset: every balance to zero, every
// history, transaction and due item gone, all users at once, in one
// transaction.
func (s *SettingsRepoMysql) Cleanup() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	statements := []string{
		"DELETE FROM cash_history",
		"UPDATE cash SET current_balance = 0",
		"DELETE FROM account_transactions",
		"UPDATE accounts SET balance = 0",
		"DELETE FROM due_items",
	}
	for _, statement := range statements {
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SettingsRepoMysql) find() (*model.Settings, error) {
	settings := &model.Settings{}
	statement := "SELECT id, header_logo_url, app_name FROM settings ORDER BY id LIMIT 1"
	err := s.db.QueryRow(statement).Scan(&settings.ID, &settings.HeaderLogoURL, &settings.AppName)
	if err == sql.ErrNoRows {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}
