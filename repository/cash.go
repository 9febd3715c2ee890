package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/rashedkhan/hisab/ledger"
	"github.com/rashedkhan/hisab/model"
	"github.com/shopspring/decimal"
)

type CashRepoMysql struct {
	db *sql.DB
}

func NewCashRepoMysql(db *sql.DB) *CashRepoMysql {
	return &CashRepoMysql{db: db}
}

// GetOrCreate returns the user's cash ledger, creating an empty one on first
// access. The unique key on user_id makes the insert idempotent: a
// concurrent first access loses the race and reads the winner's row.
func (c *CashRepoMysql) GetOrCreate(userID int) (*model.CashLedger, error) {
	statement := "INSERT IGNORE INTO cash(user_id, current_balance) VALUES(?, 0)"
	if _, err := c.db.Exec(statement, userID); err != nil {
		return nil, err
	}

	return c.find(userID)
}

// UpdateBalance replaces the stored balance with the requested one and
// prepends the derived history entry, both in one transaction. A zero delta
// surfaces as ledger.ErrNoChange and writes nothing.
func (c *CashRepoMysql) UpdateBalance(userID int, newBalance decimal.Decimal, date string) (*model.CashLedger, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	statement := "INSERT IGNORE INTO cash(user_id, current_balance) VALUES(?, 0)"
	if _, err := c.db.ExecContext(ctx, statement, userID); err != nil {
		return nil, err
	}

	tx, err := c.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var cashID int
	var oldBalance decimal.Decimal
	statement = "SELECT id, current_balance FROM cash WHERE user_id = ? FOR UPDATE"
	if err := tx.QueryRowContext(ctx, statement, userID).Scan(&cashID, &oldBalance); err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	delta, err := ledger.ComputeDelta(oldBalance, newBalance)
	if err != nil {
		return nil, err
	}

	statement = `INSERT INTO cash_history(cash_id, entry_date, old_balance, new_balance, change_amount, kind)
					VALUES(?, ?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, statement, cashID, ledger.Stamp(date), oldBalance, newBalance, delta.Change, string(delta.Kind)); err != nil {
		return nil, err
	}

	statement = "UPDATE cash SET current_balance = ? WHERE id = ?"
	if _, err := tx.ExecContext(ctx, statement, newBalance, cashID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return c.find(userID)
}

func (c *CashRepoMysql) find(userID int) (*model.CashLedger, error) {
	cash := &model.CashLedger{}
	statement := "SELECT id, user_id, current_balance FROM cash WHERE user_id = ?"
	err := c.db.QueryRow(statement, userID).Scan(&cash.ID, &cash.UserID, &cash.CurrentBalance)
	if err == sql.ErrNoRows {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	cash.History, err = c.history(cash.ID)
	if err != nil {
		return nil, err
	}
	return cash, nil
}

// history returns entries newest first.
func (c *CashRepoMysql) history(cashID int) ([]model.CashHistoryEntry, error) {
	statement := `SELECT id, entry_date, old_balance, new_balance, change_amount, kind
					FROM cash_history
					WHERE cash_id = ?
					ORDER BY id DESC`
	rows, err := c.db.Query(statement, cashID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.CashHistoryEntry{}
	for rows.Next() {
		var entry model.CashHistoryEntry
		err := rows.Scan(&entry.ID, &entry.Date, &entry.OldBalance, &entry.NewBalance, &entry.Change, &entry.Kind)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
