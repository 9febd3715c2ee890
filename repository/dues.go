package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/rashedkhan/hisab/ledger"
	"github.com/rashedkhan/hisab/model"
	"github.com/shopspring/decimal"
)

type DueRepoMysql struct {
	db *sql.DB
}

func NewDueRepoMysql(db *sql.DB) *DueRepoMysql {
	return &DueRepoMysql{db: db}
}

// Items returns the user's due items, creating the empty list on first
// access.
func (d *DueRepoMysql) Items(userID int) ([]model.DueItem, error) {
	dueID, err := d.getOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return d.items(dueID)
}

func (d *DueRepoMysql) AddItem(userID int, name string, amount decimal.Decimal) ([]model.DueItem, error) {
	dueID, err := d.getOrCreate(userID)
	if err != nil {
		return nil, err
	}

	statement := "INSERT INTO due_items(due_id, name, amount, last_update) VALUES(?, ?, ?, ?)"
	if _, err := d.db.Exec(statement, dueID, name, amount, ledger.Today()); err != nil {
		return nil, err
	}

	return d.items(dueID)
}

// AdjustItem adds a signed delta to one owned item's amount and refreshes
// its lastUpdate stamp. Zero or negative results are valid; dues accrue.
func (d *DueRepoMysql) AdjustItem(userID, itemID int, adjustment decimal.Decimal) ([]model.DueItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := d.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var dueID int
	var amount decimal.Decimal
	statement := `SELECT i.due_id, i.amount
					FROM due_items AS i
					INNER JOIN dues AS d
						ON i.due_id = d.id
					WHERE i.id = ? AND d.user_id = ?
					FOR UPDATE`
	if err := tx.QueryRowContext(ctx, statement, itemID, userID).Scan(&dueID, &amount); err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	newAmount, err := ledger.ComputeAdjustment(amount, adjustment)
	if err != nil {
		return nil, err
	}

	statement = "UPDATE due_items SET amount = ?, last_update = ? WHERE id = ?"
	if _, err := tx.ExecContext(ctx, statement, newAmount, ledger.Today(), itemID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return d.items(dueID)
}

func (d *DueRepoMysql) DeleteItem(userID, itemID int) ([]model.DueItem, error) {
	var dueID int
	statement := `SELECT i.due_id
					FROM due_items AS i
					INNER JOIN dues AS d
						ON i.due_id = d.id
					WHERE i.id = ? AND d.user_id = ?`
	err := d.db.QueryRow(statement, itemID, userID).Scan(&dueID)
	if err == sql.ErrNoRows {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	statement = "DELETE FROM due_items WHERE id = ?"
	if _, err := d.db.Exec(statement, itemID); err != nil {
		return nil, err
	}

	return d.items(dueID)
}

// getOrCreate resolves the user's due list id, inserting the row on first
// access. The unique key on user_id turns a concurrent create race into
// "loaded existing".
func (d *DueRepoMysql) getOrCreate(userID int) (int, error) {
	statement := "INSERT IGNORE INTO dues(user_id) VALUES(?)"
	if _, err := d.db.Exec(statement, userID); err != nil {
		return 0, err
	}

	var dueID int
	statement = "SELECT id FROM dues WHERE user_id = ?"
	if err := d.db.QueryRow(statement, userID).Scan(&dueID); err != nil {
		return 0, err
	}
	return dueID, nil
}

func (d *DueRepoMysql) items(dueID int) ([]model.DueItem, error) {
	statement := `SELECT id, name, amount, last_update
					FROM due_items
					WHERE due_id = ?
					ORDER BY id`
	rows, err := d.db.Query(statement, dueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.DueItem{}
	for rows.Next() {
		var item model.DueItem
		err := rows.Scan(&item.ID, &item.Name, &item.Amount, &item.LastUpdate)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
