package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/rashedkhan/hisab/ledger"
	"github.com/rashedkhan/hisab/model"
	"github.com/shopspring/decimal"
)

const (
	openingNote = "অ্যাকাউন্ট খোলা হয়েছে"
	updateNote  = "ব্যালেন্স আপডেট"
)

type AccountRepoMysql struct {
	db *sql.DB
}

func NewAccountRepoMysql(db *sql.DB) *AccountRepoMysql {
	return &AccountRepoMysql{db: db}
}

// Create inserts the account together with its seed transaction: every
// account starts with exactly one "initial" entry equal to the starting
// balance, zero included. Returns all accounts of the new account's
// serviceType.
func (a *AccountRepoMysql) Create(userID int, create *model.CreateAccount) ([]model.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	balance := decimal.Zero
	if create.Balance != nil {
		balance = *create.Balance
	}

	tx, err := a.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	statement := "INSERT INTO accounts(user_id, service_type, account_name, account_number, balance) VALUES(?, ?, ?, ?, ?)"
	result, err := tx.ExecContext(ctx, statement, userID, create.ServiceType, create.AccountName, create.AccountNumber, balance)
	if err != nil {
		return nil, err
	}

	accountID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	statement = "INSERT INTO account_transactions(account_id, entry_date, amount, kind, note) VALUES(?, ?, ?, ?, ?)"
	if _, err := tx.ExecContext(ctx, statement, accountID, ledger.Today(), balance, string(ledger.Initial), openingNote); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return a.FindByService(userID, create.ServiceType)
}

// UpdateBalance replaces the stored balance and appends the derived
// transaction in one transaction. Ownership is enforced by filtering on
// user_id; a foreign account reads as absent.
func (a *AccountRepoMysql) UpdateBalance(userID, accountID int, newBalance decimal.Decimal, date string) ([]model.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := a.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var serviceType string
	var oldBalance decimal.Decimal
	statement := "SELECT service_type, balance FROM accounts WHERE id = ? AND user_id = ? FOR UPDATE"
	if err := tx.QueryRowContext(ctx, statement, accountID, userID).Scan(&serviceType, &oldBalance); err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	delta, err := ledger.ComputeDelta(oldBalance, newBalance)
	if err != nil {
		return nil, err
	}

	statement = "INSERT INTO account_transactions(account_id, entry_date, amount, kind, note) VALUES(?, ?, ?, ?, ?)"
	if _, err := tx.ExecContext(ctx, statement, accountID, ledger.Stamp(date), delta.Change.Abs(), string(delta.Kind), updateNote); err != nil {
		return nil, err
	}

	statement = "UPDATE accounts SET balance = ? WHERE id = ?"
	if _, err := tx.ExecContext(ctx, statement, newBalance, accountID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return a.FindByService(userID, serviceType)
}

// Delete removes one owned account and returns the remaining accounts of its
// serviceType. Transactions go with it via the FK cascade.
func (a *AccountRepoMysql) Delete(userID, accountID int) ([]model.Account, error) {
	var serviceType string
	statement := "SELECT service_type FROM accounts WHERE id = ? AND user_id = ?"
	err := a.db.QueryRow(statement, accountID, userID).Scan(&serviceType)
	if err == sql.ErrNoRows {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	statement = "DELETE FROM accounts WHERE id = ? AND user_id = ?"
	if _, err := a.db.Exec(statement, accountID, userID); err != nil {
		return nil, err
	}

	return a.FindByService(userID, serviceType)
}

func (a *AccountRepoMysql) FindByService(userID int, serviceType string) ([]model.Account, error) {
	statement := `SELECT id, user_id, service_type, account_name, account_number, balance
					FROM accounts
					WHERE user_id = ? AND service_type = ?
					ORDER BY id`
	rows, err := a.db.Query(statement, userID, serviceType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []model.Account{}
	for rows.Next() {
		var account model.Account
		err := rows.Scan(&account.ID, &account.UserID, &account.ServiceType, &account.AccountName, &account.AccountNumber, &account.Balance)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range accounts {
		accounts[i].Transactions, err = a.transactions(accounts[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return accounts, nil
}

// transactions returns entries oldest first.
func (a *AccountRepoMysql) transactions(accountID int) ([]model.AccountTransaction, error) {
	statement := `SELECT id, entry_date, amount, kind, note
					FROM account_transactions
					WHERE account_id = ?
					ORDER BY id`
	rows, err := a.db.Query(statement, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []model.AccountTransaction{}
	for rows.Next() {
		var t model.AccountTransaction
		err := rows.Scan(&t.ID, &t.Date, &t.Amount, &t.Kind, &t.Note)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return transactions, nil
}
