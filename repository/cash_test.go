package repository

import (
	"database/sql"
	"log"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rashedkhan/hisab/ledger"
)

func NewMock() (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		log.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}

	return db, mock
}

func TestCashRepoMysql_GetOrCreate(t *testing.T) {
	t.Run("first access creates an empty ledger", func(t *testing.T) {
		db, mock := NewMock()
		defer db.Close()
		repo := NewCashRepoMysql(db)

		mock.ExpectExec(regexp.QuoteMeta("INSERT IGNORE INTO cash(user_id, current_balance) VALUES(?, 0)")).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(5, 1))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, current_balance FROM cash WHERE user_id = ?")).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "current_balance"}).AddRow(5, 1, "0.00"))
		mock.ExpectQuery("SELECT id, entry_date, old_balance, new_balance, change_amount, kind").
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{"id", "entry_date", "old_balance", "new_balance", "change_amount", "kind"}))

		cash, err := repo.GetOrCreate(1)

		assert.NoError(t, err)
		assert.True(t, cash.CurrentBalance.IsZero())
		assert.Empty(t, cash.History)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("existing ledger is returned with history newest first", func(t *testing.T) {
		db, mock := NewMock()
		defer db.Close()
		repo := NewCashRepoMysql(db)

		mock.ExpectExec(regexp.QuoteMeta("INSERT IGNORE INTO cash(user_id, current_balance) VALUES(?, 0)")).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, current_balance FROM cash WHERE user_id = ?")).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "current_balance"}).AddRow(5, 1, "1200.00"))
		mock.ExpectQuery("SELECT id, entry_date, old_balance, new_balance, change_amount, kind").
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{"id", "entry_date", "old_balance", "new_balance", "change_amount", "kind"}).
				AddRow(2, "2026-02-01", "500.00", "1200.00", "700.00", "credit").
				AddRow(1, "2026-01-01", "0.00", "500.00", "500.00", "credit"))

		cash, err := repo.GetOrCreate(1)

		assert.NoError(t, err)
		assert.Len(t, cash.History, 2)
		assert.Equal(t, ledger.Credit, cash.History[0].Kind)
		assert.Equal(t, "2026-02-01", cash.History[0].Date)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCashRepoMysql_UpdateBalance(t *testing.T) {
	t.Run("writes balance and history together", func(t *testing.T) {
		db, mock := NewMock()
		defer db.Close()
		repo := NewCashRepoMysql(db)

		mock.ExpectExec(regexp.QuoteMeta("INSERT IGNORE INTO cash(user_id, current_balance) VALUES(?, 0)")).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, current_balance FROM cash WHERE user_id = ? FOR UPDATE")).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "current_balance"}).AddRow(5, "500.00"))
		mock.ExpectExec("INSERT INTO cash_history").
			WithArgs(5, sqlmock.AnyArg(), decimal.RequireFromString("500.00"), decimal.NewFromInt(1200), decimal.NewFromInt(700), "credit").
			WillReturnResult(sqlmock.NewResult(9, 1))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE cash SET current_balance = ? WHERE id = ?")).
			WithArgs(decimal.NewFromInt(1200), 5).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, current_balance FROM cash WHERE user_id = ?")).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "current_balance"}).AddRow(5, 1, "1200.00"))
		mock.ExpectQuery("SELECT id, entry_date, old_balance, new_balance, change_amount, kind").
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{"id", "entry_date", "old_balance", "new_balance", "change_amount", "kind"}).
				AddRow(9, "2026-03-01", "500.00", "1200.00", "700.00", "credit"))

		cash, err := repo.UpdateBalance(1, decimal.NewFromInt(1200), "")

		assert.NoError(t, err)
		assert.Equal(t, "1200", cash.CurrentBalance.String())
		assert.Len(t, cash.History, 1)
		assert.Equal(t, "700", cash.History[0].Change.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("unchanged balance writes nothing", func(t *testing.T) {
		db, mock := NewMock()
		defer db.Close()
		repo := NewCashRepoMysql(db)

		mock.ExpectExec(regexp.QuoteMeta("INSERT IGNORE INTO cash(user_id, current_balance) VALUES(?, 0)")).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, current_balance FROM cash WHERE user_id = ? FOR UPDATE")).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "current_balance"}).AddRow(5, "500.00"))
		mock.ExpectRollback()

		_, err := repo.UpdateBalance(1, decimal.NewFromInt(500), "")

		assert.ErrorIs(t, err, ledger.ErrNoChange)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("debit keeps the requested date", func(t *testing.T) {
		db, mock := NewMock()
		defer db.Close()
		repo := NewCashRepoMysql(db)

		mock.ExpectExec(regexp.QuoteMeta("INSERT IGNORE INTO cash(user_id, current_balance) VALUES(?, 0)")).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, current_balance FROM cash WHERE user_id = ? FOR UPDATE")).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "current_balance"}).AddRow(5, "1200.00"))
		mock.ExpectExec("INSERT INTO cash_history").
			WithArgs(5, "2026-03-15", decimal.RequireFromString("1200.00"), decimal.NewFromInt(900), decimal.NewFromInt(-300), "debit").
			WillReturnResult(sqlmock.NewResult(10, 1))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE cash SET current_balance = ? WHERE id = ?")).
			WithArgs(decimal.NewFromInt(900), 5).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, current_balance FROM cash WHERE user_id = ?")).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "current_balance"}).AddRow(5, 1, "900.00"))
		mock.ExpectQuery("SELECT id, entry_date, old_balance, new_balance, change_amount, kind").
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{"id", "entry_date", "old_balance", "new_balance", "change_amount", "kind"}).
				AddRow(10, "2026-03-15", "1200.00", "900.00", "-300.00", "debit"))

		cash, err := repo.UpdateBalance(1, decimal.NewFromInt(900), "2026-03-15")

		assert.NoError(t, err)
		assert.Equal(t, ledger.Debit, cash.History[0].Kind)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
