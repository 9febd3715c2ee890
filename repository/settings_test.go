package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/rashedkhan/hisab/model"
)

func TestSettingsRepoMysql_Get(t *testing.T) {
	t.Run("first access creates the defaults row", func(t *testing.T) {
		db, mock := NewMock()
		defer db.Close()
		repo := NewSettingsRepoMysql(db)

		mock.ExpectQuery("SELECT id, header_logo_url, app_name FROM settings").
			WillReturnRows(sqlmock.NewRows([]string{"id", "header_logo_url", "app_name"}))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO settings() VALUES()")).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectQuery("SELECT id, header_logo_url, app_name FROM settings").
			WillReturnRows(sqlmock.NewRows([]string{"id", "header_logo_url", "app_name"}).
				AddRow(1, "/app-logo/logo.png", "Rashed Store"))

		settings, err := repo.Get()

		assert.NoError(t, err)
		assert.Equal(t, "Rashed Store", settings.AppName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSettingsRepoMysql_Update(t *testing.T) {
	t.Run("only supplied fields change", func(t *testing.T) {
		db, mock := NewMock()
		defer db.Close()
		repo := NewSettingsRepoMysql(db)

		mock.ExpectQuery("SELECT id, header_logo_url, app_name FROM settings").
			WillReturnRows(sqlmock.NewRows([]string{"id", "header_logo_url", "app_name"}).
				AddRow(1, "/app-logo/logo.png", "Rashed Store"))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE settings SET header_logo_url = ?, app_name = ? WHERE id = ?")).
			WithArgs("/app-logo/logo.png", "Karim Store", 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		settings, err := repo.Update(&model.SettingsUpdate{AppName: "Karim Store"})

		assert.NoError(t, err)
		assert.Equal(t, "Karim Store", settings.AppName)
		assert.Equal(t, "/app-logo/logo.png", settings.HeaderLogoURL)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSettingsRepoMysql_Cleanup(t *testing.T) {
	db, mock := NewMock()
	defer db.Close()
	repo := NewSettingsRepoMysql(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM cash_history").WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("UPDATE cash SET current_balance = 0").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM account_transactions").WillReturnResult(sqlmock.NewResult(0, 6))
	mock.ExpectExec("UPDATE accounts SET balance = 0").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM due_items").WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectCommit()

	err := repo.Cleanup()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
