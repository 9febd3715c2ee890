package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"

	"github.com/rashedkhan/hisab/model"
)

func TestUserRepoMysql_FindByPhone(t *testing.T) {
	t.Run("user exists", func(t *testing.T) {
		db, mock := NewMock()
		defer db.Close()
		repo := NewUserRepoMysql(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, phone, password, is_admin FROM users WHERE phone = ?")).
			WithArgs("01712345678").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "password", "is_admin"}).
				AddRow(1, "Rashed", "01712345678", "hash", false))

		user, err := repo.FindByPhone("01712345678")

		assert.NoError(t, err)
		assert.Equal(t, "Rashed", user.Name)
	})
	t.Run("user does not exist", func(t *testing.T) {
		db, mock := NewMock()
		defer db.Close()
		repo := NewUserRepoMysql(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, phone, password, is_admin FROM users WHERE phone = ?")).
			WithArgs("01700000000").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "password", "is_admin"}))

		_, err := repo.FindByPhone("01700000000")

		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestUserRepoMysql_Create(t *testing.T) {
	t.Run("assigns the new id", func(t *testing.T) {
		db, mock := NewMock()
		defer db.Close()
		repo := NewUserRepoMysql(db)

		mock.ExpectExec("INSERT INTO users").
			WithArgs("Rashed", "01712345678", "hash", false).
			WillReturnResult(sqlmock.NewResult(4, 1))

		user, err := repo.Create(&model.User{Name: "Rashed", Phone: "01712345678", Password: "hash"})

		assert.NoError(t, err)
		assert.Equal(t, 4, user.ID)
	})
	t.Run("duplicate phone", func(t *testing.T) {
		db, mock := NewMock()
		defer db.Close()
		repo := NewUserRepoMysql(db)

		mock.ExpectExec("INSERT INTO users").
			WithArgs("Rashed", "01712345678", "hash", false).
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

		_, err := repo.Create(&model.User{Name: "Rashed", Phone: "01712345678", Password: "hash"})

		assert.ErrorIs(t, err, model.ErrDuplicatePhone)
	})
}
