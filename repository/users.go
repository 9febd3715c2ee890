package repository

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/rashedkhan/hisab/model"
)

const mysqlDuplicateEntry = 1062

type UserRepoMysql struct {
	db *sql.DB
}

func NewUserRepoMysql(db *sql.DB) *UserRepoMysql {
	return &UserRepoMysql{db: db}
}

func (u *UserRepoMysql) FindByID(id int) (*model.User, error) {
	user := &model.User{}
	statement := "SELECT id, name, phone, password, is_admin FROM users WHERE id = ?"
	err := u.db.QueryRow(statement, id).Scan(&user.ID, &user.Name, &user.Phone, &user.Password, &user.IsAdmin)
	if err == sql.ErrNoRows {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserRepoMysql) FindByPhone(phone string) (*model.User, error) {
	user := &model.User{}
	statement := "SELECT id, name, phone, password, is_admin FROM users WHERE phone = ?"
	err := u.db.QueryRow(statement, phone).Scan(&user.ID, &user.Name, &user.Phone, &user.Password, &user.IsAdmin)
	if err == sql.ErrNoRows {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create inserts the user; the unique key on phone reports an already
// registered number as ErrDuplicatePhone.
func (u *UserRepoMysql) Create(user *model.User) (*model.User, error) {
	statement := "INSERT INTO users(name, phone, password, is_admin) VALUES(?, ?, ?, ?)"
	result, err := u.db.Exec(statement, user.Name, user.Phone, user.Password, user.IsAdmin)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return nil, model.ErrDuplicatePhone
		}
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	user.ID = int(id)
	return user, nil
}

func (u *UserRepoMysql) Update(user *model.User) error {
	statement := "UPDATE users SET name = ?, phone = ?, password = ? WHERE id = ?"
	_, err := u.db.Exec(statement, user.Name, user.Phone, user.Password, user.ID)
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return model.ErrDuplicatePhone
	}
	return err
}
