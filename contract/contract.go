package contract

import (
	"github.com/rashedkhan/hisab/model"
	"github.com/shopspring/decimal"
)

type UserRepo interface {
	FindByID(id int) (*model.User, error)
	FindByPhone(phone string) (*model.User, error)
	Create(user *model.User) (*model.User, error)
	Update(user *model.User) error
}

type CashRepo interface {
	GetOrCreate(userID int) (*model.CashLedger, error)
	UpdateBalance(userID int, newBalance decimal.Decimal, date string) (*model.CashLedger, error)
}

type AccountRepo interface {
	Create(userID int, create *model.CreateAccount) ([]model.Account, error)
	FindByService(userID int, serviceType string) ([]model.Account, error)
	UpdateBalance(userID, accountID int, newBalance decimal.Decimal, date string) ([]model.Account, error)
	Delete(userID, accountID int) ([]model.Account, error)
}

type DueRepo interface {
	Items(userID int) ([]model.DueItem, error)
	AddItem(userID int, name string, amount decimal.Decimal) ([]model.DueItem, error)
	AdjustItem(userID, itemID int, adjustment decimal.Decimal) ([]model.DueItem, error)
	DeleteItem(userID, itemID int) ([]model.DueItem, error)
}

type SettingsRepo interface {
	Get() (*model.Settings, error)
	Update(update *model.SettingsUpdate) (*model.Settings, error)
	Cleanup() error
}

type SummaryRepo interface {
	Summarize(userID int) (*model.Summary, error)
}
