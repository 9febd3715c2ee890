package model

import (
	"github.com/rashedkhan/hisab/ledger"
	"github.com/shopspring/decimal"
)

// ServiceTypes is the closed set of account groupings the client offers.
var ServiceTypes = []string{"bkash", "nagad", "rocket", "upay", "bank", "sim"}

func IsServiceType(s string) bool {
	for _, t := range ServiceTypes {
		if s == t {
			return true
		}
	}
	return false
}

// Account is one bank, mobile-wallet or SIM balance a user tracks.
type Account struct {
	ID            int                  `json:"id"`
	UserID        int                  `json:"userId"`
	ServiceType   string               `json:"serviceType"`
	AccountName   string               `json:"accountName,omitempty"`
	AccountNumber string               `json:"accountNumber"`
	Balance       decimal.Decimal      `json:"balance"`
	Transactions  []AccountTransaction `json:"transactions"`
}

// AccountTransaction records one balance change, oldest first. Amount is the
// magnitude of the change; Kind carries the sign.
type AccountTransaction struct {
	ID     int             `json:"id"`
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Kind   ledger.Kind     `json:"type"`
	Note   string          `json:"note,omitempty"`
}

type CreateAccount struct {
	ServiceType   string           `json:"serviceType" validate:"required,oneof=bkash nagad rocket upay bank sim"`
	AccountName   string           `json:"accountName,omitempty" validate:"omitempty,max=64"`
	AccountNumber string           `json:"accountNumber" validate:"required,max=32"`
	Balance       *decimal.Decimal `json:"balance"`
}

type AccountUpdate struct {
	NewBalance *decimal.Decimal `json:"newBalance" validate:"required"`
	Date       string           `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
