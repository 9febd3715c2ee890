package model

import (
	"github.com/rashedkhan/hisab/ledger"
	"github.com/shopspring/decimal"
)

// CashLedger is the single cash-on-hand record a user owns.
type CashLedger struct {
	ID             int                `json:"id"`
	UserID         int                `json:"userId"`
	CurrentBalance decimal.Decimal    `json:"currentBalance"`
	History        []CashHistoryEntry `json:"history"`
}

// CashHistoryEntry is an independent snapshot of one balance change,
// newest first in CashLedger.History.
type CashHistoryEntry struct {
	ID         int             `json:"id"`
	Date       string          `json:"date"`
	OldBalance decimal.Decimal `json:"oldBalance"`
	NewBalance decimal.Decimal `json:"newBalance"`
	Change     decimal.Decimal `json:"change"`
	Kind       ledger.Kind     `json:"type"`
}

type CashUpdate struct {
	NewBalance *decimal.Decimal `json:"newBalance" validate:"required"`
	Date       string           `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
