package model

import "github.com/shopspring/decimal"

// DueItem is money a named third party owes the user. Amount accumulates:
// adjustments add a signed delta instead of replacing the value.
type DueItem struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	LastUpdate string          `json:"lastUpdate"`
}

type DueAdd struct {
	Name   string           `json:"name" validate:"required,max=64"`
	Amount *decimal.Decimal `json:"amount" validate:"required"`
}

type DueAdjust struct {
	Amount *decimal.Decimal `json:"amount" validate:"required"`
}
