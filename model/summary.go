package model

import "github.com/shopspring/decimal"

// Summary is the read-only aggregation across the three ledger kinds.
type Summary struct {
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	Details        SummaryDetails  `json:"details"`
}

type SummaryDetails struct {
	Cash     decimal.Decimal `json:"cash"`
	Accounts decimal.Decimal `json:"accounts"`
	Dues     decimal.Decimal `json:"dues"`
}
