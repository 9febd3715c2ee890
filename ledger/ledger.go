// Package ledger holds the balance-change rules shared by every
// balance-bearing entity: how a requested balance turns into a signed
// change with a credit/debit label, and how cumulative due adjustments
// are applied.
package ledger

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Kind labels a history or transaction record.
type Kind string

const (
	Credit  Kind = "credit"
	Debit   Kind = "debit"
	Initial Kind = "initial"
)

var (
	// ErrNoChange means the requested balance equals the stored one.
	ErrNoChange = errors.New("balance unchanged")
	// ErrInvalidAmount means the amount cannot be stored as a currency value.
	ErrInvalidAmount = errors.New("invalid amount")
)

// maxAmount is the ceiling of the DECIMAL(18,2) columns holding balances.
var maxAmount = decimal.New(1, 16)

// Delta is the outcome of comparing a requested balance with the stored one.
type Delta struct {
	Change decimal.Decimal // signed: requested - previous
	Kind   Kind
}

// ComputeDelta derives the signed change between the stored balance and the
// requested one. A zero delta is rejected with ErrNoChange; the caller must
// not persist anything in that case.
func ComputeDelta(previous, requested decimal.Decimal) (Delta, error) {
	change := requested.Sub(previous)
	if change.IsZero() {
		return Delta{}, ErrNoChange
	}

	kind := Credit
	if change.IsNegative() {
		kind = Debit
	}
	return Delta{Change: change, Kind: kind}, nil
}

// ComputeAdjustment adds a signed adjustment to a due amount. Dues
// accumulate: the adjustment is added to the stored amount, never replaces
// it, and the result may be zero or negative.
func ComputeAdjustment(previous, adjustment decimal.Decimal) (decimal.Decimal, error) {
	next := previous.Add(adjustment)
	if next.Abs().GreaterThanOrEqual(maxAmount) {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return next, nil
}

const dateLayout = "2006-01-02"

// Today returns the server-local calendar date as YYYY-MM-DD.
func Today() string {
	return time.Now().Format(dateLayout)
}

// Stamp returns the supplied calendar date, or today's when none was given.
// Format validation happens at the request boundary.
func Stamp(date string) string {
	if date != "" {
		return date
	}
	return Today()
}
