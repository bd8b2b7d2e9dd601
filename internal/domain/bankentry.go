package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a bank entry as a deposit or a withdrawal.
type TransactionType string

const (
	TransactionBank  TransactionType = "BANK"
	TransactionApply TransactionType = "APPLY"
)

// BankEntry represents a single banking transaction in a ship's ledger.
// Amounts are signed: positive entries bank surplus, negative entries apply
// previously banked surplus. Entries are immutable once created; corrections
// are made by appending offsetting entries.
type BankEntry struct {
	CreatedAt       time.Time
	ID              string
	ShipID          string
	TransactionType TransactionType
	CBBefore        *decimal.Decimal
	CBAfter         *decimal.Decimal
	Year            int
	AmountGco2eq    decimal.Decimal
}

// Type returns the canonical transaction type, deriving it from the amount
// sign for legacy entries created before the type was tracked.
func (e *BankEntry) Type() TransactionType {
	if e.TransactionType != "" {
		return e.TransactionType
	}

	if e.AmountGco2eq.IsNegative() {
		return TransactionApply
	}

	return TransactionBank
}

// Normalize stores the canonical transaction type on the entry.
func (e *BankEntry) Normalize() {
	e.TransactionType = e.Type()
}

// Validate checks the structural invariants of an entry before it is appended.
func (e *BankEntry) Validate() error {
	if e.ShipID == "" {
		return ErrEmptyShipID
	}

	if e.AmountGco2eq.IsZero() {
		return ErrZeroAmountEntry
	}

	return nil
}
