package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxShipIDLength = 64
	MinYear         = 2000
	MaxYear         = 2100
	MaxBankAmount   = "1000000000000" // 1 trillion gCO2eq
)

// ValidateShipID validates a vessel identifier.
func ValidateShipID(shipID string) error {
	shipID = strings.TrimSpace(shipID)

	if shipID == "" {
		return ErrEmptyShipID
	}

	if len(shipID) > MaxShipIDLength {
		return fmt.Errorf("%w: exceeds %d characters", ErrShipIDTooLong, MaxShipIDLength)
	}

	return nil
}

// ValidateYear validates a compliance year.
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: %d is outside %d..%d", ErrInvalidYear, year, MinYear, MaxYear)
	}

	return nil
}

// ValidateAmount validates a requested banking amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxBankAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s gCO2eq", ErrInvalidAmount, MaxBankAmount)
	}

	return nil
}
