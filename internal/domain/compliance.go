package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CBStatus classifies a compliance balance by sign.
type CBStatus string

const (
	StatusSurplus CBStatus = "SURPLUS"
	StatusDeficit CBStatus = "DEFICIT"
	StatusNeutral CBStatus = "NEUTRAL"
)

// ComplianceRecord holds a ship's compliance balance for a single year.
// Records are produced by the CB computation pipeline; the banking service
// only ever adjusts the balance through validated banking transitions.
type ComplianceRecord struct {
	ShipID   string
	Year     int
	CBGco2eq decimal.Decimal
}

// Status returns the sign classification of the current balance.
func (r *ComplianceRecord) Status() CBStatus {
	switch {
	case r.CBGco2eq.IsPositive():
		return StatusSurplus
	case r.CBGco2eq.IsNegative():
		return StatusDeficit
	default:
		return StatusNeutral
	}
}

// Deficit returns the magnitude of the deficit, or zero for non-negative balances.
func (r *ComplianceRecord) Deficit() decimal.Decimal {
	if r.CBGco2eq.IsNegative() {
		return r.CBGco2eq.Abs()
	}

	return decimal.Zero
}

// ValidateBank checks that amount can be banked out of this record's surplus.
func (r *ComplianceRecord) ValidateBank(amount decimal.Decimal) error {
	if r.CBGco2eq.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: ship %s has CB of %s gCO2eq in %d",
			ErrNoSurplus, r.ShipID, r.CBGco2eq.StringFixed(2), r.Year)
	}

	if amount.GreaterThan(r.CBGco2eq) {
		return fmt.Errorf("%w: cannot bank %s gCO2eq, ship %s only has %s gCO2eq surplus",
			ErrAmountExceedsSurplus, amount.StringFixed(2), r.ShipID, r.CBGco2eq.StringFixed(2))
	}

	return nil
}

// ValidateApply checks that amount can be applied against this record's
// deficit given the ship's available banked balance.
func (r *ComplianceRecord) ValidateApply(amount, availableBanked decimal.Decimal) error {
	if r.CBGco2eq.GreaterThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: ship %s has CB of %s gCO2eq in %d",
			ErrNoDeficit, r.ShipID, r.CBGco2eq.StringFixed(2), r.Year)
	}

	if availableBanked.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: ship %s has no banked surplus to apply",
			ErrNoBankedSurplus, r.ShipID)
	}

	if amount.GreaterThan(availableBanked) {
		return fmt.Errorf("%w: requested %s gCO2eq but only %s gCO2eq is banked for ship %s",
			ErrInsufficientBankedSurplus, amount.StringFixed(2), availableBanked.StringFixed(2), r.ShipID)
	}

	if deficit := r.Deficit(); amount.GreaterThan(deficit) {
		return fmt.Errorf("%w: requested %s gCO2eq but the %d deficit is only %s gCO2eq",
			ErrAmountExceedsDeficit, amount.StringFixed(2), r.Year, deficit.StringFixed(2))
	}

	return nil
}

// ApplyDelta returns the balance after applying a signed CB delta.
func (r *ComplianceRecord) ApplyDelta(delta decimal.Decimal) decimal.Decimal {
	return r.CBGco2eq.Add(delta)
}
