package domain

import "errors"

var (
	// Banking errors
	ErrInvalidAmount             = errors.New("amount must be positive")
	ErrComplianceNotFound        = errors.New("no compliance record found")
	ErrNoSurplus                 = errors.New("banking is only allowed when CB > 0")
	ErrNoDeficit                 = errors.New("banked surplus can only be applied against a deficit")
	ErrNoBankedSurplus           = errors.New("no banked surplus available")
	ErrInsufficientBankedSurplus = errors.New("amount exceeds available banked surplus")
	ErrAmountExceedsSurplus      = errors.New("amount exceeds current surplus")
	ErrAmountExceedsDeficit      = errors.New("amount exceeds current deficit")

	// Ledger errors
	ErrInvalidYear     = errors.New("invalid compliance year")
	ErrEmptyShipID     = errors.New("ship ID must not be empty")
	ErrShipIDTooLong   = errors.New("ship ID too long")
	ErrZeroAmountEntry = errors.New("bank entry amount must not be zero")
)
