package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a banking transaction.
	// This prevents a stuck ship lock from blocking other requests indefinitely.
	DefaultTransactionTimeout = 10 * time.Second

	// StatusCacheTTL is how long banking status reports are cached. Status is
	// advisory, not a reservation, so a short staleness window is acceptable.
	StatusCacheTTL = 15 * time.Second
)
