package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fueleu/banking/internal/domain"
)

// BankEntryRepository defines data access for the banking ledger.
// The ledger is append-only: entries are never updated or deleted.
type BankEntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.BankEntry) error
	ListByShipYear(ctx context.Context, shipID string, year int) ([]*domain.BankEntry, error)
	ListByShip(ctx context.Context, shipID string) ([]*domain.BankEntry, error)
	ListAll(ctx context.Context) ([]*domain.BankEntry, error)
	SumAvailable(ctx context.Context, shipID string) (decimal.Decimal, error)
	SumAvailableTx(ctx context.Context, tx Transaction, shipID string) (decimal.Decimal, error)
}

// ComplianceRepository defines data access for compliance balances.
type ComplianceRepository interface {
	Get(ctx context.Context, shipID string, year int) (*domain.ComplianceRecord, error)
	GetForUpdate(ctx context.Context, tx Transaction, shipID string, year int) (*domain.ComplianceRecord, error)
	UpdateCB(ctx context.Context, tx Transaction, shipID string, year int, cb decimal.Decimal, updatedAt time.Time) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// ShipLocker serializes banking mutations per ship for the duration of a
// transaction. The banked pool is ship-wide, so the lock covers all years.
type ShipLocker interface {
	LockShip(ctx context.Context, tx Transaction, shipID string) error
}

// Retrier retries an operation on transient persistence failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Remove releases a key so the operation can be retried.
	Remove(ctx context.Context, key string) error
}
