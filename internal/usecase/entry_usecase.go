package usecase

import (
	"context"
	"time"

	"github.com/fueleu/banking/internal/domain"
)

// EntryUseCase handles ledger query operations and raw appends.
type EntryUseCase struct {
	txManager TransactionManager
	bankRepo  BankEntryRepository
	idGen     IDGenerator
}

// NewEntryUseCase creates a new EntryUseCase.
func NewEntryUseCase(txManager TransactionManager, bankRepo BankEntryRepository, idGen IDGenerator) *EntryUseCase {
	return &EntryUseCase{
		txManager: txManager,
		bankRepo:  bankRepo,
		idGen:     idGen,
	}
}

// GetBankEntries lists entries for a ship and year, most recent first.
func (uc *EntryUseCase) GetBankEntries(ctx context.Context, shipID string, year int) ([]*domain.BankEntry, error) {
	if err := domain.ValidateShipID(shipID); err != nil {
		return nil, err
	}

	if err := domain.ValidateYear(year); err != nil {
		return nil, err
	}

	return uc.bankRepo.ListByShipYear(ctx, shipID, year)
}

// GetBankRecords lists every entry in the system, most recent first.
func (uc *EntryUseCase) GetBankRecords(ctx context.Context) ([]*domain.BankEntry, error) {
	return uc.bankRepo.ListAll(ctx)
}

// GetShipBankingHistory lists a ship's entries across all years, most recent first.
func (uc *EntryUseCase) GetShipBankingHistory(ctx context.Context, shipID string) ([]*domain.BankEntry, error) {
	if err := domain.ValidateShipID(shipID); err != nil {
		return nil, err
	}

	return uc.bankRepo.ListByShip(ctx, shipID)
}

// AddBankEntry appends a raw entry without balance validation. Used for data
// migration and seeding; regular banking goes through BankingUseCase.
func (uc *EntryUseCase) AddBankEntry(ctx context.Context, entry *domain.BankEntry) (*domain.BankEntry, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := domain.ValidateYear(entry.Year); err != nil {
		return nil, err
	}

	entry.Normalize()

	if entry.ID == "" {
		entry.ID = uc.idGen.Generate()
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.bankRepo.Create(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}
