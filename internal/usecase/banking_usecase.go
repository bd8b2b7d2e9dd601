package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fueleu/banking/internal/domain"
	"github.com/fueleu/banking/internal/infrastructure/metrics"
)

// BankingUseCase orchestrates compliance-balance banking transitions. It is
// the sole mutator of both the ledger and the compliance store: every
// operation locks the ship, validates against the current CB and the current
// available bank, appends a ledger entry and writes back the CB inside one
// transaction.
type BankingUseCase struct {
	txManager      TransactionManager
	locker         ShipLocker
	bankRepo       BankEntryRepository
	complianceRepo ComplianceRepository
	idGen          IDGenerator
	retrier        Retrier
	cache          Cache
	metrics        *metrics.Metrics
}

// NewBankingUseCase creates a new BankingUseCase. retrier, cache and metrics
// are optional.
func NewBankingUseCase(
	txManager TransactionManager,
	locker ShipLocker,
	bankRepo BankEntryRepository,
	complianceRepo ComplianceRepository,
	idGen IDGenerator,
	retrier Retrier,
	cache Cache,
	m *metrics.Metrics,
) *BankingUseCase {
	return &BankingUseCase{
		txManager:      txManager,
		locker:         locker,
		bankRepo:       bankRepo,
		complianceRepo: complianceRepo,
		idGen:          idGen,
		retrier:        retrier,
		cache:          cache,
		metrics:        m,
	}
}

// BankingOperationInput represents a requested banking operation.
type BankingOperationInput struct {
	ShipID string
	Year   int
	Amount decimal.Decimal
}

func (in BankingOperationInput) validate() error {
	if err := domain.ValidateShipID(in.ShipID); err != nil {
		return err
	}

	if err := domain.ValidateYear(in.Year); err != nil {
		return err
	}

	return domain.ValidateAmount(in.Amount)
}

// BankingResult is the outcome of a successful banking operation.
type BankingResult struct {
	Entry           *domain.BankEntry
	Message         string
	CBBefore        decimal.Decimal
	CBAfter         decimal.Decimal
	Applied         decimal.Decimal
	BankBefore      decimal.Decimal
	RemainingBanked decimal.Decimal
}

// BankSurplus moves amount from the ship-year's surplus into the ship-wide
// banked pool. Only strictly positive balances are bankable, and at most the
// full surplus can be banked in one call.
func (uc *BankingUseCase) BankSurplus(ctx context.Context, input BankingOperationInput) (*BankingResult, error) {
	start := time.Now()

	if err := input.validate(); err != nil {
		uc.recordOperation("bank", "rejected")
		return nil, err
	}

	var result *BankingResult

	err := uc.withRetry(ctx, func() error {
		var err error
		result, err = uc.bankSurplusTx(ctx, input)
		return err
	})
	if err != nil {
		uc.recordOperation("bank", outcomeLabel(err))
		return nil, err
	}

	uc.recordOperation("bank", "success")
	uc.observeOperation("bank", result, time.Since(start))
	uc.invalidateStatus(ctx, input.ShipID, input.Year)

	return result, nil
}

func (uc *BankingUseCase) bankSurplusTx(ctx context.Context, input BankingOperationInput) (*BankingResult, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.locker.LockShip(ctx, tx, input.ShipID); err != nil {
		return nil, err
	}

	record, err := uc.complianceRepo.GetForUpdate(ctx, tx, input.ShipID, input.Year)
	if err != nil {
		if errors.Is(err, domain.ErrComplianceNotFound) {
			return nil, fmt.Errorf("%w for ship %s in year %d: compute CB first",
				domain.ErrComplianceNotFound, input.ShipID, input.Year)
		}

		return nil, err
	}

	if err := record.ValidateBank(input.Amount); err != nil {
		return nil, err
	}

	bankBefore, err := uc.bankRepo.SumAvailableTx(ctx, tx, input.ShipID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	cbBefore := record.CBGco2eq
	cbAfter := record.ApplyDelta(input.Amount.Neg())

	entry := &domain.BankEntry{
		ID:              uc.idGen.Generate(),
		ShipID:          input.ShipID,
		Year:            input.Year,
		AmountGco2eq:    input.Amount,
		CBBefore:        &cbBefore,
		CBAfter:         &cbAfter,
		TransactionType: domain.TransactionBank,
		CreatedAt:       now,
	}

	if err := uc.bankRepo.Create(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := uc.complianceRepo.UpdateCB(ctx, tx, input.ShipID, input.Year, cbAfter, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &BankingResult{
		Entry:           entry,
		Message:         "Surplus banked successfully",
		CBBefore:        cbBefore,
		CBAfter:         cbAfter,
		Applied:         input.Amount.Neg(),
		BankBefore:      bankBefore,
		RemainingBanked: bankBefore.Add(input.Amount),
	}, nil
}

// ApplyBankedSurplus draws amount from the ship-wide banked pool to offset
// the ship-year's deficit. Requests exceeding the deficit or the available
// bank are rejected outright rather than clamped.
func (uc *BankingUseCase) ApplyBankedSurplus(ctx context.Context, input BankingOperationInput) (*BankingResult, error) {
	start := time.Now()

	if err := input.validate(); err != nil {
		uc.recordOperation("apply", "rejected")
		return nil, err
	}

	var result *BankingResult

	err := uc.withRetry(ctx, func() error {
		var err error
		result, err = uc.applyBankedSurplusTx(ctx, input)
		return err
	})
	if err != nil {
		uc.recordOperation("apply", outcomeLabel(err))
		return nil, err
	}

	uc.recordOperation("apply", "success")
	uc.observeOperation("apply", result, time.Since(start))
	uc.invalidateStatus(ctx, input.ShipID, input.Year)

	return result, nil
}

func (uc *BankingUseCase) applyBankedSurplusTx(ctx context.Context, input BankingOperationInput) (*BankingResult, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.locker.LockShip(ctx, tx, input.ShipID); err != nil {
		return nil, err
	}

	record, err := uc.complianceRepo.GetForUpdate(ctx, tx, input.ShipID, input.Year)
	if err != nil {
		if errors.Is(err, domain.ErrComplianceNotFound) {
			return nil, fmt.Errorf("%w for ship %s in year %d",
				domain.ErrComplianceNotFound, input.ShipID, input.Year)
		}

		return nil, err
	}

	availableBanked, err := uc.bankRepo.SumAvailableTx(ctx, tx, input.ShipID)
	if err != nil {
		return nil, err
	}

	if err := record.ValidateApply(input.Amount, availableBanked); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	cbBefore := record.CBGco2eq
	cbAfter := record.ApplyDelta(input.Amount)

	entry := &domain.BankEntry{
		ID:              uc.idGen.Generate(),
		ShipID:          input.ShipID,
		Year:            input.Year,
		AmountGco2eq:    input.Amount.Neg(),
		CBBefore:        &cbBefore,
		CBAfter:         &cbAfter,
		TransactionType: domain.TransactionApply,
		CreatedAt:       now,
	}

	if err := uc.bankRepo.Create(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := uc.complianceRepo.UpdateCB(ctx, tx, input.ShipID, input.Year, cbAfter, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &BankingResult{
		Entry:           entry,
		Message:         "Banked surplus applied successfully",
		CBBefore:        cbBefore,
		CBAfter:         cbAfter,
		Applied:         input.Amount,
		BankBefore:      availableBanked,
		RemainingBanked: availableBanked.Sub(input.Amount),
	}, nil
}

func (uc *BankingUseCase) withRetry(ctx context.Context, operation func() error) error {
	if uc.retrier == nil {
		return operation()
	}

	return uc.retrier.Retry(ctx, operation)
}

func (uc *BankingUseCase) invalidateStatus(ctx context.Context, shipID string, year int) {
	if uc.cache == nil {
		return
	}

	// Best effort. Stale entries for other years of the same ship expire via TTL.
	_ = uc.cache.Delete(ctx, statusCacheKey(shipID, year))
}

func (uc *BankingUseCase) recordOperation(operation, outcome string) {
	if uc.metrics != nil {
		uc.metrics.BankingOperations.WithLabelValues(operation, outcome).Inc()
	}
}

func (uc *BankingUseCase) observeOperation(operation string, result *BankingResult, elapsed time.Duration) {
	if uc.metrics == nil {
		return
	}

	uc.metrics.BankingAmount.WithLabelValues(operation).Observe(result.Applied.Abs().InexactFloat64())
	uc.metrics.BankingDuration.Observe(elapsed.Seconds())
	uc.metrics.AvailableBanked.WithLabelValues(result.Entry.ShipID).Set(result.RemainingBanked.InexactFloat64())
	uc.metrics.EntriesCreated.Inc()
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrComplianceNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrNoSurplus),
		errors.Is(err, domain.ErrNoDeficit),
		errors.Is(err, domain.ErrNoBankedSurplus),
		errors.Is(err, domain.ErrInsufficientBankedSurplus),
		errors.Is(err, domain.ErrAmountExceedsSurplus),
		errors.Is(err, domain.ErrAmountExceedsDeficit):
		return "rejected"
	default:
		return "error"
	}
}

func statusCacheKey(shipID string, year int) string {
	return fmt.Sprintf("banking:status:%s:%d", shipID, year)
}
