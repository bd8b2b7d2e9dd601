package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fueleu/banking/internal/domain"
)

// StatusUseCase assembles read-only banking status reports. Reports are
// advisory snapshots: the underlying balances may change immediately after
// being read, so results may be served from a short-lived cache.
type StatusUseCase struct {
	complianceRepo ComplianceRepository
	bankRepo       BankEntryRepository
	cache          Cache
}

// NewStatusUseCase creates a new StatusUseCase. cache is optional.
func NewStatusUseCase(complianceRepo ComplianceRepository, bankRepo BankEntryRepository, cache Cache) *StatusUseCase {
	return &StatusUseCase{
		complianceRepo: complianceRepo,
		bankRepo:       bankRepo,
		cache:          cache,
	}
}

// YearBreakdown summarizes a ship's banking activity in a single year.
type YearBreakdown struct {
	Year         int
	Banked       decimal.Decimal
	Applied      decimal.Decimal
	Transactions int
	Entries      []*domain.BankEntry
}

// BankingStatusReport aggregates a ship-year's compliance balance with the
// ship-wide banking totals and entry history.
type BankingStatusReport struct {
	ShipID          string
	Message         string
	Status          domain.CBStatus
	ThisYear        []*domain.BankEntry
	OtherYears      []YearBreakdown
	AllHistory      []*domain.BankEntry
	Year            int
	CurrentCB       decimal.Decimal
	TotalBanked     decimal.Decimal
	TotalApplied    decimal.Decimal
	AvailableBanked decimal.Decimal
	Exists          bool
}

// GetBankingStatus builds the status report for a ship-year. A missing
// compliance record yields Exists=false rather than an error: status queries
// are informational and must not fail just because CB has not been computed.
func (uc *StatusUseCase) GetBankingStatus(ctx context.Context, shipID string, year int) (*BankingStatusReport, error) {
	if err := domain.ValidateShipID(shipID); err != nil {
		return nil, err
	}

	if err := domain.ValidateYear(year); err != nil {
		return nil, err
	}

	if cached := uc.fromCache(ctx, shipID, year); cached != nil {
		return cached, nil
	}

	report := &BankingStatusReport{
		ShipID:          shipID,
		Year:            year,
		Status:          domain.StatusNeutral,
		CurrentCB:       decimal.Zero,
		TotalBanked:     decimal.Zero,
		TotalApplied:    decimal.Zero,
		AvailableBanked: decimal.Zero,
	}

	record, err := uc.complianceRepo.Get(ctx, shipID, year)
	switch {
	case errors.Is(err, domain.ErrComplianceNotFound):
		report.Message = fmt.Sprintf("No compliance record found for ship %s in year %d. Compute CB first.", shipID, year)
	case err != nil:
		return nil, err
	default:
		report.Exists = true
		report.CurrentCB = record.CBGco2eq
		report.Status = record.Status()
	}

	history, err := uc.bankRepo.ListByShip(ctx, shipID)
	if err != nil {
		return nil, err
	}

	report.AllHistory = history

	byYear := make(map[int]*YearBreakdown)

	for _, entry := range history {
		amount := entry.AmountGco2eq

		if amount.IsPositive() {
			report.TotalBanked = report.TotalBanked.Add(amount)
		} else {
			report.TotalApplied = report.TotalApplied.Add(amount.Abs())
		}

		if entry.Year == year {
			report.ThisYear = append(report.ThisYear, entry)
			continue
		}

		b, ok := byYear[entry.Year]
		if !ok {
			b = &YearBreakdown{
				Year:    entry.Year,
				Banked:  decimal.Zero,
				Applied: decimal.Zero,
			}
			byYear[entry.Year] = b
		}

		b.Transactions++
		b.Entries = append(b.Entries, entry)

		if amount.IsPositive() {
			b.Banked = b.Banked.Add(amount)
		} else {
			b.Applied = b.Applied.Add(amount.Abs())
		}
	}

	report.AvailableBanked = report.TotalBanked.Sub(report.TotalApplied)

	for _, b := range byYear {
		report.OtherYears = append(report.OtherYears, *b)
	}

	sort.Slice(report.OtherYears, func(i, j int) bool {
		return report.OtherYears[i].Year > report.OtherYears[j].Year
	})

	uc.toCache(ctx, shipID, year, report)

	return report, nil
}

func (uc *StatusUseCase) fromCache(ctx context.Context, shipID string, year int) *BankingStatusReport {
	if uc.cache == nil {
		return nil
	}

	raw, err := uc.cache.Get(ctx, statusCacheKey(shipID, year))
	if err != nil {
		return nil
	}

	var report BankingStatusReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return nil
	}

	return &report
}

func (uc *StatusUseCase) toCache(ctx context.Context, shipID string, year int, report *BankingStatusReport) {
	if uc.cache == nil {
		return
	}

	raw, err := json.Marshal(report)
	if err != nil {
		return
	}

	_ = uc.cache.Set(ctx, statusCacheKey(shipID, year), string(raw), StatusCacheTTL)
}
