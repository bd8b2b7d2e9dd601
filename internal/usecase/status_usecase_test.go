package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/fueleu/banking/internal/domain"
	"github.com/fueleu/banking/internal/usecase"
	"github.com/fueleu/banking/internal/usecase/mocks"
)

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func TestStatusUseCase_GetBankingStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	compRepo := mocks.NewGomockComplianceRepository(ctrl)
	bankRepo := mocks.NewGomockBankEntryRepository(ctrl)

	compRepo.EXPECT().
		Get(gomock.Any(), "R001", 2024).
		Return(&domain.ComplianceRecord{ShipID: "R001", Year: 2024, CBGco2eq: decimal.NewFromInt(600)}, nil)

	history := []*domain.BankEntry{
		{
			ID: "e3", ShipID: "R001", Year: 2025,
			AmountGco2eq:    decimal.NewFromInt(-250),
			TransactionType: domain.TransactionApply,
			CBBefore:        decimalPtr(decimal.NewFromInt(-250)),
			CBAfter:         decimalPtr(decimal.Zero),
			CreatedAt:       time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "e2", ShipID: "R001", Year: 2025,
			AmountGco2eq:    decimal.NewFromInt(100),
			TransactionType: domain.TransactionBank,
			CreatedAt:       time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "e1", ShipID: "R001", Year: 2024,
			AmountGco2eq:    decimal.NewFromInt(400),
			TransactionType: domain.TransactionBank,
			CreatedAt:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	bankRepo.EXPECT().
		ListByShip(gomock.Any(), "R001").
		Return(history, nil)

	uc := usecase.NewStatusUseCase(compRepo, bankRepo, nil)

	report, err := uc.GetBankingStatus(context.Background(), "R001", 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !report.Exists {
		t.Fatal("expected report to exist")
	}

	if report.Status != domain.StatusSurplus {
		t.Errorf("expected SURPLUS, got %s", report.Status)
	}

	if !report.CurrentCB.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected CB 600, got %s", report.CurrentCB)
	}

	if !report.TotalBanked.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected total banked 500, got %s", report.TotalBanked)
	}

	if !report.TotalApplied.Equal(decimal.NewFromInt(250)) {
		t.Errorf("expected total applied 250, got %s", report.TotalApplied)
	}

	if !report.AvailableBanked.Equal(decimal.NewFromInt(250)) {
		t.Errorf("expected available banked 250, got %s", report.AvailableBanked)
	}

	if len(report.ThisYear) != 1 || report.ThisYear[0].ID != "e1" {
		t.Fatalf("expected only e1 in this-year partition, got %d entries", len(report.ThisYear))
	}

	if len(report.OtherYears) != 1 {
		t.Fatalf("expected one other-year bucket, got %d", len(report.OtherYears))
	}

	other := report.OtherYears[0]
	if other.Year != 2025 || other.Transactions != 2 {
		t.Errorf("expected 2025 bucket with 2 transactions, got year %d with %d", other.Year, other.Transactions)
	}
	if !other.Banked.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected 100 banked in 2025, got %s", other.Banked)
	}
	if !other.Applied.Equal(decimal.NewFromInt(250)) {
		t.Errorf("expected 250 applied in 2025, got %s", other.Applied)
	}

	if len(report.AllHistory) != 3 {
		t.Errorf("expected full history, got %d entries", len(report.AllHistory))
	}
}

func TestStatusUseCase_MissingComplianceIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	compRepo := mocks.NewGomockComplianceRepository(ctrl)
	bankRepo := mocks.NewGomockBankEntryRepository(ctrl)

	compRepo.EXPECT().
		Get(gomock.Any(), "R004", 2030).
		Return(nil, domain.ErrComplianceNotFound)

	bankRepo.EXPECT().
		ListByShip(gomock.Any(), "R004").
		Return(nil, nil)

	uc := usecase.NewStatusUseCase(compRepo, bankRepo, nil)

	report, err := uc.GetBankingStatus(context.Background(), "R004", 2030)
	if err != nil {
		t.Fatalf("status queries must not fail on missing CB: %v", err)
	}

	if report.Exists {
		t.Fatal("expected Exists=false")
	}

	if report.Status != domain.StatusNeutral {
		t.Errorf("expected NEUTRAL placeholder status, got %s", report.Status)
	}

	if report.Message == "" {
		t.Error("expected a guidance message for missing compliance record")
	}
}

func TestStatusUseCase_ServesFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	compRepo := mocks.NewGomockComplianceRepository(ctrl)
	bankRepo := mocks.NewGomockBankEntryRepository(ctrl)
	cache := mocks.NewMockCache()

	// Exactly one round trip to the repositories; the second call is cached.
	compRepo.EXPECT().
		Get(gomock.Any(), "R001", 2024).
		Return(&domain.ComplianceRecord{ShipID: "R001", Year: 2024, CBGco2eq: decimal.NewFromInt(600)}, nil).
		Times(1)
	bankRepo.EXPECT().
		ListByShip(gomock.Any(), "R001").
		Return(nil, nil).
		Times(1)

	uc := usecase.NewStatusUseCase(compRepo, bankRepo, cache)
	ctx := context.Background()

	first, err := uc.GetBankingStatus(ctx, "R001", 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := uc.GetBankingStatus(ctx, "R001", 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !second.CurrentCB.Equal(first.CurrentCB) || second.Status != first.Status {
		t.Fatal("cached report must match the original")
	}
}
