package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fueleu/banking/internal/domain"
	"github.com/fueleu/banking/internal/usecase"
)

// BankEntryResponse represents a ledger entry in API responses.
type BankEntryResponse struct {
	ID              string           `json:"id"`
	ShipID          string           `json:"shipId"`
	Year            int              `json:"year"`
	Amount          decimal.Decimal  `json:"amountGco2eq"`
	CBBefore        *decimal.Decimal `json:"cbBefore,omitempty"`
	CBAfter         *decimal.Decimal `json:"cbAfter,omitempty"`
	TransactionType string           `json:"transactionType"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// BankEntryFromDomain converts a domain entry to a response.
func BankEntryFromDomain(e *domain.BankEntry) *BankEntryResponse {
	return &BankEntryResponse{
		ID:              e.ID,
		ShipID:          e.ShipID,
		Year:            e.Year,
		Amount:          e.AmountGco2eq,
		CBBefore:        e.CBBefore,
		CBAfter:         e.CBAfter,
		TransactionType: string(e.Type()),
		CreatedAt:       e.CreatedAt,
	}
}

// BankEntriesFromDomain converts domain entries to responses.
func BankEntriesFromDomain(entries []*domain.BankEntry) []*BankEntryResponse {
	result := make([]*BankEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = BankEntryFromDomain(e)
	}
	return result
}

// BankingResultResponse represents the outcome of a bank or apply operation.
type BankingResultResponse struct {
	Success         bool               `json:"success"`
	Message         string             `json:"message"`
	CBBefore        decimal.Decimal    `json:"cbBefore"`
	Applied         decimal.Decimal    `json:"applied"`
	CBAfter         decimal.Decimal    `json:"cbAfter"`
	RemainingBanked decimal.Decimal    `json:"remainingBanked"`
	Entry           *BankEntryResponse `json:"entry"`
}

// BankingResultFromUseCase converts a use case result to a response.
func BankingResultFromUseCase(r *usecase.BankingResult) *BankingResultResponse {
	return &BankingResultResponse{
		Success:         true,
		Message:         r.Message,
		CBBefore:        r.CBBefore,
		Applied:         r.Applied,
		CBAfter:         r.CBAfter,
		RemainingBanked: r.RemainingBanked,
		Entry:           BankEntryFromDomain(r.Entry),
	}
}

// YearBreakdownResponse represents one prior year's banking activity.
type YearBreakdownResponse struct {
	Year         int                  `json:"year"`
	Banked       decimal.Decimal      `json:"banked"`
	Applied      decimal.Decimal      `json:"applied"`
	Transactions int                  `json:"transactions"`
	Entries      []*BankEntryResponse `json:"entries"`
}

// BankingStatusResponse represents a ship-year banking status report.
type BankingStatusResponse struct {
	ShipID          string                  `json:"shipId"`
	Year            int                     `json:"year"`
	Exists          bool                    `json:"exists"`
	Message         string                  `json:"message,omitempty"`
	Status          string                  `json:"status,omitempty"`
	CurrentCB       decimal.Decimal         `json:"currentCB"`
	TotalBanked     decimal.Decimal         `json:"totalBanked"`
	TotalApplied    decimal.Decimal         `json:"totalApplied"`
	AvailableBanked decimal.Decimal         `json:"availableBanked"`
	ThisYear        []*BankEntryResponse    `json:"thisYear"`
	OtherYears      []YearBreakdownResponse `json:"otherYears"`
	AllHistory      []*BankEntryResponse    `json:"allHistory"`
}

// BankingStatusFromUseCase converts a use case status report to a response.
func BankingStatusFromUseCase(r *usecase.BankingStatusReport) *BankingStatusResponse {
	otherYears := make([]YearBreakdownResponse, len(r.OtherYears))
	for i, y := range r.OtherYears {
		otherYears[i] = YearBreakdownResponse{
			Year:         y.Year,
			Banked:       y.Banked,
			Applied:      y.Applied,
			Transactions: y.Transactions,
			Entries:      BankEntriesFromDomain(y.Entries),
		}
	}

	return &BankingStatusResponse{
		ShipID:          r.ShipID,
		Year:            r.Year,
		Exists:          r.Exists,
		Message:         r.Message,
		Status:          string(r.Status),
		CurrentCB:       r.CurrentCB,
		TotalBanked:     r.TotalBanked,
		TotalApplied:    r.TotalApplied,
		AvailableBanked: r.AvailableBanked,
		ThisYear:        BankEntriesFromDomain(r.ThisYear),
		OtherYears:      otherYears,
		AllHistory:      BankEntriesFromDomain(r.AllHistory),
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
