package dto

import (
	"github.com/shopspring/decimal"

	"github.com/fueleu/banking/internal/domain"
	"github.com/fueleu/banking/internal/usecase"
)

// BankingOperationRequest represents a request to bank or apply surplus.
type BankingOperationRequest struct {
	ShipID string          `json:"shipId"`
	Year   int             `json:"year"`
	Amount decimal.Decimal `json:"amountGco2eq"`
}

// ToUseCaseInput converts to use case input.
func (r *BankingOperationRequest) ToUseCaseInput() usecase.BankingOperationInput {
	return usecase.BankingOperationInput{
		ShipID: r.ShipID,
		Year:   r.Year,
		Amount: r.Amount,
	}
}

// AddBankEntryRequest represents a request to append a raw ledger entry.
// The transaction type is optional; when omitted it is derived from the sign
// of the amount.
type AddBankEntryRequest struct {
	ShipID          string          `json:"shipId"`
	Year            int             `json:"year"`
	Amount          decimal.Decimal `json:"amountGco2eq"`
	TransactionType string          `json:"transactionType,omitempty"`
}

// ToDomain converts to a domain entry.
func (r *AddBankEntryRequest) ToDomain() *domain.BankEntry {
	return &domain.BankEntry{
		ShipID:          r.ShipID,
		Year:            r.Year,
		AmountGco2eq:    r.Amount,
		TransactionType: domain.TransactionType(r.TransactionType),
	}
}
