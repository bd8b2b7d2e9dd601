package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fueleu/banking/internal/domain"
)

func TestBankingOperationRequest_Decode(t *testing.T) {
	raw := `{"shipId":"R001","year":2024,"amountGco2eq":"400.5"}`

	var req BankingOperationRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	input := req.ToUseCaseInput()
	if input.ShipID != "R001" || input.Year != 2024 {
		t.Fatalf("unexpected input: %+v", input)
	}
	if !input.Amount.Equal(decimal.RequireFromString("400.5")) {
		t.Fatalf("expected amount 400.5, got %s", input.Amount)
	}
}

func TestAddBankEntryRequest_ToDomain(t *testing.T) {
	req := AddBankEntryRequest{
		ShipID:          "R001",
		Year:            2024,
		Amount:          decimal.NewFromInt(-100),
		TransactionType: "APPLY",
	}

	entry := req.ToDomain()
	if entry.ShipID != "R001" || entry.Year != 2024 {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.TransactionType != domain.TransactionApply {
		t.Fatalf("expected APPLY, got %s", entry.TransactionType)
	}
}
