package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestBankEntryType(t *testing.T) {
	tests := []struct {
		name  string
		entry BankEntry
		want  TransactionType
	}{
		{
			name:  "stored type wins",
			entry: BankEntry{TransactionType: TransactionBank, AmountGco2eq: decimal.NewFromInt(-100)},
			want:  TransactionBank,
		},
		{
			name:  "positive legacy entry derives BANK",
			entry: BankEntry{AmountGco2eq: decimal.NewFromInt(400)},
			want:  TransactionBank,
		},
		{
			name:  "negative legacy entry derives APPLY",
			entry: BankEntry{AmountGco2eq: decimal.NewFromInt(-250)},
			want:  TransactionApply,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Type(); got != tt.want {
				t.Errorf("expected type %s, got %s", tt.want, got)
			}
		})
	}
}

func TestBankEntryNormalize(t *testing.T) {
	entry := BankEntry{ShipID: "R001", Year: 2024, AmountGco2eq: decimal.NewFromInt(-50)}

	entry.Normalize()

	if entry.TransactionType != TransactionApply {
		t.Fatalf("expected APPLY after normalize, got %s", entry.TransactionType)
	}
}

func TestBankEntryValidate(t *testing.T) {
	tests := []struct {
		name    string
		entry   BankEntry
		wantErr error
	}{
		{
			name:  "valid deposit",
			entry: BankEntry{ShipID: "R001", Year: 2024, AmountGco2eq: decimal.NewFromInt(400)},
		},
		{
			name:    "missing ship ID",
			entry:   BankEntry{Year: 2024, AmountGco2eq: decimal.NewFromInt(400)},
			wantErr: ErrEmptyShipID,
		},
		{
			name:    "zero amount",
			entry:   BankEntry{ShipID: "R001", Year: 2024, AmountGco2eq: decimal.Zero},
			wantErr: ErrZeroAmountEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
