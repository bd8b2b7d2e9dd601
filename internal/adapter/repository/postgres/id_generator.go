package postgres

import (
	"github.com/oklog/ulid/v2"
)

// ULIDGenerator generates ledger entry IDs. ULIDs sort lexicographically by
// creation time, which keeps the bank_entries primary key index append-mostly.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate returns a new ULID string.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}
