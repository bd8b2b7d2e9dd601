package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/fueleu/banking/internal/domain"
	"github.com/fueleu/banking/internal/usecase"
)

// ComplianceRepository implements usecase.ComplianceRepository backed by
// Postgres.
type ComplianceRepository struct {
	pool *pgxpool.Pool
}

// NewComplianceRepository creates a new ComplianceRepository.
func NewComplianceRepository(pool *pgxpool.Pool) *ComplianceRepository {
	return &ComplianceRepository{pool: pool}
}

// Get returns the compliance record for a ship and year.
func (r *ComplianceRepository) Get(ctx context.Context, shipID string, year int) (*domain.ComplianceRecord, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT ship_id, year, cb_gco2eq
		FROM ship_compliance
		WHERE ship_id = $1 AND year = $2`,
		shipID, year,
	)

	return scanCompliance(row)
}

// GetForUpdate returns the compliance record with a row lock held for the
// duration of the transaction.
func (r *ComplianceRepository) GetForUpdate(ctx context.Context, tx usecase.Transaction, shipID string, year int) (*domain.ComplianceRecord, error) {
	pgxTx := tx.(*Tx).PgxTx()

	row := pgxTx.QueryRow(ctx, `
		SELECT ship_id, year, cb_gco2eq
		FROM ship_compliance
		WHERE ship_id = $1 AND year = $2
		FOR UPDATE`,
		shipID, year,
	)

	return scanCompliance(row)
}

// UpdateCB sets the ship's compliance balance for a year inside the given
// transaction.
func (r *ComplianceRepository) UpdateCB(ctx context.Context, tx usecase.Transaction, shipID string, year int, cb decimal.Decimal, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `
		UPDATE ship_compliance
		SET cb_gco2eq = $3, updated_at = $4
		WHERE ship_id = $1 AND year = $2`,
		shipID, year,
		decimalToNumeric(cb),
		timeToPgTimestamptz(updatedAt),
	)
	if err != nil {
		return fmt.Errorf("update compliance balance: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: ship %s year %d", domain.ErrComplianceNotFound, shipID, year)
	}

	return nil
}

func scanCompliance(row pgx.Row) (*domain.ComplianceRecord, error) {
	var (
		record domain.ComplianceRecord
		cb     pgtype.Numeric
	)

	err := row.Scan(&record.ShipID, &record.Year, &cb)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrComplianceNotFound
		}

		return nil, fmt.Errorf("scan compliance record: %w", err)
	}

	record.CBGco2eq = numericToDecimal(cb)

	return &record, nil
}
