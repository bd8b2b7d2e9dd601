package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/fueleu/banking/internal/domain"
	"github.com/fueleu/banking/internal/usecase"
)

const bankEntryColumns = `id, ship_id, year, amount_gco2eq, cb_before, cb_after, transaction_type, created_at`

// BankEntryRepository implements usecase.BankEntryRepository backed by Postgres.
type BankEntryRepository struct {
	pool *pgxpool.Pool
}

// NewBankEntryRepository creates a new BankEntryRepository.
func NewBankEntryRepository(pool *pgxpool.Pool) *BankEntryRepository {
	return &BankEntryRepository{pool: pool}
}

// Create appends an entry to the ledger inside the given transaction.
// Entries are immutable once written; there is no update or delete path.
func (r *BankEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.BankEntry) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO bank_entries (id, ship_id, year, amount_gco2eq, cb_before, cb_after, transaction_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID,
		entry.ShipID,
		entry.Year,
		decimalToNumeric(entry.AmountGco2eq),
		decimalPtrToNumeric(entry.CBBefore),
		decimalPtrToNumeric(entry.CBAfter),
		string(entry.Type()),
		timeToPgTimestamptz(entry.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert bank entry: %w", err)
	}

	return nil
}

// ListByShipYear returns the entries recorded for a ship in a given year,
// newest first.
func (r *BankEntryRepository) ListByShipYear(ctx context.Context, shipID string, year int) ([]*domain.BankEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bankEntryColumns+`
		FROM bank_entries
		WHERE ship_id = $1 AND year = $2
		ORDER BY created_at DESC`,
		shipID, year,
	)
	if err != nil {
		return nil, fmt.Errorf("query bank entries: %w", err)
	}

	return scanEntries(rows)
}

// ListByShip returns every entry recorded for a ship across all years,
// newest first.
func (r *BankEntryRepository) ListByShip(ctx context.Context, shipID string) ([]*domain.BankEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bankEntryColumns+`
		FROM bank_entries
		WHERE ship_id = $1
		ORDER BY created_at DESC`,
		shipID,
	)
	if err != nil {
		return nil, fmt.Errorf("query ship entries: %w", err)
	}

	return scanEntries(rows)
}

// ListAll returns every entry in the ledger, newest first.
func (r *BankEntryRepository) ListAll(ctx context.Context) ([]*domain.BankEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bankEntryColumns+`
		FROM bank_entries
		ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query all entries: %w", err)
	}

	return scanEntries(rows)
}

// SumAvailable returns the ship's available banked surplus: the signed sum of
// all its entry amounts across all years.
func (r *BankEntryRepository) SumAvailable(ctx context.Context, shipID string) (decimal.Decimal, error) {
	return sumAvailable(ctx, r.pool, shipID)
}

// SumAvailableTx is SumAvailable evaluated inside the given transaction, so
// the sum is consistent with rows the transaction has already written or
// locked.
func (r *BankEntryRepository) SumAvailableTx(ctx context.Context, tx usecase.Transaction, shipID string) (decimal.Decimal, error) {
	return sumAvailable(ctx, tx.(*Tx).PgxTx(), shipID)
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func sumAvailable(ctx context.Context, q rowQuerier, shipID string) (decimal.Decimal, error) {
	var sum pgtype.Numeric

	err := q.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount_gco2eq), 0)
		FROM bank_entries
		WHERE ship_id = $1`,
		shipID,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum banked surplus: %w", err)
	}

	return numericToDecimal(sum), nil
}

func scanEntries(rows pgx.Rows) ([]*domain.BankEntry, error) {
	defer rows.Close()

	var entries []*domain.BankEntry

	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bank entry: %w", err)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bank entries: %w", err)
	}

	return entries, nil
}

func scanEntry(row pgx.Row) (*domain.BankEntry, error) {
	var (
		entry     domain.BankEntry
		amount    pgtype.Numeric
		cbBefore  pgtype.Numeric
		cbAfter   pgtype.Numeric
		txType    pgtype.Text
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(
		&entry.ID,
		&entry.ShipID,
		&entry.Year,
		&amount,
		&cbBefore,
		&cbAfter,
		&txType,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	entry.AmountGco2eq = numericToDecimal(amount)
	entry.CBBefore = numericToDecimalPtr(cbBefore)
	entry.CBAfter = numericToDecimalPtr(cbAfter)
	entry.CreatedAt = createdAt.Time

	if txType.Valid {
		entry.TransactionType = domain.TransactionType(txType.String)
	}

	// Rows written before transaction_type existed carry a NULL there; the
	// sign of the amount still determines the type.
	entry.Normalize()

	return &entry, nil
}
