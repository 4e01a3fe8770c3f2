package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/finbooks-app/finbooks_backend/internal/apperrors"
	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks-app/finbooks_backend/internal/core/ports/repositories"
	"github.com/finbooks-app/finbooks_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ledgerEntryColumns = `entry_id, organization_id, account_id, voucher_id, entry_type, amount, entry_date, status, fiscal_year, fiscal_period, description, created_at, created_by, last_updated_at, last_updated_by`

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger entry data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// Helper to convert domain.LedgerEntry to models.LedgerEntry for DB storage
func toModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:        d.EntryID,
		OrganizationID: d.OrganizationID,
		AccountID:      d.AccountID,
		VoucherID:      d.VoucherID,
		EntryType:      models.EntryType(d.EntryType),
		Amount:         d.Amount,
		EntryDate:      d.EntryDate,
		Status:         models.EntryStatus(d.Status),
		FiscalYear:     d.FiscalYear,
		FiscalPeriod:   d.FiscalPeriod,
		Description:    d.Description,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.LedgerEntry from DB to domain.LedgerEntry
func toDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:        m.EntryID,
		OrganizationID: m.OrganizationID,
		AccountID:      m.AccountID,
		VoucherID:      m.VoucherID,
		EntryType:      domain.EntryType(m.EntryType),
		Amount:         m.Amount,
		EntryDate:      m.EntryDate,
		Status:         domain.EntryStatus(m.Status),
		FiscalYear:     m.FiscalYear,
		FiscalPeriod:   m.FiscalPeriod,
		Description:    m.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// scanLedgerEntry scans one entry row in ledgerEntryColumns order.
func scanLedgerEntry(row pgx.Row) (models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(
		&m.EntryID,
		&m.OrganizationID,
		&m.AccountID,
		&m.VoucherID,
		&m.EntryType,
		&m.Amount,
		&m.EntryDate,
		&m.Status,
		&m.FiscalYear,
		&m.FiscalPeriod,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// entryFilterClause renders the filter into SQL conditions. argIndex is the
// number of positional parameters already consumed by the caller.
func entryFilterClause(filter domain.EntryFilter, argIndex int) (string, []any) {
	clause := ""
	args := []any{}
	next := func() string {
		argIndex++
		return "$" + strconv.Itoa(argIndex)
	}

	if filter.FromDate != nil {
		clause += ` AND entry_date >= ` + next()
		args = append(args, *filter.FromDate)
	}
	if filter.ToDate != nil {
		clause += ` AND entry_date <= ` + next()
		args = append(args, *filter.ToDate)
	}
	if filter.Before != nil {
		clause += ` AND entry_date < ` + next()
		args = append(args, *filter.Before)
	}
	if filter.FiscalYear != "" {
		clause += ` AND fiscal_year = ` + next()
		args = append(args, filter.FiscalYear)
	}
	if filter.FiscalPeriod > 0 {
		clause += ` AND fiscal_period = ` + next()
		args = append(args, filter.FiscalPeriod)
	}
	return clause, args
}

// SaveEntries persists a balanced batch of entries in one transaction.
func (r *PgxLedgerRepository) SaveEntries(ctx context.Context, entries []domain.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		INSERT INTO ledger_entries (` + ledgerEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	for _, entry := range entries {
		m := toModelLedgerEntry(entry)
		_, err := tx.Exec(ctx, query,
			m.EntryID,
			m.OrganizationID,
			m.AccountID,
			m.VoucherID,
			m.EntryType,
			m.Amount,
			m.EntryDate,
			m.Status,
			m.FiscalYear,
			m.FiscalPeriod,
			m.Description,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: ledger entry %s already exists", apperrors.ErrDuplicate, m.EntryID)
			}
			return fmt.Errorf("failed to save ledger entry %s: %w", m.EntryID, err)
		}
	}
	return r.Commit(ctx, tx)
}

// FindEntryByID retrieves a single entry.
func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerEntryColumns + `
		FROM ledger_entries
		WHERE entry_id = $1;
	`
	m, err := scanLedgerEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger entry by ID %s: %w", entryID, err)
	}
	d := toDomainLedgerEntry(m)
	return &d, nil
}

// ListEntries retrieves one account's entries matching the filter, ordered by
// (entry_date, created_at) so same-day postings replay deterministically.
func (r *PgxLedgerRepository) ListEntries(ctx context.Context, organizationID string, accountID string, filter domain.EntryFilter) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerEntryColumns + `
		FROM ledger_entries
		WHERE organization_id = $1 AND account_id = $2
	`
	args := []any{organizationID, accountID}
	clause, filterArgs := entryFilterClause(filter, len(args))
	query += clause
	args = append(args, filterArgs...)
	if !filter.IncludeVoid {
		query += ` AND status = 'ACTIVE'`
	}
	query += ` ORDER BY entry_date ASC, created_at ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries for account %s: %w", accountID, err)
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		m, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		entries = append(entries, toDomainLedgerEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger entry rows: %w", err)
	}
	return entries, nil
}

// FindEntriesByVoucherID retrieves every entry of one voucher in posting
// order, void lines included.
func (r *PgxLedgerRepository) FindEntriesByVoucherID(ctx context.Context, organizationID string, voucherID string) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerEntryColumns + `
		FROM ledger_entries
		WHERE organization_id = $1 AND voucher_id = $2
		ORDER BY entry_date ASC, created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, voucherID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries for voucher %s: %w", voucherID, err)
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		m, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		entries = append(entries, toDomainLedgerEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger entry rows: %w", err)
	}
	return entries, nil
}

// AggregateEntries sums raw debit and credit amounts of the ACTIVE entries
// matching the filter. The sums are done in SQL so balances never require
// loading the whole history.
func (r *PgxLedgerRepository) AggregateEntries(ctx context.Context, organizationID string, accountID string, filter domain.EntryFilter) (domain.EntryTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE entry_type = 'DEBIT'), 0),
			COALESCE(SUM(amount) FILTER (WHERE entry_type = 'CREDIT'), 0)
		FROM ledger_entries
		WHERE organization_id = $1 AND account_id = $2 AND status = 'ACTIVE'
	`
	args := []any{organizationID, accountID}
	clause, filterArgs := entryFilterClause(filter, len(args))
	query += clause + `;`
	args = append(args, filterArgs...)

	var totals domain.EntryTotals
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&totals.Debit, &totals.Credit); err != nil {
		return domain.EntryTotals{}, fmt.Errorf("failed to aggregate ledger entries for account %s: %w", accountID, err)
	}
	return totals, nil
}

// HasEntries reports whether the account has any ledger history at all,
// active or void.
func (r *PgxLedgerRepository) HasEntries(ctx context.Context, accountID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM ledger_entries WHERE account_id = $1
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, accountID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check ledger entries for account %s: %w", accountID, err)
	}
	return exists, nil
}

// UpdateEntryStatus flips an entry's status and stamps the audit fields.
func (r *PgxLedgerRepository) UpdateEntryStatus(ctx context.Context, entryID string, status domain.EntryStatus, userID string, now time.Time) error {
	query := `
		UPDATE ledger_entries
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE entry_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, entryID, status, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update status of ledger entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
