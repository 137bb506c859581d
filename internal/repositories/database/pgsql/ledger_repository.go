package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/orbisx_backoffice/internal/apperrors"
	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/orbisx_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/orbisx_backoffice/internal/models"
	"github.com/SscSPs/orbisx_backoffice/internal/utils/mapping"
	"github.com/SscSPs/orbisx_backoffice/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultLedgerPageSize = 50
	maxLedgerPageSize     = 500
	ledgerColumns         = `entry_id, kind, amount, entry_date, category, description,
		created_at, created_by, last_updated_at, last_updated_by, version`
)

// PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade using pgx.
type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

func (r *PgxLedgerRepository) SaveLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)
	query := `
		INSERT INTO ledger_entries (entry_id, kind, amount, entry_date, category, description,
			created_at, created_by, last_updated_at, last_updated_by, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EntryID, m.Kind, m.Amount, m.EntryDate, m.Category, m.Description,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		return mapDBError(err, "failed to save ledger entry")
	}
	return nil
}

func (r *PgxLedgerRepository) UpdateLedgerEntry(ctx context.Context, entry domain.LedgerEntry, expectedVersion int64) error {
	m := mapping.ToModelLedgerEntry(entry)
	query := `
		UPDATE ledger_entries
		SET kind = $2, amount = $3, entry_date = $4, category = $5, description = $6,
			last_updated_at = $7, last_updated_by = $8, version = $9
		WHERE entry_id = $1 AND version = $10;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.EntryID, m.Kind, m.Amount, m.EntryDate, m.Category, m.Description,
		m.LastUpdatedAt, m.LastUpdatedBy, m.Version, expectedVersion,
	)
	if err != nil {
		return mapDBError(err, "failed to update ledger entry")
	}
	return r.checkVersionedWrite(ctx, r.Pool, "ledger_entries", "entry_id", m.EntryID, tag.RowsAffected())
}

func (r *PgxLedgerRepository) DeleteLedgerEntry(ctx context.Context, entryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM ledger_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return mapDBError(err, "failed to delete ledger entry")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLedgerRepository) FindLedgerEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE entry_id = $1;`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, mapDBError(err, "failed to find ledger entry")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.LedgerEntry])
	if err != nil {
		return nil, mapDBError(err, "failed to find ledger entry "+entryID)
	}
	entry := mapping.ToDomainLedgerEntry(m)
	return &entry, nil
}

// ListLedgerEntries pages through entries ordered by (entry_date, created_at, entry_id) descending.
func (r *PgxLedgerRepository) ListLedgerEntries(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, *string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLedgerPageSize
	}
	if limit > maxLedgerPageSize {
		limit = maxLedgerPageSize
	}

	w := ledgerWhere(filter.Range)
	if filter.Category != "" {
		w.add("category = ?", filter.Category)
	}
	if filter.Kind != nil {
		w.add("kind = ?", string(*filter.Kind))
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		cursor, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
		}
		w.add("(entry_date, created_at, entry_id) < (?, ?, ?)", cursor.Date, cursor.CreatedAt, cursor.ID)
	}

	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries` + w.clause() +
		` ORDER BY entry_date DESC, created_at DESC, entry_id DESC LIMIT ` + w.next(limit+1)

	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, nil, mapDBError(err, "failed to list ledger entries")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LedgerEntry])
	if err != nil {
		return nil, nil, mapDBError(err, "failed to scan ledger entries")
	}

	var nextToken *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{Date: last.EntryDate, CreatedAt: last.CreatedAt, ID: last.EntryID})
		nextToken = &token
	}
	return mapping.ToDomainLedgerEntrySlice(ms), nextToken, nil
}

func (r *PgxLedgerRepository) FindLedgerEntriesInRange(ctx context.Context, window domain.DateRange) ([]domain.LedgerEntry, error) {
	w := ledgerWhere(window)
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries` + w.clause() + ` ORDER BY entry_date, created_at;`
	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, mapDBError(err, "failed to query ledger entries")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LedgerEntry])
	if err != nil {
		return nil, mapDBError(err, "failed to scan ledger entries")
	}
	return mapping.ToDomainLedgerEntrySlice(ms), nil
}

func ledgerWhere(window domain.DateRange) *whereBuilder {
	w := &whereBuilder{}
	if window.From != nil {
		w.add("entry_date >= ?", *window.From)
	}
	if window.To != nil {
		w.add("entry_date <= ?", *window.To)
	}
	return w
}
