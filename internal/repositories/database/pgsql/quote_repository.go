package pgsql

import (
	"context"
	"strings"

	"github.com/SscSPs/orbisx_backoffice/internal/apperrors"
	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/orbisx_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/orbisx_backoffice/internal/models"
	"github.com/SscSPs/orbisx_backoffice/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const quoteColumns = `quote_id, title, client, description, payment_terms, delivery_date, status, created_date,
	created_at, created_by, last_updated_at, last_updated_by, version`

// PgxQuoteRepository implements portsrepo.QuoteRepositoryFacade using pgx.
// A quote and its line items are always written in one transaction.
type PgxQuoteRepository struct {
	BaseRepository
}

func newPgxQuoteRepository(pool *pgxpool.Pool) portsrepo.QuoteRepositoryFacade {
	return &PgxQuoteRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.QuoteRepositoryFacade = (*PgxQuoteRepository)(nil)

func (r *PgxQuoteRepository) SaveQuote(ctx context.Context, quote domain.Quote) (err error) {
	m, items := mapping.ToModelQuote(quote)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	query := `
		INSERT INTO quotes (quote_id, title, client, description, payment_terms, delivery_date, status, created_date,
			created_at, created_by, last_updated_at, last_updated_by, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	if _, err = tx.Exec(ctx, query,
		m.QuoteID, m.Title, m.Client, m.Description, m.PaymentTerms, m.DeliveryDate, m.Status, m.CreatedDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	); err != nil {
		return mapDBError(err, "failed to save quote")
	}
	if err = insertLineItems(ctx, tx, items); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxQuoteRepository) UpdateQuote(ctx context.Context, quote domain.Quote, expectedVersion int64) (err error) {
	m, items := mapping.ToModelQuote(quote)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	query := `
		UPDATE quotes
		SET title = $2, client = $3, description = $4, payment_terms = $5, delivery_date = $6, status = $7,
			last_updated_at = $8, last_updated_by = $9, version = $10
		WHERE quote_id = $1 AND version = $11;
	`
	tag, err := tx.Exec(ctx, query,
		m.QuoteID, m.Title, m.Client, m.Description, m.PaymentTerms, m.DeliveryDate, m.Status,
		m.LastUpdatedAt, m.LastUpdatedBy, m.Version, expectedVersion,
	)
	if err != nil {
		return mapDBError(err, "failed to update quote")
	}
	if err = r.checkVersionedWrite(ctx, tx, "quotes", "quote_id", m.QuoteID, tag.RowsAffected()); err != nil {
		return err
	}

	if _, err = tx.Exec(ctx, `DELETE FROM quote_line_items WHERE quote_id = $1;`, m.QuoteID); err != nil {
		return mapDBError(err, "failed to clear quote line items")
	}
	if err = insertLineItems(ctx, tx, items); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func insertLineItems(ctx context.Context, tx pgx.Tx, items []models.QuoteLineItem) error {
	if len(items) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`INSERT INTO quote_line_items (quote_id, position, name, quantity, unit_price) VALUES ($1, $2, $3, $4, $5);`,
			it.QuoteID, it.Position, it.Name, it.Quantity, it.UnitPrice)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return mapDBError(err, "failed to save quote line items")
	}
	return nil
}

func (r *PgxQuoteRepository) DeleteQuote(ctx context.Context, quoteID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM quotes WHERE quote_id = $1;`, quoteID)
	if err != nil {
		return mapDBError(err, "failed to delete quote")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxQuoteRepository) FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE quote_id = $1;`, quoteID)
	if err != nil {
		return nil, mapDBError(err, "failed to find quote")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Quote])
	if err != nil {
		return nil, mapDBError(err, "failed to find quote "+quoteID)
	}

	items, err := r.loadLineItems(ctx, []string{m.QuoteID})
	if err != nil {
		return nil, err
	}
	quote := mapping.ToDomainQuote(m, items[m.QuoteID])
	return &quote, nil
}

func (r *PgxQuoteRepository) ListQuotes(ctx context.Context, filter domain.QuoteFilter) ([]domain.Quote, error) {
	w := &whereBuilder{}
	if filter.Status != nil {
		w.add("status = ?", string(*filter.Status))
	}
	if filter.Client != "" {
		w.add("client ILIKE ?", likePattern(filter.Client))
	}
	if filter.Search != "" {
		p := likePattern(filter.Search)
		w.add("(title ILIKE ? OR client ILIKE ? OR description ILIKE ?)", p, p, p)
	}

	query := `SELECT ` + quoteColumns + ` FROM quotes` + w.clause() + ` ORDER BY created_at DESC, quote_id;`
	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, mapDBError(err, "failed to list quotes")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Quote])
	if err != nil {
		return nil, mapDBError(err, "failed to scan quotes")
	}
	if len(ms) == 0 {
		return []domain.Quote{}, nil
	}

	ids := make([]string, len(ms))
	for i, m := range ms {
		ids[i] = m.QuoteID
	}
	items, err := r.loadLineItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	quotes := make([]domain.Quote, len(ms))
	for i, m := range ms {
		quotes[i] = mapping.ToDomainQuote(m, items[m.QuoteID])
	}
	return quotes, nil
}

func (r *PgxQuoteRepository) loadLineItems(ctx context.Context, quoteIDs []string) (map[string][]models.QuoteLineItem, error) {
	query := `
		SELECT quote_id, position, name, quantity, unit_price
		FROM quote_line_items
		WHERE quote_id = ANY($1)
		ORDER BY quote_id, position;
	`
	rows, err := r.Pool.Query(ctx, query, quoteIDs)
	if err != nil {
		return nil, mapDBError(err, "failed to load quote line items")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.QuoteLineItem])
	if err != nil {
		return nil, mapDBError(err, "failed to scan quote line items")
	}
	byQuote := make(map[string][]models.QuoteLineItem, len(quoteIDs))
	for _, m := range ms {
		byQuote[m.QuoteID] = append(byQuote[m.QuoteID], m)
	}
	return byQuote, nil
}

func (r *PgxQuoteRepository) ListQuoteClients(ctx context.Context) ([]string, error) {
	return listDistinctClients(ctx, r.Pool, "quotes")
}

// listDistinctClients returns the distinct, non-empty client names of table.
func listDistinctClients(ctx context.Context, pool *pgxpool.Pool, table string) ([]string, error) {
	rows, err := pool.Query(ctx, `SELECT DISTINCT client FROM `+table+` WHERE client IS NOT NULL AND client <> '' ORDER BY client;`)
	if err != nil {
		return nil, mapDBError(err, "failed to list "+table+" clients")
	}
	clients, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, mapDBError(err, "failed to scan "+table+" clients")
	}
	return clients, nil
}

// likePattern builds a case-insensitive substring pattern, escaping LIKE metacharacters.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return "%" + r.Replace(s) + "%"
}
