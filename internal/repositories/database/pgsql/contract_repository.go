package pgsql

import (
	"context"

	"github.com/SscSPs/orbisx_backoffice/internal/apperrors"
	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/orbisx_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/orbisx_backoffice/internal/models"
	"github.com/SscSPs/orbisx_backoffice/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const contractColumns = `contract_id, title, client, value, start_date, end_date, notes,
	document_name, document_key, document_content_type, document_size, document_uploaded_at,
	created_at, created_by, last_updated_at, last_updated_by, version`

// PgxContractRepository implements portsrepo.ContractRepositoryFacade using pgx.
type PgxContractRepository struct {
	BaseRepository
}

func newPgxContractRepository(pool *pgxpool.Pool) portsrepo.ContractRepositoryFacade {
	return &PgxContractRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ContractRepositoryFacade = (*PgxContractRepository)(nil)

func (r *PgxContractRepository) SaveContract(ctx context.Context, contract domain.Contract) error {
	m := mapping.ToModelContract(contract)
	query := `
		INSERT INTO contracts (` + contractColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ContractID, m.Title, m.Client, m.Value, m.StartDate, m.EndDate, m.Notes,
		m.DocumentName, m.DocumentKey, m.DocumentContentType, m.DocumentSize, m.DocumentUploadedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		return mapDBError(err, "failed to save contract")
	}
	return nil
}

func (r *PgxContractRepository) UpdateContract(ctx context.Context, contract domain.Contract, expectedVersion int64) error {
	m := mapping.ToModelContract(contract)
	query := `
		UPDATE contracts
		SET title = $2, client = $3, value = $4, start_date = $5, end_date = $6, notes = $7,
			document_name = $8, document_key = $9, document_content_type = $10, document_size = $11,
			document_uploaded_at = $12, last_updated_at = $13, last_updated_by = $14, version = $15
		WHERE contract_id = $1 AND version = $16;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ContractID, m.Title, m.Client, m.Value, m.StartDate, m.EndDate, m.Notes,
		m.DocumentName, m.DocumentKey, m.DocumentContentType, m.DocumentSize, m.DocumentUploadedAt,
		m.LastUpdatedAt, m.LastUpdatedBy, m.Version, expectedVersion,
	)
	if err != nil {
		return mapDBError(err, "failed to update contract")
	}
	return r.checkVersionedWrite(ctx, r.Pool, "contracts", "contract_id", m.ContractID, tag.RowsAffected())
}

func (r *PgxContractRepository) DeleteContract(ctx context.Context, contractID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM contracts WHERE contract_id = $1;`, contractID)
	if err != nil {
		return mapDBError(err, "failed to delete contract")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxContractRepository) FindContractByID(ctx context.Context, contractID string) (*domain.Contract, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+contractColumns+` FROM contracts WHERE contract_id = $1;`, contractID)
	if err != nil {
		return nil, mapDBError(err, "failed to find contract")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Contract])
	if err != nil {
		return nil, mapDBError(err, "failed to find contract "+contractID)
	}
	contract := mapping.ToDomainContract(m)
	return &contract, nil
}

func (r *PgxContractRepository) ListContracts(ctx context.Context, filter domain.ContractFilter) ([]domain.Contract, error) {
	w := &whereBuilder{}
	if filter.Client != "" {
		w.add("client ILIKE ?", likePattern(filter.Client))
	}
	if filter.StartFrom != nil {
		w.add("start_date >= ?", *filter.StartFrom)
	}
	if filter.EndUntil != nil {
		w.add("end_date <= ?", *filter.EndUntil)
	}

	query := `SELECT ` + contractColumns + ` FROM contracts` + w.clause() + ` ORDER BY start_date DESC, created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, mapDBError(err, "failed to list contracts")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Contract])
	if err != nil {
		return nil, mapDBError(err, "failed to scan contracts")
	}
	return mapping.ToDomainContractSlice(ms), nil
}

func (r *PgxContractRepository) ListContractClients(ctx context.Context) ([]string, error) {
	return listDistinctClients(ctx, r.Pool, "contracts")
}
