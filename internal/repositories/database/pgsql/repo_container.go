package pgsql

import (
	portsrepo "github.com/SscSPs/orbisx_backoffice/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo:   newPgxLedgerRepository(dbPool),
		QuoteRepo:    newPgxQuoteRepository(dbPool),
		ContractRepo: newPgxContractRepository(dbPool),
		TaskRepo:     newPgxTaskRepository(dbPool),
		UserRepo:     newPgxUserRepository(dbPool),
	}
}
