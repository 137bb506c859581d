package repositories

import (
	"context"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
)

// ContractReader defines read operations for contracts
type ContractReader interface {
	// FindContractByID retrieves a contract.
	FindContractByID(ctx context.Context, contractID string) (*domain.Contract, error)

	// ListContracts applies the stored-field criteria of filter (client, start_from, end_until).
	// The derived status criterion is left to the caller.
	ListContracts(ctx context.Context, filter domain.ContractFilter) ([]domain.Contract, error)

	// ListContractClients returns the distinct client names, sorted.
	ListContractClients(ctx context.Context) ([]string, error)
}

// ContractWriter defines write operations for contracts
type ContractWriter interface {
	SaveContract(ctx context.Context, contract domain.Contract) error
	UpdateContract(ctx context.Context, contract domain.Contract, expectedVersion int64) error
	DeleteContract(ctx context.Context, contractID string) error
}

// ContractRepositoryFacade combines all contract-related repository interfaces
type ContractRepositoryFacade interface {
	ContractReader
	ContractWriter
}
