package services

import (
	"context"
	"io"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/SscSPs/orbisx_backoffice/internal/dto"
)

// ContractReaderSvc defines read operations for contracts.
// Every contract returned carries its status derived for the current day.
type ContractReaderSvc interface {
	GetContract(ctx context.Context, contractID string) (*domain.ContractWithStatus, error)
	ListContracts(ctx context.Context, params dto.ListContractsParams) ([]domain.ContractWithStatus, error)
	ListContractClients(ctx context.Context) ([]string, error)
	GetContractStats(ctx context.Context) (*domain.ContractStats, error)

	// OpenContractDocument returns the stored document of a contract. The caller closes the reader.
	OpenContractDocument(ctx context.Context, contractID string) (*domain.DocumentRef, io.ReadCloser, error)
}

// ContractWriterSvc defines write operations for contracts
type ContractWriterSvc interface {
	// CreateContract stores the metadata and the signed PDF. doc is required.
	CreateContract(ctx context.Context, req dto.CreateContractRequest, doc domain.DocumentUpload, userID string) (*domain.ContractWithStatus, error)

	UpdateContract(ctx context.Context, contractID string, req dto.UpdateContractRequest, userID string) (*domain.ContractWithStatus, error)

	// DeleteContract removes the contract and its document.
	DeleteContract(ctx context.Context, contractID string, userID string) error
}

// ContractSvcFacade combines all contract-related service interfaces
type ContractSvcFacade interface {
	ContractReaderSvc
	ContractWriterSvc
}
