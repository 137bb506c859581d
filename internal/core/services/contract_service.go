package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/orbisx_backoffice/internal/apperrors"
	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/SscSPs/orbisx_backoffice/internal/core/engine"
	portsrepo "github.com/SscSPs/orbisx_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/orbisx_backoffice/internal/core/ports/services"
	"github.com/SscSPs/orbisx_backoffice/internal/dto"
	"github.com/SscSPs/orbisx_backoffice/internal/utils"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const (
	// DefaultMaxDocumentSize is used when no limit is configured.
	DefaultMaxDocumentSize int64 = 16 << 20

	pdfMIME = "application/pdf"
	// enough for every signature mimetype knows about
	sniffLen = 3072
)

type contractService struct {
	BaseService
	contractRepo portsrepo.ContractRepositoryFacade
	documents    portsrepo.DocumentStore
	maxDocSize   int64
}

// ContractOption configures the contract service beyond the shared options.
type ContractOption func(*contractService)

// WithMaxDocumentSize caps the size of an uploaded contract document.
func WithMaxDocumentSize(n int64) ContractOption {
	return func(s *contractService) {
		if n > 0 {
			s.maxDocSize = n
		}
	}
}

// WithContractServiceOptions applies shared options to the contract service.
func WithContractServiceOptions(options ...ServiceOption) ContractOption {
	return func(s *contractService) {
		for _, option := range options {
			option(&s.BaseService)
		}
	}
}

// NewContractService creates the contract service. Documents are kept in store.
func NewContractService(repo portsrepo.ContractRepositoryFacade, store portsrepo.DocumentStore, options ...ContractOption) portssvc.ContractSvcFacade {
	svc := &contractService{
		BaseService:  newBaseService(nil),
		contractRepo: repo,
		documents:    store,
		maxDocSize:   DefaultMaxDocumentSize,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ContractSvcFacade = (*contractService)(nil)

func (s *contractService) withStatus(c domain.Contract, today time.Time) domain.ContractWithStatus {
	return domain.ContractWithStatus{
		Contract: c,
		View:     engine.ResolveContractStatus(c.StartDate, c.EndDate, today),
	}
}

func (s *contractService) CreateContract(ctx context.Context, req dto.CreateContractRequest, doc domain.DocumentUpload, userID string) (*domain.ContractWithStatus, error) {
	value, err := req.ParseValue()
	if err != nil {
		return nil, err
	}
	start, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := dto.ParseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	contract := domain.Contract{
		ContractID:  uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Client:      strings.TrimSpace(req.Client),
		Value:       value,
		StartDate:   start,
		EndDate:     end,
		Notes:       req.Notes,
		AuditFields: newAuditFields(now, userID),
	}
	if err := engine.ValidateContract(contract); err != nil {
		return nil, err
	}

	ref, err := s.storeDocument(ctx, doc)
	if err != nil {
		return nil, err
	}
	ref.UploadedAt = now
	contract.Document = ref

	if err := s.contractRepo.SaveContract(ctx, contract); err != nil {
		s.LogError(ctx, err, "Failed to save contract", slog.String("contract_id", contract.ContractID))
		s.discardDocument(ctx, ref.StorageKey)
		return nil, err
	}

	s.LogInfo(ctx, "Contract created",
		slog.String("contract_id", contract.ContractID),
		slog.String("document", ref.StorageKey),
		slog.Int64("document_size", ref.Size))
	s.Publish(ctx, domain.EventContractCreated, contract.ContractID, userID, contract.Version, map[string]any{
		"client": contract.Client,
		"value":  contract.Value.StringFixed(2),
	})
	out := s.withStatus(contract, s.Today())
	return &out, nil
}

// storeDocument checks that the upload is a PDF within the size limit and writes it to the store.
func (s *contractService) storeDocument(ctx context.Context, doc domain.DocumentUpload) (*domain.DocumentRef, error) {
	if doc.Content == nil {
		return nil, apperrors.NewValidationError("a signed contract document is required")
	}
	if doc.Size > s.maxDocSize {
		return nil, apperrors.NewValidationError(fmt.Sprintf("document exceeds the %d MB limit", s.maxDocSize>>20))
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(doc.Content, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read uploaded document: %w", err)
	}
	head = head[:n]
	if n == 0 {
		return nil, apperrors.NewValidationError("the uploaded document is empty")
	}
	if mt := mimetype.Detect(head); !mt.Is(pdfMIME) {
		s.LogDebug(ctx, "Rejected contract document", slog.String("detected", mt.String()))
		return nil, apperrors.NewValidationError("only PDF documents are accepted")
	}

	key, err := utils.GenerateStorageKey(s.Now(), doc.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate document key: %w", err)
	}
	body := io.LimitReader(io.MultiReader(bytes.NewReader(head), doc.Content), s.maxDocSize+1)
	written, err := s.documents.Put(ctx, key, body)
	if err != nil {
		s.LogError(ctx, err, "Failed to store contract document", slog.String("key", key))
		return nil, err
	}
	if written > s.maxDocSize {
		s.discardDocument(ctx, key)
		return nil, apperrors.NewValidationError(fmt.Sprintf("document exceeds the %d MB limit", s.maxDocSize>>20))
	}

	return &domain.DocumentRef{
		Name:        utils.SanitizeFileName(doc.Name),
		StorageKey:  key,
		ContentType: pdfMIME,
		Size:        written,
	}, nil
}

func (s *contractService) discardDocument(ctx context.Context, key string) {
	if err := s.documents.Delete(ctx, key); err != nil {
		s.LogError(ctx, err, "Failed to remove contract document", slog.String("key", key))
	}
}

func (s *contractService) GetContract(ctx context.Context, contractID string) (*domain.ContractWithStatus, error) {
	contract, err := s.contractRepo.FindContractByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	out := s.withStatus(*contract, s.Today())
	return &out, nil
}

// ListContracts applies the stored-field criteria in the repository and the
// derived status afterwards, since status depends on the current day.
func (s *contractService) ListContracts(ctx context.Context, params dto.ListContractsParams) ([]domain.ContractWithStatus, error) {
	filter, err := params.ToDomain()
	if err != nil {
		return nil, err
	}

	contracts, err := s.contractRepo.ListContracts(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list contracts")
		return nil, err
	}

	today := s.Today()
	out := make([]domain.ContractWithStatus, 0, len(contracts))
	for _, c := range contracts {
		item := s.withStatus(c, today)
		if filter.Status != nil && item.View.Status != *filter.Status {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *contractService) ListContractClients(ctx context.Context) ([]string, error) {
	clients, err := s.contractRepo.ListContractClients(ctx)
	if err != nil {
		return nil, err
	}
	if clients == nil {
		clients = []string{}
	}
	return clients, nil
}

func (s *contractService) GetContractStats(ctx context.Context) (*domain.ContractStats, error) {
	contracts, err := s.contractRepo.ListContracts(ctx, domain.ContractFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to load contracts for stats")
		return nil, err
	}
	stats := engine.SummarizeContracts(contracts, s.Today())
	return &stats, nil
}

// OpenContractDocument returns the stored document. The caller must close the reader.
func (s *contractService) OpenContractDocument(ctx context.Context, contractID string) (*domain.DocumentRef, io.ReadCloser, error) {
	contract, err := s.contractRepo.FindContractByID(ctx, contractID)
	if err != nil {
		return nil, nil, err
	}
	if contract.Document == nil {
		return nil, nil, apperrors.NewNotFoundError("contract has no document")
	}

	rc, err := s.documents.Open(ctx, contract.Document.StorageKey)
	if err != nil {
		s.LogError(ctx, err, "Failed to open contract document",
			slog.String("contract_id", contractID),
			slog.String("key", contract.Document.StorageKey))
		return nil, nil, err
	}
	return contract.Document, rc, nil
}

func (s *contractService) UpdateContract(ctx context.Context, contractID string, req dto.UpdateContractRequest, userID string) (*domain.ContractWithStatus, error) {
	contract, err := s.contractRepo.FindContractByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		contract.Title = strings.TrimSpace(*req.Title)
	}
	if req.Client != nil {
		contract.Client = strings.TrimSpace(*req.Client)
	}
	if req.Value != nil {
		contract.Value = *req.Value
	}
	if req.StartDate != nil {
		if contract.StartDate, err = dto.ParseDate(*req.StartDate); err != nil {
			return nil, err
		}
	}
	if req.EndDate != nil {
		if contract.EndDate, err = dto.ParseDate(*req.EndDate); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		contract.Notes = req.Notes
	}
	if err := engine.ValidateContract(*contract); err != nil {
		return nil, err
	}

	expected := touch(&contract.AuditFields, s.Now(), userID, req.Version)
	if err := s.contractRepo.UpdateContract(ctx, *contract, expected); err != nil {
		s.LogError(ctx, err, "Failed to update contract",
			slog.String("contract_id", contractID),
			slog.Int64("expected_version", expected))
		return nil, err
	}

	s.Publish(ctx, domain.EventContractUpdated, contract.ContractID, userID, contract.Version, nil)
	out := s.withStatus(*contract, s.Today())
	return &out, nil
}

// DeleteContract removes the record first, then its document.
func (s *contractService) DeleteContract(ctx context.Context, contractID string, userID string) error {
	contract, err := s.contractRepo.FindContractByID(ctx, contractID)
	if err != nil {
		return err
	}
	if err := s.contractRepo.DeleteContract(ctx, contractID); err != nil {
		s.LogError(ctx, err, "Failed to delete contract", slog.String("contract_id", contractID))
		return err
	}
	if contract.Document != nil {
		s.discardDocument(ctx, contract.Document.StorageKey)
	}

	s.LogInfo(ctx, "Contract deleted", slog.String("contract_id", contractID), slog.String("user_id", userID))
	s.Publish(ctx, domain.EventContractDeleted, contractID, userID, 0, nil)
	return nil
}
