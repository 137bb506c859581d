package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/orbisx_backoffice/internal/apperrors"
	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/SscSPs/orbisx_backoffice/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateContractRequest is bound from the multipart form; the PDF travels in the "document" part.
type CreateContractRequest struct {
	Title     string  `form:"title" binding:"required,max=200"`
	Client    string  `form:"client" binding:"required,max=200"`
	Value     string  `form:"value" binding:"required"`
	StartDate string  `form:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string  `form:"end_date" binding:"required,datetime=2006-01-02"`
	Notes     *string `form:"notes"`
}

// ParseValue parses the contract value, accepting a decimal comma.
func (r CreateContractRequest) ParseValue() (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(r.Value), ",", "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid contract value %q", apperrors.ErrValidation, r.Value)
	}
	return v, nil
}

// UpdateContractRequest is a partial update of the contract metadata.
type UpdateContractRequest struct {
	Title     *string          `json:"title" binding:"omitempty,max=200"`
	Client    *string          `json:"client" binding:"omitempty,max=200"`
	Value     *decimal.Decimal `json:"value"`
	StartDate *string          `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string          `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Notes     *string          `json:"notes"`
	Version   *int64           `json:"version"`
}

// ListContractsParams defines query parameters for listing contracts.
type ListContractsParams struct {
	Client    string `form:"client"`
	StartFrom string `form:"start_from" binding:"omitempty,datetime=2006-01-02"`
	EndUntil  string `form:"end_until" binding:"omitempty,datetime=2006-01-02"`
	Status    string `form:"status" binding:"omitempty,oneof=awaiting active finished"`
}

// ToDomain converts the params into a filter.
func (p ListContractsParams) ToDomain() (domain.ContractFilter, error) {
	f := domain.ContractFilter{Client: p.Client}
	var err error
	if f.StartFrom, err = ParseOptionalDate(p.StartFrom); err != nil {
		return f, err
	}
	if f.EndUntil, err = ParseOptionalDate(p.EndUntil); err != nil {
		return f, err
	}
	if p.Status != "" {
		s := domain.ContractStatus(p.Status)
		f.Status = &s
	}
	return f, nil
}

// DocumentResponse describes the stored contract document.
type DocumentResponse struct {
	Name        string    `json:"name"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// ContractResponse defines the data returned for a contract, including its derived status.
type ContractResponse struct {
	ContractID    string                `json:"contractID"`
	Title         string                `json:"title"`
	Client        string                `json:"client"`
	Value         string                `json:"value"`
	StartDate     string                `json:"startDate"`
	EndDate       string                `json:"endDate"`
	Notes         *string               `json:"notes,omitempty"`
	Status        domain.ContractStatus `json:"status"`
	StatusLabel   string                `json:"statusLabel"`
	DaysRemaining int                   `json:"daysRemaining"`
	ExpiringSoon  bool                  `json:"expiringSoon"`
	Document      *DocumentResponse     `json:"document,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
	CreatedBy     string                `json:"createdBy"`
	LastUpdatedAt time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy string                `json:"lastUpdatedBy"`
	Version       int64                 `json:"version"`
}

// ContractMutationResponse wraps a created or updated contract.
type ContractMutationResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message,omitempty"`
	Contract ContractResponse `json:"contract"`
}

// ListContractsResponse defines the response for listing contracts.
type ListContractsResponse struct {
	Contracts []ContractResponse `json:"contracts"`
}

// ContractStatsResponse counts contracts per derived status.
type ContractStatsResponse struct {
	Total       int                           `json:"total"`
	ByStatus    map[domain.ContractStatus]int `json:"byStatus"`
	TotalValue  string                        `json:"totalValue"`
	ActiveValue string                        `json:"activeValue"`
}

// ToContractResponse converts a contract and its derived status to the DTO.
func ToContractResponse(c domain.ContractWithStatus) ContractResponse {
	res := ContractResponse{
		ContractID:    c.ContractID,
		Title:         c.Title,
		Client:        c.Client,
		Value:         utils.FormatMoney(c.Value),
		StartDate:     FormatDate(c.StartDate),
		EndDate:       FormatDate(c.EndDate),
		Notes:         c.Notes,
		Status:        c.View.Status,
		StatusLabel:   domain.ContractLifecycle.Label(c.View.Status),
		DaysRemaining: c.View.DaysRemaining,
		ExpiringSoon:  c.View.ExpiringSoon,
		CreatedAt:     c.CreatedAt,
		CreatedBy:     c.CreatedBy,
		LastUpdatedAt: c.LastUpdatedAt,
		LastUpdatedBy: c.LastUpdatedBy,
		Version:       c.Version,
	}
	if c.Document != nil {
		res.Document = &DocumentResponse{
			Name:        c.Document.Name,
			ContentType: c.Document.ContentType,
			Size:        c.Document.Size,
			UploadedAt:  c.Document.UploadedAt,
		}
	}
	return res
}

// ToListContractsResponse converts a slice of contracts.
func ToListContractsResponse(contracts []domain.ContractWithStatus) ListContractsResponse {
	res := ListContractsResponse{Contracts: make([]ContractResponse, len(contracts))}
	for i, c := range contracts {
		res.Contracts[i] = ToContractResponse(c)
	}
	return res
}

// ToContractStatsResponse converts contract statistics.
func ToContractStatsResponse(s domain.ContractStats) ContractStatsResponse {
	return ContractStatsResponse{
		Total:       s.Total,
		ByStatus:    s.ByStatus,
		TotalValue:  utils.FormatMoney(s.TotalValue),
		ActiveValue: utils.FormatMoney(s.ActiveValue),
	}
}
