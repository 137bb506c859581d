package mapping

import (
	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/SscSPs/orbisx_backoffice/internal/models"
)

// ToModelContract converts a domain Contract to a model Contract
func ToModelContract(d domain.Contract) models.Contract {
	m := models.Contract{
		ContractID:  d.ContractID,
		Title:       d.Title,
		Client:      d.Client,
		Value:       d.Value,
		StartDate:   domain.DateOf(d.StartDate),
		EndDate:     domain.DateOf(d.EndDate),
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if doc := d.Document; doc != nil {
		name, key, contentType, size, uploadedAt := doc.Name, doc.StorageKey, doc.ContentType, doc.Size, doc.UploadedAt
		m.DocumentName = &name
		m.DocumentKey = &key
		m.DocumentContentType = &contentType
		m.DocumentSize = &size
		m.DocumentUploadedAt = &uploadedAt
	}
	return m
}

// ToDomainContract converts a model Contract to a domain Contract
func ToDomainContract(m models.Contract) domain.Contract {
	d := domain.Contract{
		ContractID:  m.ContractID,
		Title:       m.Title,
		Client:      m.Client,
		Value:       m.Value,
		StartDate:   domain.DateOf(m.StartDate),
		EndDate:     domain.DateOf(m.EndDate),
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.DocumentKey != nil {
		doc := &domain.DocumentRef{StorageKey: *m.DocumentKey}
		if m.DocumentName != nil {
			doc.Name = *m.DocumentName
		}
		if m.DocumentContentType != nil {
			doc.ContentType = *m.DocumentContentType
		}
		if m.DocumentSize != nil {
			doc.Size = *m.DocumentSize
		}
		if m.DocumentUploadedAt != nil {
			doc.UploadedAt = *m.DocumentUploadedAt
		}
		d.Document = doc
	}
	return d
}

// ToDomainContractSlice converts a slice of model contracts to domain contracts
func ToDomainContractSlice(ms []models.Contract) []domain.Contract {
	ds := make([]domain.Contract, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainContract(m)
	}
	return ds
}
