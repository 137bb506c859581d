package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract is a row of the contracts table.
type Contract struct {
	ContractID          string          `db:"contract_id"`
	Title               string          `db:"title"`
	Client              string          `db:"client"`
	Value               decimal.Decimal `db:"value"`
	StartDate           time.Time       `db:"start_date"`
	EndDate             time.Time       `db:"end_date"`
	Notes               *string         `db:"notes"`
	DocumentName        *string         `db:"document_name"`
	DocumentKey         *string         `db:"document_key"`
	DocumentContentType *string         `db:"document_content_type"`
	DocumentSize        *int64          `db:"document_size"`
	DocumentUploadedAt  *time.Time      `db:"document_uploaded_at"`
	AuditFields
}
