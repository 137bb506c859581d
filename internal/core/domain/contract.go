package domain

import (
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// ContractStatus is derived from the contract dates and the current day. It is never stored.
type ContractStatus string

const (
	ContractStatusAwaiting ContractStatus = "awaiting"
	ContractStatusActive   ContractStatus = "active"
	ContractStatusFinished ContractStatus = "finished"
)

// ContractLifecycle describes how a contract's derived status moves as time passes.
var ContractLifecycle = NewLifecycle(ContractStatusAwaiting,
	Stage[ContractStatus]{State: ContractStatusAwaiting, Label: "Aguardando Início", Next: []ContractStatus{ContractStatusActive}},
	Stage[ContractStatus]{State: ContractStatusActive, Label: "Ativo", Next: []ContractStatus{ContractStatusFinished}},
	Stage[ContractStatus]{State: ContractStatusFinished, Label: "Finalizado"},
)

// ExpiringSoonDays is the threshold under which an active contract is flagged.
const ExpiringSoonDays = 30

// DocumentRef points at the stored signed copy of a contract.
type DocumentRef struct {
	Name        string    `json:"name"`
	StorageKey  string    `json:"-"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// Contract is an agreement with a client covering a date range.
type Contract struct {
	ContractID string          `json:"contractID"`
	Title      string          `json:"title"`
	Client     string          `json:"client"`
	Value      decimal.Decimal `json:"value"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    time.Time       `json:"endDate"`
	Notes      *string         `json:"notes,omitempty"`
	Document   *DocumentRef    `json:"document,omitempty"`
	AuditFields
}

// ContractStatusView is the derived temporal state of a contract.
type ContractStatusView struct {
	Status        ContractStatus `json:"status"`
	DaysRemaining int            `json:"daysRemaining"`
	ExpiringSoon  bool           `json:"expiringSoon"`
}

// ContractFilter narrows a contract listing.
type ContractFilter struct {
	Client    string
	StartFrom *time.Time
	EndUntil  *time.Time
	Status    *ContractStatus
}

// ContractStats counts contracts per derived status.
type ContractStats struct {
	Total       int                    `json:"total"`
	ByStatus    map[ContractStatus]int `json:"byStatus"`
	TotalValue  decimal.Decimal        `json:"totalValue"`
	ActiveValue decimal.Decimal        `json:"activeValue"`
}

// ContractWithStatus pairs a stored contract with its status derived for one day.
type ContractWithStatus struct {
	Contract
	View ContractStatusView `json:"view"`
}

// DocumentUpload is a file received from a client, not yet stored.
type DocumentUpload struct {
	Name    string
	Size    int64
	Content io.Reader
}
