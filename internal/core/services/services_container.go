package services

import (
	"github.com/SscSPs/orbisx_backoffice/internal/core/ports/publishers"
	portsrepo "github.com/SscSPs/orbisx_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/orbisx_backoffice/internal/core/ports/services"
	"github.com/SscSPs/orbisx_backoffice/internal/platform/config"
)

// NewServiceContainer wires every service against the given repositories.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, documents portsrepo.DocumentStore, publisher publishers.EventPublisher) *portssvc.ServiceContainer {
	shared := []ServiceOption{WithEventPublisher(publisher)}

	ledgerSvc := NewLedgerService(repos.LedgerRepo, shared...)
	quoteSvc := NewQuoteService(repos.QuoteRepo, shared...)
	contractSvc := NewContractService(repos.ContractRepo, documents,
		WithMaxDocumentSize(cfg.MaxDocumentSizeByte),
		WithContractServiceOptions(shared...),
	)
	taskSvc := NewTaskService(repos.TaskRepo, shared...)

	authOptions := []AuthOption{WithAuthServiceOptions(shared...)}
	if google := NewGoogleIdentityProvider(cfg); google != nil {
		authOptions = append(authOptions, WithGoogleIdentityProvider(google))
	}

	return &portssvc.ServiceContainer{
		Ledger:    ledgerSvc,
		Quote:     quoteSvc,
		Contract:  contractSvc,
		Task:      taskSvc,
		Auth:      NewAuthService(cfg, repos.UserRepo, authOptions...),
		Dashboard: NewDashboardService(ledgerSvc, quoteSvc, contractSvc, taskSvc),
	}
}
