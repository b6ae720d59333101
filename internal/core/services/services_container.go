package services

import (
	portsrepo "github.com/SscSPs/garage_books/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/garage_books/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:   NewAccountService(repos.Ledger, options...),
		Journal:   NewJournalService(repos.Ledger, options...),
		Document:  NewDocumentService(repos.Ledger, options...),
		Reporting: NewReportingService(repos.Ledger, options...),
	}
}
