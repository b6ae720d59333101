package services

import (
	"context"

	"github.com/SscSPs/garage_books/internal/core/domain"
	"github.com/SscSPs/garage_books/internal/dto"
)

// JournalReaderSvc defines read operations for journal entries
type JournalReaderSvc interface {
	// GetJournalByID retrieves a posted entry.
	GetJournalByID(ctx context.Context, journalID string) (*domain.JournalEntry, error)

	// ReversedBy returns the ID of the entry that reversed journalID, if any.
	ReversedBy(ctx context.Context, journalID string) (string, bool)

	// ListJournals retrieves a page of entries in posting order.
	ListJournals(ctx context.Context, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error)
}

// JournalWriterSvc defines write operations for journal entries
type JournalWriterSvc interface {
	// PostJournal validates and posts a manual entry.
	PostJournal(ctx context.Context, req dto.CreateJournalRequest) (*domain.JournalEntry, error)

	// ReverseJournal posts an entry that undoes journalID.
	ReverseJournal(ctx context.Context, journalID string, req dto.ReverseJournalRequest) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
