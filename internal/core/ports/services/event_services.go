package services

import (
	"context"

	"github.com/SscSPs/garage_books/internal/core/domain"
)

// EntryEventPublisher announces posted journal entries to other systems.
type EntryEventPublisher interface {
	PublishEntryPosted(ctx context.Context, entry domain.JournalEntry) error
}
