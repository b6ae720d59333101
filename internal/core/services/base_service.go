package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/garage_books/internal/apperrors"
	"github.com/SscSPs/garage_books/internal/core/domain"
	portssvc "github.com/SscSPs/garage_books/internal/core/ports/services"
	"github.com/SscSPs/garage_books/internal/middleware"
	"github.com/SscSPs/garage_books/internal/platform/metrics"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Metrics   *metrics.Metrics
	Publisher portssvc.EntryEventPublisher
}

// ServiceOption is a functional option shared by every service constructor.
type ServiceOption func(*BaseService)

// WithMetrics records ledger activity on m.
func WithMetrics(m *metrics.Metrics) ServiceOption {
	return func(s *BaseService) {
		s.Metrics = m
	}
}

// WithEventPublisher announces every posted entry through p.
func WithEventPublisher(p portssvc.EntryEventPublisher) ServiceOption {
	return func(s *BaseService) {
		s.Publisher = p
	}
}

func newBaseService(options []ServiceOption) BaseService {
	var base BaseService
	for _, option := range options {
		option(&base)
	}
	return base
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// entryPosted counts a posted entry and publishes it. A failed publish is
// logged and counted; the entry stays posted.
func (s *BaseService) entryPosted(ctx context.Context, entry domain.JournalEntry) {
	s.Metrics.EntryPosted(entry.SourceRef.Kind())
	s.LogInfo(ctx, "Journal entry posted",
		slog.String("entry_id", entry.EntryID),
		slog.Uint64("sequence", entry.Sequence),
		slog.String("source_ref", string(entry.SourceRef)))

	if s.Publisher == nil {
		return
	}
	if err := s.Publisher.PublishEntryPosted(ctx, entry); err != nil {
		s.Metrics.EventFailed()
		s.LogError(ctx, err, "Failed to publish entry posted event", slog.String("entry_id", entry.EntryID))
	}
}

// postRejected counts and logs a post the ledger refused.
func (s *BaseService) postRejected(ctx context.Context, err error, keyvals ...any) {
	reason := rejectReason(err)
	s.Metrics.PostRejected(reason)
	s.LogError(ctx, err, "Journal entry rejected", append([]any{slog.String("reason", reason)}, keyvals...)...)
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrUnbalancedEntry):
		return "unbalanced"
	case errors.Is(err, apperrors.ErrUnknownAccount):
		return "unknown_account"
	case errors.Is(err, apperrors.ErrInvalidRate):
		return "invalid_rate"
	case errors.Is(err, apperrors.ErrValidation):
		return "validation"
	case errors.Is(err, apperrors.ErrNotFound):
		return "not_found"
	case errors.Is(err, apperrors.ErrConflict):
		return "conflict"
	}
	return "internal"
}
