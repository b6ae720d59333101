package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/garage_books/internal/core/domain"
	"github.com/SscSPs/garage_books/internal/core/ledger"
	portsrepo "github.com/SscSPs/garage_books/internal/core/ports/repositories"
)

// Recorder writes ledger changes through a LedgerWriter before the ledger
// applies them. Each write gets its own deadline derived from base.
type Recorder struct {
	base    context.Context
	writer  portsrepo.LedgerWriter
	timeout time.Duration
}

var _ ledger.Recorder = (*Recorder)(nil)

// NewRecorder returns a ledger.Recorder backed by writer.
func NewRecorder(base context.Context, writer portsrepo.LedgerWriter, timeout time.Duration) *Recorder {
	return &Recorder{base: base, writer: writer, timeout: timeout}
}

func (r *Recorder) RecordAccount(acc domain.Account) error {
	ctx, cancel := context.WithTimeout(r.base, r.timeout)
	defer cancel()
	return r.writer.SaveAccount(ctx, acc)
}

func (r *Recorder) RecordEntry(entry domain.JournalEntry) error {
	ctx, cancel := context.WithTimeout(r.base, r.timeout)
	defer cancel()
	return r.writer.SaveEntry(ctx, entry)
}
