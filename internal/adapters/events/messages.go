package events

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/garage_books/internal/core/domain"
)

// EntryPostedMessage is published once per journal entry accepted by the ledger.
type EntryPostedMessage struct {
	EntryID     string             `json:"entryID"`
	Sequence    uint64             `json:"sequence"`
	Date        string             `json:"date"`
	PostedAt    time.Time          `json:"postedAt"`
	Description string             `json:"description,omitempty"`
	SourceRef   string             `json:"sourceRef,omitempty"`
	Vendor      string             `json:"vendor,omitempty"`
	ReversalOf  string             `json:"reversalOf,omitempty"`
	Lines       []EntryLineMessage `json:"lines"`
}

// EntryLineMessage is one line of a posted entry.
type EntryLineMessage struct {
	AccountID string       `json:"accountID"`
	Debit     domain.Money `json:"debit"`
	Credit    domain.Money `json:"credit"`
}

// NewEntryPostedMessage builds the event payload for entry.
func NewEntryPostedMessage(entry domain.JournalEntry) *EntryPostedMessage {
	msg := &EntryPostedMessage{
		EntryID:     entry.EntryID,
		Sequence:    entry.Sequence,
		Date:        entry.Date.Format(time.DateOnly),
		PostedAt:    entry.PostedAt,
		Description: entry.Description,
		SourceRef:   string(entry.SourceRef),
		Vendor:      entry.SourceRef.Vendor(),
		ReversalOf:  entry.ReversalOf,
		Lines:       make([]EntryLineMessage, 0, len(entry.Lines)),
	}
	for _, l := range entry.Lines {
		msg.Lines = append(msg.Lines, EntryLineMessage{AccountID: l.AccountID, Debit: l.Debit, Credit: l.Credit})
	}
	return msg
}

func (m *EntryPostedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}
