package ids

import (
	mathrand "math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Generator produces identifiers for ledger records.
type Generator interface {
	AccountID() string
	EntryID() string
}

type defaultGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewGenerator returns a Generator issuing UUIDs for accounts and monotonic
// ULIDs for journal entries, so entry IDs sort in posting order.
func NewGenerator() Generator {
	return &defaultGenerator{
		entropy: ulid.Monotonic(mathrand.New(mathrand.NewSource(time.Now().UnixNano())), 0),
	}
}

func (g *defaultGenerator) AccountID() string {
	return uuid.NewString()
}

func (g *defaultGenerator) EntryID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy).String()
}
