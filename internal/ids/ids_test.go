package ids

import (
	"testing"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryIDsAreSortedAndUnique(t *testing.T) {
	g := NewGenerator()
	prev := ""
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := g.EntryID()
		_, err := ulid.ParseStrict(id)
		require.NoError(t, err)
		assert.Greater(t, id, prev)
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
		prev = id
	}
}

func TestAccountIDIsUUID(t *testing.T) {
	_, err := uuid.Parse(NewGenerator().AccountID())
	assert.NoError(t, err)
}
