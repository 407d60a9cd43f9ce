package inventory

import (
	"sync"
	"testing"

	"concierge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() *MemoryInventoryStore {
	return NewMemoryInventoryStore(models.DefaultRoomCatalog())
}

func TestBlockAndInsufficientInventory(t *testing.T) {
	store := newStore()

	// 標準雙人房 has 20 rooms; take one so 19 remain.
	require.NoError(t, store.BlockRooms("標準雙人房", 1, "BKG-0"))

	snap, err := store.Snapshot("標準雙人房")
	require.NoError(t, err)
	require.Equal(t, 19, snap.Available())

	require.NoError(t, store.BlockRooms("標準雙人房", 5, "BKG-1"))

	err = store.BlockRooms("標準雙人房", 25, "BKG-2")
	assert.ErrorIs(t, err, ErrInsufficientInventory)

	snap, err = store.Snapshot("標準雙人房")
	require.NoError(t, err)
	assert.Equal(t, 6, snap.Blocked) // unchanged by the failed block
	assert.False(t, store.HasBlock("BKG-2"))
}

func TestReleaseIsIdempotent(t *testing.T) {
	store := newStore()
	require.NoError(t, store.BlockRooms("standard", 3, "BKG-1"))

	require.NoError(t, store.ReleaseRooms("BKG-1"))
	snap, err := store.Snapshot("standard")
	require.NoError(t, err)
	assert.Equal(t, 0, snap.Blocked)

	err = store.ReleaseRooms("BKG-1")
	assert.ErrorIs(t, err, ErrNotFound)

	snap, err = store.Snapshot("standard")
	require.NoError(t, err)
	assert.Equal(t, 0, snap.Blocked) // unchanged by the second release
}

func TestUnknownRoomType(t *testing.T) {
	store := newStore()

	_, err := store.Snapshot("igloo")
	assert.ErrorIs(t, err, ErrUnknownRoomType)

	err = store.BlockRooms("igloo", 1, "BKG-1")
	assert.ErrorIs(t, err, ErrUnknownRoomType)
}

func TestDisplayNameAndIDShareCounters(t *testing.T) {
	store := newStore()
	require.NoError(t, store.BlockRooms("標準雙人房", 2, "BKG-1"))

	snap, err := store.Snapshot("standard")
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Blocked)
}

func TestBlockedNeverExceedsTotalUnderConcurrency(t *testing.T) {
	store := newStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			// Half block, half release; errors are expected and fine.
			id := "BKG-" + string(rune('A'+n%26))
			_ = store.BlockRooms("deluxe", 2, id)
			if n%2 == 0 {
				_ = store.ReleaseRooms(id)
			}
		}(i)
	}
	wg.Wait()

	snap, err := store.Snapshot("deluxe")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, snap.Blocked, 0)
	assert.LessOrEqual(t, snap.Blocked, snap.Total)
}
