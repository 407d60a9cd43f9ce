package inventory

import (
	"sync"

	"concierge/models"
)

type blockRecord struct {
	roomID string
	count  int
}

// MemoryInventoryStore keeps capacity counters in process memory, seeded from
// the room catalog. All mutations run under a single mutex so the
// 0 <= blocked <= total invariant holds in a multi-threaded runtime.
type MemoryInventoryStore struct {
	mu       sync.Mutex
	catalog  *models.RoomCatalog
	counters map[string]*Counters   // keyed by canonical room id
	blocks   map[string]blockRecord // keyed by booking id
}

// NewMemoryInventoryStore seeds one counter row per catalog entry.
func NewMemoryInventoryStore(catalog *models.RoomCatalog) *MemoryInventoryStore {
	counters := make(map[string]*Counters)
	for _, r := range catalog.All() {
		counters[r.ID] = &Counters{Total: r.TotalRooms}
	}
	return &MemoryInventoryStore{
		catalog:  catalog,
		counters: counters,
		blocks:   make(map[string]blockRecord),
	}
}

// resolve maps an id or display name to the canonical room id.
func (s *MemoryInventoryStore) resolve(roomType string) (string, error) {
	r, ok := s.catalog.Find(roomType)
	if !ok {
		return "", ErrUnknownRoomType
	}
	return r.ID, nil
}

func (s *MemoryInventoryStore) Snapshot(roomType string) (Counters, error) {
	roomID, err := s.resolve(roomType)
	if err != nil {
		return Counters{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.counters[roomID], nil
}

// BlockRooms atomically increments the blocked counter if enough rooms are
// free, recording the block against the booking id.
func (s *MemoryInventoryStore) BlockRooms(roomType string, count int, bookingID string) error {
	roomID, err := s.resolve(roomType)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.counters[roomID]
	if c.Available() < count {
		return ErrInsufficientInventory
	}
	c.Blocked += count
	s.blocks[bookingID] = blockRecord{roomID: roomID, count: count}
	return nil
}

// HasBlock reports whether the booking id currently holds blocked rooms.
func (s *MemoryInventoryStore) HasBlock(bookingID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.blocks[bookingID]
	return ok
}

// ReleaseRooms decrements the blocked counter by the recorded count, floored
// at 0. Idempotent: a second release for the same booking id is a no-op that
// reports ErrNotFound.
func (s *MemoryInventoryStore) ReleaseRooms(bookingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.blocks[bookingID]
	if !ok {
		return ErrNotFound
	}
	delete(s.blocks, bookingID)

	c := s.counters[rec.roomID]
	c.Blocked -= rec.count
	if c.Blocked < 0 {
		c.Blocked = 0
	}
	return nil
}
