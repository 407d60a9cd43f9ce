package booking

import (
	"fmt"
	"sort"
	"sync"

	"concierge/models"
)

// MemoryBookingStore keeps booking records in a process-local map and
// allocates ids from a monotonic counter ("BKG-1", "BKG-2", ...).
type MemoryBookingStore struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
	nextID   int
}

// NewMemoryBookingStore creates an empty store.
func NewMemoryBookingStore() *MemoryBookingStore {
	return &MemoryBookingStore{
		bookings: make(map[string]models.Booking),
		nextID:   1,
	}
}

func (s *MemoryBookingStore) Create(b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = fmt.Sprintf("BKG-%d", s.nextID)
	s.nextID++
	s.bookings[b.ID] = *b
	return nil
}

func (s *MemoryBookingStore) Get(bookingID string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[bookingID]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (s *MemoryBookingStore) Update(b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[b.ID]; !ok {
		return ErrNotFound
	}
	s.bookings[b.ID] = *b
	return nil
}

func (s *MemoryBookingStore) Delete(bookingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[bookingID]; !ok {
		return ErrNotFound
	}
	delete(s.bookings, bookingID)
	return nil
}

func (s *MemoryBookingStore) List(filter models.BookingFilter) ([]*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Booking
	for _, b := range s.bookings {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.RoomType != "" && b.RoomType != filter.RoomType {
			continue
		}
		copied := b
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
