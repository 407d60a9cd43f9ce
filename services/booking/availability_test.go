package booking

import (
	"testing"
	"time"

	bookingRepo "concierge/database/repository/booking"
	"concierge/database/repository/inventory"
	"concierge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAvailability() (*DefaultAvailabilityService, *bookingRepo.MemoryBookingStore, *inventory.MemoryInventoryStore) {
	catalog := models.DefaultRoomCatalog()
	bookings := bookingRepo.NewMemoryBookingStore()
	inv := inventory.NewMemoryInventoryStore(catalog)
	return &DefaultAvailabilityService{
		Inventory: inv,
		Bookings:  bookings,
		Catalog:   catalog,
	}, bookings, inv
}

func TestAvailabilityFullCapacity(t *testing.T) {
	svc, _, _ := newAvailability()

	result, err := svc.CheckAvailability("standard", "2026-10-01", "2026-10-03", 1)
	require.NoError(t, err)
	assert.True(t, result.Available)
	assert.Equal(t, 20, result.AvailableRooms)
}

func TestAvailabilitySubtractsBlocked(t *testing.T) {
	svc, _, inv := newAvailability()
	require.NoError(t, inv.BlockRooms("standard", 4, "BKG-1"))

	result, err := svc.CheckAvailability("standard", "2026-10-01", "2026-10-03", 20)
	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, 16, result.AvailableRooms)
}

func TestAvailabilityCountsUnblockedOverlaps(t *testing.T) {
	svc, bookings, _ := newAvailability()

	// A confirmed booking without an inventory block (e.g. rebuilt state)
	// still counts as a conflict when the dates overlap.
	require.NoError(t, bookings.Create(&models.Booking{
		Status:      models.BookingStatusConfirmed,
		RoomType:    "standard",
		CheckInDate: "2026-10-02",
		Nights:      2,
		CreatedAt:   time.Now(),
	}))

	overlapping, err := svc.CheckAvailability("standard", "2026-10-01", "2026-10-03", 1)
	require.NoError(t, err)
	assert.Equal(t, 19, overlapping.AvailableRooms)

	disjoint, err := svc.CheckAvailability("standard", "2026-10-10", "2026-10-12", 1)
	require.NoError(t, err)
	assert.Equal(t, 20, disjoint.AvailableRooms)

	// Back-to-back stays do not conflict: checkout day equals check-in day.
	adjacent, err := svc.CheckAvailability("standard", "2026-10-04", "2026-10-06", 1)
	require.NoError(t, err)
	assert.Equal(t, 20, adjacent.AvailableRooms)
}

func TestAvailabilitySkipsBlockedBookings(t *testing.T) {
	svc, bookings, inv := newAvailability()

	b := &models.Booking{
		Status:      models.BookingStatusConfirmed,
		RoomType:    "standard",
		CheckInDate: "2026-10-02",
		Nights:      2,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, bookings.Create(b))
	require.NoError(t, inv.BlockRooms("standard", 1, b.ID))

	// The booking's room is in the blocked counter; it is not double-counted
	// as an overlap conflict.
	result, err := svc.CheckAvailability("standard", "2026-10-01", "2026-10-03", 1)
	require.NoError(t, err)
	assert.Equal(t, 19, result.AvailableRooms)
}

func TestAvailabilityPastDatesNoSpecialCase(t *testing.T) {
	svc, _, inv := newAvailability()
	require.NoError(t, inv.BlockRooms("standard", 3, "BKG-1"))

	// Fully past ranges report on capacity alone, exactly like future ones.
	result, err := svc.CheckAvailability("standard", "2020-01-01", "2020-01-03", 1)
	require.NoError(t, err)
	assert.True(t, result.Available)
	assert.Equal(t, 17, result.AvailableRooms)
}

func TestAvailabilityRejectsBadRange(t *testing.T) {
	svc, _, _ := newAvailability()

	_, err := svc.CheckAvailability("standard", "2026-10-03", "2026-10-01", 1)
	assert.Error(t, err)

	_, err = svc.CheckAvailability("standard", "not-a-date", "2026-10-01", 1)
	assert.Error(t, err)

	_, err = svc.CheckAvailability("igloo", "2026-10-01", "2026-10-03", 1)
	assert.ErrorIs(t, err, inventory.ErrUnknownRoomType)
}
