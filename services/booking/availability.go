package booking

import (
	"fmt"
	"time"

	bookingRepo "concierge/database/repository/booking"
	"concierge/database/repository/inventory"
	"concierge/models"
)

const dateLayout = "2006-01-02"

// AvailabilityResult reports whether a request fits the remaining capacity.
type AvailabilityResult struct {
	Available      bool `json:"available"`
	AvailableRooms int  `json:"availableRooms"`
}

// AvailabilityService answers capacity questions for a room type and date range.
type AvailabilityService interface {
	CheckAvailability(roomType, checkIn, checkOut string, roomsNeeded int) (AvailabilityResult, error)
}

// DefaultAvailabilityService computes availability as
// total - blocked - conflicts, where conflicts are real date-range overlaps
// against confirmed bookings. A confirmed booking that still holds an
// inventory block is already represented in the blocked counter and is not
// counted again. Past date ranges get no special casing.
type DefaultAvailabilityService struct {
	Inventory inventory.InventoryStore
	Bookings  bookingRepo.BookingStore
	Catalog   *models.RoomCatalog
}

func (s *DefaultAvailabilityService) CheckAvailability(roomType, checkIn, checkOut string, roomsNeeded int) (AvailabilityResult, error) {
	room, ok := s.Catalog.Find(roomType)
	if !ok {
		return AvailabilityResult{}, inventory.ErrUnknownRoomType
	}

	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return AvailabilityResult{}, fmt.Errorf("invalid check-in date %q: %w", checkIn, err)
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return AvailabilityResult{}, fmt.Errorf("invalid check-out date %q: %w", checkOut, err)
	}
	if !out.After(in) {
		return AvailabilityResult{}, fmt.Errorf("check-out %s must be after check-in %s", checkOut, checkIn)
	}

	counters, err := s.Inventory.Snapshot(room.ID)
	if err != nil {
		return AvailabilityResult{}, err
	}

	conflicts, err := s.countConflicts(room.ID, in, out)
	if err != nil {
		return AvailabilityResult{}, err
	}

	availableRooms := counters.Total - counters.Blocked - conflicts
	if availableRooms < 0 {
		availableRooms = 0
	}
	return AvailabilityResult{
		Available:      availableRooms >= roomsNeeded,
		AvailableRooms: availableRooms,
	}, nil
}

// countConflicts counts confirmed bookings of the room type whose stay
// overlaps [in, out) and whose rooms are not already held in the blocked
// counter.
func (s *DefaultAvailabilityService) countConflicts(roomID string, in, out time.Time) (int, error) {
	confirmed, err := s.Bookings.List(models.BookingFilter{
		Status:   models.BookingStatusConfirmed,
		RoomType: roomID,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to list bookings for %s: %w", roomID, err)
	}

	conflicts := 0
	for _, b := range confirmed {
		if s.Inventory.HasBlock(b.ID) {
			continue
		}
		start, err := time.Parse(dateLayout, b.CheckInDate)
		if err != nil {
			continue
		}
		end := start.AddDate(0, 0, b.Nights)
		if start.Before(out) && end.After(in) {
			conflicts++
		}
	}
	return conflicts, nil
}
