package inventory

import "errors"

var (
	// ErrUnknownRoomType is returned for room types outside the catalog.
	ErrUnknownRoomType = errors.New("unknown room type")
	// ErrInsufficientInventory is returned when a block would exceed capacity.
	ErrInsufficientInventory = errors.New("insufficient inventory")
	// ErrNotFound is returned when releasing a booking id with no recorded block.
	ErrNotFound = errors.New("no blocked rooms recorded for booking")
)

// Counters is a point-in-time snapshot of a room type's capacity.
// Invariant: 0 <= Blocked <= Total.
type Counters struct {
	Total   int `json:"total"`
	Blocked int `json:"blocked"`
}

// Available returns the unblocked capacity.
func (c Counters) Available() int {
	return c.Total - c.Blocked
}

// InventoryStore tracks per-room-type capacity counters. Blocks are keyed by
// booking id so a release only affects rooms actually blocked by that booking.
type InventoryStore interface {
	Snapshot(roomType string) (Counters, error)
	BlockRooms(roomType string, count int, bookingID string) error
	ReleaseRooms(bookingID string) error
	HasBlock(bookingID string) bool
}
