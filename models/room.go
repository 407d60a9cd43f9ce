package models

// RoomType is an immutable catalog entry, loaded once at startup.
type RoomType struct {
	ID         string `json:"id"`
	Name       string `json:"name"`      // Display name, e.g. "標準雙人房"
	BasePrice  int    `json:"basePrice"` // Nightly rate in TWD
	MaxGuests  int    `json:"maxGuests"`
	MinNights  int    `json:"minNights"`
	MaxNights  int    `json:"maxNights"`
	MinRooms   int    `json:"minRooms"`
	MaxRooms   int    `json:"maxRooms"`
	TotalRooms int    `json:"totalRooms"`
	Available  bool   `json:"available"`
}

// RoomCatalog holds the static room-rate table.
type RoomCatalog struct {
	rooms []RoomType
}

// DefaultRoomCatalog returns the static catalog used by the assistant.
func DefaultRoomCatalog() *RoomCatalog {
	return &RoomCatalog{
		rooms: []RoomType{
			{ID: "standard", Name: "標準雙人房", BasePrice: 2200, MaxGuests: 2, MinNights: 1, MaxNights: 30, MinRooms: 1, MaxRooms: 5, TotalRooms: 20, Available: true},
			{ID: "deluxe", Name: "豪華雙人房", BasePrice: 3600, MaxGuests: 2, MinNights: 1, MaxNights: 30, MinRooms: 1, MaxRooms: 5, TotalRooms: 15, Available: true},
			{ID: "family", Name: "家庭四人房", BasePrice: 5800, MaxGuests: 4, MinNights: 1, MaxNights: 30, MinRooms: 1, MaxRooms: 3, TotalRooms: 10, Available: true},
			{ID: "suite", Name: "行政套房", BasePrice: 8800, MaxGuests: 2, MinNights: 1, MaxNights: 14, MinRooms: 1, MaxRooms: 2, TotalRooms: 5, Available: true},
		},
	}
}

// Find resolves a room type by id or display name.
func (c *RoomCatalog) Find(key string) (RoomType, bool) {
	for _, r := range c.rooms {
		if r.ID == key || r.Name == key {
			return r, true
		}
	}
	return RoomType{}, false
}

// All returns every catalog entry.
func (c *RoomCatalog) All() []RoomType {
	out := make([]RoomType, len(c.rooms))
	copy(out, c.rooms)
	return out
}
