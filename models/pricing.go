package models

// Member levels.
const (
	MemberLevelNone     = "none"
	MemberLevelSilver   = "silver"
	MemberLevelGold     = "gold"
	MemberLevelPlatinum = "platinum"
)

// PricingBreakdown is the itemized result of a room price computation.
// All amounts are integer TWD.
type PricingBreakdown struct {
	RoomType       string `json:"roomType"`
	Nights         int    `json:"nights"`
	GuestCount     int    `json:"guestCount"`
	BasePrice      int    `json:"basePrice"`
	ExtraGuestFee  int    `json:"extraGuestFee"`
	ChildExtraFee  int    `json:"childExtraFee"`
	Subtotal       int    `json:"subtotal"`
	MemberDiscount int    `json:"memberDiscount"`
	SeniorDiscount int    `json:"seniorDiscount"`
	Total          int    `json:"total"`
	Currency       string `json:"currency"`
}
