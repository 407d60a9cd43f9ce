package pricing

import (
	"fmt"
	"math"

	"concierge/models"
)

// Per-night surcharges in TWD.
const (
	extraGuestFeePerNight = 500
	childFeePerNight      = 300
	seniorDiscountRate    = 0.05
)

// memberDiscountRates maps member levels to their discount rate off the
// subtotal. Unknown levels get no discount.
var memberDiscountRates = map[string]float64{
	models.MemberLevelNone:     0,
	models.MemberLevelSilver:   0.05,
	models.MemberLevelGold:     0.10,
	models.MemberLevelPlatinum: 0.15,
}

// PricingService computes itemized room prices against the static rate table.
type PricingService interface {
	CalculateRoomPrice(roomType string, nights, guestCount int, memberLevel string, childrenCount, seniorCount int) (*models.PricingBreakdown, error)
}

// DefaultPricingService implements PricingService.
type DefaultPricingService struct {
	Catalog *models.RoomCatalog
}

// NewPricingService builds the engine over the room catalog.
func NewPricingService(catalog *models.RoomCatalog) *DefaultPricingService {
	return &DefaultPricingService{Catalog: catalog}
}

// CalculateRoomPrice runs the fixed computation order: base, extra-guest fee,
// child fee, subtotal, then member and senior discounts. The two discounts
// stack additively; both subtract from the same subtotal. All outputs are
// integer TWD.
func (s *DefaultPricingService) CalculateRoomPrice(roomType string, nights, guestCount int, memberLevel string, childrenCount, seniorCount int) (*models.PricingBreakdown, error) {
	rate, ok := s.Catalog.Find(roomType)
	if !ok {
		return nil, newError(CodeInvalidRoomType, fmt.Sprintf("unknown room type %q", roomType))
	}
	if nights < 1 {
		return nil, newError(CodeInvalidNights, "nights must be at least 1")
	}
	if guestCount < 1 {
		return nil, newError(CodeInvalidGuestCount, "guest count must be at least 1")
	}

	basePrice := rate.BasePrice * nights

	extraGuests := guestCount - rate.MaxGuests
	if extraGuests < 0 {
		extraGuests = 0
	}
	extraGuestFee := extraGuests * extraGuestFeePerNight * nights
	childExtraFee := childrenCount * childFeePerNight * nights

	subtotal := basePrice + extraGuestFee + childExtraFee

	memberDiscount := int(math.Round(float64(subtotal) * memberDiscountRates[memberLevel]))
	seniorDiscount := int(math.Round(float64(subtotal) * seniorDiscountRate * float64(seniorCount)))

	return &models.PricingBreakdown{
		RoomType:       rate.ID,
		Nights:         nights,
		GuestCount:     guestCount,
		BasePrice:      basePrice,
		ExtraGuestFee:  extraGuestFee,
		ChildExtraFee:  childExtraFee,
		Subtotal:       subtotal,
		MemberDiscount: memberDiscount,
		SeniorDiscount: seniorDiscount,
		Total:          subtotal - memberDiscount - seniorDiscount,
		Currency:       "TWD",
	}, nil
}
