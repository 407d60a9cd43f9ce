package pricing

import (
	"testing"

	"concierge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *DefaultPricingService {
	return NewPricingService(models.DefaultRoomCatalog())
}

func TestGoldMemberThreeNights(t *testing.T) {
	got, err := newEngine().CalculateRoomPrice("standard", 3, 2, models.MemberLevelGold, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 6600, got.BasePrice)
	assert.Equal(t, 0, got.ExtraGuestFee)
	assert.Equal(t, 0, got.ChildExtraFee)
	assert.Equal(t, 6600, got.Subtotal)
	assert.Equal(t, 660, got.MemberDiscount)
	assert.Equal(t, 0, got.SeniorDiscount)
	assert.Equal(t, 5940, got.Total)
	assert.Equal(t, "TWD", got.Currency)
}

func TestExtraGuestAndChildFees(t *testing.T) {
	// 3 guests in a 2-guest room for 2 nights with 1 child.
	got, err := newEngine().CalculateRoomPrice("standard", 2, 3, models.MemberLevelNone, 1, 0)
	require.NoError(t, err)

	assert.Equal(t, 4400, got.BasePrice)
	assert.Equal(t, 1000, got.ExtraGuestFee) // 1 extra × 500 × 2 nights
	assert.Equal(t, 600, got.ChildExtraFee)  // 1 child × 300 × 2 nights
	assert.Equal(t, 6000, got.Subtotal)
	assert.Equal(t, 6000, got.Total)
}

func TestSeniorDiscountStacksAdditively(t *testing.T) {
	// Both discounts subtract from the same subtotal.
	got, err := newEngine().CalculateRoomPrice("standard", 2, 2, models.MemberLevelGold, 0, 2)
	require.NoError(t, err)

	assert.Equal(t, 4400, got.Subtotal)
	assert.Equal(t, 440, got.MemberDiscount) // 10%
	assert.Equal(t, 440, got.SeniorDiscount) // 5% × 2 seniors
	assert.Equal(t, 4400-440-440, got.Total)
}

func TestCalculateRoomPriceErrors(t *testing.T) {
	engine := newEngine()

	_, err := engine.CalculateRoomPrice("igloo", 2, 2, models.MemberLevelNone, 0, 0)
	var pErr *Error
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, CodeInvalidRoomType, pErr.Code)

	_, err = engine.CalculateRoomPrice("standard", 0, 2, models.MemberLevelNone, 0, 0)
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, CodeInvalidNights, pErr.Code)

	_, err = engine.CalculateRoomPrice("standard", 2, 0, models.MemberLevelNone, 0, 0)
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, CodeInvalidGuestCount, pErr.Code)
}

func TestDisplayNameResolves(t *testing.T) {
	got, err := newEngine().CalculateRoomPrice("豪華雙人房", 1, 2, models.MemberLevelNone, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "deluxe", got.RoomType)
	assert.Equal(t, 3600, got.Total)
}

func TestTotalMonotonicInNights(t *testing.T) {
	engine := newEngine()
	prev := 0
	for nights := 1; nights <= 14; nights++ {
		got, err := engine.CalculateRoomPrice("deluxe", nights, 2, models.MemberLevelSilver, 1, 1)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.Total, prev, "nights=%d", nights)
		prev = got.Total
	}
}

func TestTotalMonotonicInGuests(t *testing.T) {
	engine := newEngine()
	prev := 0
	for guests := 1; guests <= 8; guests++ {
		got, err := engine.CalculateRoomPrice("standard", 3, guests, models.MemberLevelGold, 0, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.Total, prev, "guests=%d", guests)
		prev = got.Total
	}
}
