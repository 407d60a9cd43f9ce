package promotion

import (
	"testing"
	"time"

	"concierge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWelcome100Applies(t *testing.T) {
	svc := NewPromotionService()

	promo, err := svc.Validate("WELCOME100", 5940, 3)
	require.NoError(t, err)

	applied := svc.Apply(5940, promo)
	assert.Equal(t, 100, applied.DiscountAmount)
	assert.Equal(t, 5840, applied.FinalPrice)
}

func TestWelcome100BelowMinimumAmount(t *testing.T) {
	svc := NewPromotionService()

	_, err := svc.Validate("WELCOME100", 900, 3)
	var pErr *Error
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, CodeBelowMinimumAmount, pErr.Code)
}

func TestUnknownCode(t *testing.T) {
	svc := NewPromotionService()

	_, err := svc.Validate("NOPE", 5000, 2)
	var pErr *Error
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, CodeInvalidCode, pErr.Code)
}

func TestBelowMinimumNights(t *testing.T) {
	svc := NewPromotionService()

	_, err := svc.Validate("STAY3", 9000, 2)
	var pErr *Error
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, CodeBelowMinimumNights, pErr.Code)
}

func TestExpiredCode(t *testing.T) {
	svc := NewPromotionService()
	past := time.Now().AddDate(0, -1, 0)
	svc.Register(models.Promotion{Code: "GONE", Type: models.PromoTypeFixed, Value: 50, ValidUntil: &past})

	_, err := svc.Validate("GONE", 5000, 2)
	var pErr *Error
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, CodeExpired, pErr.Code)
}

func TestNotYetExpiredCode(t *testing.T) {
	svc := NewPromotionService()
	future := time.Now().AddDate(0, 1, 0)
	svc.Register(models.Promotion{Code: "SOON", Type: models.PromoTypeFixed, Value: 50, ValidUntil: &future})

	_, err := svc.Validate("SOON", 5000, 2)
	assert.NoError(t, err)
}

func TestPercentageRounds(t *testing.T) {
	svc := NewPromotionService()

	promo, err := svc.Validate("STAY3", 6655, 3)
	require.NoError(t, err)

	applied := svc.Apply(6655, promo)
	assert.Equal(t, 666, applied.DiscountAmount) // round(665.5)
	assert.Equal(t, 5989, applied.FinalPrice)
}

func TestFixedDiscountFlooredAtZero(t *testing.T) {
	svc := NewPromotionService()
	svc.Register(models.Promotion{Code: "BIG", Type: models.PromoTypeFixed, Value: 10000})

	promo, err := svc.Validate("BIG", 500, 1)
	require.NoError(t, err)

	applied := svc.Apply(500, promo)
	assert.Equal(t, 10000, applied.DiscountAmount)
	assert.Equal(t, 0, applied.FinalPrice)
}
