package promotion

import (
	"fmt"
	"math"
	"time"

	"concierge/models"
)

// Error codes.
const (
	CodeInvalidCode        = "InvalidCode"
	CodeBelowMinimumAmount = "BelowMinimumAmount"
	CodeBelowMinimumNights = "BelowMinimumNights"
	CodeExpired            = "Expired"
)

// Error is a promotion eligibility failure.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// PromotionService validates and applies promo codes.
type PromotionService interface {
	Validate(code string, bookingAmount, nights int) (*models.Promotion, error)
	Apply(amount int, promo *models.Promotion) models.PromoApplication
}

// DefaultPromotionService implements PromotionService over a static registry.
type DefaultPromotionService struct {
	promos map[string]models.Promotion
	now    func() time.Time
}

// NewPromotionService returns a service preloaded with the registered codes.
func NewPromotionService() *DefaultPromotionService {
	flashEnd := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)
	svc := &DefaultPromotionService{
		promos: make(map[string]models.Promotion),
		now:    time.Now,
	}
	for _, p := range []models.Promotion{
		{Code: "WELCOME100", Type: models.PromoTypeFixed, Value: 100, MinAmount: 1000},
		{Code: "STAY3", Type: models.PromoTypePercentage, Value: 10, MinNights: 3},
		{Code: "VIP500", Type: models.PromoTypeFixed, Value: 500, MinAmount: 5000},
		{Code: "FLASH2026", Type: models.PromoTypePercentage, Value: 20, ValidUntil: &flashEnd},
	} {
		svc.promos[p.Code] = p
	}
	return svc
}

// Register adds or replaces a promotion. Intended for startup wiring and tests.
func (s *DefaultPromotionService) Register(p models.Promotion) {
	s.promos[p.Code] = p
}

// Validate checks a promo code against amount, nights and expiry constraints.
func (s *DefaultPromotionService) Validate(code string, bookingAmount, nights int) (*models.Promotion, error) {
	p, ok := s.promos[code]
	if !ok {
		return nil, &Error{Code: CodeInvalidCode, Message: fmt.Sprintf("unknown promo code %q", code)}
	}
	if p.MinAmount > 0 && bookingAmount < p.MinAmount {
		return nil, &Error{Code: CodeBelowMinimumAmount, Message: fmt.Sprintf("booking amount %d below minimum %d", bookingAmount, p.MinAmount)}
	}
	if p.MinNights > 0 && nights < p.MinNights {
		return nil, &Error{Code: CodeBelowMinimumNights, Message: fmt.Sprintf("%d nights below minimum %d", nights, p.MinNights)}
	}
	if p.ValidUntil != nil && s.now().After(*p.ValidUntil) {
		return nil, &Error{Code: CodeExpired, Message: fmt.Sprintf("promo code %q expired on %s", code, p.ValidUntil.Format("2006-01-02"))}
	}
	return &p, nil
}

// Apply computes the discount for a validated promotion. Percentage values
// multiply and round; fixed values subtract flat. The final price never goes
// below zero.
func (s *DefaultPromotionService) Apply(amount int, promo *models.Promotion) models.PromoApplication {
	var discount int
	switch promo.Type {
	case models.PromoTypePercentage:
		discount = int(math.Round(float64(amount) * float64(promo.Value) / 100))
	case models.PromoTypeFixed:
		discount = promo.Value
	}
	final := amount - discount
	if final < 0 {
		final = 0
	}
	return models.PromoApplication{
		Code:           promo.Code,
		DiscountAmount: discount,
		FinalPrice:     final,
	}
}
