package models

import "time"

// Promotion discount types.
const (
	PromoTypePercentage = "percentage"
	PromoTypeFixed      = "fixed"
)

// Promotion is a registered promo code entry. Read-only at runtime; validity
// is evaluated per application, never stored as mutable state.
type Promotion struct {
	Code       string     `json:"code"`
	Type       string     `json:"type"` // "percentage" or "fixed"
	Value      int        `json:"value"`
	MinAmount  int        `json:"minAmount,omitempty"`
	MinNights  int        `json:"minNights,omitempty"`
	ValidUntil *time.Time `json:"validUntil,omitempty"`
}

// PromoApplication is the result of applying a promotion to an amount.
type PromoApplication struct {
	Code           string `json:"code"`
	DiscountAmount int    `json:"discountAmount"`
	FinalPrice     int    `json:"finalPrice"`
}
