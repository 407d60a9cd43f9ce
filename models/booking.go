package models

import "time"

// Booking statuses.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Payment statuses.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// Booking represents a confirmed booking record.
type Booking struct {
	ID              string            `json:"id"`     // e.g. "BKG-1"
	Status          string            `json:"status"` // "confirmed" or "cancelled"
	GuestName       string            `json:"guestName"`
	GuestCount      int               `json:"guestCount"`
	ChildAges       []int             `json:"childAges,omitempty"`
	SeniorAges      []int             `json:"seniorAges,omitempty"`
	CheckInDate     string            `json:"checkInDate"` // YYYY-MM-DD
	Nights          int               `json:"nights"`
	RoomType        string            `json:"roomType"`
	Pricing         *PricingBreakdown `json:"pricing,omitempty"`
	PromoCode       string            `json:"promoCode,omitempty"`
	PromoDiscount   int               `json:"promoDiscount,omitempty"`
	FinalPrice      int               `json:"finalPrice"`
	PaymentStatus   string            `json:"paymentStatus"`
	SpecialRequests string            `json:"specialRequests,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// BookingData is the input required to create a booking.
type BookingData struct {
	CheckInDate     string `json:"checkInDate"`
	Nights          int    `json:"nights"`
	RoomType        string `json:"roomType"`
	GuestCount      int    `json:"guestCount"`
	GuestName       string `json:"guestName"`
	GuestAge        int    `json:"guestAge,omitempty"`
	MemberLevel     string `json:"memberLevel,omitempty"`
	ChildAges       []int  `json:"childAges,omitempty"`
	SeniorAges      []int  `json:"seniorAges,omitempty"`
	PromoCode       string `json:"promoCode,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// BookingUpdates carries the only fields a booking update may mutate.
type BookingUpdates struct {
	GuestCount      *int    `json:"guestCount,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// BookingFilter narrows ListBookings results. Zero values match everything.
type BookingFilter struct {
	Status   string `json:"status,omitempty"`
	RoomType string `json:"roomType,omitempty"`
}

// BookingResult is returned by the booking engine. NextStep is a
// conversational continuation sentinel ("collect_child_ages",
// "collect_senior_ages"), not an error.
type BookingResult struct {
	Success   bool     `json:"success"`
	BookingID string   `json:"bookingId,omitempty"`
	Message   string   `json:"message"`
	NextStep  string   `json:"nextStep,omitempty"`
	Booking   *Booking `json:"booking,omitempty"`
	Issues    []string `json:"issues,omitempty"`
}
