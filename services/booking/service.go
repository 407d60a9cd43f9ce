package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	bookingRepo "concierge/database/repository/booking"
	"concierge/database/repository/inventory"
	"concierge/models"
	"concierge/services/conversation"

	"go.uber.org/zap"
)

// Continuation sentinels returned when the raw message implies a guest whose
// age was not supplied yet.
const (
	NextStepCollectChildAges  = "collect_child_ages"
	NextStepCollectSeniorAges = "collect_senior_ages"
)

var (
	childKeywords  = []string{"小孩", "兒童", "小朋友"}
	seniorKeywords = []string{"老人", "長者", "年長", "銀髮"}
)

// CreateBooking runs the full pipeline: compliance, availability, pricing,
// best-effort promotion, persistence and inventory blocking. A failed block
// voids the just-created record so the store and the counters stay
// consistent.
func (s *DefaultBookingService) CreateBooking(data models.BookingData, rawMessage string) (*models.BookingResult, error) {
	if err := validateBookingData(data); err != nil {
		return nil, err
	}

	room, ok := s.Catalog.Find(data.RoomType)
	if !ok {
		return nil, newServiceError(CodeNotFound, fmt.Sprintf("unknown room type %q", data.RoomType))
	}

	if issues := checkCompliance(data, room, time.Now()); len(issues) > 0 {
		return nil, &ServiceError{
			Code:    CodeComplianceFailed,
			Message: "booking request violates policy",
			Issues:  issues,
		}
	}

	// Conversational continuation: ask for ages before touching inventory.
	if nextStep := pendingAges(data, rawMessage); nextStep != "" {
		return &models.BookingResult{
			Success:  false,
			NextStep: nextStep,
			Message:  continuationPrompt(nextStep),
		}, nil
	}

	checkOut, err := conversation.AddDays(data.CheckInDate, data.Nights)
	if err != nil {
		return nil, newServiceError(CodeValidationError, fmt.Sprintf("invalid check-in date %q", data.CheckInDate))
	}
	avail, err := s.Availability.CheckAvailability(room.ID, data.CheckInDate, checkOut, 1)
	if err != nil {
		return nil, newServiceError(CodeRoomUnavailable, fmt.Sprintf("availability check failed: %v", err))
	}
	if !avail.Available {
		return nil, newServiceError(CodeRoomUnavailable,
			fmt.Sprintf("房型「%s」在 %s 至 %s 已無空房", room.Name, data.CheckInDate, checkOut))
	}

	memberLevel := data.MemberLevel
	if memberLevel == "" {
		memberLevel = models.MemberLevelNone
	}
	breakdown, err := s.Pricing.CalculateRoomPrice(room.ID, data.Nights, data.GuestCount,
		memberLevel, len(data.ChildAges), len(data.SeniorAges))
	if err != nil {
		return nil, newServiceError(CodePricingFailed, err.Error())
	}

	finalPrice := breakdown.Total
	promoDiscount := 0
	appliedCode := ""
	if data.PromoCode != "" {
		// Best effort: a promotion failure never aborts the booking.
		promo, err := s.Promotions.Validate(data.PromoCode, breakdown.Total, data.Nights)
		if err != nil {
			s.Logger.Warn("promo code rejected, booking proceeds at original price",
				zap.String("code", data.PromoCode), zap.Error(err))
		} else {
			applied := s.Promotions.Apply(breakdown.Total, promo)
			promoDiscount = applied.DiscountAmount
			finalPrice = applied.FinalPrice
			appliedCode = promo.Code
		}
	}

	now := time.Now()
	record := &models.Booking{
		Status:          models.BookingStatusConfirmed,
		GuestName:       data.GuestName,
		GuestCount:      data.GuestCount,
		ChildAges:       data.ChildAges,
		SeniorAges:      data.SeniorAges,
		CheckInDate:     data.CheckInDate,
		Nights:          data.Nights,
		RoomType:        room.ID,
		Pricing:         breakdown,
		PromoCode:       appliedCode,
		PromoDiscount:   promoDiscount,
		FinalPrice:      finalPrice,
		PaymentStatus:   models.PaymentStatusPending,
		SpecialRequests: data.SpecialRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Bookings.Create(record); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	if err := s.Inventory.BlockRooms(room.ID, 1, record.ID); err != nil {
		// Compensate: void the record so no booking exists without rooms.
		s.Logger.Error("inventory block failed, voiding booking",
			zap.String("bookingId", record.ID), zap.Error(err))
		if delErr := s.Bookings.Delete(record.ID); delErr != nil {
			s.Logger.Error("failed to void booking after block failure",
				zap.String("bookingId", record.ID), zap.Error(delErr))
		}
		return nil, newServiceError(CodeRoomUnavailable,
			fmt.Sprintf("房型「%s」已無空房", room.Name))
	}

	s.Logger.Info("booking created",
		zap.String("bookingId", record.ID),
		zap.String("roomType", room.ID),
		zap.Int("finalPrice", finalPrice))
	return &models.BookingResult{
		Success:   true,
		BookingID: record.ID,
		Message:   fmt.Sprintf("訂房成功！訂單編號 %s，總金額 NT$%d。", record.ID, finalPrice),
		Booking:   record,
	}, nil
}

func validateBookingData(data models.BookingData) error {
	var missing []string
	if data.CheckInDate == "" {
		missing = append(missing, "checkInDate")
	}
	if data.Nights < 1 {
		missing = append(missing, "nights")
	}
	if data.RoomType == "" {
		missing = append(missing, "roomType")
	}
	if data.GuestCount < 1 {
		missing = append(missing, "guestCount")
	}
	if data.GuestName == "" {
		missing = append(missing, "guestName")
	}
	if len(missing) > 0 {
		return newServiceError(CodeValidationError,
			"missing or invalid required fields: "+strings.Join(missing, ", "))
	}
	return nil
}

// pendingAges detects a mentioned child or senior whose ages were not
// supplied.
func pendingAges(data models.BookingData, rawMessage string) string {
	if len(data.ChildAges) == 0 && containsAny(rawMessage, childKeywords) {
		return NextStepCollectChildAges
	}
	if len(data.SeniorAges) == 0 && containsAny(rawMessage, seniorKeywords) {
		return NextStepCollectSeniorAges
	}
	return ""
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func continuationPrompt(nextStep string) string {
	if nextStep == NextStepCollectChildAges {
		return "請提供同行小孩的年齡，以便為您計算正確價格。"
	}
	return "請提供同行長者的年齡，以便為您計算正確價格。"
}

// GetBooking fetches a booking by id.
func (s *DefaultBookingService) GetBooking(bookingID string) (*models.Booking, error) {
	b, err := s.Bookings.Get(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, newServiceError(CodeNotFound, fmt.Sprintf("booking %s not found", bookingID))
		}
		return nil, err
	}
	return b, nil
}

// CancelBooking flips the status to cancelled and releases inventory. A paid
// booking gets a refund attempt; refund failures are logged and never block
// the cancellation.
func (s *DefaultBookingService) CancelBooking(bookingID string) (*models.Booking, error) {
	lock := s.lockFor(bookingID)
	lock.Lock()
	defer lock.Unlock()

	b, err := s.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status == models.BookingStatusCancelled {
		return nil, newServiceError(CodeValidationError, fmt.Sprintf("booking %s is already cancelled", bookingID))
	}

	b.Status = models.BookingStatusCancelled
	b.UpdatedAt = time.Now()

	if b.PaymentStatus == models.PaymentStatusPaid {
		if _, err := s.Payments.ProcessRefund(context.Background(), b.ID, b.FinalPrice); err != nil {
			s.Logger.Error("refund failed, cancellation proceeds",
				zap.String("bookingId", b.ID), zap.Error(err))
		} else {
			b.PaymentStatus = models.PaymentStatusRefunded
		}
	}

	if err := s.Inventory.ReleaseRooms(b.ID); err != nil {
		s.Logger.Warn("inventory release failed",
			zap.String("bookingId", b.ID), zap.Error(err))
		if !errors.Is(err, inventory.ErrNotFound) {
			// Unexpected; the cancellation still stands.
			s.Logger.Error("unexpected inventory state on release",
				zap.String("bookingId", b.ID), zap.Error(err))
		}
	}

	if err := s.Bookings.Update(b); err != nil {
		return nil, fmt.Errorf("failed to persist cancellation of %s: %w", bookingID, err)
	}
	s.Logger.Info("booking cancelled", zap.String("bookingId", b.ID))
	return b, nil
}

// UpdateBooking permits mutating guestCount and specialRequests only.
func (s *DefaultBookingService) UpdateBooking(bookingID string, updates models.BookingUpdates) ([]string, *models.Booking, error) {
	lock := s.lockFor(bookingID)
	lock.Lock()
	defer lock.Unlock()

	b, err := s.GetBooking(bookingID)
	if err != nil {
		return nil, nil, err
	}
	if b.Status == models.BookingStatusCancelled {
		return nil, nil, newServiceError(CodeValidationError, fmt.Sprintf("booking %s is cancelled", bookingID))
	}

	var updatedFields []string
	if updates.GuestCount != nil {
		if *updates.GuestCount < 1 {
			return nil, nil, newServiceError(CodeValidationError, "guestCount must be at least 1")
		}
		b.GuestCount = *updates.GuestCount
		updatedFields = append(updatedFields, "guestCount")
	}
	if updates.SpecialRequests != nil {
		b.SpecialRequests = *updates.SpecialRequests
		updatedFields = append(updatedFields, "specialRequests")
	}
	if len(updatedFields) == 0 {
		return nil, nil, newServiceError(CodeValidationError, "no updatable fields supplied")
	}

	b.UpdatedAt = time.Now()
	if err := s.Bookings.Update(b); err != nil {
		return nil, nil, fmt.Errorf("failed to persist update of %s: %w", bookingID, err)
	}
	return updatedFields, b, nil
}

// ListBookings returns bookings matching the filter.
func (s *DefaultBookingService) ListBookings(filter models.BookingFilter) ([]*models.Booking, error) {
	return s.Bookings.List(filter)
}

// MarkPaid drives the payment status from pending to paid through the
// simulated gateway.
func (s *DefaultBookingService) MarkPaid(bookingID string) (*models.Booking, error) {
	lock := s.lockFor(bookingID)
	lock.Lock()
	defer lock.Unlock()

	b, err := s.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != models.BookingStatusConfirmed {
		return nil, newServiceError(CodeValidationError, fmt.Sprintf("booking %s is not active", bookingID))
	}
	if b.PaymentStatus != models.PaymentStatusPending {
		return nil, newServiceError(CodeValidationError, fmt.Sprintf("booking %s is already %s", bookingID, b.PaymentStatus))
	}

	if _, err := s.Payments.ProcessPayment(context.Background(), b.ID, b.FinalPrice); err != nil {
		return nil, newServiceError(CodePaymentFailed, err.Error())
	}
	b.PaymentStatus = models.PaymentStatusPaid
	b.UpdatedAt = time.Now()
	if err := s.Bookings.Update(b); err != nil {
		return nil, fmt.Errorf("failed to persist payment of %s: %w", bookingID, err)
	}
	return b, nil
}
