package booking

import (
	"sync"

	bookingRepo "concierge/database/repository/booking"
	"concierge/database/repository/inventory"
	"concierge/models"
	"concierge/services/pricing"
	"concierge/services/promotion"

	"go.uber.org/zap"
)

// BookingService defines the booking engine's request/response contract.
type BookingService interface {
	CreateBooking(data models.BookingData, rawMessage string) (*models.BookingResult, error)
	GetBooking(bookingID string) (*models.Booking, error)
	CancelBooking(bookingID string) (*models.Booking, error)
	UpdateBooking(bookingID string, updates models.BookingUpdates) ([]string, *models.Booking, error)
	ListBookings(filter models.BookingFilter) ([]*models.Booking, error)
	MarkPaid(bookingID string) (*models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Catalog      *models.RoomCatalog
	Bookings     bookingRepo.BookingStore
	Inventory    inventory.InventoryStore
	Pricing      pricing.PricingService
	Promotions   promotion.PromotionService
	Availability AvailabilityService
	Payments     PaymentGateway
	Logger       *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// lockFor serializes mutations per booking id.
func (s *DefaultBookingService) lockFor(bookingID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locks == nil {
		s.locks = make(map[string]*sync.Mutex)
	}
	lock, ok := s.locks[bookingID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[bookingID] = lock
	}
	return lock
}
