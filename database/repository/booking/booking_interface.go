package booking

import (
	"errors"

	"concierge/models"
)

// ErrNotFound is returned when no booking exists for the given id.
var ErrNotFound = errors.New("booking not found")

// BookingStore persists booking records. Records are never physically
// deleted once confirmed; Delete exists only for compensating a failed
// inventory block during creation.
type BookingStore interface {
	Create(b *models.Booking) error
	Get(bookingID string) (*models.Booking, error)
	Update(b *models.Booking) error
	Delete(bookingID string) error
	List(filter models.BookingFilter) ([]*models.Booking, error)
}
