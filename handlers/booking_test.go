package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	bookingRepo "concierge/database/repository/booking"
	"concierge/database/repository/inventory"
	"concierge/models"
	"concierge/services/booking"
	"concierge/services/pricing"
	"concierge/services/promotion"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBookingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	catalog := models.DefaultRoomCatalog()
	bookings := bookingRepo.NewMemoryBookingStore()
	inv := inventory.NewMemoryInventoryStore(catalog)
	svc := &booking.DefaultBookingService{
		Catalog:    catalog,
		Bookings:   bookings,
		Inventory:  inv,
		Pricing:    pricing.NewPricingService(catalog),
		Promotions: promotion.NewPromotionService(),
		Availability: &booking.DefaultAvailabilityService{
			Inventory: inv,
			Bookings:  bookings,
			Catalog:   catalog,
		},
		Payments: booking.NewSimulatedPaymentGateway(zap.NewNop(), 0),
		Logger:   zap.NewNop(),
	}
	handler := NewBookingHandler(svc, zap.NewNop())

	r := gin.New()
	r.POST("/api/bookings", handler.CreateBooking)
	r.GET("/api/bookings/:bookingID", handler.GetBooking)
	r.POST("/api/bookings/:bookingID/cancel", handler.CancelBooking)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req, _ := http.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAndFetchBooking(t *testing.T) {
	r := newBookingRouter()
	checkIn := time.Now().AddDate(0, 0, 10).Format("2006-01-02")

	w := doJSON(t, r, http.MethodPost, "/api/bookings", map[string]any{
		"checkInDate": checkIn,
		"nights":      2,
		"roomType":    "deluxe",
		"guestCount":  2,
		"guestName":   "陳大文",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created models.BookingResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Success)
	assert.Equal(t, "BKG-1", created.BookingID)

	w = doJSON(t, r, http.MethodGet, "/api/bookings/BKG-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/bookings/BKG-99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBookingComplianceMapsToConflict(t *testing.T) {
	r := newBookingRouter()
	past := time.Now().AddDate(0, 0, -3).Format("2006-01-02")

	w := doJSON(t, r, http.MethodPost, "/api/bookings", map[string]any{
		"checkInDate": past,
		"nights":      2,
		"roomType":    "standard",
		"guestCount":  2,
		"guestName":   "陳大文",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	var resp struct {
		Success bool     `json:"success"`
		Error   string   `json:"error"`
		Issues  []string `json:"issues"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "ComplianceFailed", resp.Error)
	assert.NotEmpty(t, resp.Issues)
}

func TestCancelBookingEndpoint(t *testing.T) {
	r := newBookingRouter()
	checkIn := time.Now().AddDate(0, 0, 10).Format("2006-01-02")

	w := doJSON(t, r, http.MethodPost, "/api/bookings", map[string]any{
		"checkInDate": checkIn,
		"nights":      1,
		"roomType":    "standard",
		"guestCount":  2,
		"guestName":   "陳大文",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/bookings/BKG-1/cancel", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Cancelling twice is a validation failure.
	w = doJSON(t, r, http.MethodPost, "/api/bookings/BKG-1/cancel", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
