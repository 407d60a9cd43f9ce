package routes

import (
	"time"

	"concierge/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handlers the router needs.
type HandlerBundle struct {
	Chat    *handlers.ChatHandler
	Booking *handlers.BookingHandler
	Pricing *handlers.PricingHandler
}

// RegisterRoutes wires every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)

	chat := r.Group("/api/chat")
	{
		chat.POST("/message", hb.Chat.ProcessMessage)
		chat.DELETE("/session/:sessionID", hb.Chat.EndSession)
	}

	bookings := r.Group("/api/bookings")
	{
		bookings.POST("", hb.Booking.CreateBooking)
		bookings.GET("", hb.Booking.ListBookings)
		bookings.GET("/:bookingID", hb.Booking.GetBooking)
		bookings.POST("/:bookingID/cancel", hb.Booking.CancelBooking)
		bookings.PATCH("/:bookingID", hb.Booking.UpdateBooking)
		bookings.POST("/:bookingID/pay", hb.Booking.PayBooking)
	}

	r.POST("/api/pricing/quote", hb.Pricing.Quote)
	r.POST("/api/promotions/validate", hb.Pricing.ValidatePromo)
	r.GET("/api/availability", hb.Pricing.CheckAvailability)
}
