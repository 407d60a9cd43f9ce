package handlers

import (
	"errors"
	"net/http"

	"concierge/services/booking"
	"concierge/services/pricing"
	"concierge/services/promotion"
	"concierge/utils"

	"github.com/gin-gonic/gin"
)

// PricingHandler exposes the quote, promotion and availability endpoints.
type PricingHandler struct {
	Pricing      pricing.PricingService
	Promotions   promotion.PromotionService
	Availability booking.AvailabilityService
}

// NewPricingHandler builds a pricing handler.
func NewPricingHandler(p pricing.PricingService, promos promotion.PromotionService, avail booking.AvailabilityService) *PricingHandler {
	return &PricingHandler{Pricing: p, Promotions: promos, Availability: avail}
}

// Quote computes an itemized room price.
func (h *PricingHandler) Quote(c *gin.Context) {
	var input struct {
		RoomType      string `json:"roomType" binding:"required"`
		Nights        int    `json:"nights"`
		GuestCount    int    `json:"guestCount"`
		MemberLevel   string `json:"memberLevel"`
		ChildrenCount int    `json:"childrenCount"`
		SeniorCount   int    `json:"seniorCount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "ValidationError", "invalid pricing payload: "+err.Error())
		return
	}

	breakdown, err := h.Pricing.CalculateRoomPrice(input.RoomType, input.Nights, input.GuestCount,
		input.MemberLevel, input.ChildrenCount, input.SeniorCount)
	if err != nil {
		var pErr *pricing.Error
		if errors.As(err, &pErr) {
			utils.JSONError(c, http.StatusBadRequest, pErr.Code, pErr.Message)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "pricing": breakdown})
}

// ValidatePromo checks a promo code and reports the discount it would yield.
func (h *PricingHandler) ValidatePromo(c *gin.Context) {
	var input struct {
		Code          string `json:"code" binding:"required"`
		BookingAmount int    `json:"bookingAmount"`
		Nights        int    `json:"nights"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "ValidationError", "invalid promo payload: "+err.Error())
		return
	}

	promo, err := h.Promotions.Validate(input.Code, input.BookingAmount, input.Nights)
	if err != nil {
		var promoErr *promotion.Error
		if errors.As(err, &promoErr) {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": promoErr.Code, "message": promoErr.Message})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	applied := h.Promotions.Apply(input.BookingAmount, promo)
	c.JSON(http.StatusOK, gin.H{
		"valid":     true,
		"promotion": promo,
		"applied":   applied,
	})
}

// CheckAvailability answers capacity questions for a room type and date range.
func (h *PricingHandler) CheckAvailability(c *gin.Context) {
	roomType := c.Query("roomType")
	checkIn := c.Query("checkIn")
	checkOut := c.Query("checkOut")
	if roomType == "" || checkIn == "" || checkOut == "" {
		utils.JSONError(c, http.StatusBadRequest, "ValidationError", "roomType, checkIn and checkOut are required")
		return
	}
	roomsNeeded := 1
	if n, ok := c.GetQuery("rooms"); ok {
		if parsed, err := parsePositiveInt(n); err == nil {
			roomsNeeded = parsed
		}
	}

	result, err := h.Availability.CheckAvailability(roomType, checkIn, checkOut, roomsNeeded)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "ValidationError", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"available":      result.Available,
		"availableRooms": result.AvailableRooms,
	})
}
