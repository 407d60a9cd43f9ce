package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"concierge/config"
	bookingRepo "concierge/database/repository/booking"
	inventoryRepo "concierge/database/repository/inventory"
	sessionRepo "concierge/database/repository/session"
	"concierge/handlers"
	"concierge/middleware"
	"concierge/models"
	"concierge/routes"
	"concierge/services/booking"
	"concierge/services/conversation"
	"concierge/services/pricing"
	"concierge/services/promotion"
	"concierge/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	catalog := models.DefaultRoomCatalog()
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute

	// Stores.
	var sessions sessionRepo.SessionStore
	var redisClient *redis.Client
	if config.AppConfig.SessionStore == "redis" {
		redisClient = utils.GetSessionCacheClient()
		sessions = sessionRepo.NewRedisSessionStore(redisClient, sessionTTL)
	} else {
		sessions = sessionRepo.NewMemorySessionStore(sessionTTL)
	}
	bookings := bookingRepo.NewMemoryBookingStore()
	inventory := inventoryRepo.NewMemoryInventoryStore(catalog)

	// Services.
	pricingService := pricing.NewPricingService(catalog)
	promotionService := promotion.NewPromotionService()
	availabilityService := &booking.DefaultAvailabilityService{
		Inventory: inventory,
		Bookings:  bookings,
		Catalog:   catalog,
	}
	paymentGateway := booking.NewSimulatedPaymentGateway(logger, 500*time.Millisecond)
	bookingService := &booking.DefaultBookingService{
		Catalog:      catalog,
		Bookings:     bookings,
		Inventory:    inventory,
		Pricing:      pricingService,
		Promotions:   promotionService,
		Availability: availabilityService,
		Payments:     paymentGateway,
		Logger:       logger,
	}
	sessionManager := conversation.NewManager(sessions, conversation.NewStateMachine(catalog), logger)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &routes.HandlerBundle{
		Chat:    handlers.NewChatHandler(sessionManager, logger),
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Pricing: handlers.NewPricingHandler(pricingService, promotionService, availabilityService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(redisClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
