package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appcache "github.com/barberease/scheduler/internal/cache"
	"github.com/barberease/scheduler/internal/config"
	"github.com/barberease/scheduler/internal/handlers"
	infraRepo "github.com/barberease/scheduler/internal/infra/repository"
	"github.com/barberease/scheduler/internal/lock"
	"github.com/barberease/scheduler/internal/middleware"
	"github.com/barberease/scheduler/internal/notification"
	"github.com/barberease/scheduler/internal/payment"
	ucBooking "github.com/barberease/scheduler/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	gateway payment.Gateway,
	cfg *config.Config,
	logger *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingStore := infraRepo.NewBookingGormStore(db)
	serviceStore := infraRepo.NewServiceGormStore(db)

	staffLocks := lock.NewKeyedMutex()

	notifier := notification.NewEmailNotifier(db, logger, cfg.MailFrom)
	dispatcher := notification.NewDispatcher(notifier, logger)

	var slotCache ucBooking.SlotCache
	if rdb != nil {
		slotCache = appcache.NewAvailabilityCache(rdb, logger, cfg.AvailabilityTTL)
	}

	loc, err := time.LoadLocation(cfg.DefaultTimezone)
	if err != nil {
		loc = time.UTC
	}

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createUC := ucBooking.NewCreate(
		serviceStore,
		bookingStore,
		staffLocks,
		dispatcher,
		slotCache,
		logger,
		cfg.StoreTimeout,
	)

	cancelUC := ucBooking.NewCancel(
		bookingStore,
		dispatcher,
		slotCache,
		logger,
		cfg.StoreTimeout,
	)

	updateStatusUC := ucBooking.NewUpdateStatus(
		bookingStore,
		slotCache,
		logger,
		cfg.StoreTimeout,
	)

	listByStaffUC := ucBooking.NewListByStaff(bookingStore, cfg.StoreTimeout)
	listByShopUC := ucBooking.NewListByShop(bookingStore, cfg.StoreTimeout)
	listByUserUC := ucBooking.NewListByUser(bookingStore, cfg.StoreTimeout)

	availabilityUC := ucBooking.NewGetAvailability(
		serviceStore,
		bookingStore,
		slotCache,
		cfg.SlotConfig(),
		cfg.StoreTimeout,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	shopHandler := handlers.NewShopHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	staffHandler := handlers.NewStaffHandler(db)
	notificationHandler := handlers.NewNotificationHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		createUC,
		cancelUC,
		updateStatusUC,
		listByStaffUC,
		listByShopUC,
		listByUserUC,
		availabilityUC,
		bookingStore,
		loc,
	)

	paymentProcessor := payment.NewProcessor(db, bookingStore, gateway, logger)
	paymentHandler := handlers.NewPaymentHandler(paymentProcessor)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/shops", shopHandler.List)
		api.GET("/shops/:id", shopHandler.GetByID)
		api.GET("/shops/:id/services", serviceHandler.ListByShop)
		api.GET("/shops/:id/staff", staffHandler.ListByShop)
		api.GET("/services/:id", serviceHandler.GetByID)
		api.GET("/bookings/available-slots", bookingHandler.AvailableSlots)

		// Gateway webhook, authenticated on the gateway side.
		api.POST("/payments/webhook", paymentHandler.Webhook)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.ListMine)
			secured.GET("/bookings/:id", bookingHandler.GetByID)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)

			secured.POST("/payments/order", paymentHandler.CreateOrder)

			secured.GET("/notifications", notificationHandler.ListMine)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)

			// ------------------------------
			// STAFF / ADMIN
			// ------------------------------
			privileged := secured.Group("/")
			privileged.Use(middleware.RequireRole("staff", "admin", "owner"))
			{
				privileged.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
				privileged.GET("/staff/:id/bookings", bookingHandler.ListByStaff)
				privileged.GET("/shops/:id/bookings", bookingHandler.ListByShop)

				privileged.POST("/shops", shopHandler.Create)
				privileged.POST("/services", serviceHandler.Create)
				privileged.POST("/staff", staffHandler.Create)
			}
		}
	}
}
