package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/p0rkchop/ward-sub000/internal/audit"
	"github.com/p0rkchop/ward-sub000/internal/cache"
	"github.com/p0rkchop/ward-sub000/internal/config"
	domain "github.com/p0rkchop/ward-sub000/internal/domain/schedule"
	"github.com/p0rkchop/ward-sub000/internal/handlers"
	infraRepo "github.com/p0rkchop/ward-sub000/internal/infra/repository"
	"github.com/p0rkchop/ward-sub000/internal/middleware"
	ucSchedule "github.com/p0rkchop/ward-sub000/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log zerolog.Logger) {

	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	availabilityCache := cache.NewAvailability(cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)

	// ======================================================
	// USE CASES
	// ======================================================
	computeAvailabilityUC := ucSchedule.NewComputeAvailability(scheduleRepo, cfg.SlotMinutes)

	autoBookUC := ucSchedule.NewAutoBook(scheduleRepo, auditDispatcher, log, cfg.SlotMinutes)
	cancelBookingUC := ucSchedule.NewCancelBooking(scheduleRepo, auditDispatcher)
	listBookingsUC := ucSchedule.NewListBookings(scheduleRepo)

	createShiftUC := ucSchedule.NewCreateShift(scheduleRepo, auditDispatcher, cfg.SlotMinutes)
	cancelShiftUC := ucSchedule.NewCancelShift(scheduleRepo, auditDispatcher)
	listShiftsUC := ucSchedule.NewListShifts(scheduleRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	availabilityHandler := handlers.NewAvailabilityHandler(computeAvailabilityUC, availabilityCache)

	bookingHandler := handlers.NewBookingHandler(
		autoBookUC,
		cancelBookingUC,
		listBookingsUC,
		availabilityCache,
	)

	shiftHandler := handlers.NewShiftHandler(
		createShiftUC,
		cancelShiftUC,
		listShiftsUC,
		availabilityCache,
	)

	resourceHandler := handlers.NewResourceHandler(db, auditDispatcher, availabilityCache)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/availability", availabilityHandler.Get)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.POST("/me/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.List)
			secured.PATCH("/me/bookings/:id/cancel", bookingHandler.Cancel)

			secured.POST("/me/shifts", shiftHandler.Create)
			secured.GET("/me/shifts", shiftHandler.List)
			secured.PATCH("/me/shifts/:id/cancel", shiftHandler.Cancel)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(string(domain.RoleAdmin)))
			{
				admin.GET("/resources", resourceHandler.List)
				admin.POST("/resources", resourceHandler.Create)
				admin.PATCH("/resources/:id", resourceHandler.Update)
				admin.DELETE("/resources/:id", resourceHandler.Delete)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
