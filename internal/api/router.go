package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stayhub/hotel-booking/internal/api/handler"
	"github.com/stayhub/hotel-booking/internal/api/middleware"
	"github.com/stayhub/hotel-booking/internal/core/domain"
	"github.com/stayhub/hotel-booking/internal/core/service"
	"github.com/stayhub/hotel-booking/internal/infrastructure/config"
	mongodb "github.com/stayhub/hotel-booking/internal/infrastructure/db/mongo"
	redisdb "github.com/stayhub/hotel-booking/internal/infrastructure/db/redis"
	httphandlers "github.com/stayhub/hotel-booking/internal/infrastructure/http/handlers"
)

// NewRouter builds the Echo instance with all routes and their authorization
// gates registered.
//
// The route table is the authorization policy: every route carries an
// explicit gate (public, any-authenticated, or a role set). Echo matches the
// most specific pattern, and unregistered paths 404. Ownership checks are not
// expressed here; they live in the services.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("stayhub"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	hotelRepo := mongodb.NewHotelRepository(db)
	roomTypeRepo := mongodb.NewRoomTypeRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	complaintRepo := mongodb.NewComplaintRepository(db)

	cache := redisdb.NewCatalogCache(rdb)
	viewed := redisdb.NewRecentlyViewed(rdb)
	holds := redisdb.NewRoomHold(rdb)

	// --- Services ---
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	authService := service.NewAuthService(userRepo, tokenService, log)
	bookingService := service.NewBookingService(bookingRepo, userRepo, hotelRepo, roomTypeRepo, holds, log)
	hotelService := service.NewHotelService(hotelRepo, roomTypeRepo, cache, viewed, cfg.CacheTTL, log)
	reviewService := service.NewReviewService(reviewRepo, hotelRepo, userRepo, log)
	complaintService := service.NewComplaintService(complaintRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	hotelHandler := handler.NewHotelHandler(hotelService)
	managerHandler := handler.NewManagerHandler(hotelService, bookingService)
	reviewHandler := handler.NewReviewHandler(reviewService, complaintService)
	adminHandler := handler.NewAdminHandler(userRepo, bookingService, complaintService)

	// The authenticator runs on every request and never rejects; the role
	// gates below make the allow/deny decisions.
	e.Use(middleware.Authenticate(tokenService, userRepo))

	customerOrAdmin := middleware.RequireRole(domain.RoleCustomer, domain.RoleAdmin)
	managerOnly := middleware.RequireRole(domain.RoleHotelManager)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	authenticated := middleware.RequireAuth()

	// --- Public: auth + catalog reads ---
	e.POST("/api/users/signup", authHandler.SignUp)
	e.POST("/api/users/signin", authHandler.SignIn)

	e.GET("/api/hotels", hotelHandler.List)
	e.GET("/api/hotels/:id", hotelHandler.Get)
	e.GET("/api/hotels/:id/rooms", hotelHandler.Rooms)
	e.GET("/api/hotels/:id/reviews", reviewHandler.HotelReviews)

	// --- Bookings: customers and admins ---
	e.POST("/api/bookings", bookingHandler.Create, customerOrAdmin)
	e.GET("/api/bookings/my-bookings", bookingHandler.MyBookings, customerOrAdmin)
	e.PUT("/api/bookings/:id", bookingHandler.Update, customerOrAdmin)
	e.DELETE("/api/bookings/:id", bookingHandler.Cancel, customerOrAdmin)
	e.GET("/api/bookings", bookingHandler.ListAll, adminOnly)

	// --- Any authenticated caller ---
	e.POST("/api/hotels/:id/reviews", reviewHandler.CreateReview, authenticated)
	e.GET("/api/users/my-reviews", reviewHandler.MyReviews, authenticated)
	e.GET("/api/users/recently-viewed", hotelHandler.RecentlyViewed, authenticated)
	e.POST("/api/complaints", reviewHandler.CreateComplaint, authenticated)
	e.GET("/api/complaints", reviewHandler.MyComplaints, authenticated)

	// --- Hotel managers ---
	e.GET("/api/manager/hotels", managerHandler.MyHotels, managerOnly)
	e.POST("/api/manager/hotels", managerHandler.CreateHotel, managerOnly)
	e.PUT("/api/manager/hotels/:id", managerHandler.UpdateHotel, managerOnly)
	e.POST("/api/manager/hotels/:id/rooms", managerHandler.AddRoomType, managerOnly)
	e.PUT("/api/manager/hotels/:id/rooms/:roomTypeId", managerHandler.UpdateRoomType, managerOnly)
	e.GET("/api/manager/hotels/:id/bookings", managerHandler.HotelBookings, middleware.RequireRole(domain.RoleHotelManager, domain.RoleAdmin))
	e.PATCH("/api/manager/bookings/:id/status", managerHandler.SetBookingStatus, middleware.RequireRole(domain.RoleHotelManager, domain.RoleAdmin))

	// --- Admin ---
	e.GET("/api/users", adminHandler.ListUsers, adminOnly)
	e.PATCH("/api/admin/users/:id/suspend", adminHandler.SuspendUser, adminOnly)
	e.PATCH("/api/admin/users/:id/activate", adminHandler.ActivateUser, adminOnly)
	e.GET("/api/admin/payments", adminHandler.Payments, adminOnly)
	e.GET("/api/admin/complaints", adminHandler.ListComplaints, adminOnly)
	e.PATCH("/api/admin/complaints/:id", adminHandler.ResolveComplaint, adminOnly)

	// --- Probes and metrics (no auth required) ---
	healthHandler := httphandlers.NewHealthHandler()
	healthDepsHandler := httphandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
