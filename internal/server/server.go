package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/idon003/hotel-book/internal/auth"
	"github.com/idon003/hotel-book/internal/booking"
	"github.com/idon003/hotel-book/internal/config"
	"github.com/idon003/hotel-book/internal/email"
	"github.com/idon003/hotel-book/internal/guest"
	"github.com/idon003/hotel-book/internal/room"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	guestRepo := guest.NewRepository(db)
	guestService := guest.NewService(guestRepo, cfg.JWTSecret)
	guestHandler := guest.NewHandler(guestService)

	roomRepo := room.NewRepository(db)
	roomService := room.NewService(roomRepo)
	roomHandler := room.NewHandler(roomService)

	bookingRepo := booking.NewRepository(db)
	availability := booking.NewAvailabilityEngine(bookingRepo, roomRepo)
	bookingService := booking.NewService(bookingRepo, roomRepo, guestRepo, emailService)
	bookingHandler := booking.NewHandler(bookingService, availability)

	public := router.Group("/auth")
	{
		public.POST("/register", guestHandler.Register)
		public.POST("/login", guestHandler.Login)
		public.POST("/refresh", guestHandler.Refresh)
	}

	router.GET("/rooms", roomHandler.ListRooms)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", guestHandler.GetMe)
		protected.GET("/rooms/available", bookingHandler.ListAvailableRooms)
		protected.POST("/bookings", bookingHandler.CreateBooking)
		protected.GET("/bookings", bookingHandler.ListMyBookings)
		protected.POST("/bookings/:bookingID/cancel", bookingHandler.CancelBooking)
	}

	adminMiddleware := auth.RequireRole("admin")
	admin := router.Group("/admin")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("/rooms", roomHandler.CreateRoom)
		admin.PUT("/rooms/:roomID", roomHandler.UpdateRoom)
		admin.GET("/rooms/:roomID/bookings", bookingHandler.ListBookingsByRoom)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
