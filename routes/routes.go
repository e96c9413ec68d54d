package routes

import (
	"net/http"
	"time"

	"venuely/config"
	"venuely/handlers"
	"venuely/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Booking *handlers.BookingHandler
	Chat    *handlers.ChatHandler
	Auth    *handlers.AuthHandler
}

// RegisterRoutes wires up CORS and all API endpoints.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.RegisterHandler)
		auth.POST("/login", h.Auth.LoginHandler)
		auth.GET("/me", middleware.JWTAuthMiddleware(), h.Auth.MeHandler)
	}

	api.GET("/venues", h.Booking.ListVenuesHandler)

	// Bookings stay usable without an account; unauthenticated callers act
	// as the shared guest identity.
	bookings := api.Group("/bookings")
	bookings.Use(middleware.OptionalAuthMiddleware())
	{
		bookings.POST("/check-conflict", h.Booking.CheckConflictHandler)
		bookings.POST("", h.Booking.CreateBookingHandler)
		bookings.POST("/batch", h.Booking.BatchBookingHandler)
		bookings.GET("", h.Booking.ListBookingsHandler)
		bookings.GET("/:id", h.Booking.GetBookingHandler)
		bookings.PUT("/:id", h.Booking.UpdateBookingHandler)
		bookings.DELETE("/:id", h.Booking.DeleteBookingHandler)
	}

	chat := api.Group("/chat")
	chat.Use(middleware.OptionalAuthMiddleware())
	{
		chat.POST("/message", h.Chat.MessageHandler)
		chat.DELETE("/session/:conversationId", h.Chat.ResetHandler)
	}
}
