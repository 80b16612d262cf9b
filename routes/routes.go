package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"eraflix/handlers"
	"eraflix/middleware"
)

// RegisterPublicRoutes registers the unauthenticated browse and enquiry endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/public")
	{
		api.GET("/venues", hb.Venue.BrowseHandler)
		api.GET("/screens/:screenID", hb.Venue.GetScreenHandler)
		api.GET("/screens/:screenID/availability", hb.Availability.GetAvailableSlotsHandler)
		api.GET("/events", hb.Event.ListUpcomingEventsHandler)
		api.POST("/contact", hb.Contact.SubmitContactHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking workflow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBookingHandler)
		api.GET("/:bookingID", hb.Booking.GetBookingHandler)
		api.POST("/:bookingID/confirm", hb.Booking.ConfirmBookingHandler)
		api.POST("/:bookingID/cancel", hb.Booking.CancelBookingHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations. All routes
// require an elevated caller.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authCache *redis.Client) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.JWTAuthAdminMiddleware(authCache))
	{
		// Slot catalog.
		admin.POST("/slots", hb.Catalog.CreateSlotHandler)
		admin.PATCH("/slots/:slotID", hb.Catalog.UpdateSlotHandler)
		admin.DELETE("/slots/:slotID", hb.Catalog.DeleteSlotHandler)
		admin.GET("/slots", hb.Catalog.ListSlotsHandler)

		// Venue directory.
		admin.POST("/locations", hb.Venue.CreateLocationHandler)
		admin.PATCH("/locations/:locationID", hb.Venue.UpdateLocationHandler)
		admin.DELETE("/locations/:locationID", hb.Venue.DeleteLocationHandler)
		admin.GET("/locations", hb.Venue.ListLocationsHandler)
		admin.POST("/screens", hb.Venue.CreateScreenHandler)
		admin.PATCH("/screens/:screenID", hb.Venue.UpdateScreenHandler)
		admin.DELETE("/screens/:screenID", hb.Venue.DeleteScreenHandler)

		// Events.
		admin.POST("/events", hb.Event.CreateEventHandler)
		admin.PATCH("/events/:eventID", hb.Event.UpdateEventHandler)
		admin.DELETE("/events/:eventID", hb.Event.DeleteEventHandler)
		admin.GET("/events", hb.Event.ListAllEventsHandler)

		// Bookings day view.
		admin.GET("/screens/:screenID/bookings", hb.Booking.ListBookingsHandler)

		// Contact inbox.
		admin.GET("/contacts", hb.Contact.ListContactsHandler)
		admin.POST("/contacts/:contactID/handled", hb.Contact.MarkContactHandledHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm EraFlix"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authCache *redis.Client) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPublicRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb, authCache)
	RegisterHealthRoute(r)
}
