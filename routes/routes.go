package routes

import (
	"time"

	"kitchenrent/handlers"
	"kitchenrent/middleware"
	"kitchenrent/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the booking session endpoints. Credentials are
// optional so anonymous visitors can browse availability; starting a booking
// without them is refused by the booking flow itself.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/kitchens/:kitchenId/sessions", middleware.JWTAuthUserMiddleware(true), hb.OpenSession)

	sessions := r.Group("/api/sessions/:sessionId")
	{
		sessions.Use(middleware.JWTAuthUserMiddleware(true))
		sessions.GET("", hb.GetSession)
		sessions.DELETE("", hb.CloseSession)
		sessions.PUT("/date", hb.SelectDate)
		sessions.PUT("/guests", hb.SetGuestCount)
		sessions.POST("/slots/:index/toggle", hb.ToggleSlot)
		sessions.POST("/booking", hb.BeginBooking)
		sessions.POST("/booking/attest", hb.AttestNotification)
		sessions.DELETE("/booking", hb.CancelBooking)
	}
}

// RegisterReservationRoutes sets up the requester's reservation list. Only
// guest accounts hold reservations.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reservations")
	{
		api.Use(middleware.JWTAuthUserMiddleware(false), middleware.RequireRole(models.RoleConsumer))
		api.GET("", hb.ListMyReservations)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
