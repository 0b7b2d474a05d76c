package routes

import (
	"net/http"
	"time"

	"salvatore/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAssistantRoutes registers the conversational endpoint.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/assistant", hb.HandleAssistant)
	}
}

// RegisterAuthRoutes registers the Google OAuth bootstrap endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/auth", hb.AuthRedirectHandler)
	r.GET("/auth/callback", hb.AuthCallbackHandler)
}

// RegisterBookingRoutes registers the booking-archive endpoints when an
// archive is configured.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.ListBookingsHandler == nil {
		return
	}
	api := r.Group("/api")
	{
		api.GET("/bookings", hb.ListBookingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
}

// RegisterStaticRoutes serves the single-page chat client.
func RegisterStaticRoutes(r *gin.Engine) {
	r.StaticFile("/", "./public/index.html")
	r.Static("/public", "./public")
}

// RegisterRoutes wires every route group onto the engine.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	RegisterAssistantRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterStaticRoutes(r)
}
