package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Assistant endpoint.
	HandleAssistant gin.HandlerFunc

	// Google OAuth bootstrap.
	AuthRedirectHandler gin.HandlerFunc
	AuthCallbackHandler gin.HandlerFunc

	// Booking archive. Nil when no database is configured.
	ListBookingsHandler gin.HandlerFunc
}
