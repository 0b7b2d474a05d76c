package handlers

import (
	"net/http"
	"strconv"

	bookingsRepo "salvatore/database/repository/bookings"
	"salvatore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingsHandler serves the archived-booking listing.
type BookingsHandler struct {
	Archive bookingsRepo.BookingArchive
}

func NewBookingsHandler(archive bookingsRepo.BookingArchive) *BookingsHandler {
	return &BookingsHandler{Archive: archive}
}

// ListBookingsHandler returns archived bookings, newest first.
func (h *BookingsHandler) ListBookingsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)
	bookings, err := h.Archive.List(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to list archived bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}
