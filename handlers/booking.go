package handlers

import (
	"net/http"

	"classalloc/middleware"
	"classalloc/models"
	"classalloc/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the user-facing booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler books a single slot for the caller.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Service.CreateBooking(c.Request.Context(), actor, req, middleware.ProvenanceFrom(c))
	if err != nil {
		respondError(c, err, "Failed to create booking")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Room booked successfully", "booking": b})
}

// CancelBookingHandler deletes a booking owned by the caller, or any booking
// when the caller is an admin.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Service.CancelBooking(c.Request.Context(), actor, c.Param("id"), middleware.ProvenanceFrom(c)); err != nil {
		respondError(c, err, "Failed to cancel booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully"})
}

// FloorAvailabilityHandler reports room status on a floor. Query parameters
// date, startTime and endTime are optional.
func (h *BookingHandler) FloorAvailabilityHandler(c *gin.Context) {
	rooms, err := h.Service.FloorAvailability(
		c.Request.Context(),
		c.Param("floorId"),
		c.Query("date"),
		c.Query("startTime"),
		c.Query("endTime"),
	)
	if err != nil {
		respondError(c, err, "Failed to load availability")
		return
	}
	c.JSON(http.StatusOK, rooms)
}
