package handlers

import (
	"errors"
	"net/http"

	"classalloc/services/admin"
	"classalloc/services/booking"
	"classalloc/services/directory"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, booking.ErrInvalidRequest),
		errors.Is(err, booking.ErrInvalidTime),
		errors.Is(err, booking.ErrInvalidTimeRange),
		errors.Is(err, admin.ErrInvalidTemplate):
		return http.StatusBadRequest
	case errors.Is(err, booking.ErrSlotTaken):
		return http.StatusConflict
	case errors.Is(err, booking.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, booking.ErrBookingNotFound),
		errors.Is(err, booking.ErrFloorNotFound),
		errors.Is(err, booking.ErrNoRooms),
		errors.Is(err, directory.ErrFloorNotFound),
		errors.Is(err, directory.ErrBuildingNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrNoDates):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, err error, msg string) {
	status := statusFor(err)
	logger := getLogger(c)
	if status >= http.StatusInternalServerError {
		logger.Error(msg, zap.Error(err))
		c.JSON(status, gin.H{"error": msg})
		return
	}
	logger.Info(msg, zap.Int("status", status), zap.Error(err))
	c.JSON(status, gin.H{"error": err.Error()})
}
