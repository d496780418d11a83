package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking endpoints
	CreateBookingHandler     gin.HandlerFunc
	CancelBookingHandler     gin.HandlerFunc
	FloorAvailabilityHandler gin.HandlerFunc

	// Directory endpoints
	ListBuildingsHandler gin.HandlerFunc
	ListFloorsHandler    gin.HandlerFunc
	ListRoomsHandler     gin.HandlerFunc

	// Admin endpoints
	AdminHandler *AdminHandler

	// Health endpoint
	HealthHandler gin.HandlerFunc
}
