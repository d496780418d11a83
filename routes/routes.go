package routes

import (
	"time"

	"classalloc/handlers"
	"classalloc/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterBookingRoutes registers user booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.CreateBookingHandler)
		api.DELETE("/:id", hb.CancelBookingHandler)
	}
}

// RegisterDirectoryRoutes registers building/floor/room endpoints for
// authenticated callers.
func RegisterDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/buildings", hb.ListBuildingsHandler)
		api.GET("/buildings/:buildingId/floors", hb.ListFloorsHandler)
		api.GET("/floors/:floorId/rooms", hb.ListRoomsHandler)
		api.GET("/rooms/:floorId/availability", hb.FloorAvailabilityHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.RequireAdmin())
		adminGroup.GET("/bookings", hb.AdminHandler.ListBookingsHandler)
		adminGroup.POST("/bookings/batch", hb.AdminHandler.BulkCreateHandler)
		adminGroup.GET("/templates", hb.AdminHandler.ListTemplatesHandler)
		adminGroup.POST("/templates", hb.AdminHandler.CreateTemplateHandler)
		adminGroup.GET("/audits", hb.AdminHandler.ListAuditsHandler)
	}
}

// RegisterOpsRoutes exposes health and Prometheus metrics from gatherer.
func RegisterOpsRoutes(r *gin.Engine, hb *handlers.HandlerBundle, gatherer prometheus.Gatherer) {
	r.GET("/health", hb.HealthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, gatherer prometheus.Gatherer) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterDirectoryRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterOpsRoutes(r, hb, gatherer)
}
