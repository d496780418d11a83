package handlers

import (
	"net/http"

	"classalloc/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the latest backend health snapshot. It answers 503
// when either backend failed its last ping.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo || !status.Redis {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
