package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"classalloc/config"
	"classalloc/handlers"
	"classalloc/models"
	"classalloc/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.AppConfig.JWTSecret = "test-secret"
}

func okHandler(c *gin.Context) { c.Status(http.StatusOK) }

func testRouter() *gin.Engine {
	r := gin.New()
	RegisterRoutes(r, &handlers.HandlerBundle{
		CreateBookingHandler:     okHandler,
		CancelBookingHandler:     okHandler,
		FloorAvailabilityHandler: okHandler,
		ListBuildingsHandler:     okHandler,
		ListFloorsHandler:        okHandler,
		ListRoomsHandler:         okHandler,
		AdminHandler:             &handlers.AdminHandler{},
		HealthHandler:            okHandler,
	}, prometheus.NewRegistry())
	return r
}

func TestDirectoryRoutesRequireToken(t *testing.T) {
	r := testRouter()
	token, err := utils.GenerateToken(models.Actor{ID: "u1", Name: "Alice"}, time.Hour)
	require.NoError(t, err)

	paths := []string{
		"/api/buildings",
		"/api/buildings/B1/floors",
		"/api/floors/F2/rooms",
		"/api/rooms/F2/availability",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)

		req = httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestHealthIsPublic(t *testing.T) {
	w := httptest.NewRecorder()
	testRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
