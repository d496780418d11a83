package handlers

import (
	"net/http"

	"classalloc/services/directory"

	"github.com/gin-gonic/gin"
)

type DirectoryHandler struct {
	Service directory.DirectoryService
}

func NewDirectoryHandler(svc directory.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{Service: svc}
}

func (h *DirectoryHandler) ListBuildingsHandler(c *gin.Context) {
	out, err := h.Service.ListBuildings(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch buildings")
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *DirectoryHandler) ListFloorsHandler(c *gin.Context) {
	out, err := h.Service.ListFloors(c.Request.Context(), c.Param("buildingId"))
	if err != nil {
		respondError(c, err, "Failed to fetch floors")
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *DirectoryHandler) ListRoomsHandler(c *gin.Context) {
	out, err := h.Service.ListRooms(c.Request.Context(), c.Param("floorId"))
	if err != nil {
		respondError(c, err, "Failed to fetch rooms")
		return
	}
	c.JSON(http.StatusOK, out)
}
