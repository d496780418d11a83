package handlers

import (
	"net/http"
	"strconv"
	"time"

	"classalloc/middleware"
	"classalloc/models"
	"classalloc/services/admin"
	"classalloc/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	Bookings       booking.BookingService
	Admin          admin.AdminService
	DefaultHorizon int
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(bs booking.BookingService, as admin.AdminService, defaultHorizon int) *AdminHandler {
	if defaultHorizon <= 0 {
		defaultHorizon = 60
	}
	return &AdminHandler{Bookings: bs, Admin: as, DefaultHorizon: defaultHorizon}
}

type bulkInput struct {
	Building      string            `json:"building"`
	Floor         string            `json:"floor"`
	Room          string            `json:"room"`
	DayOfWeek     *int              `json:"dayOfWeek"`
	StartTime     string            `json:"startTime"`
	EndTime       string            `json:"endTime"`
	Department    models.Department `json:"department"`
	Subject       string            `json:"subject"`
	Teacher       string            `json:"teacher"`
	HorizonDays   *int              `json:"horizonDays"`
	ForceOverride bool              `json:"forceOverride"`
}

// ListBookingsHandler returns a filtered, paginated booking listing.
func (h *AdminHandler) ListBookingsHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	filter := models.BookingFilter{
		Date:       c.Query("date"),
		Building:   c.Query("building"),
		Floor:      c.Query("floor"),
		Room:       c.Query("room"),
		Department: models.Department(c.Query("department")),
		Source:     models.BookingSource(c.Query("source")),
		Teacher:    c.Query("teacher"),
		Page:       page,
		Limit:      limit,
	}

	res, err := h.Bookings.ListBookings(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to fetch bookings")
		return
	}
	c.JSON(http.StatusOK, res)
}

// BulkCreateHandler books a weekly slot across the horizon.
func (h *AdminHandler) BulkCreateHandler(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var in bulkInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if in.DayOfWeek == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dayOfWeek is required"})
		return
	}
	horizon := h.DefaultHorizon
	if in.HorizonDays != nil {
		horizon = *in.HorizonDays
	}

	req := models.BulkRequest{
		Building:      in.Building,
		Floor:         in.Floor,
		Room:          in.Room,
		DayOfWeek:     time.Weekday(*in.DayOfWeek),
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
		Department:    in.Department,
		Subject:       in.Subject,
		Teacher:       in.Teacher,
		HorizonDays:   horizon,
		ForceOverride: in.ForceOverride,
		Admin:         actor,
		Provenance:    middleware.ProvenanceFrom(c),
	}

	result, err := h.Bookings.BulkCreateBookings(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Bulk booking operation failed")
		return
	}
	if len(result.Errors) > 0 {
		getLogger(c).Warn("Bulk booking completed with errors", zap.Strings("errors", result.Errors))
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bulk booking operation completed", "result": result})
}

// ListTemplatesHandler returns active templates.
func (h *AdminHandler) ListTemplatesHandler(c *gin.Context) {
	tpls, err := h.Admin.ListTemplates(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch templates")
		return
	}
	c.JSON(http.StatusOK, tpls)
}

// CreateTemplateHandler stores a new recurring booking template.
func (h *AdminHandler) CreateTemplateHandler(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var tpl models.Template
	if err := c.ShouldBindJSON(&tpl); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Admin.CreateTemplate(c.Request.Context(), actor, tpl)
	if err != nil {
		respondError(c, err, "Failed to create template")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Template created successfully", "template": created})
}

// ListAuditsHandler returns audit records, newest first.
func (h *AdminHandler) ListAuditsHandler(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	filter := models.AuditFilter{
		Action:       models.AuditAction(c.Query("action")),
		PerformedBy:  c.Query("performedBy"),
		AffectedUser: c.Query("affectedUser"),
		Limit:        limit,
	}

	recs, err := h.Admin.ListAudits(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to fetch audit records")
		return
	}
	c.JSON(http.StatusOK, recs)
}
