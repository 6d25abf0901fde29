package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/fleetops-backend-go/internal/models"
	"github.com/fleetops/fleetops-backend-go/internal/service"
	"github.com/fleetops/fleetops-backend-go/pkg/response"
)

// GpsHandler handles HTTP requests for GPS breadcrumb logs
type GpsHandler struct {
	gpsService *service.GpsLogService
}

// NewGpsHandler creates a new GPS handler
func NewGpsHandler(gpsService *service.GpsLogService) *GpsHandler {
	return &GpsHandler{gpsService: gpsService}
}

// ListByOperation handles GET /api/v1/operations/:id/gps
func (h *GpsHandler) ListByOperation(c *gin.Context) {
	logs, err := h.gpsService.ListByOperation(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list gps logs", err)
		return
	}

	response.Success(c, models.GpsLogsResponse{
		Data:  logs,
		Total: int64(len(logs)),
	})
}

// Ingest handles POST /api/v1/operations/:id/gps
func (h *GpsHandler) Ingest(c *gin.Context) {
	var logs []models.GpsLog
	if err := c.ShouldBindJSON(&logs); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.gpsService.Ingest(c.Request.Context(), c.Param("id"), logs); err != nil {
		if strings.Contains(err.Error(), "missing recordedAt") {
			response.BadRequest(c, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to ingest gps logs", err)
		return
	}

	response.Success(c, gin.H{"ingested": len(logs)})
}
