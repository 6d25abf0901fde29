package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/fleetops-backend-go/internal/models"
	"github.com/fleetops/fleetops-backend-go/internal/service"
	"github.com/fleetops/fleetops-backend-go/internal/timeline"
	"github.com/fleetops/fleetops-backend-go/pkg/response"
)

// TimelineHandler handles HTTP requests for operation timelines
type TimelineHandler struct {
	timelineService *service.TimelineService
}

// NewTimelineHandler creates a new timeline handler
func NewTimelineHandler(timelineService *service.TimelineService) *TimelineHandler {
	return &TimelineHandler{timelineService: timelineService}
}

// GetOperationTimeline handles GET /api/v1/operations/:id/timeline
func (h *TimelineHandler) GetOperationTimeline(c *gin.Context) {
	operationID := c.Param("id")

	var filter models.TimelineFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	if filter.ActivityType != "" && !models.IsValidActivityType(filter.ActivityType) {
		response.BadRequest(c, "Invalid activity type filter")
		return
	}

	result, err := h.timelineService.GetOperationTimeline(c.Request.Context(), operationID, filter)
	if errors.Is(err, timeline.ErrOperationNotFound) {
		response.NotFound(c, "Operation not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to build operation timeline", err)
		return
	}

	response.Success(c, result)
}
