package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/fleetops-backend-go/internal/models"
	"github.com/fleetops/fleetops-backend-go/internal/service"
	"github.com/fleetops/fleetops-backend-go/pkg/response"
)

// ActivityHandler handles HTTP requests for work activities
type ActivityHandler struct {
	activityService *service.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// ListByOperation handles GET /api/v1/operations/:id/activities
func (h *ActivityHandler) ListByOperation(c *gin.Context) {
	var filter models.TimelineFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	activities, err := h.activityService.ListByOperation(c.Request.Context(), c.Param("id"), filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list activities", err)
		return
	}

	response.Success(c, gin.H{
		"data":  activities,
		"total": len(activities),
	})
}

// Create handles POST /api/v1/operations/:id/activities
func (h *ActivityHandler) Create(c *gin.Context) {
	var a models.Activity
	if err := c.ShouldBindJSON(&a); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	a.OperationID = c.Param("id")

	if err := h.activityService.Create(c.Request.Context(), &a); err != nil {
		if strings.Contains(err.Error(), "invalid activity type") {
			response.BadRequest(c, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to create activity", err)
		return
	}

	response.Success(c, a)
}

// Update handles PUT /api/v1/activities/:id
func (h *ActivityHandler) Update(c *gin.Context) {
	var a models.Activity
	if err := c.ShouldBindJSON(&a); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	a.ID = c.Param("id")

	err := h.activityService.Update(c.Request.Context(), &a)
	if errors.Is(err, sql.ErrNoRows) {
		response.NotFound(c, "Activity not found")
		return
	}
	if err != nil {
		if strings.Contains(err.Error(), "invalid activity type") {
			response.BadRequest(c, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to update activity", err)
		return
	}

	response.Success(c, a)
}
