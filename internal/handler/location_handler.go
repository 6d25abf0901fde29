package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/fleetops-backend-go/internal/models"
	"github.com/fleetops/fleetops-backend-go/internal/service"
	"github.com/fleetops/fleetops-backend-go/pkg/response"
)

// LocationHandler handles HTTP requests for locations
type LocationHandler struct {
	locationService *service.LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationService *service.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// List handles GET /api/v1/locations
func (h *LocationHandler) List(c *gin.Context) {
	var filter models.PageFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	locations, total, err := h.locationService.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list locations", err)
		return
	}

	filter.Normalize()
	response.Success(c, models.LocationsResponse{
		Data:       locations,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages(total, filter.PageSize),
	})
}

// GetByID handles GET /api/v1/locations/:id
func (h *LocationHandler) GetByID(c *gin.Context) {
	l, err := h.locationService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get location", err)
		return
	}
	if l == nil {
		response.NotFound(c, "Location not found")
		return
	}

	response.Success(c, l)
}

// Create handles POST /api/v1/locations
func (h *LocationHandler) Create(c *gin.Context) {
	var l models.Location
	if err := c.ShouldBindJSON(&l); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.locationService.Create(c.Request.Context(), &l); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create location", err)
		return
	}

	response.Success(c, l)
}

// Update handles PUT /api/v1/locations/:id
func (h *LocationHandler) Update(c *gin.Context) {
	var l models.Location
	if err := c.ShouldBindJSON(&l); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	l.ID = c.Param("id")

	err := h.locationService.Update(c.Request.Context(), &l)
	if errors.Is(err, sql.ErrNoRows) {
		response.NotFound(c, "Location not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to update location", err)
		return
	}

	response.Success(c, l)
}

// Delete handles DELETE /api/v1/locations/:id
func (h *LocationHandler) Delete(c *gin.Context) {
	err := h.locationService.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		response.NotFound(c, "Location not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to delete location", err)
		return
	}

	response.Success(c, nil)
}
