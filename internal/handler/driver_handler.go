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

// DriverHandler handles HTTP requests for drivers
type DriverHandler struct {
	driverService *service.DriverService
}

// NewDriverHandler creates a new driver handler
func NewDriverHandler(driverService *service.DriverService) *DriverHandler {
	return &DriverHandler{driverService: driverService}
}

// List handles GET /api/v1/drivers
func (h *DriverHandler) List(c *gin.Context) {
	var filter models.PageFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	drivers, total, err := h.driverService.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list drivers", err)
		return
	}

	filter.Normalize()
	response.Success(c, models.DriversResponse{
		Data:       drivers,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages(total, filter.PageSize),
	})
}

// GetByID handles GET /api/v1/drivers/:id
func (h *DriverHandler) GetByID(c *gin.Context) {
	d, err := h.driverService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get driver", err)
		return
	}
	if d == nil {
		response.NotFound(c, "Driver not found")
		return
	}

	response.Success(c, d)
}

// Create handles POST /api/v1/drivers
func (h *DriverHandler) Create(c *gin.Context) {
	var d models.Driver
	if err := c.ShouldBindJSON(&d); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.driverService.Create(c.Request.Context(), &d); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create driver", err)
		return
	}

	response.Success(c, d)
}

// Update handles PUT /api/v1/drivers/:id
func (h *DriverHandler) Update(c *gin.Context) {
	var d models.Driver
	if err := c.ShouldBindJSON(&d); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	d.ID = c.Param("id")

	err := h.driverService.Update(c.Request.Context(), &d)
	if errors.Is(err, sql.ErrNoRows) {
		response.NotFound(c, "Driver not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to update driver", err)
		return
	}

	response.Success(c, d)
}

// Delete handles DELETE /api/v1/drivers/:id
func (h *DriverHandler) Delete(c *gin.Context) {
	err := h.driverService.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		response.NotFound(c, "Driver not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to delete driver", err)
		return
	}

	response.Success(c, nil)
}
