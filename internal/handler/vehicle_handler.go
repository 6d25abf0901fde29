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

// VehicleHandler handles HTTP requests for vehicles
type VehicleHandler struct {
	vehicleService *service.VehicleService
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicleService *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// List handles GET /api/v1/vehicles
func (h *VehicleHandler) List(c *gin.Context) {
	var filter models.PageFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	vehicles, total, err := h.vehicleService.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list vehicles", err)
		return
	}

	filter.Normalize()
	response.Success(c, models.VehiclesResponse{
		Data:       vehicles,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages(total, filter.PageSize),
	})
}

// GetByID handles GET /api/v1/vehicles/:id
func (h *VehicleHandler) GetByID(c *gin.Context) {
	v, err := h.vehicleService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get vehicle", err)
		return
	}
	if v == nil {
		response.NotFound(c, "Vehicle not found")
		return
	}

	response.Success(c, v)
}

// Create handles POST /api/v1/vehicles
func (h *VehicleHandler) Create(c *gin.Context) {
	var v models.Vehicle
	if err := c.ShouldBindJSON(&v); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.vehicleService.Create(c.Request.Context(), &v); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create vehicle", err)
		return
	}

	response.Success(c, v)
}

// Update handles PUT /api/v1/vehicles/:id
func (h *VehicleHandler) Update(c *gin.Context) {
	var v models.Vehicle
	if err := c.ShouldBindJSON(&v); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	v.ID = c.Param("id")

	err := h.vehicleService.Update(c.Request.Context(), &v)
	if errors.Is(err, sql.ErrNoRows) {
		response.NotFound(c, "Vehicle not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to update vehicle", err)
		return
	}

	response.Success(c, v)
}

// Delete handles DELETE /api/v1/vehicles/:id
func (h *VehicleHandler) Delete(c *gin.Context) {
	err := h.vehicleService.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		response.NotFound(c, "Vehicle not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to delete vehicle", err)
		return
	}

	response.Success(c, nil)
}
