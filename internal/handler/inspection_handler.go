package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/fleetops-backend-go/internal/models"
	"github.com/fleetops/fleetops-backend-go/internal/service"
	"github.com/fleetops/fleetops-backend-go/pkg/response"
)

// InspectionHandler handles HTTP requests for inspection records
type InspectionHandler struct {
	inspectionService *service.InspectionService
}

// NewInspectionHandler creates a new inspection handler
func NewInspectionHandler(inspectionService *service.InspectionService) *InspectionHandler {
	return &InspectionHandler{inspectionService: inspectionService}
}

// ListByOperation handles GET /api/v1/operations/:id/inspections
func (h *InspectionHandler) ListByOperation(c *gin.Context) {
	inspections, err := h.inspectionService.ListByOperation(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list inspections", err)
		return
	}

	response.Success(c, gin.H{
		"data":  inspections,
		"total": len(inspections),
	})
}

// Create handles POST /api/v1/operations/:id/inspections
func (h *InspectionHandler) Create(c *gin.Context) {
	var rec models.InspectionRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	rec.OperationID = c.Param("id")

	if err := h.inspectionService.Create(c.Request.Context(), &rec); err != nil {
		if strings.Contains(err.Error(), "invalid inspection type") {
			response.BadRequest(c, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to create inspection", err)
		return
	}

	response.Success(c, rec)
}
