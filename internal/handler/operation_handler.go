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

// OperationHandler handles HTTP requests for operations
type OperationHandler struct {
	operationService *service.OperationService
}

// NewOperationHandler creates a new operation handler
func NewOperationHandler(operationService *service.OperationService) *OperationHandler {
	return &OperationHandler{operationService: operationService}
}

// List handles GET /api/v1/operations
func (h *OperationHandler) List(c *gin.Context) {
	var filter models.OperationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	operations, total, err := h.operationService.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list operations", err)
		return
	}

	filter.Normalize()
	response.Success(c, models.OperationsResponse{
		Data:       operations,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages(total, filter.PageSize),
	})
}

// GetByID handles GET /api/v1/operations/:id
func (h *OperationHandler) GetByID(c *gin.Context) {
	op, err := h.operationService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get operation", err)
		return
	}
	if op == nil {
		response.NotFound(c, "Operation not found")
		return
	}

	response.Success(c, op)
}

// Create handles POST /api/v1/operations
func (h *OperationHandler) Create(c *gin.Context) {
	var op models.Operation
	if err := c.ShouldBindJSON(&op); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.operationService.Create(c.Request.Context(), &op); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create operation", err)
		return
	}

	response.Success(c, op)
}

// Update handles PUT /api/v1/operations/:id
func (h *OperationHandler) Update(c *gin.Context) {
	var op models.Operation
	if err := c.ShouldBindJSON(&op); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	op.ID = c.Param("id")

	err := h.operationService.Update(c.Request.Context(), &op)
	if errors.Is(err, sql.ErrNoRows) {
		response.NotFound(c, "Operation not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to update operation", err)
		return
	}

	response.Success(c, op)
}

// Delete handles DELETE /api/v1/operations/:id
func (h *OperationHandler) Delete(c *gin.Context) {
	err := h.operationService.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		response.NotFound(c, "Operation not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to delete operation", err)
		return
	}

	response.Success(c, nil)
}

// Start handles POST /api/v1/operations/:id/start
func (h *OperationHandler) Start(c *gin.Context) {
	err := h.operationService.Start(c.Request.Context(), c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		response.NotFound(c, "Operation not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to start operation", err)
		return
	}

	response.Success(c, nil)
}

// Complete handles POST /api/v1/operations/:id/complete
func (h *OperationHandler) Complete(c *gin.Context) {
	err := h.operationService.Complete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		response.NotFound(c, "Operation not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to complete operation", err)
		return
	}

	response.Success(c, nil)
}

// totalPages computes the page count for a paginated response
func totalPages(total int64, pageSize int) int {
	pages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		pages++
	}
	return pages
}
