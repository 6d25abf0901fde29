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

// ItemHandler handles HTTP requests for cargo items
type ItemHandler struct {
	itemService *service.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// List handles GET /api/v1/items
func (h *ItemHandler) List(c *gin.Context) {
	var filter models.PageFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	items, total, err := h.itemService.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list items", err)
		return
	}

	filter.Normalize()
	response.Success(c, models.ItemsResponse{
		Data:       items,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages(total, filter.PageSize),
	})
}

// GetByID handles GET /api/v1/items/:id
func (h *ItemHandler) GetByID(c *gin.Context) {
	it, err := h.itemService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get item", err)
		return
	}
	if it == nil {
		response.NotFound(c, "Item not found")
		return
	}

	response.Success(c, it)
}

// Create handles POST /api/v1/items
func (h *ItemHandler) Create(c *gin.Context) {
	var it models.Item
	if err := c.ShouldBindJSON(&it); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.itemService.Create(c.Request.Context(), &it); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create item", err)
		return
	}

	response.Success(c, it)
}

// Update handles PUT /api/v1/items/:id
func (h *ItemHandler) Update(c *gin.Context) {
	var it models.Item
	if err := c.ShouldBindJSON(&it); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	it.ID = c.Param("id")

	err := h.itemService.Update(c.Request.Context(), &it)
	if errors.Is(err, sql.ErrNoRows) {
		response.NotFound(c, "Item not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to update item", err)
		return
	}

	response.Success(c, it)
}

// Delete handles DELETE /api/v1/items/:id
func (h *ItemHandler) Delete(c *gin.Context) {
	err := h.itemService.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		response.NotFound(c, "Item not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to delete item", err)
		return
	}

	response.Success(c, nil)
}
