package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	inventoryapp "github.com/awerp/backend/internal/application/inventory"
	"github.com/awerp/backend/internal/domain/shared"
	"github.com/awerp/backend/internal/interfaces/http/dto"
)

// InventoryHandler handles inventory API endpoints
type InventoryHandler struct {
	BaseHandler
	inventoryService *inventoryapp.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryService *inventoryapp.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// RegisterRoutes registers inventory routes
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	inventories := rg.Group("/inventories")
	{
		inventories.GET("", h.List)
		inventories.GET("/new", h.NewForm)
		inventories.POST("", h.Create)
		inventories.GET("/changelog", h.ChangeLog)
		inventories.PUT("/quantity", h.UpdateQuantity)
		inventories.POST("/replenish", h.Replenish)
		inventories.GET("/:productId/:locationId", h.GetByKey)
	}
}

// List returns one fixed-size page of inventory rows
func (h *InventoryHandler) List(c *gin.Context) {
	var page dto.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		h.BadRequest(c, "invalid page parameter")
		return
	}

	result, err := h.inventoryService.List(c.Request.Context(), page.Page)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetByKey returns one inventory row by its composite key
func (h *InventoryHandler) GetByKey(c *gin.Context) {
	productID, locationID, ok := h.compositeKey(c)
	if !ok {
		return
	}

	row, err := h.inventoryService.GetByKey(c.Request.Context(), productID, locationID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, row)
}

// NewForm returns the option lists for the assignment form
func (h *InventoryHandler) NewForm(c *gin.Context) {
	options, err := h.inventoryService.FormOptions(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, options)
}

// Create assigns a product to a shelf/bin at a location with zero stock
func (h *InventoryHandler) Create(c *gin.Context) {
	var req inventoryapp.CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.reject(c, shared.NewValidationError(err.Error()))
		return
	}

	row, err := h.inventoryService.Create(c.Request.Context(), req)
	if err != nil {
		h.reject(c, err)
		return
	}
	h.Created(c, row)
}

// UpdateQuantity sets the absolute quantity through the stored operation
func (h *InventoryHandler) UpdateQuantity(c *gin.Context) {
	var req inventoryapp.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	row, err := h.inventoryService.UpdateQuantity(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, row)
}

// Replenish tops up every row below its reorder point
func (h *InventoryHandler) Replenish(c *gin.Context) {
	var req inventoryapp.ReplenishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	affected, err := h.inventoryService.Replenish(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"rows_replenished": affected})
}

// ChangeLog returns one fixed-size page of the audit trail, newest first
func (h *InventoryHandler) ChangeLog(c *gin.Context) {
	var page dto.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		h.BadRequest(c, "invalid page parameter")
		return
	}

	result, err := h.inventoryService.ChangeLog(c.Request.Context(), page.Page)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *InventoryHandler) compositeKey(c *gin.Context) (int, int16, bool) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		h.BadRequest(c, "invalid product id")
		return 0, 0, false
	}
	locationID, err := strconv.ParseInt(c.Param("locationId"), 10, 16)
	if err != nil {
		h.BadRequest(c, "invalid location id")
		return 0, 0, false
	}
	return productID, int16(locationID), true
}

// reject answers a failed form submission with recomputed option lists
func (h *InventoryHandler) reject(c *gin.Context, err error) {
	options, optErr := h.inventoryService.FormOptions(c.Request.Context())
	if optErr != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.RejectedForm(c, err, options)
}
