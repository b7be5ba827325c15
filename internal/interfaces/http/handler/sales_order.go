package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	salesapp "github.com/awerp/backend/internal/application/sales"
	"github.com/awerp/backend/internal/domain/shared"
	"github.com/awerp/backend/internal/interfaces/http/dto"
)

// SalesOrderHandler handles sales order API endpoints
type SalesOrderHandler struct {
	BaseHandler
	salesService *salesapp.SalesOrderService
}

// NewSalesOrderHandler creates a new SalesOrderHandler
func NewSalesOrderHandler(salesService *salesapp.SalesOrderService) *SalesOrderHandler {
	return &SalesOrderHandler{
		salesService: salesService,
	}
}

// RegisterRoutes registers sales order routes
func (h *SalesOrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/sales")
	{
		orders.GET("", h.List)
		orders.GET("/new", h.NewForm)
		orders.POST("", h.Create)
		orders.GET("/:id", h.GetByID)
		orders.GET("/:id/edit", h.EditForm)
		orders.PUT("/:id", h.Update)
		orders.DELETE("/:id", h.Delete)
		orders.POST("/:id/invoice", h.GenerateInvoice)
		orders.GET("/:id/invoice", h.GetInvoice)
	}
}

// List returns one fixed-size page of order headers
func (h *SalesOrderHandler) List(c *gin.Context) {
	var page dto.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		h.BadRequest(c, "invalid page parameter")
		return
	}

	result, err := h.salesService.List(c.Request.Context(), page.Page)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetByID returns one order header with its standard relations
func (h *SalesOrderHandler) GetByID(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	order, err := h.salesService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}

// NewForm returns the option lists for the creation form
func (h *SalesOrderHandler) NewForm(c *gin.Context) {
	options, err := h.salesService.FormOptions(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, options)
}

// EditForm returns the order as read plus the option lists for the edit form
func (h *SalesOrderHandler) EditForm(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	form, err := h.salesService.EditForm(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, form)
}

// Create inserts a new order header
func (h *SalesOrderHandler) Create(c *gin.Context) {
	var req salesapp.CreateSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.reject(c, shared.NewValidationError(err.Error()))
		return
	}

	order, err := h.salesService.Create(c.Request.Context(), req)
	if err != nil {
		h.reject(c, err)
		return
	}
	h.Created(c, order)
}

// Update applies a full-row edit carrying the modified_date the caller read
func (h *SalesOrderHandler) Update(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	var req salesapp.UpdateSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.reject(c, shared.NewValidationError(err.Error()))
		return
	}

	order, err := h.salesService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.reject(c, err)
		return
	}
	h.Success(c, order)
}

// Delete removes an order header
func (h *SalesOrderHandler) Delete(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	if err := h.salesService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// GenerateInvoice generates the invoice for an order, at most once
func (h *SalesOrderHandler) GenerateInvoice(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	invoice, err := h.salesService.GenerateInvoice(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, invoice)
}

// GetInvoice reads the invoice generated for an order
func (h *SalesOrderHandler) GetInvoice(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	invoice, err := h.salesService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, invoice)
}

func (h *SalesOrderHandler) orderID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid sales order id")
		return 0, false
	}
	return id, true
}

// reject answers a failed form submission with recomputed option lists
func (h *SalesOrderHandler) reject(c *gin.Context, err error) {
	options, optErr := h.salesService.FormOptions(c.Request.Context())
	if optErr != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.RejectedForm(c, err, options)
}
