package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/awerp/backend/internal/application/catalog"
	"github.com/awerp/backend/internal/domain/shared"
	"github.com/awerp/backend/internal/interfaces/http/dto"
)

// ProductHandler handles product catalog API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// RegisterRoutes registers product routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", h.List)
		products.GET("/new", h.NewForm)
		products.POST("", h.Create)
		products.GET("/:id", h.GetByID)
		products.GET("/:id/edit", h.EditForm)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
	}
}

// List returns one fixed-size page of products
func (h *ProductHandler) List(c *gin.Context) {
	var page dto.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		h.BadRequest(c, "invalid page parameter")
		return
	}

	result, err := h.productService.List(c.Request.Context(), page.Page)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetByID returns one product with its standard relations
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid product id")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, product)
}

// NewForm returns the option lists for the creation form
func (h *ProductHandler) NewForm(c *gin.Context) {
	options, err := h.productService.FormOptions(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, options)
}

// EditForm returns the product as read plus the option lists for the edit form
func (h *ProductHandler) EditForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid product id")
		return
	}

	form, err := h.productService.EditForm(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, form)
}

// Create stages a pending product creation for out-of-band promotion
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalogapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.reject(c, shared.NewValidationError(err.Error()))
		return
	}

	if err := h.productService.CreateStaging(c.Request.Context(), req); err != nil {
		h.reject(c, err)
		return
	}
	c.JSON(http.StatusAccepted, dto.NewSuccessResponse(gin.H{
		"status": "staged",
	}))
}

// Update applies a full-row edit carrying the modified_date the caller read
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid product id")
		return
	}

	var req catalogapp.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.reject(c, shared.NewValidationError(err.Error()))
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.reject(c, err)
		return
	}
	h.Success(c, product)
}

// Delete removes a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid product id")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// reject answers a failed form submission with recomputed option lists
func (h *ProductHandler) reject(c *gin.Context, err error) {
	options, optErr := h.productService.FormOptions(c.Request.Context())
	if optErr != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.RejectedForm(c, err, options)
}
