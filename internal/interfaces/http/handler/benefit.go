package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	benefitsapp "github.com/awerp/backend/internal/application/benefits"
	"github.com/awerp/backend/internal/domain/shared"
	"github.com/awerp/backend/internal/interfaces/http/dto"
)

// BenefitHandler handles employee benefit program API endpoints
type BenefitHandler struct {
	BaseHandler
	benefitService *benefitsapp.BenefitService
}

// NewBenefitHandler creates a new BenefitHandler
func NewBenefitHandler(benefitService *benefitsapp.BenefitService) *BenefitHandler {
	return &BenefitHandler{
		benefitService: benefitService,
	}
}

// RegisterRoutes registers benefit routes
func (h *BenefitHandler) RegisterRoutes(rg *gin.RouterGroup) {
	benefits := rg.Group("/benefits")
	{
		benefits.GET("/unpopular-products", h.UnpopularProducts)
		benefits.GET("/assign", h.AssignForm)
		benefits.POST("/assign", h.Assign)
		benefits.GET("/redeem", h.RedeemForm)
		benefits.POST("/redeem", h.Redeem)
	}
}

// UnpopularProducts returns one fixed-size page of benefit candidates
func (h *BenefitHandler) UnpopularProducts(c *gin.Context) {
	var page dto.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		h.BadRequest(c, "invalid page parameter")
		return
	}

	result, err := h.benefitService.UnpopularProducts(c.Request.Context(), page.Page)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// AssignForm returns the option lists for the assignment form
func (h *BenefitHandler) AssignForm(c *gin.Context) {
	options, err := h.benefitService.AssignForm(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, options)
}

// Assign grants an employee a discount on a product
func (h *BenefitHandler) Assign(c *gin.Context) {
	var req benefitsapp.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.rejectAssign(c, shared.NewValidationError(err.Error()))
		return
	}

	if err := h.benefitService.Assign(c.Request.Context(), req); err != nil {
		h.rejectAssign(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(gin.H{
		"employee_id": req.EmployeeID,
		"product_id":  req.ProductID,
	}))
}

// RedeemForm returns the option lists for the redemption form. The benefit
// options cover only the selected employee's unredeemed assignments.
func (h *BenefitHandler) RedeemForm(c *gin.Context) {
	employeeID := 0
	if raw := c.Query("employee_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.BadRequest(c, "invalid employee id")
			return
		}
		employeeID = parsed
	}

	options, err := h.benefitService.RedeemForm(c.Request.Context(), employeeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, options)
}

// Redeem redeems a benefit for an employee
func (h *BenefitHandler) Redeem(c *gin.Context) {
	var req benefitsapp.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.rejectRedeem(c, shared.NewValidationError(err.Error()), 0)
		return
	}

	benefit, err := h.benefitService.Redeem(c.Request.Context(), req)
	if err != nil {
		h.rejectRedeem(c, err, req.EmployeeID)
		return
	}
	h.Success(c, benefit)
}

// rejectAssign answers a failed assignment with recomputed option lists
func (h *BenefitHandler) rejectAssign(c *gin.Context, err error) {
	options, optErr := h.benefitService.AssignForm(c.Request.Context())
	if optErr != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.RejectedForm(c, err, options)
}

// rejectRedeem answers a failed redemption with recomputed option lists
func (h *BenefitHandler) rejectRedeem(c *gin.Context, err error, employeeID int) {
	options, optErr := h.benefitService.RedeemForm(c.Request.Context(), employeeID)
	if optErr != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.RejectedForm(c, err, options)
}
