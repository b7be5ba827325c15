package benefits

import (
	"github.com/awerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// AssignFormOptions carries the option lists the assign form binds
type AssignFormOptions struct {
	Employees []shared.SelectOption `json:"employees"`
	Products  []shared.SelectOption `json:"products"`
}

// RedeemFormOptions carries the option lists the redeem form binds. Benefits
// lists only the employee's unredeemed assignments.
type RedeemFormOptions struct {
	Employees []shared.SelectOption `json:"employees"`
	Benefits  []shared.SelectOption `json:"benefits"`
}

// AssignRequest grants an employee a discount on a product
type AssignRequest struct {
	EmployeeID      int             `json:"employee_id" binding:"required,gt=0"`
	ProductID       int             `json:"product_id" binding:"required,gt=0"`
	DiscountPercent decimal.Decimal `json:"discount_percent" binding:"required"`
}

// RedeemRequest redeems one of an employee's benefits
type RedeemRequest struct {
	BenefitID  int `json:"benefit_id" binding:"required,gt=0"`
	EmployeeID int `json:"employee_id" binding:"required,gt=0"`
}
