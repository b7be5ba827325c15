package benefits

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeBenefit mirrors one row of ebs.employee_benefit. Assignment and
// redemption are server-side operations; the Redeemed flag only flips through
// ebs.redeem_benefit so the redemption ledger stays consistent.
type EmployeeBenefit struct {
	BenefitID       int             `gorm:"column:benefit_id;primaryKey;autoIncrement" json:"benefit_id"`
	EmployeeID      int             `gorm:"column:employee_id;not null" json:"employee_id"`
	ProductID       int             `gorm:"column:product_id;not null" json:"product_id"`
	AssignedDate    time.Time       `gorm:"column:assigned_date;not null" json:"assigned_date"`
	RedeemedDate    *time.Time      `gorm:"column:redeemed_date" json:"redeemed_date"`
	DiscountPercent decimal.Decimal `gorm:"column:discount_percent;type:decimal(5,2);not null" json:"discount_percent"`
	Redeemed        bool            `gorm:"column:redeemed;not null;default:false" json:"redeemed"`
}

// TableName returns the table name for GORM
func (EmployeeBenefit) TableName() string {
	return "ebs.employee_benefit"
}

// BenefitProduct is one row of the table-valued operation
// ebs.get_unpopular_products: a product eligible for the benefit program.
type BenefitProduct struct {
	ProductID int             `gorm:"column:product_id" json:"product_id"`
	Name      string          `gorm:"column:name" json:"name"`
	ListPrice decimal.Decimal `gorm:"column:list_price" json:"list_price"`
	SoldCount int             `gorm:"column:sold_count" json:"sold_count"`
}
