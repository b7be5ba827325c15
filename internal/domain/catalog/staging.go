package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// NewProductStaging is a keyless, write-only staging row representing a
// pending product creation. It is inserted into prs.new_product_staging for
// approval-based promotion and never read back by this layer.
type NewProductStaging struct {
	Name                  string           `json:"name"`
	ProductNumber         string           `json:"product_number"`
	MakeFlag              bool             `json:"make_flag"`
	FinishedGoodsFlag     bool             `json:"finished_goods_flag"`
	Color                 *string          `json:"color"`
	SafetyStockLevel      int16            `json:"safety_stock_level"`
	ReorderPoint          int16            `json:"reorder_point"`
	StandardCost          decimal.Decimal  `json:"standard_cost"`
	ListPrice             decimal.Decimal  `json:"list_price"`
	Size                  *string          `json:"size"`
	SizeUnitMeasureCode   *string          `json:"size_unit_measure_code"`
	WeightUnitMeasureCode *string          `json:"weight_unit_measure_code"`
	Weight                *decimal.Decimal `json:"weight"`
	DaysToManufacture     int              `json:"days_to_manufacture"`
	ProductLine           *string          `json:"product_line"`
	Class                 *string          `json:"class"`
	Style                 *string          `json:"style"`
	ProductSubcategoryID  *int             `json:"product_subcategory_id"`
	ProductModelID        *int             `json:"product_model_id"`
	SellStartDate         time.Time        `json:"sell_start_date"`
	SellEndDate           *time.Time       `json:"sell_end_date"`
	DiscontinuedDate      *time.Time       `json:"discontinued_date"`
}
