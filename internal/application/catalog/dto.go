package catalog

import (
	"time"

	"github.com/awerp/backend/internal/domain/catalog"
	"github.com/awerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductFormOptions carries the selectable option lists the product forms
// bind. Recomputed on every render and on every rejected submission.
type ProductFormOptions struct {
	ProductModels        []shared.SelectOption `json:"product_models"`
	ProductSubcategories []shared.SelectOption `json:"product_subcategories"`
	UnitMeasures         []shared.SelectOption `json:"unit_measures"`
}

// ProductForm is the edit form payload: the row as read plus the option lists
type ProductForm struct {
	Product *catalog.Product   `json:"product"`
	Options ProductFormOptions `json:"options"`
}

// UpdateProductRequest carries the full editable column set plus the
// modified_date the caller read, which the optimistic update matches against.
type UpdateProductRequest struct {
	Name                  string           `json:"name" binding:"required,max=60"`
	ProductNumber         string           `json:"product_number" binding:"required,max=25"`
	MakeFlag              bool             `json:"make_flag"`
	FinishedGoodsFlag     bool             `json:"finished_goods_flag"`
	Color                 *string          `json:"color" binding:"omitempty,max=15"`
	SafetyStockLevel      int16            `json:"safety_stock_level" binding:"gte=0"`
	ReorderPoint          int16            `json:"reorder_point" binding:"gte=0"`
	StandardCost          decimal.Decimal  `json:"standard_cost"`
	ListPrice             decimal.Decimal  `json:"list_price"`
	Size                  *string          `json:"size" binding:"omitempty,max=5"`
	SizeUnitMeasureCode   *string          `json:"size_unit_measure_code" binding:"omitempty,len=3"`
	WeightUnitMeasureCode *string          `json:"weight_unit_measure_code" binding:"omitempty,len=3"`
	Weight                *decimal.Decimal `json:"weight"`
	DaysToManufacture     int              `json:"days_to_manufacture" binding:"gte=0"`
	ProductLine           *string          `json:"product_line" binding:"omitempty,max=2"`
	Class                 *string          `json:"class" binding:"omitempty,max=2"`
	Style                 *string          `json:"style" binding:"omitempty,max=2"`
	ProductSubcategoryID  *int             `json:"product_subcategory_id"`
	ProductModelID        *int             `json:"product_model_id"`
	SellStartDate         time.Time        `json:"sell_start_date" binding:"required"`
	SellEndDate           *time.Time       `json:"sell_end_date"`
	DiscontinuedDate      *time.Time       `json:"discontinued_date"`
	ModifiedDate          time.Time        `json:"modified_date" binding:"required"`
}

// apply copies the editable columns onto the entity, keeping the read stamp
// in ModifiedDate for the optimistic match.
func (r UpdateProductRequest) apply(p *catalog.Product) {
	p.Name = r.Name
	p.ProductNumber = r.ProductNumber
	p.MakeFlag = r.MakeFlag
	p.FinishedGoodsFlag = r.FinishedGoodsFlag
	p.Color = r.Color
	p.SafetyStockLevel = r.SafetyStockLevel
	p.ReorderPoint = r.ReorderPoint
	p.StandardCost = r.StandardCost
	p.ListPrice = r.ListPrice
	p.Size = r.Size
	p.SizeUnitMeasureCode = r.SizeUnitMeasureCode
	p.WeightUnitMeasureCode = r.WeightUnitMeasureCode
	p.Weight = r.Weight
	p.DaysToManufacture = r.DaysToManufacture
	p.ProductLine = r.ProductLine
	p.Class = r.Class
	p.Style = r.Style
	p.ProductSubcategoryID = r.ProductSubcategoryID
	p.ProductModelID = r.ProductModelID
	p.SellStartDate = r.SellStartDate
	p.SellEndDate = r.SellEndDate
	p.DiscontinuedDate = r.DiscontinuedDate
	p.ModifiedDate = r.ModifiedDate
}

// CreateProductRequest stages a pending product creation
type CreateProductRequest struct {
	Name                  string           `json:"name" binding:"required,max=60"`
	ProductNumber         string           `json:"product_number" binding:"required,max=25"`
	MakeFlag              bool             `json:"make_flag"`
	FinishedGoodsFlag     bool             `json:"finished_goods_flag"`
	Color                 *string          `json:"color" binding:"omitempty,max=15"`
	SafetyStockLevel      int16            `json:"safety_stock_level" binding:"gte=0"`
	ReorderPoint          int16            `json:"reorder_point" binding:"gte=0"`
	StandardCost          decimal.Decimal  `json:"standard_cost"`
	ListPrice             decimal.Decimal  `json:"list_price"`
	Size                  *string          `json:"size" binding:"omitempty,max=5"`
	SizeUnitMeasureCode   *string          `json:"size_unit_measure_code" binding:"omitempty,len=3"`
	WeightUnitMeasureCode *string          `json:"weight_unit_measure_code" binding:"omitempty,len=3"`
	Weight                *decimal.Decimal `json:"weight"`
	DaysToManufacture     int              `json:"days_to_manufacture" binding:"gte=0"`
	ProductLine           *string          `json:"product_line" binding:"omitempty,max=2"`
	Class                 *string          `json:"class" binding:"omitempty,max=2"`
	Style                 *string          `json:"style" binding:"omitempty,max=2"`
	ProductSubcategoryID  *int             `json:"product_subcategory_id"`
	ProductModelID        *int             `json:"product_model_id"`
	SellStartDate         time.Time        `json:"sell_start_date" binding:"required"`
	SellEndDate           *time.Time       `json:"sell_end_date"`
	DiscontinuedDate      *time.Time       `json:"discontinued_date"`
}

func (r CreateProductRequest) toStaging() *catalog.NewProductStaging {
	return &catalog.NewProductStaging{
		Name:                  r.Name,
		ProductNumber:         r.ProductNumber,
		MakeFlag:              r.MakeFlag,
		FinishedGoodsFlag:     r.FinishedGoodsFlag,
		Color:                 r.Color,
		SafetyStockLevel:      r.SafetyStockLevel,
		ReorderPoint:          r.ReorderPoint,
		StandardCost:          r.StandardCost,
		ListPrice:             r.ListPrice,
		Size:                  r.Size,
		SizeUnitMeasureCode:   r.SizeUnitMeasureCode,
		WeightUnitMeasureCode: r.WeightUnitMeasureCode,
		Weight:                r.Weight,
		DaysToManufacture:     r.DaysToManufacture,
		ProductLine:           r.ProductLine,
		Class:                 r.Class,
		Style:                 r.Style,
		ProductSubcategoryID:  r.ProductSubcategoryID,
		ProductModelID:        r.ProductModelID,
		SellStartDate:         r.SellStartDate,
		SellEndDate:           r.SellEndDate,
		DiscontinuedDate:      r.DiscontinuedDate,
	}
}
