package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product mirrors one row of production.product. It carries no behaviour
// beyond data holding; mutation rules live in the application services and
// the database.
type Product struct {
	ProductID             int              `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id"`
	Name                  string           `gorm:"column:name;type:varchar(60);not null" json:"name"`
	ProductNumber         string           `gorm:"column:product_number;type:varchar(25);not null;uniqueIndex" json:"product_number"`
	MakeFlag              bool             `gorm:"column:make_flag;not null;default:true" json:"make_flag"`
	FinishedGoodsFlag     bool             `gorm:"column:finished_goods_flag;not null;default:true" json:"finished_goods_flag"`
	Color                 *string          `gorm:"column:color;type:varchar(15)" json:"color"`
	SafetyStockLevel      int16            `gorm:"column:safety_stock_level;not null" json:"safety_stock_level"`
	ReorderPoint          int16            `gorm:"column:reorder_point;not null" json:"reorder_point"`
	StandardCost          decimal.Decimal  `gorm:"column:standard_cost;type:decimal(19,4);not null" json:"standard_cost"`
	ListPrice             decimal.Decimal  `gorm:"column:list_price;type:decimal(19,4);not null" json:"list_price"`
	Size                  *string          `gorm:"column:size;type:varchar(5)" json:"size"`
	SizeUnitMeasureCode   *string          `gorm:"column:size_unit_measure_code;type:char(3)" json:"size_unit_measure_code"`
	WeightUnitMeasureCode *string          `gorm:"column:weight_unit_measure_code;type:char(3)" json:"weight_unit_measure_code"`
	Weight                *decimal.Decimal `gorm:"column:weight;type:decimal(8,2)" json:"weight"`
	DaysToManufacture     int              `gorm:"column:days_to_manufacture;not null" json:"days_to_manufacture"`
	ProductLine           *string          `gorm:"column:product_line;type:char(2)" json:"product_line"`
	Class                 *string          `gorm:"column:class;type:char(2)" json:"class"`
	Style                 *string          `gorm:"column:style;type:char(2)" json:"style"`
	ProductSubcategoryID  *int             `gorm:"column:product_subcategory_id" json:"product_subcategory_id"`
	ProductModelID        *int             `gorm:"column:product_model_id" json:"product_model_id"`
	SellStartDate         time.Time        `gorm:"column:sell_start_date;not null" json:"sell_start_date"`
	SellEndDate           *time.Time       `gorm:"column:sell_end_date" json:"sell_end_date"`
	DiscontinuedDate      *time.Time       `gorm:"column:discontinued_date" json:"discontinued_date"`
	Rowguid               uuid.UUID        `gorm:"column:rowguid;type:uuid;not null" json:"rowguid"`
	ModifiedDate          time.Time        `gorm:"column:modified_date;not null" json:"modified_date"`

	ProductModel       *ProductModel       `gorm:"foreignKey:ProductModelID;references:ProductModelID" json:"product_model,omitempty"`
	ProductSubcategory *ProductSubcategory `gorm:"foreignKey:ProductSubcategoryID;references:ProductSubcategoryID" json:"product_subcategory,omitempty"`
	SizeUnitMeasure    *UnitMeasure        `gorm:"foreignKey:SizeUnitMeasureCode;references:UnitMeasureCode" json:"size_unit_measure,omitempty"`
	WeightUnitMeasure  *UnitMeasure        `gorm:"foreignKey:WeightUnitMeasureCode;references:UnitMeasureCode" json:"weight_unit_measure,omitempty"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "production.product"
}

// ProductModel is a lookup row referenced by products
type ProductModel struct {
	ProductModelID int    `gorm:"column:product_model_id;primaryKey;autoIncrement" json:"product_model_id"`
	Name           string `gorm:"column:name;type:varchar(50);not null" json:"name"`
}

func (ProductModel) TableName() string {
	return "production.product_model"
}

// ProductSubcategory is a lookup row referenced by products
type ProductSubcategory struct {
	ProductSubcategoryID int    `gorm:"column:product_subcategory_id;primaryKey;autoIncrement" json:"product_subcategory_id"`
	ProductCategoryID    int    `gorm:"column:product_category_id;not null" json:"product_category_id"`
	Name                 string `gorm:"column:name;type:varchar(50);not null" json:"name"`
}

func (ProductSubcategory) TableName() string {
	return "production.product_subcategory"
}

// UnitMeasure is a lookup row for size/weight units
type UnitMeasure struct {
	UnitMeasureCode string `gorm:"column:unit_measure_code;type:char(3);primaryKey" json:"unit_measure_code"`
	Name            string `gorm:"column:name;type:varchar(50);not null" json:"name"`
}

func (UnitMeasure) TableName() string {
	return "production.unit_measure"
}
