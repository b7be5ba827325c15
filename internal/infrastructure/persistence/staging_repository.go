package persistence

import (
	"context"

	"github.com/awerp/backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// GormStagingRepository implements catalog.StagingRepository. The staging
// table is keyless, so rows are written with a raw INSERT rather than a
// mapped model.
type GormStagingRepository struct {
	db *gorm.DB
}

// NewGormStagingRepository creates a new GormStagingRepository
func NewGormStagingRepository(db *gorm.DB) *GormStagingRepository {
	return &GormStagingRepository{db: db}
}

// Insert writes one pending product creation into prs.new_product_staging
func (r *GormStagingRepository) Insert(ctx context.Context, row *catalog.NewProductStaging) error {
	const sql = `INSERT INTO prs.new_product_staging (
		name, product_number, make_flag, finished_goods_flag, color,
		safety_stock_level, reorder_point, standard_cost, list_price,
		size, size_unit_measure_code, weight_unit_measure_code, weight,
		days_to_manufacture, product_line, class, style,
		product_subcategory_id, product_model_id,
		sell_start_date, sell_end_date, discontinued_date
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	return r.db.WithContext(ctx).Exec(sql,
		row.Name, row.ProductNumber, row.MakeFlag, row.FinishedGoodsFlag, row.Color,
		row.SafetyStockLevel, row.ReorderPoint, row.StandardCost, row.ListPrice,
		row.Size, row.SizeUnitMeasureCode, row.WeightUnitMeasureCode, row.Weight,
		row.DaysToManufacture, row.ProductLine, row.Class, row.Style,
		row.ProductSubcategoryID, row.ProductModelID,
		row.SellStartDate, row.SellEndDate, row.DiscontinuedDate,
	).Error
}

// Ensure GormStagingRepository implements StagingRepository
var _ catalog.StagingRepository = (*GormStagingRepository)(nil)
