package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/awerp/backend/internal/domain/sales"
	"github.com/awerp/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// Relations sales orders may preload
var salesOrderIncludes = map[string]bool{
	sales.IncludeCustomer:      true,
	sales.IncludeSalesPerson:   true,
	sales.IncludeTerritory:     true,
	sales.IncludeBillToAddress: true,
	sales.IncludeShipToAddress: true,
	sales.IncludeShipMethod:    true,
	sales.IncludeCreditCard:    true,
	sales.IncludeCurrencyRate:  true,
}

// GormSalesOrderRepository implements sales.Repository using GORM
type GormSalesOrderRepository struct {
	db *gorm.DB
}

// NewGormSalesOrderRepository creates a new GormSalesOrderRepository
func NewGormSalesOrderRepository(db *gorm.DB) *GormSalesOrderRepository {
	return &GormSalesOrderRepository{db: db}
}

// FindAll returns one page of sales order headers ordered and preloaded per the query
func (r *GormSalesOrderRepository) FindAll(ctx context.Context, q shared.ListQuery) ([]sales.SalesOrderHeader, error) {
	var orders []sales.SalesOrderHeader
	query := r.db.WithContext(ctx).Model(&sales.SalesOrderHeader{})
	query = applyIncludes(query, q.Includes, salesOrderIncludes)
	query = applyListQuery(query, q, SalesOrderSortFields, "sales_order_id")

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Count counts all sales order headers
func (r *GormSalesOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&sales.SalesOrderHeader{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindByID finds a sales order header by its ID
func (r *GormSalesOrderRepository) FindByID(ctx context.Context, id int, includes ...string) (*sales.SalesOrderHeader, error) {
	var order sales.SalesOrderHeader
	query := applyIncludes(r.db.WithContext(ctx), includes, salesOrderIncludes)
	if err := query.First(&order, "sales_order_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// Create inserts a new sales order header
func (r *GormSalesOrderRepository) Create(ctx context.Context, order *sales.SalesOrderHeader) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// Update writes all editable columns, matching the modified_date the caller
// read. Zero rows affected means the row vanished or another writer stamped
// it first.
func (r *GormSalesOrderRepository) Update(ctx context.Context, order *sales.SalesOrderHeader) error {
	readStamp := order.ModifiedDate
	order.ModifiedDate = time.Now().UTC()

	result := r.db.WithContext(ctx).
		Model(&sales.SalesOrderHeader{}).
		Where("sales_order_id = ? AND modified_date = ?", order.SalesOrderID, readStamp).
		Select("*").
		Omit("sales_order_id", "rowguid").
		Updates(order)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		exists, err := r.Exists(ctx, order.SalesOrderID)
		if err != nil {
			return err
		}
		if !exists {
			return shared.ErrNotFound
		}
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Delete deletes a sales order header
func (r *GormSalesOrderRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&sales.SalesOrderHeader{}, "sales_order_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Exists checks if a sales order with the given ID exists
func (r *GormSalesOrderRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&sales.SalesOrderHeader{}).
		Where("sales_order_id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormSalesOrderRepository implements sales.Repository
var _ sales.Repository = (*GormSalesOrderRepository)(nil)
