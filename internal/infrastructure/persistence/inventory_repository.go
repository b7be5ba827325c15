package persistence

import (
	"context"
	"errors"

	"github.com/awerp/backend/internal/domain/inventory"
	"github.com/awerp/backend/internal/domain/shared"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Relations inventory rows may preload
var inventoryIncludes = map[string]bool{
	inventory.IncludeProduct:  true,
	inventory.IncludeLocation: true,
}

// GormInventoryRepository implements inventory.Repository using GORM
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GormInventoryRepository
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// FindAll returns one page of inventory rows ordered and preloaded per the query
func (r *GormInventoryRepository) FindAll(ctx context.Context, q shared.ListQuery) ([]inventory.ProductInventory, error) {
	var rows []inventory.ProductInventory
	query := r.db.WithContext(ctx).Model(&inventory.ProductInventory{})
	query = applyIncludes(query, q.Includes, inventoryIncludes)
	query = applyListQuery(query, q, ProductInventorySortFields, "product_id")

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count counts all inventory rows
func (r *GormInventoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&inventory.ProductInventory{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindByKey finds an inventory row by its composite key
func (r *GormInventoryRepository) FindByKey(ctx context.Context, productID int, locationID int16, includes ...string) (*inventory.ProductInventory, error) {
	var row inventory.ProductInventory
	query := applyIncludes(r.db.WithContext(ctx), includes, inventoryIncludes)
	if err := query.First(&row, "product_id = ? AND location_id = ?", productID, locationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// Create inserts a new shelf/bin assignment. A duplicate composite key maps
// to shared.ErrAlreadyExists.
func (r *GormInventoryRepository) Create(ctx context.Context, inv *inventory.ProductInventory) error {
	if err := r.db.WithContext(ctx).Create(inv).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Ensure GormInventoryRepository implements inventory.Repository
var _ inventory.Repository = (*GormInventoryRepository)(nil)

// GormStockChangeLogRepository implements inventory.ChangeLogRepository
type GormStockChangeLogRepository struct {
	db *gorm.DB
}

// NewGormStockChangeLogRepository creates a new GormStockChangeLogRepository
func NewGormStockChangeLogRepository(db *gorm.DB) *GormStockChangeLogRepository {
	return &GormStockChangeLogRepository{db: db}
}

// FindAll returns one page of stock change log rows, newest first by default
func (r *GormStockChangeLogRepository) FindAll(ctx context.Context, q shared.ListQuery) ([]inventory.StockChangeLog, error) {
	var rows []inventory.StockChangeLog
	query := r.db.WithContext(ctx).Model(&inventory.StockChangeLog{})
	query = applyListQuery(query, q, StockChangeLogSortFields, "log_id")

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count counts all stock change log rows
func (r *GormStockChangeLogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&inventory.StockChangeLog{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormStockChangeLogRepository implements inventory.ChangeLogRepository
var _ inventory.ChangeLogRepository = (*GormStockChangeLogRepository)(nil)
