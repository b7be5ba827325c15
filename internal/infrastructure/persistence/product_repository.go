package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/awerp/backend/internal/domain/catalog"
	"github.com/awerp/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// Relations products may preload
var productIncludes = map[string]bool{
	catalog.IncludeProductModel:       true,
	catalog.IncludeProductSubcategory: true,
	catalog.IncludeSizeUnitMeasure:    true,
	catalog.IncludeWeightUnitMeasure:  true,
}

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindAll returns one page of products ordered and preloaded per the query
func (r *GormProductRepository) FindAll(ctx context.Context, q shared.ListQuery) ([]catalog.Product, error) {
	var products []catalog.Product
	query := r.db.WithContext(ctx).Model(&catalog.Product{})
	query = applyIncludes(query, q.Includes, productIncludes)
	query = applyListQuery(query, q, ProductSortFields, "product_id")

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Count counts all products
func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id int, includes ...string) (*catalog.Product, error) {
	var product catalog.Product
	query := applyIncludes(r.db.WithContext(ctx), includes, productIncludes)
	if err := query.First(&product, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Update writes all editable columns, matching the modified_date the caller
// read. Zero rows affected means the row vanished or another writer stamped
// it first.
func (r *GormProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	readStamp := product.ModifiedDate
	product.ModifiedDate = time.Now().UTC()

	result := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("product_id = ? AND modified_date = ?", product.ProductID, readStamp).
		Select("*").
		Omit("product_id", "rowguid").
		Updates(product)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		exists, err := r.Exists(ctx, product.ProductID)
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

// Delete deletes a product
func (r *GormProductRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Product{}, "product_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Exists checks if a product with the given ID exists
func (r *GormProductRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("product_id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormProductRepository implements ProductRepository
var _ catalog.ProductRepository = (*GormProductRepository)(nil)
