package catalog

import (
	"context"

	"github.com/awerp/backend/internal/domain/shared"
)

// Relation names products may eager load
const (
	IncludeProductModel       = "ProductModel"
	IncludeProductSubcategory = "ProductSubcategory"
	IncludeSizeUnitMeasure    = "SizeUnitMeasure"
	IncludeWeightUnitMeasure  = "WeightUnitMeasure"
)

// DefaultIncludes is the eager-load set the product listing and detail pages
// use, matching the legacy views.
func DefaultIncludes() []string {
	return []string{
		IncludeProductModel,
		IncludeProductSubcategory,
		IncludeSizeUnitMeasure,
		IncludeWeightUnitMeasure,
	}
}

// ProductRepository provides typed access to persisted products.
//
// Update is optimistic: it matches the modified_date the caller read, and
// reports shared.ErrConcurrencyConflict when another writer got there first.
type ProductRepository interface {
	FindAll(ctx context.Context, q shared.ListQuery) ([]Product, error)
	Count(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id int, includes ...string) (*Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
}

// StagingRepository inserts pending product creations. Staging rows are
// write-only from this layer; promotion into production.product happens
// out-of-band.
type StagingRepository interface {
	Insert(ctx context.Context, row *NewProductStaging) error
}
