package inventory

import (
	"context"

	"github.com/awerp/backend/internal/domain/shared"
)

// Server-side operations owned by the materials-management schema. Argument
// order is fixed and positional.
const (
	// OpUpdateQuantity(product_id, location_id, new_quantity)
	OpUpdateQuantity = "mms.update_inventory_quantity"
	// OpReplenish(replenish_qty) tops up every row below its reorder point
	OpReplenish = "mms.replenish_inventory"
)

// Relation names inventory rows may eager load
const (
	IncludeProduct  = "Product"
	IncludeLocation = "Location"
)

// DefaultIncludes matches the legacy inventory listing's eager-load set.
func DefaultIncludes() []string {
	return []string{IncludeProduct, IncludeLocation}
}

// Repository provides typed access to product inventory rows. Create inserts
// a new shelf/bin assignment; Quantity changes go through the procedure
// gateway, not here.
type Repository interface {
	FindAll(ctx context.Context, q shared.ListQuery) ([]ProductInventory, error)
	Count(ctx context.Context) (int64, error)
	FindByKey(ctx context.Context, productID int, locationID int16, includes ...string) (*ProductInventory, error)
	Create(ctx context.Context, inv *ProductInventory) error
}

// ChangeLogRepository reads the audit trail the stored operations write.
type ChangeLogRepository interface {
	FindAll(ctx context.Context, q shared.ListQuery) ([]StockChangeLog, error)
	Count(ctx context.Context) (int64, error)
}
