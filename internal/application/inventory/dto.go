package inventory

import (
	"github.com/awerp/backend/internal/domain/inventory"
	"github.com/awerp/backend/internal/domain/shared"
)

// InventoryFormOptions carries the option lists the inventory forms bind
type InventoryFormOptions struct {
	Products  []shared.SelectOption `json:"products"`
	Locations []shared.SelectOption `json:"locations"`
}

// CreateInventoryRequest assigns a product to a shelf/bin at a location.
// Quantity starts at zero; stock changes go through the quantity operation.
type CreateInventoryRequest struct {
	ProductID  int    `json:"product_id" binding:"required,gt=0"`
	LocationID int16  `json:"location_id" binding:"required,gt=0"`
	Shelf      string `json:"shelf" binding:"required,max=10"`
	Bin        int16  `json:"bin" binding:"gte=0,lte=100"`
}

func (r CreateInventoryRequest) toEntity() *inventory.ProductInventory {
	return &inventory.ProductInventory{
		ProductID:  r.ProductID,
		LocationID: r.LocationID,
		Shelf:      r.Shelf,
		Bin:        r.Bin,
	}
}

// UpdateQuantityRequest sets the absolute quantity for one inventory row
type UpdateQuantityRequest struct {
	ProductID   int   `json:"product_id" binding:"required,gt=0"`
	LocationID  int16 `json:"location_id" binding:"required,gt=0"`
	NewQuantity int16 `json:"new_quantity"`
}

// ReplenishRequest tops up every row sitting below its reorder point
type ReplenishRequest struct {
	Quantity int16 `json:"quantity" binding:"required,gt=0"`
}
