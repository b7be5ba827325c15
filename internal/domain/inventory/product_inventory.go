package inventory

import (
	"time"

	"github.com/awerp/backend/internal/domain/catalog"
	"github.com/google/uuid"
)

// ProductInventory mirrors one row of production.product_inventory, keyed by
// (product_id, location_id).
//
// Quantity is never written through the repository: the stored operations
// mms.update_inventory_quantity and mms.replenish_inventory own it, so the
// non-negative stock invariant and the audit trail stay server-side.
type ProductInventory struct {
	ProductID    int       `gorm:"column:product_id;primaryKey" json:"product_id"`
	LocationID   int16     `gorm:"column:location_id;primaryKey" json:"location_id"`
	Shelf        string    `gorm:"column:shelf;type:varchar(10);not null" json:"shelf"`
	Bin          int16     `gorm:"column:bin;not null" json:"bin"`
	Quantity     int16     `gorm:"column:quantity;not null" json:"quantity"`
	Rowguid      uuid.UUID `gorm:"column:rowguid;type:uuid;not null" json:"rowguid"`
	ModifiedDate time.Time `gorm:"column:modified_date;not null" json:"modified_date"`

	Product  *catalog.Product `gorm:"foreignKey:ProductID;references:ProductID" json:"product,omitempty"`
	Location *Location        `gorm:"foreignKey:LocationID;references:LocationID" json:"location,omitempty"`
}

// TableName returns the table name for GORM
func (ProductInventory) TableName() string {
	return "production.product_inventory"
}

// Location is the warehouse location lookup
type Location struct {
	LocationID int16  `gorm:"column:location_id;primaryKey;autoIncrement" json:"location_id"`
	Name       string `gorm:"column:name;type:varchar(50);not null" json:"name"`
}

func (Location) TableName() string {
	return "production.location"
}
