package inventory

import "time"

// StockChangeLog is the audit row mms.update_inventory_quantity writes on
// every quantity change. Read-only from this layer.
type StockChangeLog struct {
	LogID       int       `gorm:"column:log_id;primaryKey;autoIncrement" json:"log_id"`
	ProductID   int       `gorm:"column:product_id;not null" json:"product_id"`
	LocationID  int16     `gorm:"column:location_id;not null" json:"location_id"`
	OldQuantity *int16    `gorm:"column:old_quantity" json:"old_quantity"`
	NewQuantity *int16    `gorm:"column:new_quantity" json:"new_quantity"`
	ChangeDate  time.Time `gorm:"column:change_date" json:"change_date"`
	ChangedBy   string    `gorm:"column:changed_by;type:varchar(128);not null" json:"changed_by"`
}

// TableName returns the table name for GORM
func (StockChangeLog) TableName() string {
	return "mms.stock_change_log"
}
