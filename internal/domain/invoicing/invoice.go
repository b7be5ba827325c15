package invoicing

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice mirrors one row of igs.invoice. Invoices are generated by the
// server-side operation igs.generate_invoice and are read-only from this
// layer; at most one invoice exists per sales order (unique index on
// sales_order_id).
type Invoice struct {
	InvoiceID    int             `gorm:"column:invoice_id;primaryKey;autoIncrement" json:"invoice_id"`
	SalesOrderID int             `gorm:"column:sales_order_id;not null;uniqueIndex" json:"sales_order_id"`
	CustomerID   int             `gorm:"column:customer_id;not null" json:"customer_id"`
	InvoiceDate  *time.Time      `gorm:"column:invoice_date" json:"invoice_date"`
	TotalAmount  decimal.Decimal `gorm:"column:total_amount;type:decimal(19,4)" json:"total_amount"`
	CreatedAt    *time.Time      `gorm:"column:created_at" json:"created_at"`

	InvoiceLines []InvoiceLine `gorm:"foreignKey:InvoiceID;references:InvoiceID" json:"invoice_lines"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "igs.invoice"
}

// InvoiceLine is one line of a generated invoice
type InvoiceLine struct {
	InvoiceLineID int             `gorm:"column:invoice_line_id;primaryKey;autoIncrement" json:"invoice_line_id"`
	InvoiceID     int             `gorm:"column:invoice_id;not null" json:"invoice_id"`
	ProductID     *int            `gorm:"column:product_id" json:"product_id"`
	Quantity      *int            `gorm:"column:quantity" json:"quantity"`
	UnitPrice     decimal.Decimal `gorm:"column:unit_price;type:decimal(19,4)" json:"unit_price"`
	LineTotal     decimal.Decimal `gorm:"column:line_total;type:decimal(19,4)" json:"line_total"`
}

// TableName returns the table name for GORM
func (InvoiceLine) TableName() string {
	return "igs.invoice_line"
}
