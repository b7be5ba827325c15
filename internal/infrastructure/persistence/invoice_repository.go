package persistence

import (
	"context"
	"errors"

	"github.com/awerp/backend/internal/domain/invoicing"
	"github.com/awerp/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements invoicing.Repository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindBySalesOrderID finds the invoice generated for a sales order, lines included
func (r *GormInvoiceRepository) FindBySalesOrderID(ctx context.Context, salesOrderID int) (*invoicing.Invoice, error) {
	var invoice invoicing.Invoice
	if err := r.db.WithContext(ctx).
		Preload("InvoiceLines").
		First(&invoice, "sales_order_id = ?", salesOrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// ExistsForSalesOrder checks if an invoice already exists for a sales order
func (r *GormInvoiceRepository) ExistsForSalesOrder(ctx context.Context, salesOrderID int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&invoicing.Invoice{}).
		Where("sales_order_id = ?", salesOrderID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormInvoiceRepository implements invoicing.Repository
var _ invoicing.Repository = (*GormInvoiceRepository)(nil)
