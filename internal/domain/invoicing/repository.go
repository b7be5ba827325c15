package invoicing

import "context"

// OpGenerateInvoice(sales_order_id) creates the invoice and its lines for a
// sales order. The operation refuses to create a second invoice for the same
// order; callers treat the resulting conflict as "already generated".
const OpGenerateInvoice = "igs.generate_invoice"

// Repository reads generated invoices. There is no write path: generation
// happens inside the database.
type Repository interface {
	FindBySalesOrderID(ctx context.Context, salesOrderID int) (*Invoice, error)
	ExistsForSalesOrder(ctx context.Context, salesOrderID int) (bool, error)
}
