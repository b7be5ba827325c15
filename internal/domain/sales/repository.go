package sales

import (
	"context"

	"github.com/awerp/backend/internal/domain/shared"
)

// Relation names sales orders may eager load
const (
	IncludeCustomer      = "Customer"
	IncludeSalesPerson   = "SalesPerson"
	IncludeTerritory     = "Territory"
	IncludeBillToAddress = "BillToAddress"
	IncludeShipToAddress = "ShipToAddress"
	IncludeShipMethod    = "ShipMethod"
	IncludeCreditCard    = "CreditCard"
	IncludeCurrencyRate  = "CurrencyRate"
)

// DefaultIncludes matches the legacy listing/detail eager-load set.
func DefaultIncludes() []string {
	return []string{
		IncludeCustomer,
		IncludeSalesPerson,
		IncludeTerritory,
		IncludeBillToAddress,
		IncludeShipToAddress,
		IncludeShipMethod,
		IncludeCreditCard,
		IncludeCurrencyRate,
	}
}

// Repository provides typed access to sales order headers. Update is
// optimistic on modified_date; Delete is a hard delete.
type Repository interface {
	FindAll(ctx context.Context, q shared.ListQuery) ([]SalesOrderHeader, error)
	Count(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id int, includes ...string) (*SalesOrderHeader, error)
	Create(ctx context.Context, order *SalesOrderHeader) error
	Update(ctx context.Context, order *SalesOrderHeader) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
}
