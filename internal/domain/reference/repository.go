package reference

import (
	"context"

	"github.com/awerp/backend/internal/domain/shared"
)

// Repository resolves the selectable-option lists the mutation forms bind.
// Options are recomputed from current repository state on every form render
// and on every rejected submission, matching the legacy behaviour.
type Repository interface {
	Employees(ctx context.Context) ([]shared.SelectOption, error)
	Locations(ctx context.Context) ([]shared.SelectOption, error)
	Products(ctx context.Context) ([]shared.SelectOption, error)
	ProductModels(ctx context.Context) ([]shared.SelectOption, error)
	ProductSubcategories(ctx context.Context) ([]shared.SelectOption, error)
	UnitMeasures(ctx context.Context) ([]shared.SelectOption, error)
	Addresses(ctx context.Context) ([]shared.SelectOption, error)
	Customers(ctx context.Context) ([]shared.SelectOption, error)
	SalesPeople(ctx context.Context) ([]shared.SelectOption, error)
	ShipMethods(ctx context.Context) ([]shared.SelectOption, error)
	Territories(ctx context.Context) ([]shared.SelectOption, error)
	CreditCards(ctx context.Context) ([]shared.SelectOption, error)
	CurrencyRates(ctx context.Context) ([]shared.SelectOption, error)
}
