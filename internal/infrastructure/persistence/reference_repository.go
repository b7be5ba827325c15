package persistence

import (
	"context"

	"github.com/awerp/backend/internal/domain/reference"
	"github.com/awerp/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormReferenceRepository resolves form option lists with raw projections.
// Every query selects two columns, value and text, scanned straight into
// shared.SelectOption.
type GormReferenceRepository struct {
	db *gorm.DB
}

// NewGormReferenceRepository creates a new GormReferenceRepository
func NewGormReferenceRepository(db *gorm.DB) *GormReferenceRepository {
	return &GormReferenceRepository{db: db}
}

func (r *GormReferenceRepository) options(ctx context.Context, sql string) ([]shared.SelectOption, error) {
	var opts []shared.SelectOption
	if err := r.db.WithContext(ctx).Raw(sql).Scan(&opts).Error; err != nil {
		return nil, err
	}
	return opts, nil
}

// Employees lists employees by name
func (r *GormReferenceRepository) Employees(ctx context.Context) ([]shared.SelectOption, error) {
	return r.options(ctx, `
		SELECT e.business_entity_id::text AS value,
		       p.first_name || ' ' || p.last_name AS text
		FROM human_resources.employee e
		JOIN person.person p ON p.business_entity_id = e.business_entity_id
		ORDER BY p.last_name, p.first_name`)
}

// Locations lists inventory locations by name
func (r *GormReferenceRepository) Locations(ctx context.Context) ([]shared.SelectOption, error) {
	return r.options(ctx, `
		SELECT location_id::text AS value, name AS text
		FROM production.location
		ORDER BY name`)
}

// Products lists products by name
func (r *GormReferenceRepository) Products(ctx context.Context) ([]shared.SelectOption, error) {
	return r.options(ctx, `
		SELECT product_id::text AS value, name AS text
		FROM production.product
		ORDER BY name`)
}

// ProductModels lists product models by name
func (r *GormReferenceRepository) ProductModels(ctx context.Context) ([]shared.SelectOption, error) {
	return r.options(ctx, `
		SELECT product_model_id::text AS value, name AS text
		FROM production.product_model
		ORDER BY name`)
}

// ProductSubcategories lists product subcategories by name
func (r *GormReferenceRepository) ProductSubcategories(ctx context.Context) ([]shared.SelectOption, error) {
	return r.options(ctx, `
		SELECT product_subcategory_id::text AS value, name AS text
		FROM production.product_subcategory
		ORDER BY name`)
}

// UnitMeasures lists units of measure by name
func (r *GormReferenceRepository) UnitMeasures(ctx context.Context) ([]shared.SelectOption, error) {
	return r.options(ctx, `
		SELECT unit_measure_code AS value, name AS text
		FROM production.unit_measure
		ORDER BY name`)
}

// Addresses lists addresses by first line
func (r *GormReferenceRepository) Addresses(ctx context.Context) ([]shared.SelectOption, error) {
	return r.options(ctx, `
		SELECT address_id::text AS value, address_line1 AS text
		FROM person.address
		ORDER BY address_line1`)
}

// Customers lists customers by account number
func (r *GormReferenceRepository) Customers(ctx context.Context) ([]shared.SelectOption, error) {
	return r.options(ctx, `
		SELECT customer_id::text AS value, account_number AS text
		FROM sales.customer
		ORDER BY account_number`)
}

// SalesPeople lists sales people by id
func (r *GormReferenceRepository) SalesPeople(ctx context.Context) ([]shared.SelectOption, error) {
	return r.options(ctx, `
		SELECT sp.business_entity_id::text AS value,
		       p.first_name || ' ' || p.last_name AS text
		FROM sales.sales_person sp
		JOIN person.person p ON p.business_entity_id = sp.business_entity_id
		ORDER BY p.last_name, p.first_name`)
}

// ShipMethods lists shipping methods by name
func (r *GormReferenceRepository) ShipMethods(ctx context.Context) ([]shared.SelectOption, error) {
	return r.options(ctx, `
		SELECT ship_method_id::text AS value, name AS text
		FROM purchasing.ship_method
		ORDER BY name`)
}

// Territories lists sales territories by name
func (r *GormReferenceRepository) Territories(ctx context.Context) ([]shared.SelectOption, error) {
	return r.options(ctx, `
		SELECT territory_id::text AS value, name AS text
		FROM sales.sales_territory
		ORDER BY name`)
}

// CreditCards lists credit cards by masked number
func (r *GormReferenceRepository) CreditCards(ctx context.Context) ([]shared.SelectOption, error) {
	return r.options(ctx, `
		SELECT credit_card_id::text AS value,
		       card_type || ' ****' || right(card_number, 4) AS text
		FROM sales.credit_card
		ORDER BY credit_card_id`)
}

// CurrencyRates lists currency rates by currency pair and date
func (r *GormReferenceRepository) CurrencyRates(ctx context.Context) ([]shared.SelectOption, error) {
	return r.options(ctx, `
		SELECT currency_rate_id::text AS value,
		       from_currency_code || '/' || to_currency_code || ' ' || currency_rate_date::date AS text
		FROM sales.currency_rate
		ORDER BY currency_rate_date DESC`)
}

// Ensure GormReferenceRepository implements reference.Repository
var _ reference.Repository = (*GormReferenceRepository)(nil)
