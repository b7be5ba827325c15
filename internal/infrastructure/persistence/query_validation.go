package persistence

import (
	"strings"

	"github.com/awerp/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "ASC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "DESC" {
		return "DESC"
	}
	return "ASC"
}

// ValidateSortField validates the sort field against a whitelist of allowed
// fields. Returns the defaultField if the input is empty or not whitelisted.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// applyListQuery applies ordering and windowing from a ListQuery. The sort
// field is validated against the whitelist before it reaches the SQL text.
func applyListQuery(query *gorm.DB, q shared.ListQuery, allowedFields map[string]bool, defaultField string) *gorm.DB {
	field := ValidateSortField(q.OrderBy, allowedFields, defaultField)
	query = query.Order(field + " " + ValidateSortOrder(q.OrderDir))

	if q.Limit > 0 {
		query = query.Offset(q.Offset).Limit(q.Limit)
	}
	return query
}

// applyIncludes preloads the requested relations, silently dropping names the
// whitelist does not know.
func applyIncludes(query *gorm.DB, includes []string, allowed map[string]bool) *gorm.DB {
	for _, inc := range includes {
		if allowed[inc] {
			query = query.Preload(inc)
		}
	}
	return query
}

// ProductSortFields contains allowed sort fields for products
var ProductSortFields = map[string]bool{
	"product_id":     true,
	"name":           true,
	"product_number": true,
	"list_price":     true,
	"standard_cost":  true,
	"modified_date":  true,
}

// ProductInventorySortFields contains allowed sort fields for product inventory
var ProductInventorySortFields = map[string]bool{
	"product_id":    true,
	"location_id":   true,
	"quantity":      true,
	"shelf":         true,
	"bin":           true,
	"modified_date": true,
}

// StockChangeLogSortFields contains allowed sort fields for the stock change log
var StockChangeLogSortFields = map[string]bool{
	"log_id":       true,
	"product_id":   true,
	"location_id":  true,
	"new_quantity": true,
	"change_date":  true,
}

// SalesOrderSortFields contains allowed sort fields for sales order headers
var SalesOrderSortFields = map[string]bool{
	"sales_order_id": true,
	"order_date":     true,
	"due_date":       true,
	"ship_date":      true,
	"status":         true,
	"customer_id":    true,
	"total_due":      true,
	"modified_date":  true,
}
