package sales

import (
	"time"

	"github.com/awerp/backend/internal/domain/sales"
	"github.com/awerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// SalesOrderFormOptions carries the option lists the order forms bind
type SalesOrderFormOptions struct {
	Customers     []shared.SelectOption `json:"customers"`
	SalesPeople   []shared.SelectOption `json:"sales_people"`
	Territories   []shared.SelectOption `json:"territories"`
	Addresses     []shared.SelectOption `json:"addresses"`
	ShipMethods   []shared.SelectOption `json:"ship_methods"`
	CreditCards   []shared.SelectOption `json:"credit_cards"`
	CurrencyRates []shared.SelectOption `json:"currency_rates"`
}

// SalesOrderForm is the edit form payload: the row as read plus the option lists
type SalesOrderForm struct {
	Order   *sales.SalesOrderHeader `json:"order"`
	Options SalesOrderFormOptions   `json:"options"`
}

// CreateSalesOrderRequest creates a new order header
type CreateSalesOrderRequest struct {
	RevisionNumber         int16           `json:"revision_number" binding:"gte=0"`
	OrderDate              time.Time       `json:"order_date" binding:"required"`
	DueDate                time.Time       `json:"due_date" binding:"required"`
	ShipDate               *time.Time      `json:"ship_date"`
	Status                 int16           `json:"status" binding:"required,gte=1,lte=6"`
	OnlineOrderFlag        bool            `json:"online_order_flag"`
	SalesOrderNumber       string          `json:"sales_order_number" binding:"required,max=25"`
	PurchaseOrderNumber    *string         `json:"purchase_order_number" binding:"omitempty,max=25"`
	AccountNumber          *string         `json:"account_number" binding:"omitempty,max=15"`
	CustomerID             int             `json:"customer_id" binding:"required,gt=0"`
	SalesPersonID          *int            `json:"sales_person_id"`
	TerritoryID            *int            `json:"territory_id"`
	BillToAddressID        int             `json:"bill_to_address_id" binding:"required,gt=0"`
	ShipToAddressID        int             `json:"ship_to_address_id" binding:"required,gt=0"`
	ShipMethodID           int             `json:"ship_method_id" binding:"required,gt=0"`
	CreditCardID           *int            `json:"credit_card_id"`
	CreditCardApprovalCode *string         `json:"credit_card_approval_code" binding:"omitempty,max=15"`
	CurrencyRateID         *int            `json:"currency_rate_id"`
	SubTotal               decimal.Decimal `json:"sub_total"`
	TaxAmt                 decimal.Decimal `json:"tax_amt"`
	Freight                decimal.Decimal `json:"freight"`
	TotalDue               decimal.Decimal `json:"total_due"`
	Comment                *string         `json:"comment" binding:"omitempty,max=128"`
}

func (r CreateSalesOrderRequest) toEntity() *sales.SalesOrderHeader {
	return &sales.SalesOrderHeader{
		RevisionNumber:         r.RevisionNumber,
		OrderDate:              r.OrderDate,
		DueDate:                r.DueDate,
		ShipDate:               r.ShipDate,
		Status:                 r.Status,
		OnlineOrderFlag:        r.OnlineOrderFlag,
		SalesOrderNumber:       r.SalesOrderNumber,
		PurchaseOrderNumber:    r.PurchaseOrderNumber,
		AccountNumber:          r.AccountNumber,
		CustomerID:             r.CustomerID,
		SalesPersonID:          r.SalesPersonID,
		TerritoryID:            r.TerritoryID,
		BillToAddressID:        r.BillToAddressID,
		ShipToAddressID:        r.ShipToAddressID,
		ShipMethodID:           r.ShipMethodID,
		CreditCardID:           r.CreditCardID,
		CreditCardApprovalCode: r.CreditCardApprovalCode,
		CurrencyRateID:         r.CurrencyRateID,
		SubTotal:               r.SubTotal,
		TaxAmt:                 r.TaxAmt,
		Freight:                r.Freight,
		TotalDue:               r.TotalDue,
		Comment:                r.Comment,
	}
}

// UpdateSalesOrderRequest carries the full editable column set plus the
// modified_date the caller read, which the optimistic update matches against.
type UpdateSalesOrderRequest struct {
	CreateSalesOrderRequest
	ModifiedDate time.Time `json:"modified_date" binding:"required"`
}

func (r UpdateSalesOrderRequest) apply(o *sales.SalesOrderHeader) {
	o.RevisionNumber = r.RevisionNumber
	o.OrderDate = r.OrderDate
	o.DueDate = r.DueDate
	o.ShipDate = r.ShipDate
	o.Status = r.Status
	o.OnlineOrderFlag = r.OnlineOrderFlag
	o.SalesOrderNumber = r.SalesOrderNumber
	o.PurchaseOrderNumber = r.PurchaseOrderNumber
	o.AccountNumber = r.AccountNumber
	o.CustomerID = r.CustomerID
	o.SalesPersonID = r.SalesPersonID
	o.TerritoryID = r.TerritoryID
	o.BillToAddressID = r.BillToAddressID
	o.ShipToAddressID = r.ShipToAddressID
	o.ShipMethodID = r.ShipMethodID
	o.CreditCardID = r.CreditCardID
	o.CreditCardApprovalCode = r.CreditCardApprovalCode
	o.CurrencyRateID = r.CurrencyRateID
	o.SubTotal = r.SubTotal
	o.TaxAmt = r.TaxAmt
	o.Freight = r.Freight
	o.TotalDue = r.TotalDue
	o.Comment = r.Comment
	o.ModifiedDate = r.ModifiedDate
}
