package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order status values carried in sales.sales_order_header.status
const (
	StatusInProcess int16 = iota + 1
	StatusApproved
	StatusBackordered
	StatusRejected
	StatusShipped
	StatusCancelled
)

// SalesOrderHeader mirrors one row of sales.sales_order_header. Created and
// updated directly; deletion is a hard delete with no cascade guarantee.
type SalesOrderHeader struct {
	SalesOrderID           int             `gorm:"column:sales_order_id;primaryKey;autoIncrement" json:"sales_order_id"`
	RevisionNumber         int16           `gorm:"column:revision_number;not null;default:0" json:"revision_number"`
	OrderDate              time.Time       `gorm:"column:order_date;not null" json:"order_date"`
	DueDate                time.Time       `gorm:"column:due_date;not null" json:"due_date"`
	ShipDate               *time.Time      `gorm:"column:ship_date" json:"ship_date"`
	Status                 int16           `gorm:"column:status;not null;default:1" json:"status"`
	OnlineOrderFlag        bool            `gorm:"column:online_order_flag;not null;default:true" json:"online_order_flag"`
	SalesOrderNumber       string          `gorm:"column:sales_order_number;type:varchar(25);not null" json:"sales_order_number"`
	PurchaseOrderNumber    *string         `gorm:"column:purchase_order_number;type:varchar(25)" json:"purchase_order_number"`
	AccountNumber          *string         `gorm:"column:account_number;type:varchar(15)" json:"account_number"`
	CustomerID             int             `gorm:"column:customer_id;not null" json:"customer_id"`
	SalesPersonID          *int            `gorm:"column:sales_person_id" json:"sales_person_id"`
	TerritoryID            *int            `gorm:"column:territory_id" json:"territory_id"`
	BillToAddressID        int             `gorm:"column:bill_to_address_id;not null" json:"bill_to_address_id"`
	ShipToAddressID        int             `gorm:"column:ship_to_address_id;not null" json:"ship_to_address_id"`
	ShipMethodID           int             `gorm:"column:ship_method_id;not null" json:"ship_method_id"`
	CreditCardID           *int            `gorm:"column:credit_card_id" json:"credit_card_id"`
	CreditCardApprovalCode *string         `gorm:"column:credit_card_approval_code;type:varchar(15)" json:"credit_card_approval_code"`
	CurrencyRateID         *int            `gorm:"column:currency_rate_id" json:"currency_rate_id"`
	SubTotal               decimal.Decimal `gorm:"column:sub_total;type:decimal(19,4);not null" json:"sub_total"`
	TaxAmt                 decimal.Decimal `gorm:"column:tax_amt;type:decimal(19,4);not null" json:"tax_amt"`
	Freight                decimal.Decimal `gorm:"column:freight;type:decimal(19,4);not null" json:"freight"`
	TotalDue               decimal.Decimal `gorm:"column:total_due;type:decimal(19,4);not null" json:"total_due"`
	Comment                *string         `gorm:"column:comment;type:varchar(128)" json:"comment"`
	Rowguid                uuid.UUID       `gorm:"column:rowguid;type:uuid;not null" json:"rowguid"`
	ModifiedDate           time.Time       `gorm:"column:modified_date;not null" json:"modified_date"`

	Customer      *Customer       `gorm:"foreignKey:CustomerID;references:CustomerID" json:"customer,omitempty"`
	SalesPerson   *SalesPerson    `gorm:"foreignKey:SalesPersonID;references:BusinessEntityID" json:"sales_person,omitempty"`
	Territory     *SalesTerritory `gorm:"foreignKey:TerritoryID;references:TerritoryID" json:"territory,omitempty"`
	BillToAddress *Address        `gorm:"foreignKey:BillToAddressID;references:AddressID" json:"bill_to_address,omitempty"`
	ShipToAddress *Address        `gorm:"foreignKey:ShipToAddressID;references:AddressID" json:"ship_to_address,omitempty"`
	ShipMethod    *ShipMethod     `gorm:"foreignKey:ShipMethodID;references:ShipMethodID" json:"ship_method,omitempty"`
	CreditCard    *CreditCard     `gorm:"foreignKey:CreditCardID;references:CreditCardID" json:"credit_card,omitempty"`
	CurrencyRate  *CurrencyRate   `gorm:"foreignKey:CurrencyRateID;references:CurrencyRateID" json:"currency_rate,omitempty"`
}

// TableName returns the table name for GORM
func (SalesOrderHeader) TableName() string {
	return "sales.sales_order_header"
}

// Customer is the sales customer lookup
type Customer struct {
	CustomerID    int     `gorm:"column:customer_id;primaryKey;autoIncrement" json:"customer_id"`
	AccountNumber *string `gorm:"column:account_number;type:varchar(10)" json:"account_number"`
}

func (Customer) TableName() string { return "sales.customer" }

// SalesPerson references hr business entities by id
type SalesPerson struct {
	BusinessEntityID int `gorm:"column:business_entity_id;primaryKey" json:"business_entity_id"`
}

func (SalesPerson) TableName() string { return "sales.sales_person" }

// SalesTerritory is the sales territory lookup
type SalesTerritory struct {
	TerritoryID int    `gorm:"column:territory_id;primaryKey;autoIncrement" json:"territory_id"`
	Name        string `gorm:"column:name;type:varchar(50);not null" json:"name"`
}

func (SalesTerritory) TableName() string { return "sales.sales_territory" }

// Address is the person address lookup
type Address struct {
	AddressID    int    `gorm:"column:address_id;primaryKey;autoIncrement" json:"address_id"`
	AddressLine1 string `gorm:"column:address_line1;type:varchar(60);not null" json:"address_line1"`
	City         string `gorm:"column:city;type:varchar(30);not null" json:"city"`
}

func (Address) TableName() string { return "person.address" }

// ShipMethod is the shipping method lookup
type ShipMethod struct {
	ShipMethodID int    `gorm:"column:ship_method_id;primaryKey;autoIncrement" json:"ship_method_id"`
	Name         string `gorm:"column:name;type:varchar(50);not null" json:"name"`
}

func (ShipMethod) TableName() string { return "purchasing.ship_method" }

// CreditCard is the stored payment card lookup
type CreditCard struct {
	CreditCardID int    `gorm:"column:credit_card_id;primaryKey;autoIncrement" json:"credit_card_id"`
	CardType     string `gorm:"column:card_type;type:varchar(50);not null" json:"card_type"`
}

func (CreditCard) TableName() string { return "sales.credit_card" }

// CurrencyRate is the exchange rate lookup
type CurrencyRate struct {
	CurrencyRateID int             `gorm:"column:currency_rate_id;primaryKey;autoIncrement" json:"currency_rate_id"`
	AverageRate    decimal.Decimal `gorm:"column:average_rate;type:decimal(19,4);not null" json:"average_rate"`
}

func (CurrencyRate) TableName() string { return "sales.currency_rate" }
