package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	Pending    OrderStatus = "Pending"
	Processing OrderStatus = "Processing"
	Shipped    OrderStatus = "Shipped"
	Delivered  OrderStatus = "Delivered"
	Cancelled  OrderStatus = "Cancelled"
)

// ValidOrderStatuses is a map containing all the valid order statuses.
var ValidOrderStatuses = map[OrderStatus]bool{
	Pending:    true,
	Processing: true,
	Shipped:    true,
	Delivered:  true,
	Cancelled:  true,
}

func IsValidOrderStatus(s OrderStatus) bool {
	_, ok := ValidOrderStatuses[s]
	return ok
}

// Order is a placed order as served by the platform API. Orders are read-only
// from the reporting side: they are created by the order placement flow and
// never written back.
type Order struct {
	ID           string
	Placed       time.Time
	TotalAmount  decimal.Decimal
	Status       OrderStatus
	Items        []OrderItem
	CustomerID   string
	CustomerName string
}

func (o *Order) TotalAmountDecimal() decimal.Decimal {
	return o.TotalAmount.Round(2)
}

// OrderItem is a single line of an order. Price and Name are the denormalized
// copies recorded at purchase time; Name may be empty on old orders, in which
// case the product catalog is used as a fallback.
type OrderItem struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Quantity  int
}

func (oi *OrderItem) LineTotal() decimal.Decimal {
	return oi.Price.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}
