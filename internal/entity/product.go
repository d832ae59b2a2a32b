package entity

import "github.com/shopspring/decimal"

// Product is a catalog entry. Reporting uses it only to resolve a title and
// price when an order line item lacks its own denormalized copy.
type Product struct {
	ID    string
	Title string
	Price decimal.Decimal
}
