// Package dto holds the raw JSON shapes served by the platform REST API and
// their conversion into entity records. The backend is loosely typed, so
// every optional field is a pointer here and all defaulting happens in the
// Normalize functions, exactly once, at this boundary.
package dto

import (
	"time"

	"github.com/aurelia-jewels/reports-manager/internal/entity"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID          string      `json:"_id"`
	CreatedAt   *time.Time  `json:"createdAt"`
	TotalAmount *float64    `json:"totalAmount"`
	Status      *string     `json:"status"`
	Items       []OrderItem `json:"items"`
	User        *OrderUser  `json:"user"`
}

type OrderItem struct {
	Product  *ItemProduct `json:"product"`
	Price    *float64     `json:"price"`
	Quantity *int         `json:"quantity"`
}

// ItemProduct is the product reference embedded in a line item. Depending on
// backend version it is either populated or just an id.
type ItemProduct struct {
	ID    string   `json:"_id"`
	Title *string  `json:"title"`
	Price *float64 `json:"price"`
}

type OrderUser struct {
	ID   string  `json:"_id"`
	Name *string `json:"name"`
}

type User struct {
	ID        string     `json:"_id"`
	CreatedAt *time.Time `json:"createdAt"`
	Role      *string    `json:"role"`
}

type Product struct {
	ID    string   `json:"_id"`
	Title *string  `json:"title"`
	Price *float64 `json:"price"`
}

// Collections bundles the three raw collections a report is computed from.
type Collections struct {
	Orders   []entity.Order
	Users    []entity.User
	Products []entity.Product
}

// NormalizeOrder defaults the loose fields: missing amount or price becomes
// zero, missing quantity becomes one, missing status becomes Pending. Data
// shape issues never become errors here; reporting degrades instead.
func NormalizeOrder(o Order) entity.Order {
	out := entity.Order{
		ID:          o.ID,
		TotalAmount: decimalFrom(o.TotalAmount),
		Status:      entity.Pending,
	}
	if o.CreatedAt != nil {
		out.Placed = o.CreatedAt.UTC()
	}
	if o.Status != nil && entity.IsValidOrderStatus(entity.OrderStatus(*o.Status)) {
		out.Status = entity.OrderStatus(*o.Status)
	}
	if o.User != nil {
		out.CustomerID = o.User.ID
		if o.User.Name != nil {
			out.CustomerName = *o.User.Name
		}
	}
	if len(o.Items) > 0 {
		out.Items = make([]entity.OrderItem, 0, len(o.Items))
		for _, it := range o.Items {
			out.Items = append(out.Items, normalizeItem(it))
		}
	}
	return out
}

func normalizeItem(it OrderItem) entity.OrderItem {
	item := entity.OrderItem{
		Price:    decimalFrom(it.Price),
		Quantity: 1,
	}
	if it.Quantity != nil && *it.Quantity > 0 {
		item.Quantity = *it.Quantity
	}
	if it.Product != nil {
		item.ProductID = it.Product.ID
		if it.Product.Title != nil {
			item.Name = *it.Product.Title
		}
		if it.Price == nil && it.Product.Price != nil {
			item.Price = decimalFrom(it.Product.Price)
		}
	}
	return item
}

func NormalizeUser(u User) entity.User {
	out := entity.User{
		ID:   u.ID,
		Role: entity.RoleCustomer,
	}
	if u.CreatedAt != nil {
		out.Created = u.CreatedAt.UTC()
	}
	if u.Role != nil && *u.Role == string(entity.RoleAdmin) {
		out.Role = entity.RoleAdmin
	}
	return out
}

func NormalizeProduct(p Product) entity.Product {
	out := entity.Product{
		ID:    p.ID,
		Price: decimalFrom(p.Price),
	}
	if p.Title != nil {
		out.Title = *p.Title
	}
	return out
}

func NormalizeOrders(in []Order) []entity.Order {
	out := make([]entity.Order, 0, len(in))
	for _, o := range in {
		out = append(out, NormalizeOrder(o))
	}
	return out
}

func NormalizeUsers(in []User) []entity.User {
	out := make([]entity.User, 0, len(in))
	for _, u := range in {
		out = append(out, NormalizeUser(u))
	}
	return out
}

func NormalizeProducts(in []Product) []entity.Product {
	out := make([]entity.Product, 0, len(in))
	for _, p := range in {
		out = append(out, NormalizeProduct(p))
	}
	return out
}

func decimalFrom(f *float64) decimal.Decimal {
	if f == nil || *f < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*f)
}
