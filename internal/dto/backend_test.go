package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aurelia-jewels/reports-manager/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }
func iptr(v int) *int        { return &v }
func sptr(v string) *string  { return &v }

func TestNormalizeOrderDefaults(t *testing.T) {
	placed := time.Date(2024, time.March, 3, 12, 30, 0, 0, time.UTC)
	raw := Order{
		ID:        "ord-1",
		CreatedAt: &placed,
		Status:    sptr("Delivered"),
		Items: []OrderItem{
			{Product: &ItemProduct{ID: "p1"}, Price: f64(120)}, // no quantity
			{Product: &ItemProduct{ID: "p2"}, Price: f64(35), Quantity: iptr(3)},
		},
		User: &OrderUser{ID: "u1", Name: sptr("Ada")},
	}

	o := NormalizeOrder(raw)
	assert.Equal(t, "ord-1", o.ID)
	assert.Equal(t, placed, o.Placed)
	assert.Equal(t, entity.Delivered, o.Status)
	assert.Equal(t, "u1", o.CustomerID)
	assert.Equal(t, "Ada", o.CustomerName)
	// missing totalAmount defaults to zero, never an error
	assert.True(t, o.TotalAmount.IsZero())

	require.Len(t, o.Items, 2)
	assert.Equal(t, 1, o.Items[0].Quantity, "missing quantity defaults to 1")
	assert.Equal(t, 3, o.Items[1].Quantity)
}

func TestNormalizeOrderLooseStatus(t *testing.T) {
	tests := []struct {
		name   string
		status *string
		want   entity.OrderStatus
	}{
		{"missing", nil, entity.Pending},
		{"unknown", sptr("Teleported"), entity.Pending},
		{"valid", sptr("Shipped"), entity.Shipped},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NormalizeOrder(Order{ID: "o", Status: tt.status})
			assert.Equal(t, tt.want, o.Status)
		})
	}
}

func TestNormalizeItemPriceFallsBackToProduct(t *testing.T) {
	it := normalizeItem(OrderItem{
		Product: &ItemProduct{ID: "p1", Title: sptr("Gold Ring"), Price: f64(420)},
	})
	assert.Equal(t, "p1", it.ProductID)
	assert.Equal(t, "Gold Ring", it.Name)
	assert.True(t, it.Price.Equal(decimal.NewFromInt(420)))
	assert.Equal(t, 1, it.Quantity)
}

func TestNormalizeOrderNegativeAmount(t *testing.T) {
	o := NormalizeOrder(Order{ID: "o", TotalAmount: f64(-5)})
	assert.True(t, o.TotalAmount.IsZero())
}

func TestNormalizeUser(t *testing.T) {
	created := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	u := NormalizeUser(User{ID: "u1", CreatedAt: &created, Role: sptr("admin")})
	assert.Equal(t, entity.RoleAdmin, u.Role)
	assert.Equal(t, created, u.Created)

	u = NormalizeUser(User{ID: "u2"})
	assert.Equal(t, entity.RoleCustomer, u.Role)
	assert.True(t, u.Created.IsZero())
}

func TestNormalizeFromBackendJSON(t *testing.T) {
	payload := `[{"_id":"ord-9","createdAt":"2024-03-15T10:00:00Z","totalAmount":250.5,
		"status":"Processing","items":[{"product":{"_id":"p9","title":"Sapphire Ring"},"price":250.5}]}]`

	var raw []Order
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	orders := NormalizeOrders(raw)
	require.Len(t, orders, 1)
	assert.True(t, orders[0].TotalAmount.Equal(decimal.NewFromFloat(250.5)))
	assert.Equal(t, entity.Processing, orders[0].Status)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Sapphire Ring", orders[0].Items[0].Name)
}
