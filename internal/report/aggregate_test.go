package report

import (
	"testing"
	"time"

	"github.com/aurelia-jewels/reports-manager/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(id string, placed time.Time, amount float64, status entity.OrderStatus) entity.Order {
	return entity.Order{
		ID:          id,
		Placed:      placed,
		TotalAmount: decimal.NewFromFloat(amount),
		Status:      status,
	}
}

func marchConfig() entity.ReportConfig {
	return entity.ReportConfig{Granularity: entity.GranularityMonthly, Anchor: "2024-03"}
}

func TestComputeMonthly(t *testing.T) {
	orders := []entity.Order{
		testOrder("o1", date(2024, time.March, 3), 100, entity.Delivered),
		testOrder("o2", date(2024, time.March, 14), 200, entity.Pending),
		testOrder("o3", date(2024, time.March, 28), 300, entity.Delivered),
		// outside the period
		testOrder("o4", date(2024, time.April, 1), 999, entity.Delivered),
		testOrder("o5", date(2024, time.February, 20), 50, entity.Delivered),
	}
	users := []entity.User{
		{ID: "u1", Created: date(2024, time.March, 10), Role: entity.RoleCustomer},
		{ID: "u2", Created: date(2024, time.February, 10), Role: entity.RoleCustomer},
		{ID: "u3", Created: date(2024, time.March, 12), Role: entity.RoleAdmin},
	}

	res := Compute(orders, users, nil, marchConfig())

	assert.True(t, res.Revenue.Equal(decimal.NewFromInt(600)), "revenue %s", res.Revenue)
	assert.Equal(t, 3, res.OrdersCount)
	assert.Equal(t, 2, res.CompletedCount)
	assert.True(t, res.AvgOrderValue.Equal(decimal.NewFromInt(200)), "avg %s", res.AvgOrderValue)
	assert.Equal(t, 1, res.NewCustomers)
}

func TestComputeGrowth(t *testing.T) {
	tests := []struct {
		name     string
		current  []float64
		previous []float64
		want     float64
	}{
		{"new revenue over empty prior period", []float64{50}, nil, 100},
		{"no revenue at all", nil, nil, 0},
		{"doubled", []float64{100, 100}, []float64{100}, 100},
		{"halved", []float64{50}, []float64{100}, -50},
		{"flat", []float64{100}, []float64{100}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var orders []entity.Order
			for i, amt := range tt.current {
				orders = append(orders, testOrder("c", date(2024, time.March, i+1), amt, entity.Pending))
			}
			for i, amt := range tt.previous {
				orders = append(orders, testOrder("p", date(2024, time.February, i+1), amt, entity.Pending))
			}
			res := Compute(orders, nil, nil, marchConfig())
			assert.InDelta(t, tt.want, res.RevenueGrowth, 1e-9)
		})
	}
}

func TestComputeEmptyInputs(t *testing.T) {
	res := Compute(nil, nil, nil, marchConfig())

	assert.True(t, res.Revenue.IsZero())
	assert.Zero(t, res.OrdersCount)
	assert.True(t, res.AvgOrderValue.IsZero())
	assert.Zero(t, res.RevenueGrowth)
	assert.Empty(t, res.TopProducts)
	require.NotEmpty(t, res.Series)
	for _, pt := range res.Series {
		assert.True(t, pt.Value.IsZero())
	}
}

func TestComputeInvalidAnchorDegrades(t *testing.T) {
	orders := []entity.Order{
		testOrder("o1", date(2024, time.March, 3), 100, entity.Delivered),
	}
	res := Compute(orders, nil, nil, entity.ReportConfig{Granularity: entity.GranularityMonthly, Anchor: "garbage"})

	assert.True(t, res.Revenue.IsZero())
	assert.Zero(t, res.OrdersCount)
	assert.Empty(t, res.Series)
}

func TestComputeIsDeterministic(t *testing.T) {
	orders := []entity.Order{
		testOrder("o1", date(2024, time.March, 3), 123.45, entity.Delivered),
		testOrder("o2", date(2024, time.March, 7), 67.89, entity.Shipped),
	}
	orders[0].Items = []entity.OrderItem{
		{ProductID: "p1", Name: "Gold Ring", Price: decimal.NewFromFloat(123.45), Quantity: 1},
	}
	users := []entity.User{{ID: "u1", Created: date(2024, time.March, 5), Role: entity.RoleCustomer}}
	products := []entity.Product{{ID: "p1", Title: "Gold Ring", Price: decimal.NewFromFloat(123.45)}}

	first := Compute(orders, users, products, marchConfig())
	second := Compute(orders, users, products, marchConfig())
	assert.Equal(t, first, second)
}

func TestSeriesSumsToRevenue(t *testing.T) {
	configs := []entity.ReportConfig{
		{Granularity: entity.GranularityDaily, Anchor: "2024-03-15"},
		{Granularity: entity.GranularityMonthly, Anchor: "2024-03"},
		{Granularity: entity.GranularityYearly, Anchor: "2024"},
	}
	orders := []entity.Order{
		testOrder("o1", date(2024, time.March, 15), 100.10, entity.Pending),
		testOrder("o2", date(2024, time.March, 15), 200.20, entity.Pending),
		testOrder("o3", date(2024, time.March, 31), 300.30, entity.Pending),
		testOrder("o4", date(2024, time.July, 4), 400.40, entity.Pending),
	}

	for _, cfg := range configs {
		t.Run(string(cfg.Granularity), func(t *testing.T) {
			res := Compute(orders, nil, nil, cfg)
			sum := decimal.Zero
			for _, pt := range res.Series {
				sum = sum.Add(pt.Value)
			}
			assert.True(t, sum.Equal(res.Revenue), "series sum %s != revenue %s", sum, res.Revenue)
		})
	}
}

func TestFilterCurrent(t *testing.T) {
	orders := []entity.Order{
		testOrder("in", date(2024, time.March, 10), 10, entity.Pending),
		testOrder("out", date(2024, time.April, 10), 10, entity.Pending),
	}
	filtered := FilterCurrent(orders, marchConfig())
	require.Len(t, filtered, 1)
	assert.Equal(t, "in", filtered[0].ID)
}
