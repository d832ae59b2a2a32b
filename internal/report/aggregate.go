package report

import (
	"time"

	"github.com/aurelia-jewels/reports-manager/internal/entity"
	"github.com/shopspring/decimal"
)

// TopProductsLimit caps the seller ranking shown on the dashboard.
const TopProductsLimit = 5

// Compute runs the whole aggregation over the raw collections and shapes a
// single report. It is pure: no I/O, no hidden state, safe to abandon
// mid-computation and safe to call concurrently.
func Compute(orders []entity.Order, users []entity.User, products []entity.Product, cfg entity.ReportConfig) entity.ReportResult {
	p := ResolvePeriod(cfg)

	current := filterOrders(orders, p.Contains)
	previous := filterOrders(orders, p.ContainsPrevious)

	revenue := sumRevenue(current)
	prevRevenue := sumRevenue(previous)

	res := entity.ReportResult{
		Period:        p,
		Revenue:       revenue,
		RevenueGrowth: growthPct(revenue, prevRevenue),
		OrdersCount:   len(current),
		NewCustomers:  countNewCustomers(users, p),
		TopProducts:   RankProducts(current, products, TopProductsLimit),
		Series:        BinSeries(current, cfg.Granularity, p.CurrentStart),
	}

	for i := range current {
		if current[i].Status == entity.Delivered {
			res.CompletedCount++
		}
	}
	if res.OrdersCount > 0 {
		res.AvgOrderValue = revenue.Div(decimal.NewFromInt(int64(res.OrdersCount))).Round(2)
	}

	return res
}

// FilterCurrent returns the orders belonging to the config's current period,
// in input order. The admin export runs over exactly this slice.
func FilterCurrent(orders []entity.Order, cfg entity.ReportConfig) []entity.Order {
	p := ResolvePeriod(cfg)
	return filterOrders(orders, p.Contains)
}

func filterOrders(orders []entity.Order, in func(t time.Time) bool) []entity.Order {
	var out []entity.Order
	for i := range orders {
		if in(orders[i].Placed) {
			out = append(out, orders[i])
		}
	}
	return out
}

func sumRevenue(orders []entity.Order) decimal.Decimal {
	total := decimal.Zero
	for i := range orders {
		total = total.Add(orders[i].TotalAmount)
	}
	return total
}

// growthPct is the percentage change vs the previous period. When the
// previous period earned nothing the value is pinned to 100 for any positive
// current revenue and 0 otherwise, so "new revenue" stays distinguishable
// from "no revenue" without dividing by zero.
func growthPct(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		if current.IsPositive() {
			return 100
		}
		return 0
	}
	f, _ := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Float64()
	return f
}

func countNewCustomers(users []entity.User, p entity.Period) int {
	n := 0
	for i := range users {
		if users[i].Role == entity.RoleAdmin {
			continue
		}
		if p.Contains(users[i].Created) {
			n++
		}
	}
	return n
}
