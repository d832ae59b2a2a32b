package report

import (
	"sort"

	"github.com/aurelia-jewels/reports-manager/internal/entity"
	"github.com/shopspring/decimal"
)

// UnknownProductTitle is shown when a line item cannot be resolved against
// the catalog (deleted product, legacy order without a denormalized name).
const UnknownProductTitle = "Unknown Product"

// RankProducts aggregates per-product revenue and quantity across the given
// orders and returns the top sellers sorted by revenue descending, truncated
// to limit. Equal revenue keeps discovery order: the sort is stable and there
// is deliberately no secondary key.
func RankProducts(orders []entity.Order, products []entity.Product, limit int) []entity.ProductSales {
	catalog := make(map[string]entity.Product, len(products))
	for i := range products {
		catalog[products[i].ID] = products[i]
	}

	totals := make(map[string]*entity.ProductSales)
	var order []string
	for i := range orders {
		for j := range orders[i].Items {
			item := &orders[i].Items[j]
			ps, ok := totals[item.ProductID]
			if !ok {
				ps = &entity.ProductSales{
					ProductID: item.ProductID,
					Title:     resolveTitle(item, catalog),
					Revenue:   decimal.Zero,
				}
				totals[item.ProductID] = ps
				order = append(order, item.ProductID)
			}
			ps.Revenue = ps.Revenue.Add(item.LineTotal())
			ps.Quantity += item.Quantity
		}
	}

	ranked := make([]entity.ProductSales, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, *totals[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func resolveTitle(item *entity.OrderItem, catalog map[string]entity.Product) string {
	if item.Name != "" {
		return item.Name
	}
	if p, ok := catalog[item.ProductID]; ok && p.Title != "" {
		return p.Title
	}
	return UnknownProductTitle
}
