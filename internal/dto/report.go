package dto

import (
	"time"

	"github.com/aurelia-jewels/reports-manager/internal/entity"
	"github.com/shopspring/decimal"
)

// ReportResponse is the admin API shape of a computed report.
type ReportResponse struct {
	Granularity    string                `json:"granularity"`
	Anchor         string                `json:"anchor"`
	PeriodStart    time.Time             `json:"periodStart"`
	PeriodEnd      time.Time             `json:"periodEnd"`
	Revenue        decimal.Decimal       `json:"revenue"`
	RevenueGrowth  float64               `json:"revenueGrowth"`
	OrdersCount    int                   `json:"ordersCount"`
	CompletedCount int                   `json:"completedCount"`
	AvgOrderValue  decimal.Decimal       `json:"avgOrderValue"`
	NewCustomers   int                   `json:"newCustomers"`
	TopProducts    []entity.ProductSales `json:"topProducts"`
	Series         []entity.SeriesPoint  `json:"series"`
}

func ReportResponseFromEntity(cfg entity.ReportConfig, res *entity.ReportResult) ReportResponse {
	return ReportResponse{
		Granularity:    string(cfg.Granularity),
		Anchor:         cfg.Anchor,
		PeriodStart:    res.Period.CurrentStart,
		PeriodEnd:      res.Period.CurrentEnd,
		Revenue:        res.Revenue.Round(2),
		RevenueGrowth:  res.RevenueGrowth,
		OrdersCount:    res.OrdersCount,
		CompletedCount: res.CompletedCount,
		AvgOrderValue:  res.AvgOrderValue,
		NewCustomers:   res.NewCustomers,
		TopProducts:    res.TopProducts,
		Series:         res.Series,
	}
}

// SnapshotResponse is the admin API shape of a persisted snapshot.
type SnapshotResponse struct {
	ID             int             `json:"id"`
	Granularity    string          `json:"granularity"`
	Anchor         string          `json:"anchor"`
	PeriodStart    time.Time       `json:"periodStart"`
	PeriodEnd      time.Time       `json:"periodEnd"`
	Revenue        decimal.Decimal `json:"revenue"`
	RevenueGrowth  float64         `json:"revenueGrowth"`
	OrdersCount    int             `json:"ordersCount"`
	CompletedCount int             `json:"completedCount"`
	AvgOrderValue  decimal.Decimal `json:"avgOrderValue"`
	NewCustomers   int             `json:"newCustomers"`
	CreatedAt      time.Time       `json:"createdAt"`
}

func SnapshotResponseFromEntity(s *entity.ReportSnapshot) SnapshotResponse {
	return SnapshotResponse{
		ID:             s.ID,
		Granularity:    string(s.Granularity),
		Anchor:         s.Anchor,
		PeriodStart:    s.PeriodStart,
		PeriodEnd:      s.PeriodEnd,
		Revenue:        s.Revenue,
		RevenueGrowth:  s.RevenueGrowth,
		OrdersCount:    s.OrdersCount,
		CompletedCount: s.CompletedCount,
		AvgOrderValue:  s.AvgOrderValue,
		NewCustomers:   s.NewCustomers,
		CreatedAt:      s.CreatedAt,
	}
}
