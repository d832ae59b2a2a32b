package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportSnapshot is a persisted ReportResult. Scalar metrics live in their
// own columns so history can be queried cheaply; the ranking and the chart
// series are kept as a JSON payload.
type ReportSnapshot struct {
	ID             int             `db:"id"`
	Granularity    Granularity     `db:"granularity"`
	Anchor         string          `db:"anchor"`
	PeriodStart    time.Time       `db:"period_start"`
	PeriodEnd      time.Time       `db:"period_end"`
	Revenue        decimal.Decimal `db:"revenue"`
	RevenueGrowth  float64         `db:"revenue_growth"`
	OrdersCount    int             `db:"orders_count"`
	CompletedCount int             `db:"completed_count"`
	AvgOrderValue  decimal.Decimal `db:"avg_order_value"`
	NewCustomers   int             `db:"new_customers"`
	Payload        []byte          `db:"payload"`
	CreatedAt      time.Time       `db:"created_at"`
}

// SnapshotPayload is the JSON document stored in ReportSnapshot.Payload.
type SnapshotPayload struct {
	TopProducts []ProductSales `json:"topProducts"`
	Series      []SeriesPoint  `json:"series"`
}
