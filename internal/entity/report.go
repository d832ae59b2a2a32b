package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Granularity is the reporting cadence. It determines both the period length
// and the bucket width of the chart series.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityMonthly Granularity = "monthly"
	GranularityYearly  Granularity = "yearly"
)

var ValidGranularities = map[Granularity]bool{
	GranularityDaily:   true,
	GranularityMonthly: true,
	GranularityYearly:  true,
}

func IsValidGranularity(g Granularity) bool {
	_, ok := ValidGranularities[g]
	return ok
}

// ReportConfig selects the reporting window. Anchor is a calendar reference
// whose expected layout depends on the granularity: "2006-01-02" for daily,
// "2006-01" for monthly, "2006" for yearly. A full date is accepted for the
// coarser granularities and truncated to its month or year.
type ReportConfig struct {
	Granularity Granularity
	Anchor      string
}

// Period is the half-open reporting window [CurrentStart, CurrentEnd) plus
// the start of the immediately preceding period of equal length. The previous
// period's end is always CurrentStart, so consecutive periods never overlap
// and boundary orders are never double counted.
type Period struct {
	CurrentStart  time.Time
	CurrentEnd    time.Time
	PreviousStart time.Time
}

// PreviousEnd is exclusive and equals the current period's start.
func (p Period) PreviousEnd() time.Time {
	return p.CurrentStart
}

// IsZero reports whether the window is empty, which is how an unparseable
// anchor degrades: downstream aggregation sees "no data" instead of an error.
func (p Period) IsZero() bool {
	return !p.CurrentEnd.After(p.CurrentStart)
}

// Contains reports whether t falls inside the current period.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.CurrentStart) && t.Before(p.CurrentEnd)
}

// ContainsPrevious reports whether t falls inside the previous period.
func (p Period) ContainsPrevious(t time.Time) bool {
	return !t.Before(p.PreviousStart) && t.Before(p.PreviousEnd())
}

// ProductSales is one row of the top seller ranking.
type ProductSales struct {
	ProductID string          `json:"productId"`
	Title     string          `json:"title"`
	Revenue   decimal.Decimal `json:"revenue"`
	Quantity  int             `json:"quantity"`
}

// SeriesPoint is one bucket of the revenue chart series.
type SeriesPoint struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// ReportResult is derived on every invocation and never persisted by the
// aggregation core itself. It is a pure function of the input collections and
// the config: identical inputs always produce an identical result.
type ReportResult struct {
	Period Period

	Revenue        decimal.Decimal
	RevenueGrowth  float64
	OrdersCount    int
	CompletedCount int
	AvgOrderValue  decimal.Decimal
	NewCustomers   int

	TopProducts []ProductSales
	Series      []SeriesPoint
}
