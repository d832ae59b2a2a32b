package report

import (
	"strconv"
	"time"

	"github.com/aurelia-jewels/reports-manager/internal/entity"
	"github.com/shopspring/decimal"
)

// maxMonthlyBars keeps the monthly chart readable: day buckets are widened so
// the series never exceeds ~15 bars.
const maxMonthlyBars = 15

// BinSeries produces the revenue chart series for the current period's
// orders. Yearly reports get exactly 12 month buckets; daily and monthly
// reports bucket by day of the anchor month, with monthly reports coarsened
// to ceil(daysInMonth/15)-day bins. Bucket values always sum to the period's
// aggregate revenue because the bins cover the whole month.
func BinSeries(orders []entity.Order, granularity entity.Granularity, periodStart time.Time) []entity.SeriesPoint {
	if granularity == entity.GranularityYearly {
		return binByMonth(orders)
	}
	return binByDay(orders, granularity, periodStart)
}

func binByMonth(orders []entity.Order) []entity.SeriesPoint {
	series := make([]entity.SeriesPoint, 12)
	for m := time.January; m <= time.December; m++ {
		series[m-1] = entity.SeriesPoint{Label: m.String()[:3], Value: decimal.Zero}
	}
	for i := range orders {
		m := orders[i].Placed.Month()
		series[m-1].Value = series[m-1].Value.Add(orders[i].TotalAmount)
	}
	return series
}

func binByDay(orders []entity.Order, granularity entity.Granularity, periodStart time.Time) []entity.SeriesPoint {
	if periodStart.IsZero() {
		return nil
	}
	days := daysInMonth(periodStart)

	step := 1
	if granularity == entity.GranularityMonthly {
		step = (days + maxMonthlyBars - 1) / maxMonthlyBars
	}

	var series []entity.SeriesPoint
	for day := 1; day <= days; day += step {
		series = append(series, entity.SeriesPoint{Label: strconv.Itoa(day), Value: decimal.Zero})
	}
	for i := range orders {
		day := orders[i].Placed.Day()
		idx := (day - 1) / step
		if idx < 0 || idx >= len(series) {
			continue
		}
		series[idx].Value = series[idx].Value.Add(orders[i].TotalAmount)
	}
	return series
}
